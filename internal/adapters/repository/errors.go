package repository

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrNotFound      = errors.New("fighter not found")
	ErrEmptyName     = errors.New("fighter name must not be empty")
	ErrDuplicateName = errors.New("duplicate fighter name")
)
