// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/burdigala/melee/internal/domain/model"
)

// Store provides read access to the fighter roster. The roster is loaded
// once per run and never mutated afterwards.
type Store interface {
	// Get returns the fighter with the given name.
	// Returns ErrNotFound when the name is unknown.
	Get(ctx context.Context, name string) (model.Fighter, error)

	// List returns all fighters in load order.
	List(ctx context.Context) []model.Fighter

	// Count returns the number of fighters in the roster.
	Count(ctx context.Context) int
}
