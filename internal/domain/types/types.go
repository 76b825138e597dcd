// Package types contains common read shapes used across the application.
package types

import "github.com/burdigala/melee/internal/domain/model"

// Entry pairs a fighter with its derived rating for read APIs. Rating is nil
// when the fighter's historical record is incomplete; presentation layers
// render that as "no ratio available" instead of failing the whole report.
type Entry struct {
	Fighter model.Fighter `json:"fighter"`
	Rating  *model.Rating `json:"rating,omitempty"`
}

// RosterStats summarizes the loaded roster for the stats endpoint.
type RosterStats struct {
	Fighters    int     `json:"fighters"`
	Clubs       int     `json:"clubs"`
	Nations     int     `json:"nations"`
	Ranked      int     `json:"ranked"`
	UnknownRank int     `json:"unknown_rank"`
	BestRank    int     `json:"best_rank,omitempty"`
	MeanRank    float64 `json:"mean_rank,omitempty"`
	MedianRank  float64 `json:"median_rank,omitempty"`
}
