// Package model contains domain models passed between layers.
package model

// Fighter represents one tournament entrant as supplied by the roster source.
// Rank, Wins, Losses and Draws are independently optional: a nil pointer
// means the value is unknown, never zero. This keeps missing data out of
// arithmetic instead of hiding it behind a sentinel.
type Fighter struct {
	Name   string `json:"name"`
	Club   string `json:"club,omitempty"`
	Nation string `json:"nation,omitempty"`
	Rank   *int   `json:"rank,omitempty"`
	Wins   *int   `json:"wins,omitempty"`
	Losses *int   `json:"losses,omitempty"`
	Draws  *int   `json:"draws,omitempty"`
}

// TotalBouts returns wins+losses+draws and whether the record is complete.
// The total is only meaningful when all three counts are known.
func (f Fighter) TotalBouts() (int, bool) {
	if f.Wins == nil || f.Losses == nil || f.Draws == nil {
		return 0, false
	}
	return *f.Wins + *f.Losses + *f.Draws, true
}

// HasRecord reports whether the fighter's historical record is complete
// enough to derive a performance ratio.
func (f Fighter) HasRecord() bool {
	_, ok := f.TotalBouts()
	return ok
}

// Rating captures the derived strength numbers for one fighter.
// Ratio, EffectiveRatio and PowerScore are undefined when the historical
// record is incomplete; Defined marks that case for consumers.
type Rating struct {
	Name           string  `json:"name"`
	Defined        bool    `json:"defined"`
	Ratio          float64 `json:"ratio"`
	Reliability    float64 `json:"reliability"`
	EffectiveRatio float64 `json:"effective_ratio"`
	PowerScore     float64 `json:"power_score"`
}
