// Package roster loads the fighter roster from its external supply.
//
// The core treats the roster source as an opaque collaborator: whatever
// produced it (spreadsheet export, scraper, generator) hands over a JSON
// array of fighter records, and this package validates the contract the
// domain relies on.
package roster

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/burdigala/melee/internal/domain/model"
)

// Load reads and validates a roster file.
func Load(path string) ([]model.Fighter, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator config
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	fighters, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return fighters, nil
}

// Parse decodes a JSON roster and validates each record. Unknown rank or
// counts are legal (absent fields stay nil); negative counts and
// non-positive ranks are not.
func Parse(r io.Reader) ([]model.Fighter, error) {
	var fighters []model.Fighter
	if err := json.NewDecoder(r).Decode(&fighters); err != nil {
		return nil, fmt.Errorf("decoding roster: %w", err)
	}

	for i, f := range fighters {
		if f.Name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrMissingName)
		}
		for field, v := range map[string]*int{"wins": f.Wins, "losses": f.Losses, "draws": f.Draws} {
			if v != nil && *v < 0 {
				return nil, fmt.Errorf("entry %s: %s: %w", f.Name, field, ErrNegativeCount)
			}
		}
		// A non-positive rank is not an error; it degrades to unknown so
		// the rank contribution collapses to zero downstream.
		if f.Rank != nil && *f.Rank <= 0 {
			fighters[i].Rank = nil
		}
	}
	return fighters, nil
}
