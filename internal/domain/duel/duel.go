// Package duel converts two power scores into pairwise win probabilities
// via a logistic model.
package duel

import (
	"fmt"
	"math"

	"github.com/burdigala/melee/internal/domain/model"
	"github.com/burdigala/melee/internal/domain/rating"
)

// defaultSteepness controls how sharply a score gap translates into
// probability; zero would make every matchup 50/50.
const defaultSteepness = 8.0

// Option applies a configuration option to the Model.
type Option func(*Model)

// WithSteepness sets the logistic steepness constant.
func WithSteepness(k float64) Option {
	return func(m *Model) {
		if k >= 0 {
			m.steepness = k
		}
	}
}

// Model derives win probabilities from power scores. Pure and safe for
// concurrent use.
type Model struct {
	engine    *rating.Engine
	steepness float64
}

// New creates a Model over the given rating engine.
func New(engine *rating.Engine, opts ...Option) *Model {
	m := &Model{
		engine:    engine,
		steepness: defaultSteepness,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// WinProbability returns the probability in (0,1) that the holder of scoreA
// beats the holder of scoreB. Exactly symmetric:
// WinProbability(a,b) + WinProbability(b,a) == 1.
func (m *Model) WinProbability(scoreA, scoreB float64) float64 {
	return 1 / (1 + math.Exp(-m.steepness*(scoreA-scoreB)))
}

// Outcome holds both directions of a single matchup.
type Outcome struct {
	NameA string  `json:"name_a"`
	NameB string  `json:"name_b"`
	ProbA float64 `json:"win_probability_a"`
	ProbB float64 `json:"win_probability_b"`
}

// Matchup rates both fighters and derives their pairwise win probabilities.
// A missing record on either side propagates as rating.ErrMissingRecord; the
// model never substitutes a guessed score.
func (m *Model) Matchup(a, b model.Fighter) (Outcome, error) {
	ra, err := m.engine.Rate(a)
	if err != nil {
		return Outcome{}, fmt.Errorf("rating %s: %w", a.Name, err)
	}
	rb, err := m.engine.Rate(b)
	if err != nil {
		return Outcome{}, fmt.Errorf("rating %s: %w", b.Name, err)
	}
	pa := m.WinProbability(ra.PowerScore, rb.PowerScore)
	return Outcome{
		NameA: a.Name,
		NameB: b.Name,
		ProbA: pa,
		ProbB: 1 - pa,
	}, nil
}
