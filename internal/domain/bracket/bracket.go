// Package bracket runs one randomized single-elimination tournament over a
// fighter roster, resolving each bout from the logistic matchup model.
package bracket

import (
	"context"
	"math/rand"
	"time"

	"github.com/burdigala/melee/internal/domain/duel"
	"github.com/burdigala/melee/internal/domain/model"
	"github.com/burdigala/melee/internal/domain/rating"
	"github.com/burdigala/melee/pkg/logger"
)

// Option applies a configuration option to the Simulator.
type Option func(*Simulator)

// WithRand injects the random source used for seeding shuffles and bout
// resolution. Tests supply a fixed seed; parallel callers supply one
// independent source per worker.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithLogger sets a custom logger for the simulator.
func WithLogger(log logger.Logger) Option {
	return func(s *Simulator) {
		if log != nil {
			s.log = log
		}
	}
}

// Simulator executes single-elimination tournaments. It owns its random
// source and must not be shared across goroutines without synchronization.
type Simulator struct {
	engine *rating.Engine
	model  *duel.Model
	rng    *rand.Rand
	log    logger.Logger
}

// New creates a Simulator over the given rating engine and matchup model.
// The default random source is time-seeded.
func New(engine *rating.Engine, matchup *duel.Model, opts ...Option) *Simulator {
	s := &Simulator{
		engine: engine,
		model:  matchup,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // statistical simulation, not security
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result describes one completed tournament run.
type Result struct {
	Champion string
	Rounds   int
	Bouts    int
}

// entrant pairs a fighter name with its precomputed power score for the run.
type entrant struct {
	name  string
	score float64
}

// EligibleEntrants splits the roster into fighters that can enter a bracket
// and those excluded for an incomplete historical record. A fighter without
// a defined power score never enters a bout; excluding it is the one policy
// that fabricates no strength on its behalf.
func (s *Simulator) EligibleEntrants(ctx context.Context, roster []model.Fighter) (eligible []model.Fighter, excluded []string) {
	for _, f := range roster {
		if !f.HasRecord() {
			excluded = append(excluded, f.Name)
			continue
		}
		eligible = append(eligible, f)
	}
	if len(excluded) > 0 && s.log != nil {
		s.log.Warn(ctx, "fighters excluded from simulation",
			logger.Int("excluded", len(excluded)),
			logger.Any("names", excluded),
		)
	}
	return eligible, excluded
}

// Run simulates one tournament over the given entrants and returns the
// champion. Entrants must all have complete records (see EligibleEntrants).
// Zero entrants is an error; a single entrant is trivially champion.
func (s *Simulator) Run(ctx context.Context, entrants []model.Fighter) (Result, error) {
	if len(entrants) == 0 {
		return Result{}, ErrEmptyField
	}

	field := make([]entrant, 0, len(entrants))
	for _, f := range entrants {
		r, err := s.engine.Rate(f)
		if err != nil {
			return Result{}, err
		}
		field = append(field, entrant{name: f.Name, score: r.PowerScore})
	}

	// Uniform shuffle once; no seeding by rank.
	s.rng.Shuffle(len(field), func(i, j int) {
		field[i], field[j] = field[j], field[i]
	})

	var res Result
	for len(field) > 1 {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		next := make([]entrant, 0, (len(field)+1)/2)
		round := field
		if len(round)%2 == 1 {
			// Odd field: last entrant byes into the next round.
			next = append(next, round[len(round)-1])
			round = round[:len(round)-1]
		}
		for i := 0; i < len(round); i += 2 {
			next = append(next, s.bout(round[i], round[i+1]))
			res.Bouts++
		}
		field = next
		res.Rounds++
	}

	res.Champion = field[0].name
	return res, nil
}

// bout resolves one pairing: A wins iff a uniform draw lands below its win
// probability. Exactly one winner; draws only exist in historical records.
func (s *Simulator) bout(a, b entrant) entrant {
	p := s.model.WinProbability(a.score, b.score)
	if s.rng.Float64() < p {
		return a
	}
	return b
}
