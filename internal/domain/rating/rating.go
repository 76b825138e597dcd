// Package rating turns a fighter's historical record into a smoothed,
// reliability-weighted performance ratio and a blended power score.
package rating

import (
	"github.com/burdigala/melee/internal/domain/model"
)

// Default rating configuration constants.
const (
	defaultDrawWeight          = 0.5
	defaultSmoothing           = 2.0
	defaultReliabilityConstant = 10.0
	defaultAlpha               = 0.5
	defaultBeta                = 0.5

	neutralRatio = 0.5
)

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithDrawWeight sets how much of a win a draw is worth.
func WithDrawWeight(w float64) Option {
	return func(e *Engine) {
		if w >= 0 && w <= 1 {
			e.drawWeight = w
		}
	}
}

// WithSmoothing sets the additive smoothing constant: the number of phantom
// neutral bouts injected into every record.
func WithSmoothing(c float64) Option {
	return func(e *Engine) {
		if c >= 0 {
			e.smoothing = c
		}
	}
}

// WithReliabilityConstant sets the bout count at which reliability reaches 0.5.
func WithReliabilityConstant(k float64) Option {
	return func(e *Engine) {
		if k > 0 {
			e.reliabilityConstant = k
		}
	}
}

// WithWeights sets the relative weights of external rank and empirical
// performance in the power score.
func WithWeights(alpha, beta float64) Option {
	return func(e *Engine) {
		if alpha >= 0 && beta >= 0 {
			e.alpha = alpha
			e.beta = beta
		}
	}
}

// Engine derives ratings from fighter records. All methods are pure; an
// Engine is safe for concurrent use.
type Engine struct {
	drawWeight          float64
	smoothing           float64
	reliabilityConstant float64
	alpha               float64
	beta                float64
}

// New creates an Engine with default configuration, modified by options.
func New(opts ...Option) *Engine {
	e := &Engine{
		drawWeight:          defaultDrawWeight,
		smoothing:           defaultSmoothing,
		reliabilityConstant: defaultReliabilityConstant,
		alpha:               defaultAlpha,
		beta:                defaultBeta,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PerformanceRatio computes the smoothed historical win rate in [0,1].
// Returns ErrMissingRecord when any count is unknown; a record of all zeros
// yields exactly 0.5.
func (e *Engine) PerformanceRatio(wins, losses, draws *int) (float64, error) {
	if wins == nil || losses == nil || draws == nil {
		return 0, ErrMissingRecord
	}
	total := *wins + *losses + *draws
	if total == 0 {
		return neutralRatio, nil
	}
	credit := float64(*wins) + e.drawWeight*float64(*draws)
	return (credit + e.smoothing) / (float64(total) + 2*e.smoothing), nil
}

// Reliability maps a bout count to a confidence weight in [0,1): zero at no
// history, approaching one as the sample grows.
func (e *Engine) Reliability(totalBouts int) float64 {
	if totalBouts <= 0 {
		return 0
	}
	t := float64(totalBouts)
	return t / (t + e.reliabilityConstant)
}

// EffectiveRatio shrinks a performance ratio toward the neutral 0.5 in
// proportion to unreliability. Downstream consumers use this, never the raw
// ratio, so short histories cannot produce overconfident scores.
func (e *Engine) EffectiveRatio(ratio, reliability float64) float64 {
	return neutralRatio + reliability*(ratio-neutralRatio)
}

// PowerScore blends the external rank and the effective ratio into a single
// comparable strength number. An unknown or non-positive rank contributes
// zero rather than failing. Only score differences are meaningful.
func (e *Engine) PowerScore(rank *int, effectiveRatio float64) float64 {
	rankTerm := 0.0
	if rank != nil && *rank > 0 {
		rankTerm = 1 / float64(*rank)
	}
	return e.alpha*rankTerm + e.beta*effectiveRatio
}

// Rate derives the full rating for one fighter. When the historical record
// is incomplete it returns ErrMissingRecord alongside a Rating carrying only
// the parts that are still defined (Defined=false).
func (e *Engine) Rate(f model.Fighter) (model.Rating, error) {
	total, ok := f.TotalBouts()
	if !ok {
		return model.Rating{Name: f.Name}, ErrMissingRecord
	}
	ratio, err := e.PerformanceRatio(f.Wins, f.Losses, f.Draws)
	if err != nil {
		return model.Rating{Name: f.Name}, err
	}
	reliability := e.Reliability(total)
	effective := e.EffectiveRatio(ratio, reliability)
	return model.Rating{
		Name:           f.Name,
		Defined:        true,
		Ratio:          ratio,
		Reliability:    reliability,
		EffectiveRatio: effective,
		PowerScore:     e.PowerScore(f.Rank, effective),
	}, nil
}
