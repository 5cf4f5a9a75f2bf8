package antihash

import (
	"context"
	"log"

	"github.com/gonum-community/antihash/lattice"
	"github.com/gonum-community/antihash/reduce"
)

// Option configures an AntiHash call. The zero value of every Option field
// is a no-op, matching the functional-options shape gonum's mat package
// uses for optional formatting knobs (mat.Formatted's FormatOption).
type Option func(*config)

type config struct {
	logger *log.Logger
	clock  reduce.Clock
}

// WithLogger attaches a diagnostics sink. Diagnostics are logged at coarse
// granularity only — lattice dimensions, the outcome status, and elapsed
// time — never per-reduction-step. A nil logger (the default) disables
// logging entirely.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// withClock overrides the host wall clock; unexported because it exists for
// this package's own determinism tests, not as public API surface.
func withClock(clk reduce.Clock) Option {
	return func(c *config) { c.clock = clk }
}

// AntiHash runs the full pipeline once for the given Parameters: it builds
// the lattice (package lattice), reduces it (package reduce), and extracts
// a verified collision or diagnostic (spec.md §4.5). It panics with
// ErrInvalidParameters if p does not satisfy Validate — parameter
// validation is the caller's responsibility per spec.md §3 and §7.
//
// ctx expresses the search deadline the idiomatic Go way in addition to
// Parameters.Timeout; whichever fires first stops the reduction.
func AntiHash(ctx context.Context, p Parameters, opts ...Option) Result {
	if err := p.Validate(); err != nil {
		panic(err)
	}

	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	k := len(p.Modulo)
	basis := lattice.Build(p.Length, p.Modulo, p.Base, p.Lambda)

	if cfg.logger != nil {
		rows, cols := basis.Dims()
		cfg.logger.Printf("antihash: built %dx%d basis (n=%d, k=%d, lambda=%s)", rows, cols, p.Length, k, p.Lambda)
	}

	state := reduce.NewState(basis, reduce.Params{
		Length:    p.Length,
		K:         k,
		Delta:     p.Delta,
		Eta:       p.Eta,
		Precision: p.Precision,
		Sigma:     p.sigma(),
		Timeout:   p.Timeout,
		Clock:     cfg.clock,
	})

	outcome := state.Run(ctx)
	result := extract(state.Basis(), p, state.Runtime(), outcome.TimedOut)

	if cfg.logger != nil {
		cfg.logger.Printf("antihash: %v (elapsed=%.3fs)", result, state.Runtime())
	}
	return result
}
