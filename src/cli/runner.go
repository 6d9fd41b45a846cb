package cli

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"designpatterns/src/catalog"
	"designpatterns/src/timing"
)

// Runner executes catalog examples and records how long each took.
type Runner struct {
	registry *catalog.Registry
	clock    timing.Clock
	rng      *rand.Rand
	tracker  *timing.Tracker
	logger   zerolog.Logger
}

// NewRunner builds a runner over registry. Pauses inside examples go through
// clock; the tracker always measures wall time.
func NewRunner(registry *catalog.Registry, clock timing.Clock, rng *rand.Rand, logger zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		clock:    clock,
		rng:      rng,
		tracker:  timing.NewTracker(),
		logger:   logger,
	}
}

// Registry exposes the catalog being run.
func (r *Runner) Registry() *catalog.Registry {
	return r.registry
}

// Tracker exposes run statistics.
func (r *Runner) Tracker() *timing.Tracker {
	return r.tracker
}

// Run looks up name and runs it against out.
func (r *Runner) Run(name string, out io.Writer) error {
	ex, err := r.registry.Lookup(name)
	if err != nil {
		return err
	}
	return r.run(ex, out)
}

// RunAll runs every example in catalog order, stopping at the first failure.
func (r *Runner) RunAll(out io.Writer) error {
	for _, ex := range r.registry.List() {
		if _, err := fmt.Fprintf(out, "=== %s (%s)\n", ex.Name, ex.Kind); err != nil {
			return err
		}
		if err := r.run(ex, out); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) run(ex catalog.Example, out io.Writer) error {
	log := r.logger.With().Str("example", ex.Name).Logger()
	log.Debug().Msg("running example")
	r.tracker.Start(ex.Name)
	err := ex.Run(catalog.Env{
		Out:    out,
		Clock:  r.clock,
		Rand:   r.rng,
		Logger: log,
	})
	r.tracker.Stop()
	if err != nil {
		log.Error().Err(err).Msg("example failed")
		return fmt.Errorf("run %s: %w", ex.Name, err)
	}
	log.Debug().Msg("example finished")
	return nil
}
