package gen

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/loomgen/loom/emit"
	"github.com/loomgen/loom/errors"
	"github.com/loomgen/loom/host"
	"github.com/loomgen/loom/logger"
)

// Runner drives a set of generators over many compilation units. Units run
// concurrently; within one unit each generator invocation is a single
// synchronous pass. Generators and the converter registry behind them are
// shared read-only, so the runner takes no locks around them.
type Runner struct {
	generators  []Generator
	writer      OutputWriter
	parallelism int
	log         *zap.SugaredLogger
}

// Option configures a Runner.
type Option func(*Runner)

// WithParallelism bounds the number of units processed concurrently.
func WithParallelism(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.parallelism = n
		}
	}
}

// WithLogger replaces the runner's logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(r *Runner) { r.log = log }
}

// NewRunner builds a runner over the given generators. Generator order is
// preserved: for one unit, outputs are produced in registration order.
func NewRunner(generators []Generator, writer OutputWriter, opts ...Option) (*Runner, error) {
	if writer == nil {
		return nil, errors.New("runner needs an output writer")
	}
	seen := make(map[string]struct{}, len(generators))
	for _, g := range generators {
		if g.Name() == "" {
			return nil, errors.New("generator has an empty name")
		}
		if _, dup := seen[g.Name()]; dup {
			return nil, errors.Newf("duplicate generator %q", g.Name())
		}
		seen[g.Name()] = struct{}{}
	}
	r := &Runner{
		generators:  append([]Generator(nil), generators...),
		writer:      writer,
		parallelism: 4,
		log:         logger.Named("runner"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Report summarizes one batch run. Paths are sorted for deterministic
// presentation; errors keep the order in which units were scheduled.
type Report struct {
	// Written lists derived output paths that were generated and persisted.
	Written []string
	// Skipped lists units for which no generator produced output.
	Skipped []string
	// Errors holds per-declaration and per-unit failures. A unit can both
	// produce output and appear here when only some declarations failed.
	Errors []error
}

// OK reports whether the batch completed without any recorded failure.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Run processes all units and returns the batch report. The returned error
// is non-nil only for infrastructure failures (context cancellation,
// output writing); conversion and generation failures land in the report.
func (r *Runner) Run(ctx context.Context, units []*host.Unit) (*Report, error) {
	report := &Report{}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallelism)

	for _, unit := range units {
		unit := unit
		g.Go(func() error {
			written, failures, err := r.runUnit(ctx, unit)
			if err != nil {
				return err
			}
			mu.Lock()
			defer mu.Unlock()
			if len(written) == 0 {
				report.Skipped = append(report.Skipped, unit.Path)
			}
			report.Written = append(report.Written, written...)
			report.Errors = append(report.Errors, failures...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(report.Written)
	sort.Strings(report.Skipped)
	return report, nil
}

// runUnit runs every generator over one unit. A generator may return both
// nodes and a joined per-declaration error; the nodes are still written.
func (r *Runner) runUnit(ctx context.Context, unit *host.Unit) ([]string, []error, error) {
	var written []string
	var failures []error

	for _, generator := range r.generators {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}

		nodes, genErr := generator.Generate(ctx, unit)
		if genErr != nil {
			failures = append(failures, genErr)
		}
		if len(nodes) == 0 {
			r.log.Debugw("no output",
				logger.FieldUnit, unit.Path,
				logger.FieldGenerator, generator.Name())
			continue
		}

		marker, err := emit.NewPartOfMarker(unit.Path)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "unit %s", unit.Path)
		}
		buf := emit.NewBuffer()
		emit.NewFile(marker, nodes...).Render(buf)

		outPath := OutputPath(unit.Path, generator.Name())
		if err := r.writer.Write(outPath, buf.Bytes()); err != nil {
			return nil, nil, err
		}
		written = append(written, outPath)
		r.log.Infow("generated",
			logger.FieldUnit, unit.Path,
			logger.FieldGenerator, generator.Name(),
			logger.FieldOutput, outPath)
	}
	return written, failures, nil
}
