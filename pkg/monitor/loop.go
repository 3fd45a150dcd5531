// Package monitor drives the sample, aggregate, rank and render pipeline.
package monitor

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/srodi/proctop/pkg/report"
	"github.com/srodi/proctop/pkg/types"
	"github.com/srodi/proctop/pkg/ui"
)

// Sampler produces one process-table snapshot per call, blocking until the
// next refresh is due.
type Sampler interface {
	Sample(ctx context.Context) (types.Snapshot, error)
}

// Loop runs dashboard cycles until its context ends.
type Loop struct {
	sampler  Sampler
	renderer *ui.Renderer
	rows     func() int
	logger   hclog.Logger
}

// NewLoop wires the pipeline. rows reports the table-row budget for the next
// frame and is consulted every cycle so terminal resizes take effect.
func NewLoop(sampler Sampler, renderer *ui.Renderer, rows func() int, logger hclog.Logger) *Loop {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Loop{
		sampler:  sampler,
		renderer: renderer,
		rows:     rows,
		logger:   logger.Named("loop"),
	}
}

// Run repeats Cycle until ctx is cancelled, which is a clean stop. A failed
// render ends the loop with that error.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Debug("starting dashboard loop")
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := l.Cycle(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
	}
}

// Cycle samples once, then aggregates, ranks and renders the result.
func (l *Loop) Cycle(ctx context.Context) error {
	snapshot, err := l.sampler.Sample(ctx)
	if err != nil {
		return fmt.Errorf("sampling processes: %w", err)
	}

	table := report.Rank(report.Aggregate(snapshot))
	budget := l.rows()
	l.logger.Trace("rendering frame", "groups", len(table.Rows), "budget", budget)

	if err := l.renderer.Render(table, budget); err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}
	return nil
}
