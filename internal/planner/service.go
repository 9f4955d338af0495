package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rnwolfe/planr/internal/task"
)

// Source supplies the current task snapshot.
type Source interface {
	ListTasks(ctx context.Context) ([]task.Task, error)
}

// Clock returns the current time.
type Clock func() time.Time

// Planner fetches snapshots from a Source and plans them.
type Planner struct {
	src    Source
	clock  Clock
	cfg    Config
	logger *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithClock overrides the time source used to derive "today".
func WithClock(c Clock) Option {
	return func(p *Planner) { p.clock = c }
}

// WithConfig sets the planning configuration.
func WithConfig(cfg Config) Option {
	return func(p *Planner) { p.cfg = cfg }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) { p.logger = l }
}

// New creates a Planner reading from src.
func New(src Source, opts ...Option) *Planner {
	p := &Planner{
		src:    src,
		clock:  time.Now,
		cfg:    DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Plan fetches the current snapshot and builds today's plan.
func (p *Planner) Plan(ctx context.Context) (Result, error) {
	tasks, err := p.src.ListTasks(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("loading tasks: %w", err)
	}

	today := Today(p.clock())
	res := Build(tasks, today, p.cfg)
	p.logger.Debug("plan built",
		"date", res.Date,
		"mode", res.Mode,
		"tasks", len(tasks),
		"ranked", len(res.Ranked),
		"sections", len(res.Sections),
		"slots", len(res.Schedule),
		"minutes", res.TotalMinutes,
	)
	return res, nil
}
