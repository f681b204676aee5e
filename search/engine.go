package search

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-edit/core"
)

// Config is the solver-independent part of a run configuration.
type Config struct {
	// Hook receives progress events; nil disables them.
	Hook Hook

	// Budget bounds the run.
	Budget Budget

	// Logger receives record improvements (info) and budget stops (warn).
	// Nil means silent.
	Logger logrus.FieldLogger
}

// DiscardLogger returns a logger that drops every entry.
func DiscardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// Engine is the best-first loop state of one solver invocation.
// It is not safe for concurrent use.
type Engine[N any] struct {
	cfg      Config
	log      logrus.FieldLogger
	frontier *Frontier[N]
	watch    watchdog

	record    core.Graph
	objective int64
	hasRecord bool

	steps  int
	start  time.Time
	reason StopReason
}

// NewEngine prepares an engine; call Start before the first Next.
func NewEngine[N any](cfg Config) *Engine[N] {
	log := cfg.Logger
	if log == nil {
		log = DiscardLogger()
	}

	return &Engine[N]{cfg: cfg, log: log, frontier: NewFrontier[N]()}
}

func (e *Engine[N]) emit(ev Event) {
	if e.cfg.Hook != nil {
		e.cfg.Hook(ev)
	}
}

// Start arms the budget clock and fires SearchStarted.
func (e *Engine[N]) Start() {
	e.start = time.Now()
	e.watch = newWatchdog(e.cfg.Budget, e.start)
	e.emit(SearchStarted)
}

// Deadline reports when Budget.TimeLimit expires, counted from Start.
func (e *Engine[N]) Deadline() (time.Time, bool) {
	return e.watch.deadline, !e.watch.deadline.IsZero()
}

// Logger returns the engine's logger, never nil.
func (e *Engine[N]) Logger() logrus.FieldLogger { return e.log }

// Seed installs the initial record without firing RecordImproved.
func (e *Engine[N]) Seed(g core.Graph, objective int64) {
	e.record, e.objective, e.hasRecord = g, objective, true
	e.log.WithField("objective", objective).Debug("search: seeded record")
}

// Record returns the current record value and whether one exists.
func (e *Engine[N]) Record() (int64, bool) { return e.objective, e.hasRecord }

// Improve replaces the record when objective is strictly better, purges every
// frontier node that can no longer beat it and fires RecordImproved.
func (e *Engine[N]) Improve(g core.Graph, objective int64) bool {
	if e.hasRecord && objective >= e.objective {
		return false
	}
	e.record, e.objective, e.hasRecord = g, objective, true
	pruned := e.frontier.PruneFrom(objective)
	e.log.WithFields(logrus.Fields{
		"objective": objective,
		"pruned":    pruned,
		"steps":     e.steps,
	}).Info("search: record improved")
	e.emit(RecordImproved)

	return true
}

// Offer stores a node unless its score already matches or exceeds the record.
func (e *Engine[N]) Offer(score int64, n N) bool {
	if e.hasRecord && score >= e.objective {
		return false
	}
	e.frontier.Push(score, n)

	return true
}

// Next pops the lowest-score node. It returns false once the search is over:
// proven (frontier empty or minimum score ≥ record) or stopped by the budget.
// A finished search is reported as proven even when the budget runs out on
// the same pop.
func (e *Engine[N]) Next(ctx context.Context) (N, int64, bool) {
	var zero N
	if e.reason != StopNone {
		return zero, 0, false
	}
	low, ok := e.frontier.MinScore()
	if !ok {
		e.reason = StopDrained

		return zero, 0, false
	}
	if e.hasRecord && low >= e.objective {
		e.reason = StopProven

		return zero, 0, false
	}
	if r := e.watch.check(ctx, e.steps, e.frontier.Len()); r != StopNone {
		e.reason = r
		e.log.WithFields(logrus.Fields{
			"reason":   r.String(),
			"steps":    e.steps,
			"frontier": e.frontier.Len(),
		}).Warn("search: budget exhausted, record not proven optimal")

		return zero, 0, false
	}
	n, score, _ := e.frontier.PopMin()
	e.steps++
	e.emit(NodeExpanded)

	return n, score, true
}

// Frontier exposes the open set, mainly for tests and diagnostics.
func (e *Engine[N]) Frontier() *Frontier[N] { return e.frontier }

// Finish fires SearchEnded and assembles the Result.
func (e *Engine[N]) Finish() (*Result, error) {
	defer e.emit(SearchEnded)
	if e.reason == StopNone {
		// caller left the loop on its own; nothing more to prove
		e.reason = StopDrained
	}
	if !e.hasRecord {
		return nil, ErrInvariant
	}
	res := &Result{
		Graph:         e.record,
		Objective:     e.objective,
		ProvenOptimal: e.reason.Proven(),
		Exhausted:     e.reason.Exhausted(),
		Steps:         e.steps,
		Reason:        e.reason,
	}
	e.log.WithFields(logrus.Fields{
		"objective": res.Objective,
		"proven":    res.ProvenOptimal,
		"steps":     res.Steps,
		"elapsed":   time.Since(e.start).String(),
	}).Debug("search: finished")

	return res, nil
}
