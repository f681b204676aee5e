package search

import (
	"context"
	"runtime"
	"time"
)

// Budget bounds one search run. Zero fields are unlimited.
type Budget struct {
	// MaxSteps caps the number of expanded nodes.
	MaxSteps int `yaml:"max_steps"`

	// TimeLimit caps wall-clock time from Engine.Start.
	TimeLimit time.Duration `yaml:"time_limit"`

	// MaxFrontier caps the number of stored open nodes.
	MaxFrontier int `yaml:"max_frontier"`

	// MemoryLimit caps the live heap in bytes. Go cannot recover from a
	// failed allocation, so the heap is sampled and the search stops first.
	MemoryLimit uint64 `yaml:"memory_limit"`
}

const (
	clockEvery  = 64   // pops between deadline checks
	memoryEvery = 1024 // pops between heap samples
)

// watchdog turns a Budget into per-pop checks. The deadline and the heap are
// sampled sparsely; the step count, frontier size and context every pop.
type watchdog struct {
	budget   Budget
	deadline time.Time
}

func newWatchdog(b Budget, start time.Time) watchdog {
	w := watchdog{budget: b}
	if b.TimeLimit > 0 {
		w.deadline = start.Add(b.TimeLimit)
	}

	return w
}

// check returns the reason to stop before pop number steps, or StopNone.
func (w *watchdog) check(ctx context.Context, steps, frontier int) StopReason {
	if ctx != nil && ctx.Err() != nil {
		return StopCancelled
	}
	if w.budget.MaxSteps > 0 && steps >= w.budget.MaxSteps {
		return StopSteps
	}
	if w.budget.MaxFrontier > 0 && frontier > w.budget.MaxFrontier {
		return StopFrontier
	}
	if !w.deadline.IsZero() && steps%clockEvery == 0 && time.Now().After(w.deadline) {
		return StopTime
	}
	if w.budget.MemoryLimit > 0 && steps%memoryEvery == 0 && heapInUse() > w.budget.MemoryLimit {
		return StopMemory
	}

	return StopNone
}

func heapInUse() uint64 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return ms.HeapAlloc
}
