package search

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/lvlath-edit/core"
)

var (
	// ErrValidation marks input rejected before the search starts.
	// Solvers wrap it with the offending parameter.
	ErrValidation = errors.New("search: invalid input")

	// ErrInvariant marks an internal inconsistency: the frontier drained
	// without a feasible record ever being captured.
	ErrInvariant = errors.New("search: invariant violated")
)

// Event is a progress tag. Events carry no payload.
type Event int

const (
	SearchStarted Event = iota
	NodeExpanded
	RecordImproved
	SearchEnded
)

// String implements fmt.Stringer.
func (e Event) String() string {
	switch e {
	case SearchStarted:
		return "SEARCH_STARTED"
	case NodeExpanded:
		return "NODE_EXPANDED"
	case RecordImproved:
		return "RECORD_IMPROVED"
	case SearchEnded:
		return "SEARCH_ENDED"
	default:
		return "UNKNOWN"
	}
}

// Hook receives events on the search goroutine. It must not block.
type Hook func(Event)

// StopReason records why the main loop ended.
type StopReason int

const (
	// StopNone means the search has not stopped yet.
	StopNone StopReason = iota
	// StopProven: the lowest frontier score reached the record.
	StopProven
	// StopDrained: the frontier emptied.
	StopDrained
	// StopSteps: Budget.MaxSteps pops were made.
	StopSteps
	// StopTime: Budget.TimeLimit elapsed.
	StopTime
	// StopCancelled: the context was cancelled.
	StopCancelled
	// StopFrontier: the frontier outgrew Budget.MaxFrontier.
	StopFrontier
	// StopMemory: the heap outgrew Budget.MemoryLimit.
	StopMemory
)

var stopNames = [...]string{"none", "proven", "drained", "steps", "time", "cancelled", "frontier", "memory"}

// String implements fmt.Stringer.
func (r StopReason) String() string {
	if r < 0 || int(r) >= len(stopNames) {
		return "unknown"
	}

	return stopNames[r]
}

// Proven reports whether stopping for r certifies the record as optimal.
func (r StopReason) Proven() bool { return r == StopProven || r == StopDrained }

// Exhausted reports whether r is a resource-exhaustion stop.
func (r StopReason) Exhausted() bool { return r == StopFrontier || r == StopMemory }

// Result is the outcome of one solver run.
type Result struct {
	// Graph is the record. It always satisfies the problem's feasibility
	// property, even when the search was cut short.
	Graph core.Graph

	// Objective is the record's cost under the run's objective.
	Objective int64

	// ProvenOptimal is true only when the search ran to completion.
	ProvenOptimal bool

	// Exhausted is true when the frontier or memory limit stopped the run.
	Exhausted bool

	// Steps counts expanded nodes.
	Steps int

	// Reason tells why the search stopped.
	Reason StopReason
}
