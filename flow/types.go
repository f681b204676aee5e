package flow

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrTerminalRange is returned when the source or sink is not a node of the network.
var ErrTerminalRange = errors.New("flow: terminal out of range")

// ErrSameTerminal is returned when source and sink coincide.
var ErrSameTerminal = errors.New("flow: source and sink must differ")

// ErrNegativeCapacity is returned by AddArc for a capacity below zero.
var ErrNegativeCapacity = errors.New("flow: negative capacity")

// ErrInvalidNode is returned by AddArc for an endpoint outside the network.
var ErrInvalidNode = errors.New("flow: node out of range")

// AugmentingPath is one augmentation step: the node sequence from source to
// sink and the bottleneck pushed along it.
type AugmentingPath struct {
	Delta int64
	Nodes []int
}

// Result is the outcome of one max-flow computation.
type Result struct {
	// Value is the total flow from source to sink.
	Value int64

	// Paths lists the augmentations in the order they were applied.
	// Dinic records blocking-flow pushes the same way.
	Paths []AugmentingPath

	// Residual holds the residual capacities after the last augmentation.
	Residual *Network
}

// Options configures the max-flow routines. A nil *Options uses defaults.
//   - Logger: receives one debug entry per augmentation (nil = silent).
//   - KeepPaths: record every augmenting path in Result.Paths.
type Options struct {
	Logger    logrus.FieldLogger
	KeepPaths bool
}

func (o *Options) logger() logrus.FieldLogger {
	if o == nil || o.Logger == nil {
		return nil
	}

	return o.Logger
}

func (o *Options) keepPaths() bool { return o != nil && o.KeepPaths }
