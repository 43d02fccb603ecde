// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/edgewise/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source vertex index is
	// outside [0, VertexCount).
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")
)

// NoPredecessor marks a vertex without a predecessor in the returned
// path slice: the source itself and every unreachable vertex.
const NoPredecessor core.VertexID = -1

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath  – if true, return the predecessor slice; otherwise nil.
// MaxDistance – cap on distances to explore; vertices whose final
// distance would exceed it are left at the sentinel.
// Default is core.Inf[W]() (no cap).
type Options[W core.Weight] struct {
	ReturnPath  bool // whether to build and return the predecessor slice
	MaxDistance W    // maximum distance to explore
}

// Option represents a functional option for configuring Dijkstra.
type Option[W core.Weight] func(*Options[W])

// WithReturnPath enables generation of the predecessor slice in the
// result. If unset (default), the predecessor slice is nil.
func WithReturnPath[W core.Weight]() Option[W] {
	return func(o *Options[W]) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance exceeds it are not explored and retain the
// sentinel. Default is core.Inf[W]() (no cap).
func WithMaxDistance[W core.Weight](max W) Option[W] {
	return func(o *Options[W]) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns the Options used when no functional option
// overrides them: no predecessor slice, no distance cap.
func DefaultOptions[W core.Weight]() Options[W] {
	return Options[W]{
		ReturnPath:  false,
		MaxDistance: core.Inf[W](),
	}
}
