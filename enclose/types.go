package enclose

import (
	"github.com/katalvlaran/mincircle/geom"
	"github.com/pkg/errors"
)

var (
	// ErrNonFinite indicates that an input point has a NaN or infinite coordinate.
	ErrNonFinite = errors.New("enclose: point coordinates must be finite")

	// ErrBadOptions indicates an Options value that cannot be used.
	ErrBadOptions = errors.New("enclose: invalid options")
)

// Result holds the outcome of one enclosing-circle computation.
type Result struct {
	// Circle is the minimum enclosing circle.
	Circle geom.Circle

	// Support is the boundary set defining Circle: empty for no input, one
	// point for a single (or all-identical) input, otherwise two or three
	// input points lying on Circle.
	Support []geom.Point

	// Stats counts the work done to reach Circle.
	Stats Stats
}

// Stats records how often each stage of the algorithm rebuilt the candidate.
type Stats struct {
	// Points is the number of input points.
	Points int
	// OuterRebuilds counts points found outside the running circle.
	OuterRebuilds int
	// InnerRebuilds counts restarts with two fixed boundary points.
	InnerRebuilds int
	// ThreePointBuilds counts circumcircles constructed.
	ThreePointBuilds int
	// CollinearFallbacks counts collinear triples covered by a two-point circle.
	CollinearFallbacks int
}
