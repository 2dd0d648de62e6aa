// SPDX-License-Identifier: MIT
// Package: lvroute/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w.
//   - Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter is below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that a constructor could not apply its input
// (nil constructor, nil input, or a rejected core mutation).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrEmptyID indicates a record whose endpoint is empty after normalization.
var ErrEmptyID = errors.New("builder: empty vertex id")

// ErrMissingAttribute indicates a record lacking an attribute demanded by
// WithRequiredAttributes.
var ErrMissingAttribute = errors.New("builder: required attribute missing")

// ErrBadDocument indicates a network document that cannot be decoded or is
// structurally invalid.
var ErrBadDocument = errors.New("builder: invalid network document")
