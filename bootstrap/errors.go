// Package bootstrap: sentinel error set. Input-shape and label errors are
// shared with package roc and surface unchanged (match with errors.Is
// against roc.ErrShapeMismatch, roc.ErrDegenerateLabels, etc.).

package bootstrap

import "errors"

var (
	// ErrBadConfidence indicates a ConfidenceLevel outside (0, 1).
	ErrBadConfidence = errors.New("bootstrap: confidence level must be in (0, 1)")

	// ErrBadReplicates indicates a non-positive replicate count.
	ErrBadReplicates = errors.New("bootstrap: replicate count must be >= 1")

	// ErrInsufficientReplicates indicates every replicate was rejected as
	// single-class, leaving no bootstrap distribution to take percentiles of.
	ErrInsufficientReplicates = errors.New("bootstrap: no replicate contained both classes")
)
