// Package roc: sentinel error set.
// All public functions in roc, bootstrap and report return these sentinels
// for invalid inputs; tests and callers match them via errors.Is. No
// function panics on user-triggered conditions.

package roc

import "errors"

var (
	// ErrEmptyInput indicates a zero-length score or label sequence.
	ErrEmptyInput = errors.New("roc: input sequences must be non-empty")

	// ErrShapeMismatch indicates scores and labels have different lengths.
	ErrShapeMismatch = errors.New("roc: scores and labels differ in length")

	// ErrBadScore indicates a NaN score; NaN is unordered, so neither the
	// threshold sweep nor the rank statistic is defined over it.
	ErrBadScore = errors.New("roc: scores must not be NaN")

	// ErrBadLabel indicates a label value outside {0, 1}.
	ErrBadLabel = errors.New("roc: labels must be 0 or 1")

	// ErrDegenerateLabels indicates fewer than two distinct label classes;
	// the ROC curve and AUC are undefined without at least one positive and
	// one negative sample.
	ErrDegenerateLabels = errors.New("roc: need both a positive and a negative sample")
)
