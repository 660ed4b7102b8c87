package roc

import "math"

// Validate checks a scores/labels pair for the invariants every routine in
// this module relies on: equal non-zero lengths, finite-or-infinite (never
// NaN) scores, labels restricted to {0, 1}, and at least one sample of
// each class.
//
// Errors (checked in this order):
//   - ErrEmptyInput        — len(scores) == 0
//   - ErrShapeMismatch     — len(scores) != len(labels)
//   - ErrBadScore          — some score is NaN
//   - ErrBadLabel          — some label is neither 0 nor 1
//   - ErrDegenerateLabels  — all labels identical
func Validate(scores []float64, labels []int) error {
	if len(scores) == 0 {
		return ErrEmptyInput
	}
	if len(scores) != len(labels) {
		return ErrShapeMismatch
	}
	for _, s := range scores {
		if math.IsNaN(s) {
			return ErrBadScore
		}
	}
	pos, neg := 0, 0
	for _, l := range labels {
		switch l {
		case 1:
			pos++
		case 0:
			neg++
		default:
			return ErrBadLabel
		}
	}
	if pos == 0 || neg == 0 {
		return ErrDegenerateLabels
	}

	return nil
}
