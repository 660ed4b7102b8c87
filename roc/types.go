// Package roc defines the curve types shared by the sweep and the
// integration helpers.
package roc

// Point is a single operating point of a ROC curve: the false- and
// true-positive rates obtained when every sample scoring >= Threshold is
// classified positive.
type Point struct {
	FPR       float64
	TPR       float64
	Threshold float64
}

// J returns Youden's J statistic (TPR - FPR) at this operating point.
func (p Point) J() float64 { return p.TPR - p.FPR }

// Curve is a full ROC sweep, ordered by strictly descending Threshold.
// FPR and TPR are therefore non-decreasing along the curve, starting at
// (0, 0) and ending at (1, 1).
type Curve []Point
