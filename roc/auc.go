package roc

import "gonum.org/v1/gonum/integrate"

// AUC computes the area under the ROC curve for the given scores and binary
// labels. The result equals the probability that a uniformly chosen
// positive sample scores higher than a uniformly chosen negative one, with
// ties counted half (mid-rank convention).
//
// Errors: ErrEmptyInput, ErrShapeMismatch, ErrBadScore, ErrBadLabel,
// ErrDegenerateLabels.
func AUC(scores []float64, labels []int) (float64, error) {
	curve, err := Compute(scores, labels)
	if err != nil {
		return 0, err
	}

	return curve.AUC(), nil
}

// AUC integrates an already-built curve with the trapezoidal rule.
// Curves produced by Compute always hold at least two points (the sentinel
// plus one real threshold); integrating a shorter curve returns 0.
func (c Curve) AUC() float64 {
	if len(c) < 2 {
		return 0
	}
	fpr := make([]float64, len(c))
	tpr := make([]float64, len(c))
	for i, p := range c {
		fpr[i] = p.FPR
		tpr[i] = p.TPR
	}

	return integrate.Trapezoidal(fpr, tpr)
}
