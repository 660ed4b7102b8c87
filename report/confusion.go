package report

import "github.com/katalvlaran/diagmetrics/roc"

// ConfusionMatrix holds the 2x2 counts of true against predicted binary
// labels, rows and columns ordered [positive=1, negative=0]:
//
//	            pred=1  pred=0
//	label=1       TP      FN
//	label=0       FP      TN
type ConfusionMatrix struct {
	TP, FN int
	FP, TN int
}

// Confusion tallies the matrix from parallel true and predicted labels.
// Both slices must have equal length; a mismatch errors with
// roc.ErrShapeMismatch.
func Confusion(labels, predicted []int) (ConfusionMatrix, error) {
	if len(labels) != len(predicted) {
		return ConfusionMatrix{}, roc.ErrShapeMismatch
	}
	var c ConfusionMatrix
	for i, l := range labels {
		switch {
		case l == 1 && predicted[i] == 1:
			c.TP++
		case l == 1:
			c.FN++
		case predicted[i] == 1:
			c.FP++
		default:
			c.TN++
		}
	}

	return c, nil
}

// Total returns the number of samples counted.
func (c ConfusionMatrix) Total() int { return c.TP + c.FN + c.FP + c.TN }

// Accuracy returns the agreement rate (TP+TN)/Total.
// It is NaN on an empty matrix.
func (c ConfusionMatrix) Accuracy() float64 {
	return float64(c.TP+c.TN) / float64(c.Total())
}

// Sensitivity returns TP/(TP+FN); ok=false when no positive sample exists.
func (c ConfusionMatrix) Sensitivity() (float64, bool) {
	return fraction(c.TP, c.TP+c.FN)
}

// Specificity returns TN/(TN+FP); ok=false when no negative sample exists.
func (c ConfusionMatrix) Specificity() (float64, bool) {
	return fraction(c.TN, c.TN+c.FP)
}

// PPV returns the positive predictive value TP/(TP+FP); ok=false when
// nothing was predicted positive.
func (c ConfusionMatrix) PPV() (float64, bool) {
	return fraction(c.TP, c.TP+c.FP)
}

// NPV returns the negative predictive value TN/(TN+FN); ok=false when
// nothing was predicted negative.
func (c ConfusionMatrix) NPV() (float64, bool) {
	return fraction(c.TN, c.TN+c.FN)
}

// fraction divides two counts, flagging a zero denominator instead of
// producing NaN.
func fraction(num, den int) (float64, bool) {
	if den == 0 {
		return 0, false
	}

	return float64(num) / float64(den), true
}
