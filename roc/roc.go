package roc

import "sort"

// Compute enumerates the ROC curve for the given scores and binary labels.
//
// Algorithm Outline:
//  1. Validate the input pair (see Validate).
//  2. Order sample indices by descending score.
//  3. Emit the sentinel point (FPR=0, TPR=0, Threshold=max(scores)+1):
//     no sample reaches that threshold, so nothing is classified positive.
//  4. Walk the ordered samples grouping equal scores; after absorbing a
//     group at score s, emit (fp/negatives, tp/positives, s).
//
// One point is emitted per distinct score, so tied scores contribute a
// single diagonal segment and trapezoidal integration of the curve equals
// the mid-rank Mann-Whitney AUC.
//
// Complexity:
//
//	Time   = O(n log n)
//	Memory = O(n)
//
// Errors: ErrEmptyInput, ErrShapeMismatch, ErrBadScore, ErrBadLabel,
// ErrDegenerateLabels.
func Compute(scores []float64, labels []int) (Curve, error) {
	if err := Validate(scores, labels); err != nil {
		return nil, err
	}

	n := len(scores)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })

	positives, negatives := 0, 0
	for _, l := range labels {
		if l == 1 {
			positives++
		} else {
			negatives++
		}
	}

	curve := make(Curve, 0, n+1)
	curve = append(curve, Point{FPR: 0, TPR: 0, Threshold: scores[order[0]] + 1})

	tp, fp := 0, 0
	for i := 0; i < n; {
		s := scores[order[i]]
		for i < n && scores[order[i]] == s { // absorb the whole tie group
			if labels[order[i]] == 1 {
				tp++
			} else {
				fp++
			}
			i++
		}
		curve = append(curve, Point{
			FPR:       float64(fp) / float64(negatives),
			TPR:       float64(tp) / float64(positives),
			Threshold: s,
		})
	}

	return curve, nil
}

// Youden returns the operating point maximizing Youden's J statistic
// (TPR - FPR). Ties are broken by first occurrence in curve order, i.e. the
// highest qualifying threshold wins.
//
// Calling Youden on an empty curve returns the zero Point.
func (c Curve) Youden() Point {
	if len(c) == 0 {
		return Point{}
	}
	best := c[0]
	for _, p := range c[1:] {
		if p.J() > best.J() {
			best = p
		}
	}

	return best
}
