package report

import (
	"github.com/katalvlaran/diagmetrics/bootstrap"
	"github.com/katalvlaran/diagmetrics/roc"
)

// Compute assembles the full diagnostic report for scores against binary
// labels.
//
// Algorithm Outline:
//  1. Validate the pair and enumerate its ROC curve (roc.Compute).
//  2. Record sample/positive/negative counts.
//  3. Pick the operating threshold maximizing Youden's J; record it.
//  4. Binarize: predicted-positive iff score >= threshold.
//  5. Tally the confusion matrix and derive accuracy, sensitivity,
//     specificity and the predictive values. Metrics with a zero
//     denominator are reported Undefined rather than failing.
//  6. Estimate the AUC confidence interval (bootstrap.Estimate); record
//     the point AUC, the interval and the bootstrap std.
//
// A nil opts is replaced by DefaultOptions(). Errors are terminal: on any
// validation or bootstrap failure the report is nil and nothing partial is
// returned.
//
// Errors: roc.ErrEmptyInput, roc.ErrShapeMismatch, roc.ErrBadScore,
// roc.ErrBadLabel, roc.ErrDegenerateLabels, bootstrap.ErrBadConfidence,
// bootstrap.ErrBadReplicates, bootstrap.ErrInsufficientReplicates.
func Compute(scores []float64, labels []int, opts *Options) (Report, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Bootstrap == (bootstrap.Options{}) { // zero estimator config means defaults
		o.Bootstrap = bootstrap.DefaultOptions()
	}

	curve, err := roc.Compute(scores, labels)
	if err != nil {
		return nil, err
	}

	prefix := o.KeyPrefix
	if prefix != "" {
		prefix += "_"
	}
	rep := make(Report, 12)
	put := func(key string, v Value) { rep[prefix+key] = v }

	n := len(labels)
	positives := 0
	for _, l := range labels {
		positives += l
	}
	put(KeySampleNumber, CountOf(n))
	put(KeyPositiveNumber, CountOf(positives))
	put(KeyNegativeNumber, CountOf(n-positives))

	best := curve.Youden()
	put(KeyYoudenIndex, Formatted(best.Threshold))

	predicted := make([]int, n)
	for i, s := range scores {
		if s >= best.Threshold {
			predicted[i] = 1
		}
	}
	cm, err := Confusion(labels, predicted)
	if err != nil {
		return nil, err
	}

	put(KeyAccuracy, Formatted(cm.Accuracy()))
	put(KeySensitivity, ratio(cm.Sensitivity()))
	put(KeySpecificity, ratio(cm.Specificity()))
	put(KeyPPV, ratio(cm.PPV()))
	put(KeyNPV, ratio(cm.NPV()))

	ci, err := bootstrap.Estimate(scores, labels, &o.Bootstrap)
	if err != nil {
		return nil, err
	}
	put(KeyAUC, Formatted(ci.AUC))
	put(KeyAUCCI, Interval(ci.Lower, ci.Upper))
	put(KeyAUCStd, Formatted(ci.Std))

	return rep, nil
}

// ratio adapts a (value, ok) metric into a Value: Undefined on a zero
// denominator, 4-decimal text otherwise.
func ratio(x float64, ok bool) Value {
	if !ok {
		return Undefined()
	}

	return Formatted(x)
}
