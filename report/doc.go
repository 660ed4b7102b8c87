// Package report assembles a named-metric summary of a binary classifier
// from its continuous scores and ground-truth labels.
//
// 🚀 What does a report hold?
//
//	The counts describing the sample, an operating threshold chosen by
//	Youden's J statistic, the confusion-matrix metrics at that threshold
//	(accuracy, sensitivity, specificity, predictive values), and the AUC
//	with its bootstrap confidence interval and standard deviation.
//
// ✨ Key features:
//   - a Value variant that keeps counts, 4-decimal formatted ratios and
//     undefined (zero-denominator) metrics observably distinct
//   - optional key prefixing, e.g. "val_" to tag validation-set metrics
//   - degenerate confusion-matrix rows report as Undefined, never as an
//     error; degenerate labels fail before anything is computed
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/diagmetrics/report"
//
//	opts := report.DefaultOptions()
//	opts.KeyPrefix = "test"
//	rep, err := report.Compute(scores, labels, &opts)
//	if err != nil { ... }
//	fmt.Println(rep["test_sensitivity"], rep["test_auc 95% CIs"])
//
// The AUC interval is delegated to package bootstrap; its Options ride
// along inside report.Options, so the seed schedule and replicate count are
// configurable from here too.
package report
