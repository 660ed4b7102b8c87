// Package report defines the reporter's options, key names and result map.
package report

import "github.com/katalvlaran/diagmetrics/bootstrap"

// Metric key names as they appear in a Report, before prefixing.
const (
	KeySampleNumber   = "sample_number"
	KeyPositiveNumber = "positive_number"
	KeyNegativeNumber = "negative_number"
	KeyYoudenIndex    = "Youden Index"
	KeyAccuracy       = "accuracy"
	KeySensitivity    = "sensitivity"
	KeySpecificity    = "specificity"
	KeyPPV            = "positive predictive value"
	KeyNPV            = "negative predictive value"
	KeyAUC            = "auc"
	KeyAUCCI          = "auc 95% CIs"
	KeyAUCStd         = "auc std"
)

// Options configures the reporter.
//
// Fields:
//   - KeyPrefix — when non-empty, every key is prefixed "<KeyPrefix>_";
//     the usual use is tagging train/validation/test splits.
//   - Bootstrap — configuration handed to the AUC confidence estimator.
//     A zero value is replaced by bootstrap.DefaultOptions().
//
// Example:
//
//	opts := report.DefaultOptions()
//	opts.KeyPrefix = "val"
//	rep, err := report.Compute(scores, labels, &opts)
//	// rep["val_auc"], rep["val_sensitivity"], ...
type Options struct {
	KeyPrefix string
	Bootstrap bootstrap.Options
}

// DefaultOptions returns an unprefixed reporter over the default estimator
// (95% interval, 1000 replicates, master seed 42).
func DefaultOptions() Options {
	return Options{Bootstrap: bootstrap.DefaultOptions()}
}

// Report maps metric names to their values. Keys carry the configured
// prefix; see the Key* constants for the base names.
type Report map[string]Value
