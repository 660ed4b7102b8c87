// Package bootstrap defines the estimator's options and result types.
package bootstrap

// Options configures the bootstrap estimator.
//
// Fields:
//   - ConfidenceLevel — width of the percentile interval, in (0, 1).
//   - Replicates      — number of resamples drawn; invalid (single-class)
//     replicates are rejected and do not count toward the interval.
//   - MasterSeed      — seeds the generator that pre-draws one sub-seed per
//     replicate; fixing it makes every run bit-identical.
//
// Example:
//
//	opts := bootstrap.DefaultOptions()
//	opts.Replicates = 2000      // tighter percentile resolution
//	opts.MasterSeed = 7         // alternate seed schedule
//	res, err := bootstrap.Estimate(scores, labels, &opts)
type Options struct {
	ConfidenceLevel float64
	Replicates      int
	MasterSeed      int64
}

// DefaultOptions returns the reference configuration: a 95% interval from
// 1000 replicates seeded with 42.
func DefaultOptions() Options {
	return Options{
		ConfidenceLevel: 0.95,
		Replicates:      1000,
		MasterSeed:      42,
	}
}

// validate rejects option values the estimator cannot honor.
func (o Options) validate() error {
	if o.ConfidenceLevel <= 0 || o.ConfidenceLevel >= 1 {
		return ErrBadConfidence
	}
	if o.Replicates < 1 {
		return ErrBadReplicates
	}

	return nil
}

// Result bundles the point estimate with the bootstrap distribution and the
// percentile interval extracted from it.
//
// Scores holds the ascending AUCs of every retained replicate; its length
// is at most Options.Replicates and at least 1.
type Result struct {
	AUC    float64 // point AUC of the full sample
	Mean   float64 // mean of the bootstrap AUCs
	Std    float64 // population standard deviation of the bootstrap AUCs
	Lower  float64 // lower interval bound
	Upper  float64 // upper interval bound
	Scores []float64
}
