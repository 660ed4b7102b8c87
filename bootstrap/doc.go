// Package bootstrap estimates a percentile confidence interval for the AUC
// of a binary classifier by resampling the prediction/label pair.
//
// 🚀 What is the percentile bootstrap?
//
//	Redraw the sample with replacement many times, score each redraw, and
//	read the interval straight off the sorted scores: the middle 95% of
//	bootstrap AUCs is the 95% confidence interval.  No normality
//	assumption, no closed-form variance.
//
//	Ref: Carpenter & Bithell, "Bootstrap confidence intervals: when, which,
//	what?", Statistics in Medicine 19(9), 2000.
//
// ✨ Key features:
//   - fixed seed schedule: one master seed (default 42) pre-draws a
//     sub-seed per replicate from [0, 65535), so runs are bit-identical
//   - paired resampling: one shared index vector per replicate keeps every
//     prediction matched to its original label
//   - single-class replicates are rejected, not scored
//   - population mean/std of the bootstrap distribution via gonum/stat
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/diagmetrics/bootstrap"
//
//	opts := bootstrap.DefaultOptions() // 95% CI, 1000 replicates, seed 42
//	res, err := bootstrap.Estimate(scores, labels, &opts)
//	if err != nil { ... }
//	fmt.Println(res.AUC, res.Lower, res.Upper)
//
// Performance:
//
//   - Time:   O(R · n log n) for R replicates of n samples
//   - Memory: O(R + n)
//
// The replicate loop is sequential by contract; sub-seeds are pre-drawn, so
// the seed schedule never depends on how many replicates survive.
package bootstrap
