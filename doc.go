// Package diagmetrics evaluates binary classifiers the way clinical
// prediction studies report them — ROC analysis, an operating point, and a
// bootstrap confidence interval around the AUC.
//
// 🚀 What is diagmetrics?
//
//	A small, deterministic library that brings together:
//		• ROC primitives: threshold sweep, AUC via trapezoidal integration
//		• Operating-point selection: Youden's J statistic
//		• Bootstrap: percentile confidence intervals for AUC (fixed seed schedule)
//		• Reporting: sensitivity, specificity, predictive values, accuracy
//
// ✨ Why choose diagmetrics?
//
//   - Reproducible – every bootstrap run is bit-identical given the same seed
//   - Strict inputs – binary labels only, validated up front, sentinel errors
//   - Pure functions – no I/O, no globals, no hidden state between calls
//
// Everything is organized under three subpackages:
//
//	roc/       — ROC curve enumeration, AUC, Youden operating point
//	bootstrap/ — percentile bootstrap confidence estimator for AUC
//	report/    — named-metric assembly from a prediction/label pair
//
// Quick sketch:
//
//	scores := []float64{0.9, 0.8, 0.2, 0.1}
//	labels := []int{1, 1, 0, 0}
//	rep, err := report.Compute(scores, labels, nil)
//
// Dive into the per-package doc.go files for algorithm outlines, complexity
// notes and worked examples.
//
//	go get github.com/katalvlaran/diagmetrics
package diagmetrics
