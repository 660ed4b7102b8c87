// Package roc computes Receiver Operating Characteristic curves and the
// area under them for binary classifiers scored with continuous values.
//
// 🚀 What is a ROC curve?
//
//	Sweep a classification threshold from above the maximum score down to
//	the minimum; at each threshold every sample scoring >= the threshold is
//	called positive.  Plotting the resulting (false-positive-rate,
//	true-positive-rate) pairs traces the classifier's whole operating range.
//	The area under that curve (AUC) is the probability that a random
//	positive sample outranks a random negative one.
//
// ✨ Key features:
//   - one curve point per distinct score — ties collapse into a single
//     diagonal segment, so the trapezoidal AUC equals the mid-rank
//     Mann-Whitney statistic exactly
//   - a leading sentinel point (FPR=0, TPR=0) at threshold max(scores)+1,
//     making "predict nothing positive" a selectable operating point
//   - Youden's J operating-point selection (argmax TPR-FPR)
//   - strict input validation with sentinel errors
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/diagmetrics/roc"
//
//	curve, err := roc.Compute(scores, labels)
//	if err != nil { ... }
//	auc := curve.AUC()
//	best := curve.Youden()   // operating point maximizing TPR-FPR
//
// Performance:
//
//   - Time:   O(n log n) for the sort, O(n) sweep
//   - Memory: O(n)
//
// See example_test.go for worked curves.
package roc
