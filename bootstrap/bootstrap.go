package bootstrap

import (
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/diagmetrics/roc"
)

// subSeedBound bounds the per-replicate seeds: uniform over [0, 65535).
const subSeedBound = 65535

// Estimate computes the point AUC of scores against binary labels together
// with a percentile bootstrap confidence interval.
//
// Algorithm Outline:
//  1. Validate options and inputs; compute the point AUC of the full pair.
//  2. Seed a generator with MasterSeed and pre-draw Replicates sub-seeds,
//     each uniform over [0, 65535).
//  3. Per sub-seed, seed a fresh generator and draw one index vector of n
//     positions with replacement; apply it to scores and labels alike, so
//     every resampled score keeps its original label.
//  4. Reject replicates whose resampled labels hold a single class; score
//     the rest with roc.AUC.
//  5. Sort the retained AUCs ascending; take the population mean/std.
//  6. Read the interval off the sorted array at truncating indexes
//     floor((1-cl)/2·N) and floor((1-(1-cl)/2)·N).
//
// A nil opts is replaced by DefaultOptions(). Repeated calls with equal
// inputs and options return bit-identical results.
//
// Errors:
//   - ErrBadConfidence, ErrBadReplicates — invalid options
//   - roc.ErrEmptyInput, roc.ErrShapeMismatch, roc.ErrBadScore,
//     roc.ErrBadLabel, roc.ErrDegenerateLabels — invalid input pair
//   - ErrInsufficientReplicates — every replicate rejected
func Estimate(scores []float64, labels []int, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return Result{}, err
	}

	point, err := roc.AUC(scores, labels)
	if err != nil {
		return Result{}, err
	}

	// Pre-draw the whole seed schedule so it depends only on MasterSeed,
	// never on how many replicates survive.
	n := len(scores)
	master := rand.New(rand.NewSource(o.MasterSeed))
	seeds := make([]int64, o.Replicates)
	for i := range seeds {
		seeds[i] = master.Int63n(subSeedBound)
	}

	aucs := make([]float64, 0, o.Replicates)
	resampledScores := make([]float64, n)
	resampledLabels := make([]int, n)
	for _, seed := range seeds {
		rng := rand.New(rand.NewSource(seed))
		pos, neg := 0, 0
		for i := 0; i < n; i++ {
			j := rng.Intn(n) // one shared index keeps the pairing intact
			resampledScores[i] = scores[j]
			resampledLabels[i] = labels[j]
			if labels[j] == 1 {
				pos++
			} else {
				neg++
			}
		}
		if pos == 0 || neg == 0 {
			continue // AUC undefined on a single-class replicate
		}
		score, aucErr := roc.AUC(resampledScores, resampledLabels)
		if aucErr != nil {
			return Result{}, aucErr
		}
		aucs = append(aucs, score)
	}
	if len(aucs) == 0 {
		return Result{}, ErrInsufficientReplicates
	}

	sort.Float64s(aucs)
	nb := float64(len(aucs))
	lo := int((1 - o.ConfidenceLevel) / 2 * nb)
	hi := int((1 - (1-o.ConfidenceLevel)/2) * nb)
	if hi >= len(aucs) { // extreme confidence levels can round up to N
		hi = len(aucs) - 1
	}

	return Result{
		AUC:    point,
		Mean:   stat.Mean(aucs, nil),
		Std:    stat.PopStdDev(aucs, nil),
		Lower:  aucs[lo],
		Upper:  aucs[hi],
		Scores: aucs,
	}, nil
}
