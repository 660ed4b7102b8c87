package bootstrap_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/diagmetrics/bootstrap"
	"github.com/katalvlaran/diagmetrics/roc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleSet returns a fixed 20-sample pair with partial class overlap, the
// shared fixture for the estimator tests.
func sampleSet() ([]float64, []int) {
	scores := []float64{
		0.91, 0.85, 0.78, 0.72, 0.66, 0.61, 0.58, 0.52, 0.47, 0.43,
		0.69, 0.55, 0.49, 0.41, 0.38, 0.33, 0.27, 0.22, 0.15, 0.08,
	}
	labels := []int{
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	return scores, labels
}

// TestEstimate_BadOptions verifies option validation errors.
func TestEstimate_BadOptions(t *testing.T) {
	scores, labels := sampleSet()

	opts := bootstrap.DefaultOptions()
	opts.ConfidenceLevel = 1.0
	_, err := bootstrap.Estimate(scores, labels, &opts)
	assert.ErrorIs(t, err, bootstrap.ErrBadConfidence, "ConfidenceLevel=1 must error")

	opts = bootstrap.DefaultOptions()
	opts.Replicates = 0
	_, err = bootstrap.Estimate(scores, labels, &opts)
	assert.ErrorIs(t, err, bootstrap.ErrBadReplicates, "Replicates=0 must error")
}

// TestEstimate_InputErrorsPropagate verifies roc validation surfaces as-is.
func TestEstimate_InputErrorsPropagate(t *testing.T) {
	_, err := bootstrap.Estimate([]float64{0.2, 0.8}, []int{1}, nil)
	assert.ErrorIs(t, err, roc.ErrShapeMismatch)

	_, err = bootstrap.Estimate([]float64{0.2, 0.8, 0.5}, []int{1, 1, 1}, nil)
	assert.ErrorIs(t, err, roc.ErrDegenerateLabels)

	_, err = bootstrap.Estimate([]float64{0.2, math.NaN()}, []int{1, 0}, nil)
	assert.ErrorIs(t, err, roc.ErrBadScore)
}

// TestEstimate_PointAUC verifies the point estimate matches roc.AUC.
func TestEstimate_PointAUC(t *testing.T) {
	scores, labels := sampleSet()

	want, err := roc.AUC(scores, labels)
	require.NoError(t, err)

	res, err := bootstrap.Estimate(scores, labels, nil)
	require.NoError(t, err)
	assert.Equal(t, want, res.AUC, "point AUC must equal the full-sample AUC")
}

// TestEstimate_IntervalBounds verifies the basics of any percentile
// interval: ordered bounds inside [0, 1], drawn from the sorted scores.
func TestEstimate_IntervalBounds(t *testing.T) {
	scores, labels := sampleSet()

	res, err := bootstrap.Estimate(scores, labels, nil)
	require.NoError(t, err)

	assert.LessOrEqual(t, res.Lower, res.Upper, "interval bounds must be ordered")
	assert.GreaterOrEqual(t, res.Lower, 0.0)
	assert.LessOrEqual(t, res.Upper, 1.0)
	assert.True(t, sort.Float64sAreSorted(res.Scores), "bootstrap scores must be sorted ascending")
	assert.NotEmpty(t, res.Scores)
	assert.LessOrEqual(t, len(res.Scores), 1000, "at most Replicates scores are retained")
	assert.Contains(t, res.Scores, res.Lower)
	assert.Contains(t, res.Scores, res.Upper)
}

// TestEstimate_Deterministic verifies repeated runs are bit-identical.
func TestEstimate_Deterministic(t *testing.T) {
	scores, labels := sampleSet()

	first, err := bootstrap.Estimate(scores, labels, nil)
	require.NoError(t, err)
	second, err := bootstrap.Estimate(scores, labels, nil)
	require.NoError(t, err)

	assert.Equal(t, first, second, "fixed MasterSeed must reproduce the full result")
}

// TestEstimate_SeedChangesDistribution verifies the seed schedule actually
// drives the resampling: different master seeds give different score sets.
func TestEstimate_SeedChangesDistribution(t *testing.T) {
	scores, labels := sampleSet()

	base, err := bootstrap.Estimate(scores, labels, nil)
	require.NoError(t, err)

	opts := bootstrap.DefaultOptions()
	opts.MasterSeed = 1234
	other, err := bootstrap.Estimate(scores, labels, &opts)
	require.NoError(t, err)

	assert.NotEqual(t, base.Scores, other.Scores, "distinct seeds must resample differently")
	assert.Equal(t, base.AUC, other.AUC, "the point AUC ignores the seed")
}

// TestEstimate_NarrowerIntervalAtLowerConfidence verifies the 80% interval
// nests inside the 95% one computed from the same bootstrap distribution.
func TestEstimate_NarrowerIntervalAtLowerConfidence(t *testing.T) {
	scores, labels := sampleSet()

	wide, err := bootstrap.Estimate(scores, labels, nil)
	require.NoError(t, err)

	opts := bootstrap.DefaultOptions()
	opts.ConfidenceLevel = 0.80
	narrow, err := bootstrap.Estimate(scores, labels, &opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, narrow.Lower, wide.Lower, "80% lower bound cannot undercut the 95% one")
	assert.LessOrEqual(t, narrow.Upper, wide.Upper, "80% upper bound cannot exceed the 95% one")
}

// TestEstimate_PerfectSeparation pins the worked example of the reporter:
// perfectly separated classes bootstrap to AUC=1 in every valid replicate.
func TestEstimate_PerfectSeparation(t *testing.T) {
	scores := []float64{0.9, 0.8, 0.2, 0.1}
	labels := []int{1, 1, 0, 0}

	res, err := bootstrap.Estimate(scores, labels, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, res.AUC)
	assert.Equal(t, 1.0, res.Lower, "every valid replicate of separated classes scores 1")
	assert.Equal(t, 1.0, res.Upper)
	assert.Equal(t, 1.0, res.Mean)
	assert.Equal(t, 0.0, res.Std)
}

// TestEstimate_AllReplicatesRejected drives single-replicate runs over a
// heavily imbalanced sample until the lone replicate misses the positive
// class, and checks both outcomes appear across master seeds.
func TestEstimate_AllReplicatesRejected(t *testing.T) {
	scores := make([]float64, 12)
	labels := make([]int, 12)
	for i := range scores {
		scores[i] = float64(i) / 12
	}
	labels[0] = 1 // single positive among 11 negatives

	rejected, accepted := 0, 0
	opts := bootstrap.DefaultOptions()
	opts.Replicates = 1
	for seed := int64(0); seed < 64; seed++ {
		opts.MasterSeed = seed
		_, err := bootstrap.Estimate(scores, labels, &opts)
		switch {
		case err == nil:
			accepted++
		default:
			require.ErrorIs(t, err, bootstrap.ErrInsufficientReplicates)
			rejected++
		}
	}

	assert.Positive(t, rejected, "some lone replicate must miss the positive sample")
	assert.Positive(t, accepted, "some lone replicate must keep both classes")
}
