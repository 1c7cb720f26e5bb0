package lexicon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sentimentBuckets() Buckets {
	return Buckets{
		Thresholds: []float64{-0.1, 0.1},
		Labels:     []string{"negative", "neutral", "positive"},
		NaNLabel:   "uncoded",
	}
}

func TestBuckets_Assign(t *testing.T) {
	buckets := sentimentBuckets()

	tests := []struct {
		score float64
		want  string
	}{
		{-0.5, "negative"},
		{-0.1, "neutral"}, // boundary value falls into the higher bucket
		{0.0, "neutral"},
		{0.1, "positive"}, // same rule at the upper threshold
		{0.09999, "neutral"},
		{0.8, "positive"},
		{math.NaN(), "uncoded"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, buckets.Assign(tt.score), "score %v", tt.score)
	}
}

func TestBuckets_Validate(t *testing.T) {
	tests := []struct {
		name    string
		buckets Buckets
		wantErr bool
	}{
		{"valid", sentimentBuckets(), false},
		{"label count off", Buckets{Thresholds: []float64{0}, Labels: []string{"only"}}, true},
		{"unordered thresholds", Buckets{
			Thresholds: []float64{0.5, 0.1},
			Labels:     []string{"a", "b", "c"},
		}, true},
		{"equal thresholds", Buckets{
			Thresholds: []float64{0.1, 0.1},
			Labels:     []string{"a", "b", "c"},
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.buckets.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCrossTab_AccuracyContract(t *testing.T) {
	labels := []string{"negative", "neutral", "positive"}

	// 50 documents arranged so the diagonal sums to 15
	predicted := make([]string, 0, 50)
	actual := make([]string, 0, 50)

	addPairs := func(p, a string, n int) {
		for i := 0; i < n; i++ {
			predicted = append(predicted, p)
			actual = append(actual, a)
		}
	}
	addPairs("negative", "negative", 5)
	addPairs("neutral", "neutral", 5)
	addPairs("positive", "positive", 5)
	addPairs("positive", "negative", 15)
	addPairs("negative", "positive", 10)
	addPairs("neutral", "positive", 10)

	agreement, err := CrossTab(predicted, actual, labels)
	require.NoError(t, err)

	assert.Equal(t, 50, agreement.Total)
	assert.Equal(t, 0.30, agreement.Accuracy(), "accuracy must be exactly trace/sum = 15/50")
	assert.Equal(t, 5, agreement.Count("negative", "negative"))
	assert.Equal(t, 15, agreement.Count("positive", "negative"))
	assert.Equal(t, 0, agreement.Count("neutral", "negative"))
}

func TestCrossTab_Validation(t *testing.T) {
	labels := []string{"a", "b"}

	_, err := CrossTab([]string{"a"}, []string{"a", "b"}, labels)
	assert.Error(t, err, "length mismatch must be rejected")

	_, err = CrossTab([]string{"c"}, []string{"a"}, labels)
	assert.Error(t, err, "unknown predicted label must be rejected")

	_, err = CrossTab([]string{"a"}, []string{"c"}, labels)
	assert.Error(t, err, "unknown actual label must be rejected")

	_, err = CrossTab([]string{"a"}, []string{"a"}, []string{"a", "a"})
	assert.Error(t, err, "duplicate vocabulary label must be rejected")

	_, err = CrossTab(nil, nil, nil)
	assert.Error(t, err, "empty vocabulary must be rejected")
}

func TestCrossTab_EmptySequences(t *testing.T) {
	agreement, err := CrossTab(nil, nil, []string{"a", "b"})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(agreement.Accuracy()))
}

func TestValidateAgainstManualCoding(t *testing.T) {
	buckets := sentimentBuckets()

	scores := []float64{-0.8, 0.0, 0.5, math.NaN()}
	manual := []string{"negative", "neutral", "negative", "uncoded"}

	agreement, err := ValidateAgainstManualCoding(scores, manual, buckets)
	require.NoError(t, err)

	assert.Equal(t, 4, agreement.Total)
	// negative->negative, neutral->neutral, uncoded->uncoded agree
	assert.InDelta(t, 0.75, agreement.Accuracy(), 1e-12)
	assert.Equal(t, 1, agreement.Count("positive", "negative"))
}

func TestValidateAgainstManualCoding_BadBuckets(t *testing.T) {
	_, err := ValidateAgainstManualCoding(
		[]float64{0.1},
		[]string{"a"},
		Buckets{Thresholds: []float64{0}, Labels: []string{"a"}},
	)
	assert.Error(t, err)
}
