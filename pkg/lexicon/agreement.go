package lexicon

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Buckets maps a continuous score onto categorical labels via thresholds.
// With thresholds t1 < t2 < ... < tn and labels l0 ... ln, a score s gets
// label li when ti <= s < ti+1: intervals are half-open, and a score equal
// to a threshold always falls into the higher bucket. NaN scores get
// NaNLabel.
type Buckets struct {
	Thresholds []float64 `json:"thresholds"`
	Labels     []string  `json:"labels"`
	NaNLabel   string    `json:"nan_label"`
}

// Validate checks the bucketing definition is consistent
func (b Buckets) Validate() error {
	if len(b.Labels) != len(b.Thresholds)+1 {
		return ValidationError{
			Field: "labels",
			Message: fmt.Sprintf("need exactly one more label (%d) than thresholds (%d)",
				len(b.Labels), len(b.Thresholds)),
		}
	}
	for i := 1; i < len(b.Thresholds); i++ {
		if b.Thresholds[i] <= b.Thresholds[i-1] {
			return ValidationError{
				Field:   fmt.Sprintf("thresholds[%d]", i),
				Message: "thresholds must be strictly increasing",
				Value:   fmt.Sprintf("%v", b.Thresholds[i]),
			}
		}
	}
	return nil
}

// Assign returns the label for a score
func (b Buckets) Assign(score float64) string {
	if math.IsNaN(score) {
		return b.NaNLabel
	}
	for i := len(b.Thresholds) - 1; i >= 0; i-- {
		if score >= b.Thresholds[i] {
			return b.Labels[i+1]
		}
	}
	return b.Labels[0]
}

// AssignAll buckets a slice of scores
func (b Buckets) AssignAll(scores []float64) []string {
	labels := make([]string, len(scores))
	for i, score := range scores {
		labels[i] = b.Assign(score)
	}
	return labels
}

// Agreement holds the cross-tabulation of predicted against actual labels.
// Rows are predicted, columns actual, both in label-list order.
type Agreement struct {
	Labels    []string       `json:"labels"`
	Index     map[string]int `json:"-"` // label -> matrix index (computed)
	Confusion *mat.Dense     `json:"-"`
	Total     int            `json:"total"`
}

// CrossTab builds the confusion matrix between predicted and actual label
// sequences over the given label vocabulary. Both sequences must have the
// same length and only use known labels.
func CrossTab(predicted, actual, labels []string) (*Agreement, error) {
	if len(predicted) != len(actual) {
		return nil, ValidationError{
			Field: "predicted",
			Message: fmt.Sprintf("predicted (%d) and actual (%d) label counts differ",
				len(predicted), len(actual)),
		}
	}
	if len(labels) == 0 {
		return nil, ValidationError{Field: "labels", Message: "label vocabulary cannot be empty"}
	}

	index := make(map[string]int, len(labels))
	for i, label := range labels {
		if _, exists := index[label]; exists {
			return nil, ValidationError{Field: "labels", Message: "duplicate label", Value: label}
		}
		index[label] = i
	}

	n := len(labels)
	confusion := mat.NewDense(n, n, nil)

	for i := range predicted {
		row, ok := index[predicted[i]]
		if !ok {
			return nil, ValidationError{
				Field:   fmt.Sprintf("predicted[%d]", i),
				Message: "label not in vocabulary",
				Value:   predicted[i],
			}
		}
		col, ok := index[actual[i]]
		if !ok {
			return nil, ValidationError{
				Field:   fmt.Sprintf("actual[%d]", i),
				Message: "label not in vocabulary",
				Value:   actual[i],
			}
		}
		confusion.Set(row, col, confusion.At(row, col)+1)
	}

	return &Agreement{
		Labels:    labels,
		Index:     index,
		Confusion: confusion,
		Total:     len(predicted),
	}, nil
}

// Accuracy is the trace of the confusion matrix over its total sum: the
// share of documents where prediction and manual coding agree. NaN for an
// empty cross-tabulation.
func (a *Agreement) Accuracy() float64 {
	if a.Total == 0 {
		return math.NaN()
	}
	return mat.Trace(a.Confusion) / mat.Sum(a.Confusion)
}

// Count returns the cell value for a (predicted, actual) label pair
func (a *Agreement) Count(predicted, actual string) int {
	row, ok := a.Index[predicted]
	if !ok {
		return 0
	}
	col, ok := a.Index[actual]
	if !ok {
		return 0
	}
	return int(a.Confusion.At(row, col))
}

// ValidateAgainstManualCoding buckets continuous scores and cross-tabulates
// them against manually coded labels in one step.
func ValidateAgainstManualCoding(scores []float64, manualLabels []string, buckets Buckets) (*Agreement, error) {
	if err := buckets.Validate(); err != nil {
		return nil, err
	}

	labels := buckets.Labels
	if buckets.NaNLabel != "" {
		labels = append(append([]string{}, buckets.Labels...), buckets.NaNLabel)
	}

	return CrossTab(buckets.AssignAll(scores), manualLabels, labels)
}
