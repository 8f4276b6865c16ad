package sentiment

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
)

// Report contains accuracy metrics for a prediction run.
type Report struct {
	Accuracy  float64 // Percentage of predictions matching ground truth.
	Correct   int
	Total     int // Number of predictions; the accuracy denominator.
	Unmatched int // Predictions whose ID has no ground truth.

	// Confusion counts matched predictions. Row 0/1 is the true negative
	// or positive label, column 0/1 the predicted one. Pairs involving any
	// other label value are left out.
	Confusion *mat.Dense

	// Positive-class metrics derived from Confusion.
	Precision float64
	Recall    float64
	F1        float64
}

// Evaluate compares preds with the ground truth in truth. The first
// record for an ID wins. Predictions without ground truth count as wrong.
// It returns ErrEmptyInput when preds is empty.
func Evaluate(truth []TruthRecord, preds Predictions, labels Labels) (Report, error) {
	if len(preds) == 0 {
		return Report{}, ErrEmptyInput
	}

	gt := NewGroundTruth(truth)
	report := Report{
		Total:     len(preds),
		Confusion: mat.NewDense(2, 2, nil),
	}

	for id, predicted := range preds {
		actual, found := gt[id]
		if !found {
			report.Unmatched++
			continue
		}
		if actual == predicted {
			report.Correct++
		}
		row, okRow := labelIndex(actual, labels)
		col, okCol := labelIndex(predicted, labels)
		if okRow && okCol {
			report.Confusion.Set(row, col, report.Confusion.At(row, col)+1)
		}
	}

	report.Accuracy = float64(report.Correct) / float64(report.Total) * 100.0

	tp := report.Confusion.At(1, 1)
	fp := report.Confusion.At(0, 1)
	fn := report.Confusion.At(1, 0)
	if tp+fp > 0 {
		report.Precision = tp / (tp + fp)
	}
	if tp+fn > 0 {
		report.Recall = tp / (tp + fn)
	}
	if report.Precision+report.Recall > 0 {
		report.F1 = 2 * report.Precision * report.Recall / (report.Precision + report.Recall)
	}

	return report, nil
}

// EvaluateFile loads ground truth from path and evaluates preds against it.
func EvaluateFile(path string, preds Predictions, labels Labels, config ReaderConfig, logger *zap.Logger) (Report, error) {
	truth, err := LoadTruth(path, config)
	if err != nil {
		return Report{}, err
	}

	report, err := Evaluate(truth, preds, labels)
	if err != nil {
		return Report{}, err
	}

	if logger != nil {
		logger.Debug("evaluated predictions",
			zap.String("path", path),
			zap.Int("truth_records", len(truth)),
			zap.Int("correct", report.Correct),
			zap.Int("total", report.Total),
			zap.Int("unmatched", report.Unmatched))
	}

	return report, nil
}

func labelIndex(l Label, labels Labels) (int, bool) {
	switch l {
	case labels.Negative:
		return 0, true
	case labels.Positive:
		return 1, true
	}
	return 0, false
}
