package sentiment

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEvaluateAccuracy(t *testing.T) {
	truth := []TruthRecord{{1, Positive}, {2, Positive}, {3, Positive}}
	preds := Predictions{1: Positive, 2: Negative, 3: Positive}

	report, err := Evaluate(truth, preds, DefaultLabels())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if math.Abs(report.Accuracy-200.0/3.0) > 1e-9 {
		t.Errorf("Accuracy = %v, want 66.67", report.Accuracy)
	}
	if report.Correct != 2 || report.Total != 3 || report.Unmatched != 0 {
		t.Errorf("report = %+v", report)
	}
}

func TestEvaluateMissingGroundTruth(t *testing.T) {
	truth := []TruthRecord{{1, Positive}}
	preds := Predictions{1: Positive, 2: Positive}

	report, err := Evaluate(truth, preds, DefaultLabels())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.Accuracy != 50 || report.Unmatched != 1 || report.Total != 2 {
		t.Errorf("report = %+v, want 50%% with one unmatched", report)
	}
}

func TestEvaluateGroundTruthFirstWriteWins(t *testing.T) {
	truth := []TruthRecord{{1, Negative}, {1, Positive}}
	preds := Predictions{1: Negative}

	report, err := Evaluate(truth, preds, DefaultLabels())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if report.Accuracy != 100 {
		t.Errorf("Accuracy = %v, want 100", report.Accuracy)
	}
}

func TestEvaluateEmptyPredictions(t *testing.T) {
	_, err := Evaluate([]TruthRecord{{1, Positive}}, Predictions{}, DefaultLabels())
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Evaluate error = %v, want ErrEmptyInput", err)
	}
}

func TestEvaluateConfusion(t *testing.T) {
	truth := []TruthRecord{{1, Positive}, {2, Positive}, {3, Negative}, {4, Negative}, {5, 2}}
	preds := Predictions{1: Positive, 2: Negative, 3: Positive, 4: Negative, 5: Negative}

	report, err := Evaluate(truth, preds, DefaultLabels())
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	want := [2][2]float64{{1, 1}, {1, 1}}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if got := report.Confusion.At(i, j); got != want[i][j] {
				t.Errorf("Confusion[%d][%d] = %v, want %v", i, j, got, want[i][j])
			}
		}
	}
	if report.Precision != 0.5 || report.Recall != 0.5 || report.F1 != 0.5 {
		t.Errorf("precision/recall/F1 = %v/%v/%v, want 0.5 each",
			report.Precision, report.Recall, report.F1)
	}
	if report.Correct != 2 || report.Accuracy != 40 {
		t.Errorf("Correct = %d, Accuracy = %v, want 2 and 40", report.Correct, report.Accuracy)
	}
}

func TestEvaluateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truth.csv")
	data := "sentiment,id\n4,1\n4,2\n4,3\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	report, err := EvaluateFile(path, Predictions{1: 4, 2: 0, 3: 4}, DefaultLabels(), DefaultReaderConfig(), nil)
	if err != nil {
		t.Fatalf("EvaluateFile: %v", err)
	}
	if math.Abs(report.Accuracy-66.6667) > 1e-3 {
		t.Errorf("Accuracy = %.4f, want 66.67", report.Accuracy)
	}
}
