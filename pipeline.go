package sentiment

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// PipelineConfig holds everything needed for a train, predict and evaluate
// run.
type PipelineConfig struct {
	TrainPath string
	TestPath  string
	TruthPath string

	Reader    ReaderConfig
	Weights   Weights
	Labels    Labels
	Threshold float64

	// TopWords is how many of the most positive and most negative words to
	// print after training. Zero disables the listing.
	TopWords int
}

// Result summarizes a completed run.
type Result struct {
	Training    TrainingMetrics
	TestRecords int
	Predictions int
	Report      Report
	Elapsed     time.Duration
}

// Pipeline trains word scores, predicts the test set and reports accuracy.
type Pipeline struct {
	config    PipelineConfig
	tokenizer *Tokenizer
	logger    *zap.Logger
	out       io.Writer
}

// NewPipeline creates a pipeline writing human-readable progress to out.
// A nil logger disables diagnostics.
func NewPipeline(config PipelineConfig, tokenizer *Tokenizer, logger *zap.Logger, out io.Writer) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	if out == nil {
		out = io.Discard
	}
	return &Pipeline{config: config, tokenizer: tokenizer, logger: logger, out: out}
}

// Run executes the stages in order and stops at the first failure; later
// stages never run without the output of earlier ones.
func (p *Pipeline) Run() (Result, error) {
	var res Result
	start := time.Now()

	trainer := NewTrainer(p.tokenizer, TrainingConfig{
		Weights: p.config.Weights,
		Labels:  p.config.Labels,
		Reader:  p.config.Reader,
		Logger:  p.logger,
	})
	scores, metrics, err := trainer.TrainFile(p.config.TrainPath)
	if err != nil {
		p.logger.Error("training failed", zap.String("path", p.config.TrainPath), zap.Error(err))
		return res, fmt.Errorf("train: %w", err)
	}
	res.Training = metrics

	fmt.Fprintf(p.out, "Read %d training tweets\n", metrics.Records)
	fmt.Fprintf(p.out, "Vocabulary size: %d\n", metrics.Vocabulary)
	p.printWords(scores)

	classifier := NewClassifier(scores, p.tokenizer, ClassifierConfig{
		Threshold: p.config.Threshold,
		Labels:    p.config.Labels,
		Reader:    p.config.Reader,
		Logger:    p.logger,
	})
	preds, n, err := classifier.PredictFile(p.config.TestPath)
	if err != nil {
		p.logger.Error("prediction failed", zap.String("path", p.config.TestPath), zap.Error(err))
		return res, fmt.Errorf("predict: %w", err)
	}
	res.TestRecords = n
	res.Predictions = len(preds)

	fmt.Fprintf(p.out, "Read %d test tweets\n", n)
	fmt.Fprintf(p.out, "Predictions: %d\n", len(preds))

	report, err := EvaluateFile(p.config.TruthPath, preds, p.config.Labels, p.config.Reader, p.logger)
	if err != nil {
		p.logger.Error("evaluation failed", zap.String("path", p.config.TruthPath), zap.Error(err))
		return res, fmt.Errorf("evaluate: %w", err)
	}
	res.Report = report

	fmt.Fprintf(p.out, "Accuracy: %.2f%% (%d/%d correct, %d without ground truth)\n",
		report.Accuracy, report.Correct, report.Total, report.Unmatched)
	fmt.Fprintf(p.out, "Positive precision: %.2f, recall: %.2f, F1: %.2f\n",
		report.Precision, report.Recall, report.F1)

	res.Elapsed = time.Since(start)
	fmt.Fprintf(p.out, "Time to execute: %v\n", res.Elapsed)

	p.logger.Info("run complete",
		zap.Float64("accuracy", report.Accuracy),
		zap.Int("vocabulary", metrics.Vocabulary),
		zap.Duration("elapsed", res.Elapsed))

	return res, nil
}

func (p *Pipeline) printWords(scores WordScores) {
	if p.config.TopWords <= 0 {
		return
	}
	fmt.Fprintln(p.out, "Most positive words:")
	for _, ws := range scores.Top(p.config.TopWords) {
		fmt.Fprintf(p.out, "  %-20s %8.1f\n", ws.Word, ws.Score)
	}
	fmt.Fprintln(p.out, "Most negative words:")
	for _, ws := range scores.Bottom(p.config.TopWords) {
		fmt.Fprintf(p.out, "  %-20s %8.1f\n", ws.Word, ws.Score)
	}
}
