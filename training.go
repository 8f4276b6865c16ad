package sentiment

import (
	"time"

	"go.uber.org/zap"
)

// Weights are the per-token adjustments applied while training.
type Weights struct {
	PositiveBonus float64 // Added once per positive tweet containing the token.
	Penalty       float64 // Subtracted once per tweet containing the token.
}

// DefaultWeights returns a bonus of 5 and a penalty of 1.
func DefaultWeights() Weights {
	return Weights{PositiveBonus: 5, Penalty: 1}
}

// TrainingConfig contains configuration for building word scores
type TrainingConfig struct {
	Weights Weights
	Labels  Labels
	Reader  ReaderConfig
	Logger  *zap.Logger
}

// DefaultTrainingConfig returns a default training configuration
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		Weights: DefaultWeights(),
		Labels:  DefaultLabels(),
		Reader:  DefaultReaderConfig(),
		Logger:  zap.NewNop(),
	}
}

// TrainingMetrics contains metrics from training
type TrainingMetrics struct {
	Records      int
	Vocabulary   int
	TrainingTime time.Duration
}

// Trainer builds word scores from labeled tweets.
type Trainer struct {
	config    TrainingConfig
	tokenizer *Tokenizer
}

// NewTrainer creates a new trainer with the given configuration
func NewTrainer(tokenizer *Tokenizer, config TrainingConfig) *Trainer {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Trainer{config: config, tokenizer: tokenizer}
}

// Train scores every distinct token in records. Each tweet contributes a
// token once no matter how often it repeats: the bonus when the tweet is
// positive, then the penalty unconditionally.
func (t *Trainer) Train(records []LabeledRecord) WordScores {
	scores := WordScores{}
	for _, rec := range records {
		positive := rec.Sentiment == t.config.Labels.Positive
		for _, word := range t.tokenizer.TokenSet(rec.Text) {
			if positive {
				scores[word] += t.config.Weights.PositiveBonus
			}
			scores[word] -= t.config.Weights.Penalty
		}
	}
	return scores
}

// TrainFile loads labeled tweets from path and trains on them.
func (t *Trainer) TrainFile(path string) (WordScores, TrainingMetrics, error) {
	start := time.Now()

	records, err := LoadLabeled(path, t.config.Reader)
	if err != nil {
		return nil, TrainingMetrics{}, err
	}

	scores := t.Train(records)
	metrics := TrainingMetrics{
		Records:      len(records),
		Vocabulary:   len(scores),
		TrainingTime: time.Since(start),
	}

	t.config.Logger.Debug("trained word scores",
		zap.String("path", path),
		zap.Int("records", metrics.Records),
		zap.Int("vocabulary", metrics.Vocabulary),
		zap.Duration("elapsed", metrics.TrainingTime))

	return scores, metrics, nil
}
