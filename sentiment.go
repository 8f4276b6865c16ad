package sentiment

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the tweet score a tweet must exceed to be classified
// as positive.
const DefaultThreshold = 50.0

// ClassifierConfig configures prediction
type ClassifierConfig struct {
	Threshold float64
	Labels    Labels
	Reader    ReaderConfig
	Logger    *zap.Logger
}

// DefaultClassifierConfig returns standard configuration
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Threshold: DefaultThreshold,
		Labels:    DefaultLabels(),
		Reader:    DefaultReaderConfig(),
		Logger:    zap.NewNop(),
	}
}

// Classifier predicts binary sentiment from trained word scores.
type Classifier struct {
	scores    WordScores
	tokenizer *Tokenizer
	config    ClassifierConfig
}

// NewClassifier creates a classifier over scores. The tokenizer must be
// configured the same way as the one used in training.
func NewClassifier(scores WordScores, tokenizer *Tokenizer, config ClassifierConfig) *Classifier {
	if config.Logger == nil {
		config.Logger = zap.NewNop()
	}
	return &Classifier{scores: scores, tokenizer: tokenizer, config: config}
}

// Score sums the scores of the distinct tokens in text. Tokens never seen
// in training contribute nothing.
func (c *Classifier) Score(text string) float64 {
	var hits []float64
	for _, word := range c.tokenizer.TokenSet(text) {
		if s, found := c.scores[word]; found {
			hits = append(hits, s)
		}
	}
	return floats.Sum(hits)
}

// Classify labels text positive when its score is strictly above the
// threshold and negative otherwise.
func (c *Classifier) Classify(text string) Label {
	if c.Score(text) > c.config.Threshold {
		return c.config.Labels.Positive
	}
	return c.config.Labels.Negative
}

// Predict classifies every record. When an ID repeats, the first
// prediction recorded for it is kept.
func (c *Classifier) Predict(records []UnlabeledRecord) Predictions {
	preds := make(Predictions, len(records))
	for _, rec := range records {
		if c.Score(rec.Text) > c.config.Threshold {
			preds.SetIfAbsent(rec.ID, c.config.Labels.Positive)
		}
		preds.SetIfAbsent(rec.ID, c.config.Labels.Negative)
	}
	return preds
}

// PredictFile loads unlabeled tweets from path and classifies them. It
// also returns the number of records read.
func (c *Classifier) PredictFile(path string) (Predictions, int, error) {
	records, err := LoadUnlabeled(path, c.config.Reader)
	if err != nil {
		return nil, 0, err
	}

	preds := c.Predict(records)
	c.config.Logger.Debug("predicted sentiment",
		zap.String("path", path),
		zap.Int("records", len(records)),
		zap.Int("predictions", len(preds)))

	return preds, len(records), nil
}
