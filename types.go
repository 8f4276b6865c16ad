package sentiment

// A Label is a sentiment class as encoded in the source datasets.
type Label uint8

const (
	Negative Label = 0 // Negative sentiment in the Sentiment140 encoding.
	Positive Label = 4 // Positive sentiment in the Sentiment140 encoding.
)

// Labels names the two label values a run treats as positive and negative.
type Labels struct {
	Positive Label
	Negative Label
}

// DefaultLabels returns the Sentiment140 encoding (4 and 0).
func DefaultLabels() Labels {
	return Labels{Positive: Positive, Negative: Negative}
}

// A LabeledRecord is a training tweet with its known sentiment.
type LabeledRecord struct {
	ID        uint64
	Sentiment Label
	Date      string
	Query     string
	User      string
	Text      string
}

// An UnlabeledRecord is a tweet whose sentiment is to be predicted.
type UnlabeledRecord struct {
	ID    uint64
	Date  string
	Query string
	User  string
	Text  string
}

// A TruthRecord pairs a tweet ID with its true sentiment.
type TruthRecord struct {
	ID        uint64
	Sentiment Label
}

// WordScores maps a normalized token to its accumulated polarity score.
type WordScores map[string]float64

// Predictions maps a tweet ID to its predicted sentiment.
type Predictions map[uint64]Label

// SetIfAbsent records label for id unless id already has a prediction. It
// reports whether the value was stored.
func (p Predictions) SetIfAbsent(id uint64, label Label) bool {
	if _, found := p[id]; found {
		return false
	}
	p[id] = label
	return true
}

// GroundTruth maps a tweet ID to its true sentiment.
type GroundTruth map[uint64]Label

// SetIfAbsent records label for id unless id is already present.
func (g GroundTruth) SetIfAbsent(id uint64, label Label) bool {
	if _, found := g[id]; found {
		return false
	}
	g[id] = label
	return true
}

// NewGroundTruth builds a GroundTruth from records; the first record seen
// for an ID wins.
func NewGroundTruth(records []TruthRecord) GroundTruth {
	truth := make(GroundTruth, len(records))
	for _, rec := range records {
		truth.SetIfAbsent(rec.ID, rec.Sentiment)
	}
	return truth
}
