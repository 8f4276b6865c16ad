package sentiment

import (
	"github.com/go-gota/gota/dataframe"
)

// A WordScore pairs a token with its trained polarity score.
type WordScore struct {
	Word  string
	Score float64
}

// Top returns the n highest-scoring words, ties broken alphabetically.
func (ws WordScores) Top(n int) []WordScore {
	return ws.ranked(n, dataframe.RevSort("Score"))
}

// Bottom returns the n lowest-scoring words, ties broken alphabetically.
func (ws WordScores) Bottom(n int) []WordScore {
	return ws.ranked(n, dataframe.Sort("Score"))
}

func (ws WordScores) ranked(n int, order dataframe.Order) []WordScore {
	if n <= 0 || len(ws) == 0 {
		return nil
	}

	rows := make([]WordScore, 0, len(ws))
	for w, s := range ws {
		rows = append(rows, WordScore{Word: w, Score: s})
	}

	df := dataframe.LoadStructs(rows).Arrange(order, dataframe.Sort("Word"))
	if df.Err != nil {
		return nil
	}

	words := df.Col("Word").Records()
	scores := df.Col("Score").Float()
	if n > len(words) {
		n = len(words)
	}

	out := make([]WordScore, n)
	for i := 0; i < n; i++ {
		out[i] = WordScore{Word: words[i], Score: scores[i]}
	}
	return out
}
