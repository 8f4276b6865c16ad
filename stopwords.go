package sentiment

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// StopWords is an immutable set of words the tokenizer discards.
type StopWords struct {
	words map[string]struct{}
}

// NewStopWords builds a set from words. Double quotes are dropped and each
// entry is lowercased so lookups can be made against normalized tokens.
func NewStopWords(words ...string) *StopWords {
	sw := &StopWords{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(w, `"`, "")))
		if w != "" {
			sw.words[w] = struct{}{}
		}
	}
	return sw
}

// With returns a new set holding the receiver's words plus extra.
func (sw *StopWords) With(extra ...string) *StopWords {
	return NewStopWords(append(sw.Words(), extra...)...)
}

// Contains reports whether word is a stop word. Words carrying diacritics
// are also checked in their folded form, so "thé" matches "the".
func (sw *StopWords) Contains(word string) bool {
	if sw == nil {
		return false
	}
	if _, found := sw.words[word]; found {
		return true
	}
	if isASCII(word) {
		return false
	}
	_, found := sw.words[foldDiacritics(word)]
	return found
}

// Len returns the number of words in the set.
func (sw *StopWords) Len() int {
	if sw == nil {
		return 0
	}
	return len(sw.words)
}

// Words returns the set's members in sorted order.
func (sw *StopWords) Words() []string {
	if sw == nil {
		return nil
	}
	out := make([]string, 0, len(sw.words))
	for w := range sw.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// EnglishStopWords returns the English stop-word list.
//
// The bbalet/stopwords library doesn't export its lists, so the set is
// built from candidates: a candidate the library strips from a string is
// a stop word. Pronoun contractions are always members and skip that
// check. Negations ("not", "no", "never", "don't") are never
// members, because they carry sentiment.
func EnglishStopWords() *StopWords {
	words := append([]string(nil), englishContractions...)
	for _, word := range englishCandidates {
		cleaned := strings.TrimSpace(stopwords.CleanString(word, "en", false))
		if cleaned == "" || cleaned != word {
			words = append(words, word)
		}
	}
	return NewStopWords(words...)
}

func foldDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// englishCandidates holds common English function words. Words that carry
// sentiment on their own ("good", "great", "like", "well", "not") are
// absent so they can never be filtered.
var englishCandidates = []string{
	// Articles, pronouns, prepositions, conjunctions
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could", "did",
	"do", "does", "doing", "down", "during", "each", "few", "for", "from",
	"further", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is",
	"it", "its", "itself", "me", "more", "most", "my", "myself", "nor", "of",
	"off", "on", "once", "only", "or", "other", "ought", "our", "ours",
	"ourselves", "out", "over", "own", "same", "she", "should", "so", "some",
	"such", "than", "that", "the", "their", "theirs", "them", "themselves",
	"then", "there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "with", "would", "you",
	"your", "yours", "yourself", "yourselves",
	// Frequent verbs and fillers
	"also", "just", "now", "still", "yet", "upon", "us", "may", "might",
	"must", "shall", "will", "get", "got", "go", "going", "went",
}

// englishContractions are pronoun contractions. The tokenizer keeps them
// as single tokens ("i'm"), so they are listed in that form.
var englishContractions = []string{
	"i'm", "i've", "i'd", "i'll", "you're", "you've", "you'd", "you'll",
	"he'd", "he'll", "she'd", "she'll", "we're", "we've", "we'd", "we'll",
	"they're", "they've", "they'd", "they'll",
}
