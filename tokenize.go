package sentiment

import (
	"regexp"
	"strings"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tokenizer turns tweet text into normalized tokens.
//
// A Tokenizer holds a stateful case mapper and is not safe for concurrent
// use; build one per goroutine.
type Tokenizer struct {
	stopWords   *StopWords
	punctuation map[string]struct{}
	stripRE     *regexp.Regexp
	lower       cases.Caser
}

type TokenizerOptFunc func(*Tokenizer)

// UsingStopWords sets the stop words the tokenizer discards.
func UsingStopWords(x *StopWords) TokenizerOptFunc {
	return func(tokenizer *Tokenizer) {
		tokenizer.stopWords = x
	}
}

// UsingPunctuation sets the single-character tokens the tokenizer discards.
func UsingPunctuation(x []string) TokenizerOptFunc {
	return func(tokenizer *Tokenizer) {
		tokenizer.punctuation = make(map[string]struct{}, len(x))
		for _, p := range x {
			tokenizer.punctuation[p] = struct{}{}
		}
	}
}

// UsingStripPattern sets the pattern whose matches are removed from every
// word before it is lowercased.
func UsingStripPattern(x *regexp.Regexp) TokenizerOptFunc {
	return func(tokenizer *Tokenizer) {
		tokenizer.stripRE = x
	}
}

// NewTokenizer returns a Tokenizer using the English stop words, the
// default punctuation set and the default strip pattern unless overridden.
func NewTokenizer(opts ...TokenizerOptFunc) *Tokenizer {
	tok := new(Tokenizer)

	UsingPunctuation(DefaultPunctuation)(tok)
	tok.stripRE = stripRE
	tok.lower = cases.Lower(language.Und)

	for _, applyOpt := range opts {
		applyOpt(tok)
	}

	if tok.stopWords == nil {
		tok.stopWords = EnglishStopWords()
	}

	return tok
}

// Normalize cleans a single word. It trims surrounding space, removes
// possessive 's, commas and periods, and lowercases the result. The boolean
// is false when the word should be discarded: it is empty, it is a lone
// punctuation character, or it is a stop word.
func (t *Tokenizer) Normalize(word string) (string, bool) {
	w := t.stripRE.ReplaceAllString(strings.TrimSpace(word), "")
	w = t.lower.String(w)

	if w == "" {
		return "", false
	}
	if t.isPunctuation(w) || t.stopWords.Contains(w) {
		return "", false
	}
	return w, true
}

// Tokens returns the accepted tokens of text in order of appearance,
// repeats included.
func (t *Tokenizer) Tokens(text string) []string {
	var toks []string
	for _, word := range Words(text) {
		if w, ok := t.Normalize(word); ok {
			toks = append(toks, w)
		}
	}
	return toks
}

// TokenSet returns the distinct accepted tokens of text in order of first
// appearance.
func (t *Tokenizer) TokenSet(text string) []string {
	var set []string
	seen := map[string]struct{}{}
	for _, word := range Words(text) {
		w, ok := t.Normalize(word)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		set = append(set, w)
	}
	return set
}

// StopWords returns the stop words in use.
func (t *Tokenizer) StopWords() *StopWords {
	return t.stopWords
}

func (t *Tokenizer) isPunctuation(w string) bool {
	if uniseg.GraphemeClusterCount(w) != 1 {
		return false
	}
	_, found := t.punctuation[w]
	return found
}

// Words splits text at Unicode word boundaries (UAX #29). Every segment is
// returned, including runs of whitespace and individual punctuation marks,
// so concatenating the result gives back text.
func Words(text string) []string {
	var words []string
	state := -1
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		words = append(words, word)
	}
	return words
}

var stripRE = regexp.MustCompile(`('s|,|\.)`)

// DefaultPunctuation lists the single-character tokens discarded by default.
var DefaultPunctuation = []string{
	"!", `"`, "#", "$", "%", "&", "'", "(", ")", "*", "+", ",", ";", ".", "/",
	":", "<", "=", ">", "?", "@", "[", `\`, "]", "^", "_", "`", "{", "|", "}",
	"~", "-",
}
