package sentiment

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Column names expected in the dataset headers.
const (
	ColSentiment = "sentiment"
	ColID        = "id"
	ColDate      = "date"
	ColQuery     = "query"
	ColUser      = "user"
	ColTweet     = "tweet"
)

var errMissingColumn = errors.New("missing column")

// ReaderConfig configures how delimited datasets are decoded.
type ReaderConfig struct {
	Delimiter rune
}

// DefaultReaderConfig returns a comma-delimited configuration.
func DefaultReaderConfig() ReaderConfig {
	return ReaderConfig{Delimiter: ','}
}

// LoadLabeled reads training tweets from the file at path.
func LoadLabeled(path string, config ReaderConfig) ([]LabeledRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	return decodeLabeled(data, path, config)
}

// LoadUnlabeled reads test tweets from the file at path.
func LoadUnlabeled(path string, config ReaderConfig) ([]UnlabeledRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	return decodeUnlabeled(data, path, config)
}

// LoadTruth reads ground-truth sentiments from the file at path.
func LoadTruth(path string, config ReaderConfig) ([]TruthRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DataSourceError{Path: path, Err: err}
	}
	return decodeTruth(data, path, config)
}

// ReadLabeled reads training tweets with columns sentiment, id, date,
// query, user and tweet. Columns are matched by header name.
func ReadLabeled(r io.Reader, config ReaderConfig) ([]LabeledRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataSourceError{Err: err}
	}
	return decodeLabeled(data, "", config)
}

// ReadUnlabeled reads test tweets with columns id, date, query, user and
// tweet.
func ReadUnlabeled(r io.Reader, config ReaderConfig) ([]UnlabeledRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataSourceError{Err: err}
	}
	return decodeUnlabeled(data, "", config)
}

// ReadTruth reads ground truth with columns sentiment and id.
func ReadTruth(r io.Reader, config ReaderConfig) ([]TruthRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &DataSourceError{Err: err}
	}
	return decodeTruth(data, "", config)
}

func decodeLabeled(data []byte, path string, config ReaderConfig) ([]LabeledRecord, error) {
	cols, n, err := readColumns(data, path, config,
		ColSentiment, ColID, ColDate, ColQuery, ColUser, ColTweet)
	if err != nil {
		return nil, err
	}

	records := make([]LabeledRecord, 0, n)
	for i := 0; i < n; i++ {
		sent, err := parseLabel(cols[ColSentiment][i])
		if err != nil {
			return nil, &RecordFormatError{Path: path, Row: i + 1, Column: ColSentiment, Err: err}
		}
		id, err := parseID(cols[ColID][i])
		if err != nil {
			return nil, &RecordFormatError{Path: path, Row: i + 1, Column: ColID, Err: err}
		}
		records = append(records, LabeledRecord{
			ID:        id,
			Sentiment: sent,
			Date:      cols[ColDate][i],
			Query:     cols[ColQuery][i],
			User:      cols[ColUser][i],
			Text:      cols[ColTweet][i],
		})
	}
	return records, nil
}

func decodeUnlabeled(data []byte, path string, config ReaderConfig) ([]UnlabeledRecord, error) {
	cols, n, err := readColumns(data, path, config,
		ColID, ColDate, ColQuery, ColUser, ColTweet)
	if err != nil {
		return nil, err
	}

	records := make([]UnlabeledRecord, 0, n)
	for i := 0; i < n; i++ {
		id, err := parseID(cols[ColID][i])
		if err != nil {
			return nil, &RecordFormatError{Path: path, Row: i + 1, Column: ColID, Err: err}
		}
		records = append(records, UnlabeledRecord{
			ID:    id,
			Date:  cols[ColDate][i],
			Query: cols[ColQuery][i],
			User:  cols[ColUser][i],
			Text:  cols[ColTweet][i],
		})
	}
	return records, nil
}

func decodeTruth(data []byte, path string, config ReaderConfig) ([]TruthRecord, error) {
	cols, n, err := readColumns(data, path, config, ColSentiment, ColID)
	if err != nil {
		return nil, err
	}

	records := make([]TruthRecord, 0, n)
	for i := 0; i < n; i++ {
		sent, err := parseLabel(cols[ColSentiment][i])
		if err != nil {
			return nil, &RecordFormatError{Path: path, Row: i + 1, Column: ColSentiment, Err: err}
		}
		id, err := parseID(cols[ColID][i])
		if err != nil {
			return nil, &RecordFormatError{Path: path, Row: i + 1, Column: ColID, Err: err}
		}
		records = append(records, TruthRecord{ID: id, Sentiment: sent})
	}
	return records, nil
}

// readColumns decodes data into a string-typed frame and returns the raw
// values of the wanted columns along with the row count. Input with no
// data rows, including input with no header at all, decodes to zero rows.
func readColumns(data []byte, path string, config ReaderConfig, wanted ...string) (map[string][]string, int, error) {
	delim := config.Delimiter
	if delim == 0 {
		delim = ','
	}

	header, hasRows, err := peekHeader(data, delim)
	if err != nil {
		return nil, 0, formatError(path, err)
	}
	if !hasRows {
		return emptyColumns(path, header, wanted)
	}

	df := dataframe.ReadCSV(bytes.NewReader(data),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.NaNValues(nil),
		dataframe.WithDelimiter(delim),
	)
	if df.Err != nil {
		if perr := locateParseError(data, delim); perr != nil {
			return nil, 0, formatError(path, perr)
		}
		return nil, 0, &RecordFormatError{Path: path, Err: df.Err}
	}

	present := make(map[string]bool, df.Ncol())
	for _, name := range df.Names() {
		present[name] = true
	}

	cols := make(map[string][]string, len(wanted))
	for _, name := range wanted {
		if !present[name] {
			return nil, 0, &RecordFormatError{Path: path, Column: name, Err: errMissingColumn}
		}
		cols[name] = df.Col(name).Records()
	}
	return cols, df.Nrow(), nil
}

// peekHeader reads the header record and reports whether any record
// follows it. A malformed second record still counts as a row; decoding
// reports it.
func peekHeader(data []byte, delim rune) ([]string, bool, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim

	header, err := r.Read()
	if err == io.EOF {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if _, err := r.Read(); err == io.EOF {
		return header, false, nil
	}
	return header, true, nil
}

func emptyColumns(path string, header, wanted []string) (map[string][]string, int, error) {
	cols := make(map[string][]string, len(wanted))
	if header == nil {
		for _, name := range wanted {
			cols[name] = nil
		}
		return cols, 0, nil
	}

	present := make(map[string]bool, len(header))
	for _, name := range header {
		present[name] = true
	}
	for _, name := range wanted {
		if !present[name] {
			return nil, 0, &RecordFormatError{Path: path, Column: name, Err: errMissingColumn}
		}
		cols[name] = nil
	}
	return cols, 0, nil
}

// locateParseError re-reads data to find the first malformed record.
func locateParseError(data []byte, delim rune) error {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = delim
	for {
		_, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// formatError converts a csv error into a RecordFormatError naming the data
// row (the header is line 1 of the file, so row = line - 1).
func formatError(path string, err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		row := perr.StartLine - 1
		if row < 0 {
			row = 0
		}
		return &RecordFormatError{Path: path, Row: row, Err: perr.Err}
	}
	return &RecordFormatError{Path: path, Err: err}
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

func parseLabel(s string) (Label, error) {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid sentiment %q", s)
	}
	return Label(v), nil
}
