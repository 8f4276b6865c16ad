package sentiment

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when accuracy is requested over zero predictions.
var ErrEmptyInput = errors.New("no predictions to evaluate")

// A DataSourceError reports that a record source could not be opened or read.
type DataSourceError struct {
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// A RecordFormatError reports a row that does not have the expected shape.
// Row is 1-based and counts data rows only (the header is not row 1). A
// Row of 0 means the problem is with the file as a whole, such as a
// missing column.
type RecordFormatError struct {
	Path   string
	Row    int
	Column string
	Err    error
}

func (e *RecordFormatError) Error() string {
	src := e.Path
	if src == "" {
		src = "input"
	}
	switch {
	case e.Row > 0 && e.Column != "":
		return fmt.Sprintf("%s: row %d, column %q: %v", src, e.Row, e.Column, e.Err)
	case e.Row > 0:
		return fmt.Sprintf("%s: row %d: %v", src, e.Row, e.Err)
	case e.Column != "":
		return fmt.Sprintf("%s: column %q: %v", src, e.Column, e.Err)
	default:
		return fmt.Sprintf("%s: %v", src, e.Err)
	}
}

func (e *RecordFormatError) Unwrap() error { return e.Err }
