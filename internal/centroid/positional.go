package centroid

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
)

// PositionalOptions selects columns by position for exports whose header
// block spans several rows (jitter bug tracker output).
type PositionalOptions struct {
	SkipRows int // leading rows to discard
	XCol     int // zero-based
	YCol     int // zero-based
}

// DefaultPositionalOptions matches the jitter bug tracker export layout:
// an 8 row preamble, then X and Y in the second and third columns.
func DefaultPositionalOptions() PositionalOptions {
	return PositionalOptions{SkipRows: 8, XCol: 1, YCol: 2}
}

// ParsePositional reads X/Y by column position after skipping SkipRows.
// Unlike ParseColumns it is strict: a short row or a non-numeric value is an
// error naming the line.
func ParsePositional(r io.Reader, opts PositionalOptions) (*model.SeriesPair, error) {
	if opts.SkipRows < 0 || opts.XCol < 0 || opts.YCol < 0 {
		return nil, jkerr.InvalidField("positional options", "rows and columns must be >= 0")
	}

	cr := csv.NewReader(decodeBOM(r))
	cr.FieldsPerRecord = -1 // preamble rows have ragged widths
	cr.TrimLeadingSpace = true

	series := model.NewSeriesPair(0)
	need := max(opts.XCol, opts.YCol)
	rows := 0
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if line <= opts.SkipRows {
			continue
		}
		rows++
		if len(record) <= need {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d", line, need+1, len(record))
		}
		x, ok := parseNumber(record[opts.XCol])
		if !ok {
			return nil, fmt.Errorf("line %d: column %d: %q is not a number", line, opts.XCol, record[opts.XCol])
		}
		y, ok := parseNumber(record[opts.YCol])
		if !ok {
			return nil, fmt.Errorf("line %d: column %d: %q is not a number", line, opts.YCol, record[opts.YCol])
		}
		series.Add(x, y)
	}

	if series.Empty() {
		return nil, jkerr.NoValidData(rows)
	}
	return series, nil
}
