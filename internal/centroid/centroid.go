// Package centroid turns uploaded CSV text into X/Y series.
package centroid

import (
	"io"
	"math"
	"strconv"
	"strings"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
	"github.com/jitterbugs/jitterkit/internal/model"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Header names matched (trimmed, case-insensitive) by Parse.
const (
	HeaderX = "Centroid X"
	HeaderY = "Centroid Y"
)

// CSVExt is the only accepted upload suffix.
const CSVExt = ".csv"

// HasCSVExtension reports whether name ends in .csv, ignoring case.
func HasCSVExtension(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), CSVExt)
}

// CheckFileName rejects anything that isn't a .csv file.
func CheckFileName(name string) error {
	if !HasCSVExtension(name) {
		return jkerr.InvalidFileType(name)
	}
	return nil
}

// Parse extracts the Centroid X / Centroid Y columns from text.
func Parse(text string) (*model.SeriesPair, error) {
	return ParseColumns(text, HeaderX, HeaderY)
}

// byteOrderMark is prepended to UTF-8 CSVs saved by Excel.
const byteOrderMark = "\ufeff"

// decodeBOM drops a leading byte order mark. A UTF-16 mark switches the
// reader to UTF-16 decoding. Input without a mark passes through unchanged.
func decodeBOM(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// ParseReader reads r fully and parses it with Parse.
func ParseReader(r io.Reader) (*model.SeriesPair, error) {
	data, err := io.ReadAll(decodeBOM(r))
	if err != nil {
		return nil, err
	}
	return Parse(string(data))
}

// ParseColumns extracts two columns located by header name.
//
// The first line is the header row. Data rows that are too short, or whose
// target fields are not numbers, are skipped. If either header is missing no
// row can qualify, so the result is the same NoValidData error as a file
// with only bad rows.
func ParseColumns(text, xHeader, yHeader string) (*model.SeriesPair, error) {
	text = strings.TrimPrefix(text, byteOrderMark)
	lines := strings.Split(strings.TrimSpace(text), "\n")
	headers := strings.Split(lines[0], ",")

	xIndex := headerIndex(headers, xHeader)
	yIndex := headerIndex(headers, yHeader)

	rows := len(lines) - 1
	if xIndex < 0 || yIndex < 0 {
		return nil, jkerr.NoValidData(rows)
	}
	need := max(xIndex, yIndex)

	series := model.NewSeriesPair(rows)

	for _, line := range lines[1:] {
		fields := strings.Split(line, ",")
		if len(fields) <= need {
			continue
		}
		x, ok := parseNumber(fields[xIndex])
		if !ok {
			continue
		}
		y, ok := parseNumber(fields[yIndex])
		if !ok {
			continue
		}
		series.Add(x, y)
	}

	if series.Empty() {
		return nil, jkerr.NoValidData(rows)
	}
	return series, nil
}

func headerIndex(headers []string, name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, h := range headers {
		if strings.ToLower(strings.TrimSpace(h)) == want {
			return i
		}
	}
	return -1
}

// parseNumber accepts a float with optional surrounding whitespace.
// NaN and infinities are treated as not-a-number.
func parseNumber(field string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
