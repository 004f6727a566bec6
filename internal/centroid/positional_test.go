package centroid

import (
	"reflect"
	"strings"
	"testing"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
)

const trackerExport = `Jitter Bug Tracker
Version,2
Subject,bug-07
Date,2024-07-01
Camera,cam0
FPS,30
Threshold,0.5
Frame,X,Y
0,10.5,20.25
1,11,21
2,12.5,19
`

func TestParsePositional_Defaults(t *testing.T) {
	series, err := ParsePositional(strings.NewReader(trackerExport), DefaultPositionalOptions())
	if err != nil {
		t.Fatalf("ParsePositional failed: %v", err)
	}
	if !reflect.DeepEqual(series.X, []float64{10.5, 11, 12.5}) {
		t.Errorf("X = %v", series.X)
	}
	if !reflect.DeepEqual(series.Y, []float64{20.25, 21, 19}) {
		t.Errorf("Y = %v", series.Y)
	}
}

func TestParsePositional_StrictOnBadValue(t *testing.T) {
	input := "h\n0,1,2\n1,oops,3\n"

	_, err := ParsePositional(strings.NewReader(input), PositionalOptions{SkipRows: 1, XCol: 1, YCol: 2})
	if err == nil {
		t.Fatal("expected error for non-numeric value")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should name the line: %v", err)
	}
}

func TestParsePositional_ShortRow(t *testing.T) {
	_, err := ParsePositional(strings.NewReader("0,1\n"), PositionalOptions{XCol: 1, YCol: 2})
	if err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected short row error, got %v", err)
	}
}

func TestParsePositional_OnlyPreamble(t *testing.T) {
	_, err := ParsePositional(strings.NewReader("a\nb\n"), PositionalOptions{SkipRows: 8, XCol: 0, YCol: 1})
	if !jkerr.IsNoValidData(err) {
		t.Errorf("expected no valid data error, got %v", err)
	}
}

func TestParsePositional_BadOptions(t *testing.T) {
	_, err := ParsePositional(strings.NewReader("1,2\n"), PositionalOptions{XCol: -1})
	if !jkerr.IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestParsePositional_RejectsNonFinite(t *testing.T) {
	for _, row := range []string{"0,NaN,1", "0,1,+Inf"} {
		_, err := ParsePositional(strings.NewReader(row+"\n"), PositionalOptions{XCol: 1, YCol: 2})
		if err == nil || !strings.Contains(err.Error(), "line 1") {
			t.Errorf("row %q: expected line error, got %v", row, err)
		}
	}
}

func TestParsePositional_ByteOrderMark(t *testing.T) {
	series, err := ParsePositional(strings.NewReader("\ufeff0,1.5,2.5\n1,3,4\n"), PositionalOptions{XCol: 1, YCol: 2})
	if err != nil {
		t.Fatalf("ParsePositional failed: %v", err)
	}
	if series.Len() != 2 || series.X[0] != 1.5 {
		t.Errorf("series = %+v", series)
	}
}
