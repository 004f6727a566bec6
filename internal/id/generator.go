package id

import (
	"time"

	fid "github.com/amterp/flexid"
)

// Kind prefixes an ID so log lines show what it identifies.
type Kind string

const (
	Session Kind = "ses"
	Upload  Kind = "upl"
)

var generator *fid.Generator

func init() {
	epoch := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	config := fid.NewConfig().
		WithEpoch(epoch).
		WithTickSize(time.Millisecond).
		WithNumRandomChars(4)

	generator = fid.MustNewGenerator(config)
}

// New returns a new unique ID of the given kind, e.g. "upl_3kT9xa2".
func New(kind Kind) string {
	return string(kind) + "_" + generator.MustGenerate()
}
