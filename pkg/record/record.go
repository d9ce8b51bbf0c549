package record

import (
	"fmt"
	"slices"
	"time"

	"github.com/jinzhu/copier"
)

// Default sample values of the nested mapping.
const (
	DefaultC = 2
)

// DefaultD returns the default token sequence. A fresh slice is returned on
// every call so callers may modify it.
func DefaultD() []string {
	return []string{"d", "e"}
}

// Record is the in-memory value written to and read from the record file.
type Record struct {
	A time.Time `yaml:"a" toml:"a" json:"a"`
	B Nested    `yaml:"b" toml:"b" json:"b"`
}

// Nested is the mapping stored under key "b".
type Nested struct {
	C int      `yaml:"c" toml:"c" json:"c"`
	D []string `yaml:"d" toml:"d" json:"d"`
}

// Default returns the default record stamped with now.
func Default(now time.Time) *Record {
	return &Record{
		A: now,
		B: Nested{C: DefaultC, D: DefaultD()},
	}
}

// Clone returns a deep copy of r. Clone of a nil record is nil.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}
	out := &Record{A: r.A}
	if err := copier.CopyWithOption(&out.B, &r.B, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which cannot happen for
		// identical types.
		panic("record: copy nested mapping: " + err.Error())
	}
	return out
}

// Equal reports whether r and other hold the same values. Timestamps are
// truncated to precision before comparison; use 0 for exact comparison.
// Two nil records are equal.
func (r *Record) Equal(other *Record, precision time.Duration) bool {
	if r == nil || other == nil {
		return r == other
	}
	a, b := r.A, other.A
	if precision > 0 {
		a, b = a.Truncate(precision), b.Truncate(precision)
	}
	if !a.Equal(b) {
		return false
	}
	return r.B.C == other.B.C && slices.Equal(r.B.D, other.B.D)
}

// String renders r on one line, in the same shape the record file has.
func (r *Record) String() string {
	if r == nil {
		return "<nil>"
	}
	return fmt.Sprintf("{a: %s, b: {c: %d, d: %v}}", r.A.Format(time.RFC3339Nano), r.B.C, r.B.D)
}
