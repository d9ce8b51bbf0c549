package roundtrip

import (
	"fmt"
	"io"

	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/record"
)

// Reporter is the user-visible output of a round trip. Every stage outcome,
// including every failure, goes through it.
type Reporter interface {
	// Loaded is called with the record parsed from path.
	Loaded(path string, rec *record.Record)

	// Defaulted is called with the default record used in place of the
	// file's content. cause is the load failure, or nil if the file was
	// empty or loading was skipped.
	Defaulted(path string, rec *record.Record, cause error)

	// Written is called with the bytes written to path.
	Written(path string, data []byte)

	// Reloaded is called with the record parsed back from path.
	Reloaded(path string, rec *record.Record)

	// Empty is called when a stage found path empty.
	Empty(stage, path string)

	// Failed is called when a stage fails.
	Failed(stage, path string, err error)
}

// TextReporter writes plain-text reports to a writer.
type TextReporter struct {
	w io.Writer
}

// NewTextReporter creates a reporter writing to w.
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

func (t *TextReporter) Loaded(path string, rec *record.Record) {
	fmt.Fprintf(t.w, "--- %s:\n%s\n\n", path, rec)
}

func (t *TextReporter) Defaulted(path string, rec *record.Record, cause error) {
	fmt.Fprintf(t.w, "--- default:\n%s\n\n", rec)
}

func (t *TextReporter) Written(path string, data []byte) {
	fmt.Fprintf(t.w, "--- %s dump:\n%s\n", path, data)
}

func (t *TextReporter) Reloaded(path string, rec *record.Record) {
	fmt.Fprintf(t.w, "--- %s reloaded:\n%s\n\n", path, rec)
}

func (t *TextReporter) Empty(stage, path string) {
	fmt.Fprintf(t.w, "%s %s: file is empty\n", stage, path)
}

func (t *TextReporter) Failed(stage, path string, err error) {
	fmt.Fprintf(t.w, "%s %s: %s\n", stage, path, errors.UserMessage(err))
}

var _ Reporter = (*TextReporter)(nil)
