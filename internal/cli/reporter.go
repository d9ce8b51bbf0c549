package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/record"
	"github.com/matzehuels/roundtrip/pkg/roundtrip"
)

// reporter renders round-trip reports with the CLI's styles.
type reporter struct {
	ui *ui
}

func newReporter(u *ui) *reporter {
	return &reporter{ui: u}
}

func (r *reporter) Loaded(path string, rec *record.Record) {
	r.ui.success("Loaded %s", path)
	r.printRecord(rec)
}

func (r *reporter) Defaulted(path string, rec *record.Record, cause error) {
	if cause != nil {
		r.ui.info("Using default record")
	} else {
		r.ui.info("Using default record for %s", path)
	}
	r.printRecord(rec)
}

func (r *reporter) Written(path string, data []byte) {
	r.ui.success("Wrote %d bytes", len(data))
	r.ui.file(path)
	r.ui.block("--- dump:", string(data))
	r.ui.newline()
}

func (r *reporter) Reloaded(path string, rec *record.Record) {
	r.ui.success("Reloaded %s", path)
	r.printRecord(rec)
}

func (r *reporter) Empty(stage, path string) {
	r.ui.warning("%s: %s is empty", stageTitle(stage), path)
}

func (r *reporter) Failed(stage, path string, err error) {
	r.ui.failure("%s failed: %s", stageTitle(stage), errors.UserMessage(err))
	if code := errors.GetCode(err); code != "" {
		r.ui.detail("code: %s", code)
	}
}

func (r *reporter) printRecord(rec *record.Record) {
	if rec == nil {
		r.ui.detail("(no record)")
		return
	}
	r.ui.keyValue("a", rec.A.Format(time.RFC3339Nano))
	r.ui.keyValue("b.c", fmt.Sprint(rec.B.C))
	r.ui.keyValue("b.d", "["+strings.Join(rec.B.D, ", ")+"]")
	r.ui.newline()
}

func stageTitle(stage string) string {
	if stage == "" {
		return stage
	}
	return strings.ToUpper(stage[:1]) + stage[1:]
}

var _ roundtrip.Reporter = (*reporter)(nil)
