package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/matzehuels/roundtrip/pkg/observability"
)

type testCLI struct {
	*CLI
	out  *bytes.Buffer
	logs *bytes.Buffer
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()
	t.Cleanup(observability.Reset)

	var out, logs bytes.Buffer
	c := New(&logs, LogInfo)
	c.SetOutput(&out)
	c.fs = afero.NewMemMapFs()
	return &testCLI{CLI: c, out: &out, logs: &logs}
}

func (tc *testCLI) execute(args ...string) error {
	root := tc.RootCommand()
	root.SetArgs(args)
	root.SetOut(tc.out)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func (tc *testCLI) writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := afero.WriteFile(tc.fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func (tc *testCLI) readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := afero.ReadFile(tc.fs, path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func assertContains(t *testing.T, out string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q:\n%s", w, out)
		}
	}
}

func TestRootMissingFile(t *testing.T) {
	tc := newTestCLI(t)

	if err := tc.execute(); err != nil {
		t.Fatalf("execute() error = %v, want nil", err)
	}

	assertContains(t, tc.out.String(),
		"Load failed: open example.yaml",
		"code: FILE_NOT_FOUND",
		"Using default record",
		"Wrote",
		"--- dump:",
		"Reloaded example.yaml",
		"Round trip consistent",
	)

	content := tc.readFile(t, "example.yaml")
	assertContains(t, content, "b:\n  c: 2\n", "- d\n", "- e\n")
	if strings.Contains(content, "[") {
		t.Errorf("file should be block style:\n%s", content)
	}
	assertContains(t, tc.logs.String(), "round trip finished")
}

func TestRootExistingFile(t *testing.T) {
	tc := newTestCLI(t)
	tc.writeFile(t, "example.yaml", "a: 2018-04-21T22:14:43.256294Z\nb:\n  c: 5\n  d: [x, z]\n")

	if err := tc.execute(); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	out := tc.out.String()
	assertContains(t, out, "Loaded example.yaml", "2018-04-21T22:14:43.256294Z", "Round trip consistent")
	if strings.Contains(out, "failed") {
		t.Errorf("no stage should fail:\n%s", out)
	}

	content := tc.readFile(t, "example.yaml")
	assertContains(t, content, "c: 5", "- x\n", "- z\n")
}

func TestRootMalformedFileDoesNotFail(t *testing.T) {
	tc := newTestCLI(t)
	tc.writeFile(t, "example.yaml", "b:\n  c: 2\n   d: [d, e]\n")

	if err := tc.execute(); err != nil {
		t.Fatalf("execute() error = %v, want nil", err)
	}

	assertContains(t, tc.out.String(),
		"Load failed: parse example.yaml as yaml",
		"code: MALFORMED_CONTENT",
		"Round trip consistent",
	)
}

func TestRootFresh(t *testing.T) {
	tc := newTestCLI(t)
	tc.writeFile(t, "example.yaml", "a: 2018-04-21T22:14:43Z\nb:\n  c: 9\n  d: [x, z]\n")

	if err := tc.execute("--fresh"); err != nil {
		t.Fatalf("execute() error = %v", err)
	}

	if strings.Contains(tc.out.String(), "Loaded") {
		t.Error("--fresh should not load the existing file")
	}
	assertContains(t, tc.readFile(t, "example.yaml"), "c: 2")
}

func TestRootFormats(t *testing.T) {
	tests := []struct {
		name string
		args []string
		path string
		want string
	}{
		{"toml by extension", []string{"-f", "example.toml"}, "example.toml", "[b]"},
		{"json by extension", []string{"--file", "example.json"}, "example.json", `"b": {`},
		{"explicit format", []string{"-f", "record.txt", "--format", "toml"}, "record.txt", "[b]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(t)
			if err := tc.execute(tt.args...); err != nil {
				t.Fatalf("execute(%v) error = %v", tt.args, err)
			}
			assertContains(t, tc.readFile(t, tt.path), tt.want)
			assertContains(t, tc.out.String(), "Round trip consistent")
		})
	}
}

func TestRootInvalidFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"--format", "xml"}},
		{"directory path", []string{"-f", "conf/"}},
		{"unexpected argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(t)
			if err := tc.execute(tt.args...); err == nil {
				t.Errorf("execute(%v) error = nil, want error", tt.args)
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	tc := newTestCLI(t)
	tc.writeFile(t, "example.yaml", "a: 2026-10-18T09:41:07Z\nb:\n  c: 2\n  d:\n    - d\n    - e\n")

	if err := tc.execute("show"); err != nil {
		t.Fatalf("execute(show) error = %v", err)
	}

	assertContains(t, tc.out.String(), "Reloaded example.yaml", "2026-10-18T09:41:07Z", "[d, e]")
	if strings.Contains(tc.out.String(), "Wrote") {
		t.Error("show must not write the file")
	}
}

func TestShowCommandErrors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    string
	}{
		{"missing", nil, "code: FILE_NOT_FOUND"},
		{"malformed", ptr("a: 1\n b: 2\n"), "code: MALFORMED_CONTENT"},
		{"empty", ptr(""), "example.yaml is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := newTestCLI(t)
			if tt.content != nil {
				tc.writeFile(t, "example.yaml", *tt.content)
			}
			if err := tc.execute("show"); err != nil {
				t.Fatalf("execute(show) error = %v, want nil", err)
			}
			assertContains(t, tc.out.String(), tt.want)
		})
	}
}

func TestDumpCommand(t *testing.T) {
	tc := newTestCLI(t)
	tc.writeFile(t, "example.yaml", "a: 2018-04-21 22:14:43.256294\nb:\n  c: 2\n  d: [d, e]\nextra: kept\n")

	if err := tc.execute("dump"); err != nil {
		t.Fatalf("execute(dump) error = %v", err)
	}

	assertContains(t, tc.out.String(), "--- m:", "--- m dump:", "extra: kept")
}

func TestDumpCommandMalformed(t *testing.T) {
	tc := newTestCLI(t)
	tc.writeFile(t, "example.yaml", "b: [unclosed\n")

	if err := tc.execute("dump"); err != nil {
		t.Fatalf("execute(dump) error = %v, want nil", err)
	}
	assertContains(t, tc.out.String(), "Dump failed")
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			tc := newTestCLI(t)
			if err := tc.execute("completion", shell); err != nil {
				t.Fatalf("execute(completion %s) error = %v", shell, err)
			}
			assertContains(t, tc.out.String(), "roundtrip")
		})
	}

	tc := newTestCLI(t)
	if err := tc.execute("completion", "tcsh"); err == nil {
		t.Error("unsupported shell should fail")
	}
}

func TestVersionFlag(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.execute("--version"); err != nil {
		t.Fatalf("execute(--version) error = %v", err)
	}
	assertContains(t, tc.out.String(), "roundtrip version ")
}

func TestVerboseHooksLogStages(t *testing.T) {
	tc := newTestCLI(t)
	tc.SetLogLevel(LogDebug)

	if err := tc.execute(); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	assertContains(t, tc.logs.String(), "stage finished", "stage=save", "run finished")
}

func ptr(s string) *string { return &s }

func TestRootStrict(t *testing.T) {
	content := "a: 2018-04-21T22:14:43Z\nb:\n  c: 3\n  d: [x, z]\nextra: 1\n"

	tc := newTestCLI(t)
	tc.writeFile(t, "example.yaml", content)
	if err := tc.execute(); err != nil {
		t.Fatalf("execute() error = %v", err)
	}
	assertContains(t, tc.out.String(), "Loaded example.yaml")

	tc = newTestCLI(t)
	tc.writeFile(t, "example.yaml", content)
	if err := tc.execute("--strict"); err != nil {
		t.Fatalf("execute(--strict) error = %v", err)
	}
	assertContains(t, tc.out.String(), "Load failed", "code: MALFORMED_CONTENT", "Using default record")
}

func TestFormatFlagCompletion(t *testing.T) {
	tc := newTestCLI(t)
	if err := tc.execute("__complete", "--format", ""); err != nil {
		t.Fatalf("execute(__complete) error = %v", err)
	}
	assertContains(t, tc.out.String(), "json\n", "toml\n", "yaml\n")
}

func TestWriteCompletionUnsupportedShell(t *testing.T) {
	var buf bytes.Buffer
	if err := writeCompletion(newTestCLI(t).RootCommand(), "tcsh", &buf); err == nil {
		t.Error("writeCompletion(tcsh) error = nil, want error")
	}
	if buf.Len() != 0 {
		t.Errorf("nothing should be written, got %q", buf.String())
	}
}
