// Package pkg provides the libraries behind the roundtrip command.
//
// # Overview
//
// Roundtrip loads a small structured record from a file, falls back to a
// default record when the file is missing or unreadable, writes the record
// back, and parses the written file once more. The pkg directory is organized
// bottom-up:
//
//  1. [errors] - Error codes and file-error classification
//  2. [record] - The record model and its default value
//  3. [codec] - YAML, TOML and JSON encoders for records
//  4. [store] - Record files on an afero filesystem
//  5. [roundtrip] - Orchestration (load → save → reload) and reporting
//  6. [observability] - Stage hooks for logging and metrics
//
// # Architecture
//
// The data flow of one round trip:
//
//	record file (or default record)
//	         ↓
//	    [store] package (open + decode through a [codec])
//	         ↓
//	    [roundtrip] package (report, serialize, reload)
//	         ↓
//	    record file rewritten in block style
//
// # Quick Start
//
// Run a round trip on the OS filesystem:
//
//	import (
//	    "context"
//	    "fmt"
//	    "os"
//
//	    "github.com/charmbracelet/log"
//	    "github.com/spf13/afero"
//
//	    "github.com/matzehuels/roundtrip/pkg/roundtrip"
//	)
//
//	opts := roundtrip.Options{Path: "example.yaml"}
//	rep := roundtrip.NewTextReporter(os.Stdout)
//	res, err := roundtrip.Execute(context.Background(), afero.NewOsFs(), opts, rep, log.Default())
//	if err != nil {
//	    return err // invalid options only
//	}
//	fmt.Println(res.Consistent)
//
// Stage failures never abort a run: they are reported through the
// [roundtrip.Reporter] and recorded on the [roundtrip.Result].
//
// [errors]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/errors
// [record]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/record
// [codec]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/codec
// [store]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/store
// [roundtrip]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/roundtrip
// [observability]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/observability
// [roundtrip.Reporter]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/roundtrip#Reporter
// [roundtrip.Result]: https://pkg.go.dev/github.com/matzehuels/roundtrip/pkg/roundtrip#Result
package pkg
