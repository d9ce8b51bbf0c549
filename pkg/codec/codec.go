package codec

import (
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/record"
)

// Supported format names.
const (
	FormatYAML = "yaml"
	FormatTOML = "toml"
	FormatJSON = "json"
)

// DefaultFormat is used when no format is given and the path extension is
// not recognized.
const DefaultFormat = FormatYAML

// Codec encodes and decodes records in one textual format.
type Codec interface {
	// Name returns the format name ("yaml", "toml", "json").
	Name() string

	// Extensions returns the file extensions, with leading dot, that map to
	// this format.
	Extensions() []string

	// Precision is the finest timestamp resolution that survives a round
	// trip through this format.
	Precision() time.Duration

	// Encode writes rec to w.
	Encode(w io.Writer, rec *record.Record) error

	// Decode reads one record from r. An empty document yields (nil, nil).
	Decode(r io.Reader) (*record.Record, error)

	// EncodeValue writes a generic value to w.
	EncodeValue(w io.Writer, v any) error

	// DecodeValue reads one document from r into generic maps, slices and
	// scalars. An empty document yields (nil, nil).
	DecodeValue(r io.Reader) (any, error)
}

var constructors = map[string]func(strict bool) Codec{
	FormatYAML: func(strict bool) Codec { return &YAML{Strict: strict} },
	FormatTOML: func(strict bool) Codec { return &TOML{Strict: strict} },
	FormatJSON: func(strict bool) Codec { return &JSON{Strict: strict} },
}

// Names returns the supported format names in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Validate reports whether format names a supported codec.
func Validate(format string) error {
	if _, ok := constructors[format]; !ok {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(Names(), ", "))
	}
	return nil
}

// ByName returns the codec for format. Strict codecs reject keys that do not
// belong to a record.
func ByName(format string, strict bool) (Codec, error) {
	if err := Validate(format); err != nil {
		return nil, err
	}
	return constructors[format](strict), nil
}

// FormatForPath infers the format from the extension of path, falling back
// to DefaultFormat.
func FormatForPath(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	for _, name := range Names() {
		if slices.Contains(constructors[name](false).Extensions(), ext) {
			return name
		}
	}
	return DefaultFormat
}

// ForPath returns the codec inferred from the extension of path.
func ForPath(path string, strict bool) Codec {
	return constructors[FormatForPath(path)](strict)
}

// readAll reads the whole document so that read failures are reported as
// file access errors rather than malformed content.
func readAll(format string, r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileAccess, err, "read %s", format)
	}
	return data, nil
}

func malformed(format string, cause error) error {
	return errors.Wrap(errors.ErrCodeMalformed, cause, "decode %s", format)
}

func encodeFailed(format string, cause error) error {
	return errors.Wrap(errors.ErrCodeInternal, cause, "encode %s", format)
}

func nilRecord(format string) error {
	return errors.New(errors.ErrCodeInvalidInput, "encode %s: nil record", format)
}
