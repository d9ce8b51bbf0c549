package codec

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/record"
)

// TOML is the TOML codec. The nested mapping is written as a [b] table.
type TOML struct {
	// Strict rejects keys that have no matching record field.
	Strict bool
}

func (c *TOML) Name() string         { return FormatTOML }
func (c *TOML) Extensions() []string { return []string{".toml"} }

// Precision is a millisecond: TOML only guarantees millisecond datetimes
// across implementations.
func (c *TOML) Precision() time.Duration { return time.Millisecond }

// Encode writes rec as a TOML document.
func (c *TOML) Encode(w io.Writer, rec *record.Record) error {
	if rec == nil {
		return nilRecord(c.Name())
	}
	return c.EncodeValue(w, rec)
}

// EncodeValue writes v, which must be a struct or a map, as a TOML document.
// A nil value writes nothing.
func (c *TOML) EncodeValue(w io.Writer, v any) error {
	if v == nil {
		return nil
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "  "
	if err := enc.Encode(v); err != nil {
		return encodeFailed(c.Name(), err)
	}
	return nil
}

// Decode reads a TOML document from r. A document without keys yields
// (nil, nil).
func (c *TOML) Decode(r io.Reader) (*record.Record, error) {
	data, err := readAll(c.Name(), r)
	if err != nil {
		return nil, err
	}

	var rec record.Record
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&rec)
	if err != nil {
		return nil, malformed(c.Name(), err)
	}
	if len(md.Keys()) == 0 {
		return nil, nil
	}
	if undecoded := md.Undecoded(); c.Strict && len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeMalformed, "decode %s: unknown keys: %s", c.Name(), strings.Join(keys, ", "))
	}
	return &rec, nil
}

// DecodeValue reads a TOML document from r into a generic map.
func (c *TOML) DecodeValue(r io.Reader) (any, error) {
	data, err := readAll(c.Name(), r)
	if err != nil {
		return nil, err
	}

	v := make(map[string]any)
	if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return nil, malformed(c.Name(), err)
	}
	if len(v) == 0 {
		return nil, nil
	}
	return v, nil
}

var _ Codec = (*TOML)(nil)
