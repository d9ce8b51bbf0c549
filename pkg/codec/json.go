package codec

import (
	"bytes"
	"encoding/json"
	"io"
	"time"

	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/record"
)

// JSON is the indented JSON codec.
type JSON struct {
	// Strict rejects object keys that have no matching record field.
	Strict bool
}

func (c *JSON) Name() string             { return FormatJSON }
func (c *JSON) Extensions() []string     { return []string{".json"} }
func (c *JSON) Precision() time.Duration { return time.Nanosecond }

// Encode writes rec as an indented JSON object.
func (c *JSON) Encode(w io.Writer, rec *record.Record) error {
	if rec == nil {
		return nilRecord(c.Name())
	}
	return c.EncodeValue(w, rec)
}

// EncodeValue writes v as indented JSON.
func (c *JSON) EncodeValue(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return encodeFailed(c.Name(), err)
	}
	return nil
}

// Decode reads one JSON value from r. An empty stream or a JSON null yields
// (nil, nil).
func (c *JSON) Decode(r io.Reader) (*record.Record, error) {
	raw, err := c.readValue(r)
	if err != nil || raw == nil {
		return nil, err
	}

	var rec record.Record
	dec := json.NewDecoder(bytes.NewReader(raw))
	if c.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(&rec); err != nil {
		return nil, malformed(c.Name(), err)
	}
	return &rec, nil
}

// DecodeValue reads one JSON value from r into generic values.
func (c *JSON) DecodeValue(r io.Reader) (any, error) {
	raw, err := c.readValue(r)
	if err != nil || raw == nil {
		return nil, err
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, malformed(c.Name(), err)
	}
	return v, nil
}

// readValue returns the only JSON value of r, or nil if r is empty or holds
// null. Anything but whitespace after the value is malformed.
func (c *JSON) readValue(r io.Reader) (json.RawMessage, error) {
	data, err := readAll(c.Name(), r)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, malformed(c.Name(), err)
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); err {
	case io.EOF:
	case nil:
		return nil, errors.New(errors.ErrCodeMalformed, "decode %s: unexpected data after top-level value", c.Name())
	default:
		return nil, malformed(c.Name(), err)
	}

	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}
	return raw, nil
}

var _ Codec = (*JSON)(nil)
