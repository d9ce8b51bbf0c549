package codec

import (
	"bytes"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/record"
)

// yamlIndent is the number of spaces per nesting level in written files.
const yamlIndent = 2

// YAML is the block-style YAML codec.
type YAML struct {
	// Strict rejects mapping keys that have no matching record field.
	Strict bool
}

func (c *YAML) Name() string             { return FormatYAML }
func (c *YAML) Extensions() []string     { return []string{".yaml", ".yml"} }
func (c *YAML) Precision() time.Duration { return time.Nanosecond }

// Encode writes rec as a single block-style document.
func (c *YAML) Encode(w io.Writer, rec *record.Record) error {
	if rec == nil {
		return nilRecord(c.Name())
	}
	return c.EncodeValue(w, rec)
}

// EncodeValue writes v as a single block-style document.
func (c *YAML) EncodeValue(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		_ = enc.Close()
		return encodeFailed(c.Name(), err)
	}
	if err := enc.Close(); err != nil {
		return encodeFailed(c.Name(), err)
	}
	return nil
}

// Decode reads the first document of r into a record.
func (c *YAML) Decode(r io.Reader) (*record.Record, error) {
	data, err := readAll(c.Name(), r)
	if err != nil {
		return nil, err
	}

	empty, err := c.isEmpty(data)
	if err != nil || empty {
		return nil, err
	}

	var rec record.Record
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(c.Strict)
	if err := dec.Decode(&rec); err != nil {
		return nil, malformed(c.Name(), err)
	}
	return &rec, nil
}

// DecodeValue reads the first document of r into generic values.
func (c *YAML) DecodeValue(r io.Reader) (any, error) {
	data, err := readAll(c.Name(), r)
	if err != nil {
		return nil, err
	}

	empty, err := c.isEmpty(data)
	if err != nil || empty {
		return nil, err
	}

	var v any
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&v); err != nil {
		return nil, malformed(c.Name(), err)
	}
	return v, nil
}

// isEmpty parses data into a node tree and reports whether it holds no
// document or only a null document. Syntax errors and streams with more than
// one document surface here, before any typed decoding.
func (c *YAML) isEmpty(data []byte) (bool, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return true, nil
		}
		return false, malformed(c.Name(), err)
	}

	var next yaml.Node
	switch err := dec.Decode(&next); err {
	case io.EOF:
	case nil:
		return false, errors.New(errors.ErrCodeMalformed, "decode %s: expected a single document, found another at line %d", c.Name(), next.Line)
	default:
		return false, malformed(c.Name(), err)
	}

	if len(doc.Content) == 0 {
		return true, nil
	}
	root := doc.Content[0]
	return root.Kind == yaml.ScalarNode && root.ShortTag() == "!!null", nil
}

var _ Codec = (*YAML)(nil)
