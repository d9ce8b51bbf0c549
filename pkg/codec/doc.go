// Package codec converts records to and from their textual file formats.
//
// Three formats are supported:
//   - yaml: block-style YAML via gopkg.in/yaml.v3 (the default)
//   - toml: TOML via github.com/BurntSushi/toml
//   - json: indented JSON via encoding/json
//
// Every codec distinguishes an empty document from a malformed one: decoding
// an empty stream (or a YAML/JSON null document) returns a nil record and a
// nil error, while content that does not parse returns an error with code
// [errors.ErrCodeMalformed].
//
// Besides the typed [record.Record], each codec can decode and encode a
// generic value (maps, slices and scalars) so that files can be inspected
// without assuming their shape.
//
// # Usage
//
//	c, err := codec.ByName("yaml", false)
//	if err != nil {
//	    return err
//	}
//	if err := c.Encode(w, rec); err != nil {
//	    return err
//	}
//
// [errors.ErrCodeMalformed]: github.com/matzehuels/roundtrip/pkg/errors
package codec
