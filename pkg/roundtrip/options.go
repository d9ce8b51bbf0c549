package roundtrip

import (
	"github.com/spf13/afero"

	"github.com/matzehuels/roundtrip/pkg/codec"
	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/store"
)

// DefaultPath is the record file used when no path is given.
const DefaultPath = "example.yaml"

// Options configures a round trip.
type Options struct {
	// Path is the record file. Defaults to DefaultPath.
	Path string

	// Format is the codec name ("yaml", "toml", "json"). Empty infers it
	// from the extension of Path.
	Format string

	// Strict rejects keys that do not belong to a record.
	Strict bool

	// Fresh skips loading and writes the default record.
	Fresh bool
}

// ValidateAndSetDefaults fills empty fields and validates the rest.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Path == "" {
		o.Path = DefaultPath
	}
	if err := errors.ValidatePath(o.Path); err != nil {
		return err
	}
	if o.Format == "" {
		o.Format = codec.FormatForPath(o.Path)
	}
	return codec.Validate(o.Format)
}

// NewStore returns a store on fs using the codec selected by o.
// Call ValidateAndSetDefaults first.
func (o *Options) NewStore(fs afero.Fs) (*store.Store, error) {
	c, err := codec.ByName(o.Format, o.Strict)
	if err != nil {
		return nil, err
	}
	return store.New(fs, c), nil
}
