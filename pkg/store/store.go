// Package store reads and writes a single record file.
//
// A Store pairs a filesystem with a codec. Every call opens the file, uses it
// and closes it again, so no handle outlives an operation. Errors are
// classified with pkg/errors: a missing file is FILE_NOT_FOUND, any other
// filesystem failure is FILE_ACCESS, and content the codec cannot parse is
// MALFORMED_CONTENT.
//
// The filesystem is an afero.Fs so that tests can run against an in-memory
// filesystem:
//
//	s := store.New(afero.NewMemMapFs(), &codec.YAML{})
//	if _, err := s.Save("example.yaml", rec); err != nil {
//	    return err
//	}
package store

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/matzehuels/roundtrip/pkg/codec"
	"github.com/matzehuels/roundtrip/pkg/errors"
	"github.com/matzehuels/roundtrip/pkg/record"
)

// fileMode is the permission used for newly written record files.
const fileMode = 0o644

// Store loads and saves records on a filesystem.
type Store struct {
	fs    afero.Fs
	codec codec.Codec
}

// New creates a store on fs using c. A nil codec selects YAML.
func New(fs afero.Fs, c codec.Codec) *Store {
	if c == nil {
		c = &codec.YAML{}
	}
	return &Store{fs: fs, codec: c}
}

// NewOS creates a store on the operating system filesystem.
func NewOS(c codec.Codec) *Store {
	return New(afero.NewOsFs(), c)
}

// Codec returns the codec used by the store.
func (s *Store) Codec() codec.Codec {
	return s.codec
}

// Exists reports whether path exists and is a regular file.
func (s *Store) Exists(path string) bool {
	info, err := s.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Load opens path and decodes one record from it. An empty file yields
// (nil, nil).
func (s *Store) Load(path string) (*record.Record, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.FileError("open", path, err)
	}
	defer f.Close()

	if err := checkRegular(f, path); err != nil {
		return nil, err
	}

	rec, err := s.codec.Decode(f)
	if err != nil {
		return nil, s.withPath(path, err)
	}
	return rec, nil
}

// LoadValue opens path and decodes one document from it into generic values.
// An empty file yields (nil, nil).
func (s *Store) LoadValue(path string) (any, error) {
	f, err := s.fs.Open(path)
	if err != nil {
		return nil, errors.FileError("open", path, err)
	}
	defer f.Close()

	if err := checkRegular(f, path); err != nil {
		return nil, err
	}

	v, err := s.codec.DecodeValue(f)
	if err != nil {
		return nil, s.withPath(path, err)
	}
	return v, nil
}

// Save encodes rec and writes it to path, replacing any existing content.
// Missing parent directories are created. The write is not atomic. Save
// returns the bytes written.
func (s *Store) Save(path string, rec *record.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, rec); err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.FileError("create directory for", path, err)
		}
	}

	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return nil, errors.FileError("create", path, err)
	}
	if _, err := f.Write(buf.Bytes()); err != nil {
		_ = f.Close()
		return nil, errors.FileError("write", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, errors.FileError("close", path, err)
	}
	return buf.Bytes(), nil
}

// checkRegular rejects directories, which some filesystems let Open succeed on.
func checkRegular(f afero.File, path string) error {
	info, err := f.Stat()
	if err != nil {
		return errors.FileError("stat", path, err)
	}
	if info.IsDir() {
		return errors.New(errors.ErrCodeFileAccess, "read %s: is a directory", path)
	}
	return nil
}

// withPath rewrites a codec error so its message names the file. Only
// malformed content is reported as a parse failure; other codes keep the
// codec's message.
func (s *Store) withPath(path string, err error) error {
	var e *errors.Error
	if stderrors.As(err, &e) {
		if e.Code != errors.ErrCodeMalformed || e.Cause == nil {
			return errors.Wrap(e.Code, e.Cause, "%s: %s", path, e.Message)
		}
		return errors.Wrap(e.Code, e.Cause, "parse %s as %s", path, s.codec.Name())
	}
	return errors.Wrap(errors.ErrCodeMalformed, err, "parse %s as %s", path, s.codec.Name())
}
