package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/rafabd1/Registro/internal/student"
)

// FileStore persists the whole collection to a single file. It is the only
// reader and writer of that file for the life of the process.
type FileStore struct {
	path  string
	codec Codec
}

// NewFileStore builds a store for the given path and format.
func NewFileStore(path, format string) (*FileStore, error) {
	codec, err := ForFormat(format)
	if err != nil {
		return nil, err
	}
	return &FileStore{path: path, codec: codec}, nil
}

// Path returns the data file location.
func (fs *FileStore) Path() string { return fs.path }

// Format returns the active codec's name.
func (fs *FileStore) Format() string { return fs.codec.Name() }

// FormatError marks a data file that exists but cannot be parsed in the
// configured format.
type FormatError struct {
	Path   string
	Format string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: not valid %s: %v", e.Path, e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Load reads the configured file. A missing file is not an error: it yields
// an empty collection, matching first-run behavior.
func (fs *FileStore) Load() ([]student.Student, error) {
	data, err := os.ReadFile(fs.path)
	if os.IsNotExist(err) {
		return []student.Student{}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", fs.path)
	}
	records, err := fs.codec.Unmarshal(data)
	if err != nil {
		return nil, &FormatError{Path: fs.path, Format: fs.codec.Name(), Err: err}
	}
	return records, nil
}

// Save writes the full collection, replacing prior contents. The write goes
// through a temp file and a rename so a failure never leaves a half-written
// data file behind.
func (fs *FileStore) Save(records []student.Student) error {
	data, err := fs.codec.Marshal(records)
	if err != nil {
		return errors.Wrapf(err, "encoding %s", fs.codec.Name())
	}
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(fs.path)+".tmp*")
	if err != nil {
		return errors.Wrapf(err, "creating temp file in %s", dir)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrapf(err, "writing %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "closing %s", tmpName)
	}
	if err := os.Rename(tmpName, fs.path); err != nil {
		os.Remove(tmpName)
		return errors.Wrapf(err, "replacing %s", fs.path)
	}
	return nil
}
