package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the location the recorder reads its configuration from.
const DefaultPath = "/home/girish/catkin_ws/location_recorder.yaml"

// Loader reads one configuration file.
type Loader struct {
	path string
	open func(name string) (io.ReadCloser, error)
}

// NewLoader returns a loader bound to path.
func NewLoader(path string) *Loader {
	return &Loader{path: path, open: openFile}
}

func openFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	return l.path
}

// Load opens the file, reads it to completion and decodes it. The file handle
// is closed before Load returns, whatever the outcome.
func (l *Loader) Load() (doc Document, err error) {
	f, err := l.open(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Document{}, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return Document{}, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			doc = Document{}
			err = fmt.Errorf("%w: close %s: %w", ErrUnreadable, l.path, closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return Document{}, fmt.Errorf("%w: read %s: %w", ErrUnreadable, l.path, err)
	}

	doc, err = Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", l.path, err)
	}
	return doc, nil
}

// Decode parses a single YAML document. Empty input yields a null Document.
func Decode(data []byte) (Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var root any
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, nil
		}
		return Document{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var next yaml.Node
	switch err := dec.Decode(&next); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return Document{}, fmt.Errorf("%w: %w", ErrParse, err)
	default:
		return Document{}, fmt.Errorf("%w: expected a single document in the stream (second document at line %d)", ErrParse, next.Line)
	}

	return NewDocument(root), nil
}
