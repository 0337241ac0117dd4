// Package loader handles binary file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrLoad is returned when the input can not be read.
var ErrLoad = errors.New("load failure")

// Loader handles loading raw 8086 machine code from disk.
type Loader struct{}

// New creates a new binary loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the whole file as instruction stream.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening file %s: %w", ErrLoad, path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads all data of the reader as instruction stream.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading data: %w", ErrLoad, err)
	}
	return data, nil
}
