// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/knapsack/core"
)

var (
	// ErrUnsupportedFormat indicates a file extension other than .csv, .yaml or .yml.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrMalformed indicates a row or document that cannot be decoded.
	ErrMalformed = errors.New("dataset: malformed input")
)

// Format identifies an on-disk encoding.
type Format int

const (
	// CSV is comma-separated name,value,weight rows.
	CSV Format = iota + 1
	// YAML is the document form carrying capacity and budget.
	YAML
)

// Data is a decoded dataset: parallel item columns plus the optional
// capacity and iteration budget of YAML files.
type Data struct {
	Names         []string
	Values        []int
	Weights       []int
	Capacity      int
	MaxIterations int
}

// Len returns the number of items.
func (d Data) Len() int { return len(d.Names) }

// Instance validates d into a core.Instance. A negative capacity or
// iterations argument keeps the dataset's own value.
func (d Data) Instance(capacity, iterations int) (*core.Instance, error) {
	if capacity < 0 {
		capacity = d.Capacity
	}
	if iterations < 0 {
		iterations = d.MaxIterations
	}

	return core.NewInstance(d.Names, d.Values, d.Weights, capacity, iterations)
}

// FromInstance captures inst for saving.
func FromInstance(inst *core.Instance) Data {
	return Data{
		Names:         inst.Names(),
		Values:        inst.Values(),
		Weights:       inst.Weights(),
		Capacity:      inst.Capacity(),
		MaxIterations: inst.MaxIterations(),
	}
}

// FormatOf maps a path's extension to a Format.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("dataset: %q: %w", path, ErrUnsupportedFormat)
	}
}

// Load reads the file at path in the format implied by its extension.
func Load(path string) (Data, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Data{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Data{}, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Read(f, format)
	if err != nil {
		return Data{}, fmt.Errorf("dataset: %s: %w", path, err)
	}

	return d, nil
}

// Save writes d to path in the format implied by its extension, creating
// parent directories as needed.
func Save(path string, d Data) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("dataset: create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dataset: create %s: %w", path, err)
	}
	if err := Write(f, d, format); err != nil {
		f.Close()
		return fmt.Errorf("dataset: %s: %w", path, err)
	}

	return f.Close()
}

// Read decodes r in the given format.
func Read(r io.Reader, format Format) (Data, error) {
	switch format {
	case CSV:
		return ReadCSV(r)
	case YAML:
		return ReadYAML(r)
	default:
		return Data{}, fmt.Errorf("dataset: format %d: %w", format, ErrUnsupportedFormat)
	}
}

// Write encodes d to w in the given format.
func Write(w io.Writer, d Data, format Format) error {
	switch format {
	case CSV:
		return WriteCSV(w, d)
	case YAML:
		return WriteYAML(w, d)
	default:
		return fmt.Errorf("dataset: format %d: %w", format, ErrUnsupportedFormat)
	}
}
