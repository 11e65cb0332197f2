// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type document struct {
	Capacity      int          `yaml:"capacity"`
	MaxIterations int          `yaml:"max_iterations"`
	Items         []itemRecord `yaml:"items"`
}

type itemRecord struct {
	Name   string `yaml:"name"`
	Value  int    `yaml:"value"`
	Weight int    `yaml:"weight"`
}

// ReadYAML decodes a single YAML document. Unknown keys are rejected.
func ReadYAML(r io.Reader) (Data, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Data{}, fmt.Errorf("%w: empty yaml", ErrMalformed)
		}
		return Data{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	d := Data{
		Names:         make([]string, len(doc.Items)),
		Values:        make([]int, len(doc.Items)),
		Weights:       make([]int, len(doc.Items)),
		Capacity:      doc.Capacity,
		MaxIterations: doc.MaxIterations,
	}
	for i, it := range doc.Items {
		d.Names[i], d.Values[i], d.Weights[i] = it.Name, it.Value, it.Weight
	}

	return d, nil
}

// WriteYAML encodes d as a single document with two-space indentation.
func WriteYAML(w io.Writer, d Data) error {
	if err := d.check(); err != nil {
		return err
	}
	doc := document{
		Capacity:      d.Capacity,
		MaxIterations: d.MaxIterations,
		Items:         make([]itemRecord, len(d.Names)),
	}
	for i := range d.Names {
		doc.Items[i] = itemRecord{Name: d.Names[i], Value: d.Values[i], Weight: d.Weights[i]}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("dataset: encode yaml: %w", err)
	}

	return enc.Close()
}
