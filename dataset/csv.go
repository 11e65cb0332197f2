// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// columns holds the record index of each field.
type columns struct{ name, value, weight int }

var positional = columns{name: 0, value: 1, weight: 2}

var headerAliases = map[string]string{
	"name":   "name",
	"item":   "name",
	"value":  "value",
	"price":  "value",
	"profit": "value",
	"weight": "weight",
}

// ReadCSV decodes name,value,weight rows. Lines starting with '#' are
// comments. The first row is a header iff its value or weight field is not
// an integer.
func ReadCSV(r io.Reader) (Data, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return Data{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if len(records) == 0 {
		return Data{}, fmt.Errorf("%w: empty csv", ErrMalformed)
	}

	cols := positional
	if isHeader(records[0]) {
		if cols, err = parseHeader(records[0]); err != nil {
			return Data{}, err
		}
		records = records[1:]
	}

	d := Data{
		Names:   make([]string, 0, len(records)),
		Values:  make([]int, 0, len(records)),
		Weights: make([]int, 0, len(records)),
	}
	for i, rec := range records {
		name, value, weight, err := cols.decode(rec)
		if err != nil {
			return Data{}, fmt.Errorf("record %d: %w", i+1, err)
		}
		d.Names = append(d.Names, name)
		d.Values = append(d.Values, value)
		d.Weights = append(d.Weights, weight)
	}

	return d, nil
}

func isHeader(rec []string) bool {
	if len(rec) < 3 {
		return false
	}
	_, errV := strconv.Atoi(strings.TrimSpace(rec[1]))
	_, errW := strconv.Atoi(strings.TrimSpace(rec[2]))

	return errV != nil || errW != nil
}

func parseHeader(rec []string) (columns, error) {
	idx := map[string]int{}
	for i, h := range rec {
		if field, ok := headerAliases[strings.ToLower(strings.TrimSpace(h))]; ok {
			if _, dup := idx[field]; !dup {
				idx[field] = i
			}
		}
	}
	for _, field := range []string{"name", "value", "weight"} {
		if _, ok := idx[field]; !ok {
			return columns{}, fmt.Errorf("%w: header %v lacks a %s column", ErrMalformed, rec, field)
		}
	}

	return columns{name: idx["name"], value: idx["value"], weight: idx["weight"]}, nil
}

func (c columns) decode(rec []string) (name string, value, weight int, err error) {
	need := max(c.name, c.value, c.weight) + 1
	if len(rec) < need {
		return "", 0, 0, fmt.Errorf("%w: %d fields, want %d", ErrMalformed, len(rec), need)
	}
	name = strings.TrimSpace(rec[c.name])
	if value, err = strconv.Atoi(strings.TrimSpace(rec[c.value])); err != nil {
		return "", 0, 0, fmt.Errorf("%w: value: %w", ErrMalformed, err)
	}
	if weight, err = strconv.Atoi(strings.TrimSpace(rec[c.weight])); err != nil {
		return "", 0, 0, fmt.Errorf("%w: weight: %w", ErrMalformed, err)
	}

	return name, value, weight, nil
}

// WriteCSV writes a name,value,weight header and one row per item.
func WriteCSV(w io.Writer, d Data) error {
	if err := d.check(); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "value", "weight"}); err != nil {
		return err
	}
	for i := range d.Names {
		if err := cw.Write([]string{d.Names[i], strconv.Itoa(d.Values[i]), strconv.Itoa(d.Weights[i])}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// check rejects ragged columns before encoding.
func (d Data) check() error {
	if len(d.Values) != len(d.Names) || len(d.Weights) != len(d.Names) {
		return fmt.Errorf("%w: %d names, %d values, %d weights",
			ErrMalformed, len(d.Names), len(d.Values), len(d.Weights))
	}

	return nil
}
