// SPDX-License-Identifier: MIT

// Package trace records the per-iteration progress of a knapsack search.
//
// A Trace is an append-only sequence of Records, exactly one per completed
// iteration, in iteration order. Solvers write it; reporting and charting
// read it. Records are never reordered or edited after Add.
//
// Both solvers use the same Record shape:
//
//	Iteration  zero-based index of the completed iteration
//	BestValue  running best feasible value seen so far
//	Value      value of the solver's current solution (HC: accepted state,
//	           GWO: current alpha fitness)
//	Weight     weight of that current solution
package trace

import "fmt"

// Record is a single iteration entry.
type Record struct {
	Iteration int
	BestValue int
	Value     int
	Weight    int
}

// String renders the record as a display line.
func (r Record) String() string {
	return fmt.Sprintf("Iteration %d: Value=%d, Weight=%d, Best Value=%d",
		r.Iteration, r.Value, r.Weight, r.BestValue)
}

// Trace is an ordered, append-only log of Records.
// The zero value is an empty trace ready for use.
type Trace struct {
	records []Record
}

// New returns an empty trace with room for capacity records.
func New(capacity int) Trace {
	if capacity < 0 {
		capacity = 0
	}

	return Trace{records: make([]Record, 0, capacity)}
}

// Add appends the record for the next iteration. The iteration index is
// assigned from the current length so the log cannot skip or reorder.
func (t *Trace) Add(bestValue, value, weight int) Record {
	r := Record{
		Iteration: len(t.records),
		BestValue: bestValue,
		Value:     value,
		Weight:    weight,
	}
	t.records = append(t.records, r)

	return r
}

// Len returns the number of recorded iterations.
func (t Trace) Len() int { return len(t.records) }

// At returns the i-th record. It panics if i is out of range, like slice indexing.
func (t Trace) At(i int) Record { return t.records[i] }

// Last returns the final record, or false for an empty trace.
func (t Trace) Last() (Record, bool) {
	if len(t.records) == 0 {
		return Record{}, false
	}

	return t.records[len(t.records)-1], true
}

// Records returns a copy of all records.
func (t Trace) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)

	return out
}

// BestValues returns the running best value per iteration.
func (t Trace) BestValues() []int {
	out := make([]int, len(t.records))
	for i, r := range t.records {
		out[i] = r.BestValue
	}

	return out
}

// Lines renders every record with Record.String.
func (t Trace) Lines() []string {
	out := make([]string, len(t.records))
	for i, r := range t.records {
		out[i] = r.String()
	}

	return out
}

// Monotone reports whether BestValue never decreases across the trace.
func (t Trace) Monotone() bool {
	for i := 1; i < len(t.records); i++ {
		if t.records[i].BestValue < t.records[i-1].BestValue {
			return false
		}
	}

	return true
}
