// Package dataset holds the benchmark numbers the thesis figures are built
// from. All tables are literal, hand-entered measurements; nothing in this
// package computes new data beyond render-time ratios.
package dataset

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownDataset = errors.New("unknown dataset")
	ErrUnknownMethod  = errors.New("unknown method")
	ErrZeroBaseline   = errors.New("baseline value is zero")
)

// Adjacency-list representations and graph databases under comparison.
const (
	CSR         = "CSR"
	LogGraph    = "LogGraph"
	CGraphIndex = "CGraphIndex"
	Ours        = "Our"

	Neo4j    = "Neo4j"
	ArangoDB = "ArangoDB"

	// Input-file baselines for the database storage comparison.
	ZippedInput   = "zipped"
	UnzippedInput = "unzipped"
)

// Node relabelling techniques. CSV is the order of the input file and acts
// as the baseline.
const (
	RelabelCSV     = "CSV"
	RelabelRandom  = "random"
	RelabelTopsort = "topsort"
	RelabelBFS     = "BFS"
	RelabelCM      = "CM"
	RelabelDM      = "DM"
)

// Table maps dataset name -> method name -> measured value. Units depend on
// the table (bytes for space tables, nanoseconds for time tables).
type Table map[string]map[string]float64

// Value returns the measurement for a dataset/method pair. A missing key is
// an error, never a default.
func (t Table) Value(ds, method string) (float64, error) {
	row, ok := t[ds]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownDataset, ds)
	}
	v, ok := row[method]
	if !ok {
		return 0, fmt.Errorf("%w: %q in dataset %q", ErrUnknownMethod, method, ds)
	}
	return v, nil
}

// Ratio returns Value(ds, method) / Value(ds, baseline).
func (t Table) Ratio(ds, method, baseline string) (float64, error) {
	v, err := t.Value(ds, method)
	if err != nil {
		return 0, err
	}
	base, err := t.Value(ds, baseline)
	if err != nil {
		return 0, err
	}
	if base == 0 {
		return 0, fmt.Errorf("%w: %q in dataset %q", ErrZeroBaseline, baseline, ds)
	}
	return v / base, nil
}

// Datasets returns the dataset names in sorted order. Chart group order is
// derived from this, so it must be deterministic.
func (t Table) Datasets() []string {
	names := make([]string, 0, len(t))
	for ds := range t {
		names = append(names, ds)
	}
	sort.Strings(names)
	return names
}

// Methods returns the method names present for a dataset, sorted.
func (t Table) Methods(ds string) ([]string, error) {
	row, ok := t[ds]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, ds)
	}
	names := make([]string, 0, len(row))
	for m := range row {
		names = append(names, m)
	}
	sort.Strings(names)
	return names, nil
}

// HasData reports whether the method has a nonzero measurement in any
// dataset. Methods that were not benchmarked for a table carry zero values
// and are dropped from the corresponding figures.
func (t Table) HasData(method string) bool {
	for _, row := range t {
		if row[method] > 0 {
			return true
		}
	}
	return false
}

// ToMB converts a byte count to megabytes for axis labels and annotations.
func ToMB(bytes float64) float64 {
	return bytes / (1024 * 1024)
}
