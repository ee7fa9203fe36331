package main

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"thesisplots/internal/dataset"
	"thesisplots/internal/render"
	"thesisplots/internal/style"
)

// normalizedSeries builds one annotated bar series per method, with every
// value divided by the dataset's baseline measurement.
func normalizedSeries(t dataset.Table, groups, methods []string, baseline string) ([]render.Series, error) {
	series := make([]render.Series, 0, len(methods))
	for _, m := range methods {
		c, err := style.MethodColor(m)
		if err != nil {
			return nil, err
		}
		name, err := style.MethodLabel(m)
		if err != nil {
			return nil, err
		}
		s := render.Series{
			Name:   name,
			Color:  c,
			Values: make([]float64, len(groups)),
			Labels: make([]string, len(groups)),
		}
		for g, ds := range groups {
			r, err := t.Ratio(ds, m, baseline)
			if err != nil {
				return nil, err
			}
			s.Values[g] = r
			s.Labels[g] = render.RatioLabel(r)
		}
		series = append(series, s)
	}
	return series, nil
}

// tolerantSeries is normalizedSeries for tables where some datasets were
// genuinely not measured: a zero baseline yields a zero bar instead of an
// error. Missing keys still fail.
func tolerantSeries(t dataset.Table, groups, methods []string, baseline string) ([]render.Series, error) {
	series := make([]render.Series, 0, len(methods))
	for _, m := range methods {
		c, err := style.MethodColor(m)
		if err != nil {
			return nil, err
		}
		name, err := style.MethodLabel(m)
		if err != nil {
			return nil, err
		}
		s := render.Series{
			Name:   name,
			Color:  c,
			Values: make([]float64, len(groups)),
			Labels: make([]string, len(groups)),
		}
		for g, ds := range groups {
			base, err := t.Value(ds, baseline)
			if err != nil {
				return nil, err
			}
			if base == 0 {
				continue
			}
			r, err := t.Ratio(ds, m, baseline)
			if err != nil {
				return nil, err
			}
			s.Values[g] = r
			s.Labels[g] = render.RatioLabel(r)
		}
		series = append(series, s)
	}
	return series, nil
}

// availableMethods drops candidates with no nonzero measurement in any of
// the tables.
func availableMethods(candidates []string, tables ...dataset.Table) []string {
	var out []string
	for _, m := range candidates {
		for _, t := range tables {
			if t.HasData(m) {
				out = append(out, m)
				break
			}
		}
	}
	return out
}

// listPDFs returns every PDF under dir, relative to it, sorted.
func listPDFs(dir string) []string {
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".pdf") {
			if rel, err := filepath.Rel(dir, path); err == nil {
				files = append(files, rel)
			}
		}
		return nil
	})
	sort.Strings(files)
	return files
}
