package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesisplots/internal/dataset"
	"thesisplots/internal/style"
)

func TestNormalizedSeries(t *testing.T) {
	table := dataset.Table{
		"toy": {
			dataset.CSR:         100,
			dataset.LogGraph:    80,
			dataset.CGraphIndex: 60,
			dataset.Ours:        40,
		},
	}
	methods := []string{dataset.CSR, dataset.LogGraph, dataset.CGraphIndex, dataset.Ours}

	series, err := normalizedSeries(table, []string{"toy"}, methods, dataset.CSR)
	require.NoError(t, err)
	require.Len(t, series, 4)

	wantValues := []float64{1.0, 0.8, 0.6, 0.4}
	wantLabels := []string{"", "0.8x", "0.6x", "0.4x"}
	for i, s := range series {
		assert.Equal(t, methods[i], s.Name)
		assert.InDelta(t, wantValues[i], s.Values[0], 1e-12)
		assert.Equal(t, wantLabels[i], s.Labels[0])
	}
}

func TestNormalizedSeriesUnmappedMethod(t *testing.T) {
	table := dataset.Table{"toy": {"HyperGraph": 10, dataset.CSR: 100}}
	_, err := normalizedSeries(table, []string{"toy"}, []string{"HyperGraph"}, dataset.CSR)
	require.ErrorIs(t, err, style.ErrNoColor)
}

func TestNormalizedSeriesZeroBaseline(t *testing.T) {
	table := dataset.Table{"toy": {dataset.Neo4j: 0, dataset.Ours: 10}}
	_, err := normalizedSeries(table, []string{"toy"}, []string{dataset.Ours}, dataset.Neo4j)
	require.ErrorIs(t, err, dataset.ErrZeroBaseline)
}

func TestTolerantSeriesZeroBaseline(t *testing.T) {
	table := dataset.Table{
		"measured":   {dataset.Neo4j: 100, dataset.Ours: 50},
		"unmeasured": {dataset.Neo4j: 0, dataset.Ours: 0},
	}
	groups := []string{"measured", "unmeasured"}

	series, err := tolerantSeries(table, groups, []string{dataset.Ours}, dataset.Neo4j)
	require.NoError(t, err)
	require.Len(t, series, 1)

	assert.InDelta(t, 0.5, series[0].Values[0], 1e-12)
	assert.Equal(t, "0.5x", series[0].Labels[0])
	// The unmeasured dataset gets a zero bar, not an error.
	assert.Equal(t, 0.0, series[0].Values[1])
	assert.Equal(t, "", series[0].Labels[1])
}

func TestAvailableMethods(t *testing.T) {
	methods := availableMethods(
		[]string{dataset.CSR, dataset.LogGraph, dataset.Neo4j},
		dataset.AdjSpace, dataset.AdjTimeSingleHop,
	)
	assert.Equal(t, []string{dataset.CSR, dataset.LogGraph}, methods)
}
