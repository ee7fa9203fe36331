package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesisplots/internal/dataset"
)

func requirePDF(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "expected figure %s", path)
	assert.Greater(t, info.Size(), int64(0), "figure %s is empty", path)
}

func TestGenerateAdjSpace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateAdjSpace(dir))
	requirePDF(t, filepath.Join(dir, "adj_size_preliminary.pdf"))
	requirePDF(t, filepath.Join(dir, "adj_size_comparison.pdf"))
}

func TestGenerateAdjTime(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateAdjTime(dir))
	requirePDF(t, filepath.Join(dir, "adj_neighbors_comparison.pdf"))
	requirePDF(t, filepath.Join(dir, "adj_2neighbors_comparison.pdf"))
	requirePDF(t, filepath.Join(dir, "adj_combined_neighbors_comparison.pdf"))
}

func TestGeneratePareto(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generatePareto(dir))
	for _, sub := range []string{"neighbors", "2neighbors"} {
		for _, ds := range dataset.AdjSpace.Datasets() {
			requirePDF(t, filepath.Join(dir, sub, ds+".pdf"))
		}
	}
}

func TestGenerateGDBSpace(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateGDBSpace(dir))
	requirePDF(t, filepath.Join(dir, "graphdb_size_comparison.pdf"))
}

func TestGenerateGDBTime(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateGDBTime(dir))
	requirePDF(t, filepath.Join(dir, "graphdb_neighbors_comparison.pdf"))
	requirePDF(t, filepath.Join(dir, "graphdb_properties_comparison.pdf"))
}

func TestGenerateMemory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateMemory(dir, dataset.MemoryBreakdown))
	requirePDF(t, filepath.Join(dir, "graph_db_memory_breakdown.pdf"))
}

func TestGenerateMemoryFromLoadedStats(t *testing.T) {
	dir := t.TempDir()
	stats := dataset.MemoryStats{
		"toy": {
			dataset.CompAdjLists: 600,
			dataset.CompOther:    400,
		},
	}
	require.NoError(t, generateMemory(dir, stats))
	requirePDF(t, filepath.Join(dir, "graph_db_memory_breakdown.pdf"))
}

func TestGenerateRelabel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, generateRelabel(dir))
	requirePDF(t, filepath.Join(dir, "relabelling.pdf"))
}

func TestRunAll(t *testing.T) {
	dir := t.TempDir()
	viper.Set("out", dir)
	t.Cleanup(func() { viper.Set("out", "plots") })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runAll(cmd, nil))

	out := buf.String()
	assert.Contains(t, out, "Figure generation summary")
	for _, g := range generators {
		assert.Contains(t, out, g.name)
	}
	assert.Contains(t, out, "relabelling.pdf")

	// Spot-check one figure from each generator.
	requirePDF(t, filepath.Join(dir, "adj_size_comparison.pdf"))
	requirePDF(t, filepath.Join(dir, "adj_combined_neighbors_comparison.pdf"))
	requirePDF(t, filepath.Join(dir, "neighbors", "prime.pdf"))
	requirePDF(t, filepath.Join(dir, "graphdb_size_comparison.pdf"))
	requirePDF(t, filepath.Join(dir, "graphdb_properties_comparison.pdf"))
	requirePDF(t, filepath.Join(dir, "graph_db_memory_breakdown.pdf"))
	requirePDF(t, filepath.Join(dir, "relabelling.pdf"))
}

func TestListPDFs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	for _, f := range []string{"b.pdf", "a.pdf", filepath.Join("sub", "c.pdf"), "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("x"), 0o644))
	}

	got := listPDFs(dir)
	assert.Equal(t, []string{"a.pdf", "b.pdf", filepath.Join("sub", "c.pdf")}, got)
}
