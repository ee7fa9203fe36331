package ui

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSummary(t *testing.T) {
	results := []RunResult{
		{Name: "adjspace"},
		{Name: "memory", Err: errors.New("stats file truncated")},
	}
	out := RenderSummary(results, []string{"adj_size_comparison.pdf"})

	assert.Contains(t, out, "Figure generation summary")
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "adjspace")
	assert.Contains(t, out, "FAIL")
	assert.Contains(t, out, "memory")
	assert.Contains(t, out, "stats file truncated")
	assert.Contains(t, out, "Generated files")
	assert.Contains(t, out, "adj_size_comparison.pdf")
}

func TestRenderSummaryNoFiles(t *testing.T) {
	out := RenderSummary([]RunResult{{Name: "pareto"}}, nil)
	assert.NotContains(t, out, "Generated files")
}
