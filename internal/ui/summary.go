// Package ui renders the terminal summary printed after a full figure
// regeneration run.
package ui

import "strings"

// RunResult is one generator's outcome.
type RunResult struct {
	Name string
	Err  error
}

// RenderSummary formats the per-generator outcomes and the list of produced
// files for the terminal.
func RenderSummary(results []RunResult, files []string) string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("Figure generation summary"))
	sb.WriteString("\n")
	for _, r := range results {
		if r.Err != nil {
			sb.WriteString(nameStyle.Render(failStyle.Render("FAIL") + "  " + r.Name))
			sb.WriteString("\n")
			sb.WriteString(errStyle.Render(r.Err.Error()))
		} else {
			sb.WriteString(nameStyle.Render(okStyle.Render("ok") + "    " + r.Name))
		}
		sb.WriteString("\n")
	}
	if len(files) > 0 {
		sb.WriteString(headerStyle.Render("Generated files"))
		sb.WriteString("\n")
		for _, f := range files {
			sb.WriteString(fileStyle.Render(f))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
