package style

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"thesisplots/internal/dataset"
)

// Every method that appears in a dataset table must have a palette entry;
// a gap here would abort rendering at runtime.
func TestPaletteCoversAllTables(t *testing.T) {
	tables := map[string]dataset.Table{
		"AdjSpace":          dataset.AdjSpace,
		"AdjTimeSingleHop":  dataset.AdjTimeSingleHop,
		"AdjTimeTwoHop":     dataset.AdjTimeTwoHop,
		"GDBSpace":          dataset.GDBSpace,
		"GDBTimeSingleHop":  dataset.GDBTimeSingleHop,
		"GDBTimeTwoHop":     dataset.GDBTimeTwoHop,
		"GDBTimeFixedProps": dataset.GDBTimeFixedProps,
		"GDBTimeVarProps":   dataset.GDBTimeVarProps,
		"Relabel":           dataset.Relabel,
	}
	inputs := map[string]bool{
		dataset.ZippedInput:   true,
		dataset.UnzippedInput: true,
	}
	for name, table := range tables {
		for _, ds := range table.Datasets() {
			methods, err := table.Methods(ds)
			require.NoError(t, err)
			for _, m := range methods {
				if inputs[m] {
					_, err = InputColor(m)
				} else {
					_, err = MethodColor(m)
				}
				assert.NoError(t, err, "%s/%s: method %q", name, ds, m)

				_, err = MethodLabel(m)
				assert.NoError(t, err, "%s/%s: method %q", name, ds, m)
			}
		}
	}
}

func TestPaletteCoversAllComponents(t *testing.T) {
	for _, comp := range dataset.ComponentOrder {
		_, err := ComponentColor(comp)
		assert.NoError(t, err, "component %q", comp)
	}
}

func TestUnknownNamesError(t *testing.T) {
	_, err := MethodColor("nosuch")
	require.ErrorIs(t, err, ErrNoColor)

	_, err = InputColor("nosuch")
	require.ErrorIs(t, err, ErrNoColor)

	_, err = ComponentColor("nosuch")
	require.ErrorIs(t, err, ErrNoColor)

	_, err = MethodLabel("nosuch")
	require.ErrorIs(t, err, ErrNoLabel)
}

func TestMethodLabel(t *testing.T) {
	l, err := MethodLabel(dataset.Ours)
	require.NoError(t, err)
	assert.Equal(t, "Our", l)

	// Lowercase table keys get capitalized legend text.
	l, err = MethodLabel(dataset.RelabelRandom)
	require.NoError(t, err)
	assert.Equal(t, "Random", l)

	l, err = MethodLabel(dataset.UnzippedInput)
	require.NoError(t, err)
	assert.Equal(t, "Original Dataset", l)
}

func TestMethodColorValues(t *testing.T) {
	c, err := MethodColor(dataset.Ours)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 214, G: 39, B: 40, A: 255}, c)

	// Neo4j reuses the CSR blue; both are "the incumbent" in their figure.
	neo, err := MethodColor(dataset.Neo4j)
	require.NoError(t, err)
	csr, err := MethodColor(dataset.CSR)
	require.NoError(t, err)
	assert.Equal(t, csr, neo)
}

func TestFaded(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, Faded(color.RGBA{R: 255, G: 255, B: 255, A: 255}))
	assert.Equal(t, color.RGBA{R: 127, G: 127, B: 127, A: 255}, Faded(color.RGBA{A: 255}))

	got := Faded(color.RGBA{R: 214, G: 39, B: 40, A: 255})
	assert.Equal(t, color.RGBA{R: 234, G: 147, B: 147, A: 255}, got)
}
