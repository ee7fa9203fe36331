package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableValue(t *testing.T) {
	v, err := AdjSpace.Value("prime", CSR)
	require.NoError(t, err)
	assert.Equal(t, 17473954.0, v)

	_, err = AdjSpace.Value("nosuch", CSR)
	require.ErrorIs(t, err, ErrUnknownDataset)

	_, err = AdjSpace.Value("prime", "nosuch")
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestTableRatio(t *testing.T) {
	testCases := []struct {
		name     string
		table    Table
		ds       string
		method   string
		baseline string
		want     float64
		wantErr  error
	}{
		{
			name:     "ours versus csr",
			table:    AdjSpace,
			ds:       "prime",
			method:   Ours,
			baseline: CSR,
			want:     10057280.0 / 17473954.0,
		},
		{
			name:     "baseline against itself is one",
			table:    AdjSpace,
			ds:       "dblp",
			method:   CSR,
			baseline: CSR,
			want:     1.0,
		},
		{
			name:     "zero baseline",
			table:    GDBTimeVarProps,
			ds:       "prime",
			method:   Ours,
			baseline: Neo4j,
			wantErr:  ErrZeroBaseline,
		},
		{
			name:     "missing method",
			table:    AdjSpace,
			ds:       "prime",
			method:   Neo4j,
			baseline: CSR,
			wantErr:  ErrUnknownMethod,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.table.Ratio(tc.ds, tc.method, tc.baseline)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-12)
		})
	}
}

func TestTableDatasetsSorted(t *testing.T) {
	want := []string{"amazon", "dblp", "mag", "patents", "prime"}
	for _, table := range []Table{
		AdjSpace, AdjTimeSingleHop, AdjTimeTwoHop,
		GDBSpace, GDBTimeSingleHop, GDBTimeTwoHop,
		GDBTimeFixedProps, GDBTimeVarProps, Relabel,
	} {
		assert.Equal(t, want, table.Datasets())
	}
}

func TestTableMethods(t *testing.T) {
	methods, err := AdjSpace.Methods("prime")
	require.NoError(t, err)
	assert.Equal(t, []string{CGraphIndex, CSR, LogGraph, Ours}, methods)

	_, err = AdjSpace.Methods("nosuch")
	require.ErrorIs(t, err, ErrUnknownDataset)
}

func TestHasData(t *testing.T) {
	assert.True(t, AdjSpace.HasData(CSR))
	assert.False(t, AdjSpace.HasData(Neo4j))

	// VarProps is zero for prime but measured elsewhere.
	assert.True(t, GDBTimeVarProps.HasData(Ours))

	zeroOnly := Table{"d": {"m": 0}}
	assert.False(t, zeroOnly.HasData("m"))
}

func TestToMB(t *testing.T) {
	assert.Equal(t, 1.0, ToMB(1024*1024))
	assert.Equal(t, 0.5, ToMB(512*1024))
}
