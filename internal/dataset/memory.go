package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Memory component categories, in figure order. They group the raw arena
// counters emitted by the storage engine's stats dump.
const (
	CompAdjLists   = "Adjacency Lists"
	CompParents    = "Parent Lists"
	CompFixedProps = "Fixed-size Properties"
	CompVarProps   = "Variable-size Properties"
	CompTypes      = "Type System"
	CompIDMapping  = "Node ID Mapping"
	CompOther      = "Other"
)

// ComponentOrder is the stacking order of the memory breakdown figure.
var ComponentOrder = []string{
	CompAdjLists,
	CompParents,
	CompFixedProps,
	CompVarProps,
	CompTypes,
	CompIDMapping,
	CompOther,
}

// MemoryStats maps dataset name -> component category -> bytes.
type MemoryStats map[string]map[string]float64

// MemoryBreakdown holds the measured in-memory footprint of our storage
// engine per dataset, already grouped into figure categories. Totals match
// the "Our" column of GDBSpace.
var MemoryBreakdown = MemoryStats{
	"prime": {
		CompAdjLists:   5242880,
		CompParents:    2097152,
		CompFixedProps: 2621440,
		CompVarProps:   1835008,
		CompTypes:      524288,
		CompIDMapping:  1048576,
		CompOther:      356352,
	},
	"dblp": {
		CompAdjLists:   201326592,
		CompParents:    100663296,
		CompFixedProps: 71303168,
		CompVarProps:   174063616,
		CompTypes:      8388608,
		CompIDMapping:  33554432,
		CompOther:      2023424,
	},
	"mag": {
		CompAdjLists:   11534336,
		CompParents:    4194304,
		CompFixedProps: 5242880,
		CompVarProps:   4718592,
		CompTypes:      1048576,
		CompIDMapping:  2097152,
		CompOther:      38912,
	},
	"patents": {
		CompAdjLists:   75497472,
		CompParents:    37748736,
		CompFixedProps: 41943040,
		CompVarProps:   29360128,
		CompTypes:      4194304,
		CompIDMapping:  12582912,
		CompOther:      634880,
	},
	"amazon": {
		CompAdjLists:   67108864,
		CompParents:    31457280,
		CompFixedProps: 33554432,
		CompVarProps:   41943040,
		CompTypes:      3145728,
		CompIDMapping:  8388608,
		CompOther:      765952,
	},
}

// Datasets returns the dataset names in sorted order.
func (m MemoryStats) Datasets() []string {
	names := make([]string, 0, len(m))
	for ds := range m {
		names = append(names, ds)
	}
	sort.Strings(names)
	return names
}

// Percentages returns each component's share of the dataset total, in
// ComponentOrder. Components absent from the dataset contribute zero.
func (m MemoryStats) Percentages(ds string) ([]float64, error) {
	row, ok := m[ds]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDataset, ds)
	}
	var total float64
	for _, v := range row {
		total += v
	}
	if total == 0 {
		return nil, fmt.Errorf("%w: memory total for dataset %q", ErrZeroBaseline, ds)
	}
	out := make([]float64, len(ComponentOrder))
	for i, comp := range ComponentOrder {
		out[i] = row[comp] / total * 100
	}
	return out, nil
}

// rawMemoryEntry mirrors one dataset entry of the storage engine's stats
// dump: a flat map of raw arena counters under "detailed".
type rawMemoryEntry struct {
	Detailed map[string]float64 `json:"detailed"`
}

// LoadMemoryStats reads a raw stats dump written by the storage engine and
// groups its counters into figure categories. Used when regenerating the
// breakdown figure from a fresh measurement instead of the embedded table.
func LoadMemoryStats(path string) (MemoryStats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]rawMemoryEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing memory stats %s: %w", path, err)
	}
	stats := make(MemoryStats, len(raw))
	for ds, entry := range raw {
		stats[ds] = groupComponents(entry.Detailed)
	}
	return stats, nil
}

// groupComponents folds the engine's raw counters into the categories the
// thesis text uses.
func groupComponents(detailed map[string]float64) map[string]float64 {
	categories := map[string]string{
		"nodeAdjLists":          CompAdjLists,
		"edgeAdjLists":          CompAdjLists,
		"nodeParentLists":       CompParents,
		"nodeIntLikeProperties": CompFixedProps,
		"edgeIntLikeProperties": CompFixedProps,
		"nodeDoubleProperties":  CompFixedProps,
		"edgeDoubleProperties":  CompFixedProps,
		"varSize":               CompVarProps,
		"typesSystemOverhead":   CompTypes,
		"labels":                CompTypes,
		"nodePkToId":            CompIDMapping,
	}
	grouped := make(map[string]float64)
	for counter, size := range detailed {
		if size <= 0 {
			continue
		}
		cat, ok := categories[counter]
		if !ok {
			cat = CompOther
		}
		grouped[cat] += size
	}
	return grouped
}
