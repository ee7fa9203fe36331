package dataset

// AdjSpace holds on-disk sizes in bytes of each adjacency-list
// representation.
var AdjSpace = Table{
	"prime": {
		CSR:         17473954,
		LogGraph:    9924656,
		CGraphIndex: 15733715,
		Ours:        10057280,
	},
	"dblp": {
		CSR:         228825326,
		LogGraph:    225081476,
		CGraphIndex: 431141622,
		Ours:        164349996,
	},
	"mag": {
		CSR:         107695702,
		LogGraph:    80142194,
		CGraphIndex: 112866678,
		Ours:        83332724,
	},
	"patents": {
		CSR:         150278772,
		LogGraph:    144335227,
		CGraphIndex: 180056813,
		Ours:        130629362,
	},
	"amazon": {
		CSR:         21035422,
		LogGraph:    17773226,
		CGraphIndex: 29950426,
		Ours:        14362964,
	},
}

// AdjTimeSingleHop holds single-hop neighbor query times in nanoseconds.
var AdjTimeSingleHop = Table{
	"prime": {
		CSR:         6.281,
		LogGraph:    17.099,
		CGraphIndex: 5.981,
		Ours:        12.049,
	},
	"dblp": {
		CSR:         147.752,
		LogGraph:    602.897,
		CGraphIndex: 6.335,
		Ours:        259.453,
	},
	"mag": {
		CSR:         33.087,
		LogGraph:    82.871,
		CGraphIndex: 23.239,
		Ours:        52.554,
	},
	"patents": {
		CSR:         35.426,
		LogGraph:    121.755,
		CGraphIndex: 3.771,
		Ours:        88.395,
	},
	"amazon": {
		CSR:         42.191,
		LogGraph:    270.697,
		CGraphIndex: 38.077,
		Ours:        56.458,
	},
}

// AdjTimeTwoHop holds two-hop neighbor query times in nanoseconds.
var AdjTimeTwoHop = Table{
	"prime": {
		CSR:         2.327,
		LogGraph:    2.400,
		CGraphIndex: 3.796,
		Ours:        8.233,
	},
	"dblp": {
		CSR:         396.352,
		LogGraph:    11.440,
		CGraphIndex: 6.759,
		Ours:        490.184,
	},
	"mag": {
		CSR:         16.930,
		LogGraph:    2.200,
		CGraphIndex: 12.621,
		Ours:        30.391,
	},
	"patents": {
		CSR:         34.353,
		LogGraph:    8.610,
		CGraphIndex: 4.45527,
		Ours:        54.404,
	},
	"amazon": {
		CSR:         8.829,
		LogGraph:    2.398,
		CGraphIndex: 6.626,
		Ours:        15.788,
	},
}

// GDBTimeSingleHop holds single-hop neighbor query times (ns) against Neo4j.
var GDBTimeSingleHop = Table{
	"prime": {
		Neo4j: 10582.535,
		Ours:  12.049,
	},
	"dblp": {
		Neo4j: 1332.026,
		Ours:  259.453,
	},
	"mag": {
		Neo4j: 3046.213,
		Ours:  52.554,
	},
	"patents": {
		Neo4j: 2696.320,
		Ours:  88.395,
	},
	"amazon": {
		Neo4j: 2422.875,
		Ours:  56.458,
	},
}

// GDBTimeTwoHop holds two-hop neighbor query times (ns) against Neo4j.
var GDBTimeTwoHop = Table{
	"prime": {
		Neo4j: 616453.587,
		Ours:  8.233,
	},
	"dblp": {
		Neo4j: 2541.058,
		Ours:  490.184,
	},
	"mag": {
		Neo4j: 4541.722,
		Ours:  30.391,
	},
	"patents": {
		Neo4j: 14689.665,
		Ours:  54.404,
	},
	"amazon": {
		Neo4j: 13777.436,
		Ours:  15.788,
	},
}

// GDBTimeFixedProps holds fixed-size property query times (ns).
var GDBTimeFixedProps = Table{
	"prime": {
		Neo4j: 4504.673,
		Ours:  186.302,
	},
	"dblp": {
		Neo4j: 5511.505,
		Ours:  415.153,
	},
	"mag": {
		Neo4j: 5214.581,
		Ours:  364.545,
	},
	"patents": {
		Neo4j: 6040.178,
		Ours:  322.145,
	},
	"amazon": {
		Neo4j: 4618.831,
		Ours:  360.545,
	},
}

// GDBTimeVarProps holds variable-size property query times (ns). The prime
// dataset carries no string properties, hence the zero row.
var GDBTimeVarProps = Table{
	"prime": {
		Neo4j: 0,
		Ours:  0,
	},
	"dblp": {
		Neo4j: 12369.007,
		Ours:  4936170.225,
	},
	"mag": {
		Neo4j: 10847.752,
		Ours:  5251040.767,
	},
	"patents": {
		Neo4j: 11280.983,
		Ours:  3277537.579,
	},
	"amazon": {
		Neo4j: 8149.593,
		Ours:  4248512.699,
	},
}

// GDBSpace holds database on-disk sizes in bytes, plus the zipped and
// uncompressed input-file sizes used as normalization baselines.
var GDBSpace = Table{
	"prime": {
		Ours:          13725696,
		Neo4j:         327155712,
		ArangoDB:      597724981,
		ZippedInput:   29644676,
		UnzippedInput: 260029594,
	},
	"dblp": {
		Ours:          591323136,
		Neo4j:         4617089843,
		ArangoDB:      5595838451,
		ZippedInput:   946959092,
		UnzippedInput: 3461480607,
	},
	"mag": {
		Ours:          28874752,
		Neo4j:         2061123584,
		ArangoDB:      2087764522,
		ZippedInput:   407781263,
		UnzippedInput: 1799829557,
	},
	"patents": {
		Ours:          201961472,
		Neo4j:         2040109465,
		ArangoDB:      2840802617,
		ZippedInput:   245210043,
		UnzippedInput: 1304864323,
	},
	"amazon": {
		Ours:          186363904,
		Neo4j:         1395864371,
		ArangoDB:      756251906,
		ZippedInput:   218967442,
		UnzippedInput: 795215172,
	},
}

// Relabel holds the storage size in bytes after each node relabelling
// technique.
var Relabel = Table{
	"prime": {
		RelabelCSV:     11858144,
		RelabelRandom:  13723984,
		RelabelTopsort: 9674928,
		RelabelBFS:     10186344,
		RelabelCM:      10057280,
		RelabelDM:      9865320,
	},
	"dblp": {
		RelabelCSV:     218427364,
		RelabelRandom:  223423772,
		RelabelTopsort: 162679972,
		RelabelBFS:     164785396,
		RelabelCM:      164349996,
		RelabelDM:      198937796,
	},
	"patents": {
		RelabelCSV:     145541474,
		RelabelRandom:  146298938,
		RelabelTopsort: 136975290,
		RelabelBFS:     130156730,
		RelabelCM:      130629362,
		RelabelDM:      140558682,
	},
	"mag": {
		RelabelCSV:     95939756,
		RelabelRandom:  97043980,
		RelabelTopsort: 87752244,
		RelabelBFS:     87470956,
		RelabelCM:      83332724,
		RelabelDM:      83504356,
	},
	"amazon": {
		RelabelCSV:     18847540,
		RelabelRandom:  19234092,
		RelabelTopsort: 16985468,
		RelabelBFS:     14389860,
		RelabelCM:      14362964,
		RelabelDM:      16053916,
	},
}
