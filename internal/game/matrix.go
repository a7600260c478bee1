package game

// PayoffPair is one matrix cell: the payoff for the row creature playing i
// against the column creature playing j, and the column creature's payoff
// for the same pair.
type PayoffPair struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// PayoffMatrix is the |catalog| x |catalog| grid of payoff pairs. Every
// cell is populated; the matrix is a pure function of the two snapshots and
// the catalog.
type PayoffMatrix struct {
	Strategies StrategyCatalog `json:"strategies"`
	Cells      [][]PayoffPair  `json:"cells"`
}

// NewPayoffMatrix allocates a fully shaped n x n matrix for the catalog.
func NewPayoffMatrix(catalog StrategyCatalog) *PayoffMatrix {
	n := len(catalog)
	cells := make([][]PayoffPair, n)
	for i := range cells {
		cells[i] = make([]PayoffPair, n)
	}
	strategies := make(StrategyCatalog, n)
	copy(strategies, catalog)
	return &PayoffMatrix{Strategies: strategies, Cells: cells}
}

// Size returns the number of strategies per side.
func (m *PayoffMatrix) Size() int { return len(m.Strategies) }

// At returns the payoff pair for row strategy i against column strategy j.
func (m *PayoffMatrix) At(i, j int) PayoffPair { return m.Cells[i][j] }
