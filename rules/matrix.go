package rules

// CornerLabel heads the first column of the rendered grid.
const CornerLabel = "Moves"

// Matrix holds the outcome of every pairing of a move set, read from the row
// move's point of view.
type Matrix struct {
	moves MoveSet
	cells [][]Outcome
}

// NewMatrix computes the dominance matrix for moves. The upper triangle comes
// from Decide and the lower triangle is its mirror; the diagonal is Draw.
func NewMatrix(moves MoveSet) Matrix {
	n := moves.Len()
	cells := make([][]Outcome, n)
	for i := range cells {
		cells[i] = make([]Outcome, n)
	}

	for i := 0; i < n; i++ {
		cells[i][i] = Draw
		for j := i + 1; j < n; j++ {
			o := Decide(i, j, n)
			cells[i][j] = o
			cells[j][i] = o.Mirror()
		}
	}

	return Matrix{moves: moves, cells: cells}
}

// Size returns the number of moves on each axis
func (m Matrix) Size() int {
	return len(m.cells)
}

// At returns the outcome of move i against move j
func (m Matrix) At(i, j int) Outcome {
	return m.cells[i][j]
}

// Header returns the column headers of the grid, corner label first.
func (m Matrix) Header() []string {
	return append([]string{CornerLabel}, m.moves.names...)
}

// Rows returns one row per move: the move name followed by its outcomes.
func (m Matrix) Rows() [][]string {
	rows := make([][]string, len(m.cells))
	for i, line := range m.cells {
		row := make([]string, 0, len(line)+1)
		row = append(row, m.moves.Name(i))
		for _, o := range line {
			row = append(row, o.String())
		}
		rows[i] = row
	}
	return rows
}

// Grid returns the full (n+1)x(n+1) grid, header row included.
func (m Matrix) Grid() [][]string {
	return append([][]string{m.Header()}, m.Rows()...)
}
