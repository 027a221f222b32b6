package t2048

// DefaultSize is the default board dimension.
const DefaultSize = 4

// Board size limits accepted by the engine.
const (
	MinSize = 2
	MaxSize = 8
)

// Tile is a single board cell. The zero Tile is an empty cell.
type Tile struct {
	Value int
	// JustMerged is set on tiles produced by a merge during the latest move.
	// It is cleared for every tile when the next move is evaluated.
	JustMerged bool
}

// Empty reports whether the cell holds no tile.
func (t Tile) Empty() bool {
	return t.Value == 0
}

// Pos addresses a cell. Row 0 is the top row, Col 0 the leftmost column.
type Pos struct {
	Row, Col int
}

// Grid is a square matrix of tiles.
type Grid struct {
	size  int
	cells [][]Tile
}

// NewGrid returns an empty grid of the given size.
func NewGrid(size int) Grid {
	cells := make([][]Tile, size)
	for r := range cells {
		cells[r] = make([]Tile, size)
	}
	return Grid{size: size, cells: cells}
}

// gridFromValues builds a grid from a square matrix of tile values (0 = empty).
func gridFromValues(values [][]int) Grid {
	g := NewGrid(len(values))
	for r, row := range values {
		for c, v := range row {
			g.cells[r][c] = Tile{Value: v}
		}
	}
	return g
}

// Size returns the board dimension.
func (g Grid) Size() int {
	return g.size
}

// At returns the tile at (row, col).
func (g Grid) At(row, col int) Tile {
	return g.cells[row][col]
}

// Row returns a copy of the given row.
func (g Grid) Row(row int) []Tile {
	out := make([]Tile, g.size)
	copy(out, g.cells[row])
	return out
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := NewGrid(g.size)
	for r := range g.cells {
		copy(out.cells[r], g.cells[r])
	}
	return out
}

// Equal reports whether both grids hold the same values in the same cells.
// JustMerged annotations are ignored.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for r := range g.size {
		for c := range g.size {
			if g.cells[r][c].Value != other.cells[r][c].Value {
				return false
			}
		}
	}
	return true
}

// Transpose returns the grid mirrored along its main diagonal.
func (g Grid) Transpose() Grid {
	out := NewGrid(g.size)
	for r := range g.size {
		for c := range g.size {
			out.cells[r][c] = g.cells[c][r]
		}
	}
	return out
}

// ReverseRows returns the grid with every row reversed.
func (g Grid) ReverseRows() Grid {
	out := NewGrid(g.size)
	for r := range g.size {
		for c := range g.size {
			out.cells[r][c] = g.cells[r][g.size-1-c]
		}
	}
	return out
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
func (g Grid) EmptyCells() []Pos {
	var cells []Pos
	for r := range g.size {
		for c := range g.size {
			if g.cells[r][c].Empty() {
				cells = append(cells, Pos{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Full reports whether no cell is empty.
func (g Grid) Full() bool {
	for r := range g.size {
		for c := range g.size {
			if g.cells[r][c].Empty() {
				return false
			}
		}
	}
	return true
}

// HasAdjacentEqual reports whether two 4-neighbour cells hold equal tiles.
func (g Grid) HasAdjacentEqual() bool {
	for r := range g.size {
		for c := range g.size {
			val := g.cells[r][c].Value
			if val == 0 {
				continue
			}
			// Right and bottom neighbours cover every pair once.
			if c < g.size-1 && g.cells[r][c+1].Value == val {
				return true
			}
			if r < g.size-1 && g.cells[r+1][c].Value == val {
				return true
			}
		}
	}
	return false
}

// MaxTile returns the largest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for r := range g.size {
		for c := range g.size {
			if g.cells[r][c].Value > maxVal {
				maxVal = g.cells[r][c].Value
			}
		}
	}
	return maxVal
}

// clearMerged resets the JustMerged annotation on every tile.
func (g Grid) clearMerged() {
	for r := range g.size {
		for c := range g.size {
			g.cells[r][c].JustMerged = false
		}
	}
}
