package t2048

// compactRow slides a row toward index 0 and merges equal neighbours.
// A tile produced by a merge never merges again within the same call.
// Returns the new row, the score gained, and the largest merged value.
func compactRow(row []Tile) (result []Tile, score, maxMerged int) {
	result = make([]Tile, len(row))

	tiles := make([]Tile, 0, len(row))
	for _, t := range row {
		if !t.Empty() {
			tiles = append(tiles, Tile{Value: t.Value})
		}
	}

	writePos := 0
	for i := 0; i < len(tiles); i++ {
		if i+1 < len(tiles) && tiles[i].Value == tiles[i+1].Value {
			merged := tiles[i].Value * 2
			result[writePos] = Tile{Value: merged, JustMerged: true}
			score += merged
			if merged > maxMerged {
				maxMerged = merged
			}
			i++ // consumed both sources
		} else {
			result[writePos] = tiles[i]
		}
		writePos++
	}

	return result, score, maxMerged
}

// compactLeft applies compactRow to every row independently.
func compactLeft(g Grid) (out Grid, score, maxMerged int) {
	out = NewGrid(g.size)
	for r := range g.size {
		row, gained, merged := compactRow(g.cells[r])
		out.cells[r] = row
		score += gained
		if merged > maxMerged {
			maxMerged = merged
		}
	}
	return out, score, maxMerged
}

// compactRight slides every row toward the last column.
func compactRight(g Grid) (Grid, int, int) {
	out, score, maxMerged := compactLeft(g.ReverseRows())
	return out.ReverseRows(), score, maxMerged
}

// Slide computes the grid after a move without touching any engine state.
// Returns the new grid, the score gained and the largest merged value.
// An invalid direction returns the input unchanged.
func Slide(g Grid, dir Direction) (Grid, int, int) {
	switch dir {
	case DirLeft:
		return compactLeft(g)
	case DirRight:
		return compactRight(g)
	case DirUp:
		out, score, maxMerged := compactLeft(g.Transpose())
		return out.Transpose(), score, maxMerged
	case DirDown:
		out, score, maxMerged := compactRight(g.Transpose())
		return out.Transpose(), score, maxMerged
	default:
		return g, 0, 0
	}
}

// CanMove returns true if any move would change the grid.
func CanMove(g Grid) bool {
	return !g.Full() || g.HasAdjacentEqual()
}
