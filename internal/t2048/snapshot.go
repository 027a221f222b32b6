package t2048

// Status is the engine's position in the game state machine.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won" // still playable
	StatusOver    Status = "over"
)

// GameState is a read-only copy of the engine state for renderers.
type GameState struct {
	Grid      [][]Tile
	Size      int
	Score     int
	BestScore int
	MaxTile   int
	WinTile   int
	Over      bool
	Won       bool
	Status    Status
}

// Status returns the current state machine position.
func (e *Engine) Status() Status {
	switch {
	case e.over:
		return StatusOver
	case e.won:
		return StatusWon
	default:
		return StatusPlaying
	}
}

// State returns a snapshot that shares no memory with the engine.
func (e *Engine) State() GameState {
	cells := make([][]Tile, e.size)
	for r := range e.size {
		cells[r] = e.grid.Row(r)
	}

	return GameState{
		Grid:      cells,
		Size:      e.size,
		Score:     e.score,
		BestScore: e.best,
		MaxTile:   e.grid.MaxTile(),
		WinTile:   e.winTile,
		Over:      e.over,
		Won:       e.won,
		Status:    e.Status(),
	}
}

// Grid returns a copy of the current grid.
func (e *Engine) Grid() Grid {
	return e.grid.Clone()
}
