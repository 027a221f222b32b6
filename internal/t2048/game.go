// Package t2048 implements the 2048 sliding-tile puzzle engine.
// It holds no terminal or storage code; collaborators plug in through
// BestStore and read state through State.
package t2048

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Game defaults.
const (
	DefaultWinTile       = 2048
	DefaultSpawnFourProb = 0.10

	initialTiles = 2
	spawnValue   = 2
	spawnFour    = 4
)

// BestStore persists the best score. Implementations are free to fail;
// the engine keeps its in-memory value regardless.
type BestStore interface {
	BestScore() (int, error)
	SaveBestScore(score int) error
}

// MoveResult describes the outcome of ApplyMove.
type MoveResult struct {
	Changed             bool
	ScoreDelta          int
	ReachedNewMilestone bool
}

// Turn describes a full turn: the move, the spawn that followed it and
// whether the game ended.
type Turn struct {
	MoveResult
	Spawned    bool
	SpawnPos   Pos
	SpawnValue int
	Over       bool
}

// Engine owns the grid and score of one game. It is not safe for
// concurrent use; callers serialise access.
type Engine struct {
	size       int
	winTile    int
	spawn4Prob float64
	rng        *rand.Rand
	store      BestStore
	logger     *log.Logger

	grid  Grid
	score int
	best  int
	over  bool
	won   bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithSize sets the board dimension. Values outside [MinSize, MaxSize] are ignored.
func WithSize(n int) Option {
	return func(e *Engine) {
		if n >= MinSize && n <= MaxSize {
			e.size = n
		}
	}
}

// WithSeed seeds the engine's random source. 0 means seed from the clock.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithSpawnFourProbability sets the probability that a spawned tile is a 4.
func WithSpawnFourProbability(p float64) Option {
	return func(e *Engine) {
		if p >= 0 && p <= 1 {
			e.spawn4Prob = p
		}
	}
}

// WithWinTile sets the milestone tile value.
func WithWinTile(v int) Option {
	return func(e *Engine) {
		if v > spawnFour {
			e.winTile = v
		}
	}
}

// WithBestStore attaches best-score persistence.
func WithBestStore(s BestStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an engine with an empty board. Call Reset to start a game.
func New(opts ...Option) *Engine {
	e := &Engine{
		size:       DefaultSize,
		winTile:    DefaultWinTile,
		spawn4Prob: DefaultSpawnFourProb,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.grid = NewGrid(e.size)
	e.loadBest()
	return e
}

// loadBest reads the persisted best score once, at construction.
func (e *Engine) loadBest() {
	if e.store == nil {
		return
	}
	best, err := e.store.BestScore()
	if err != nil {
		e.logger.Warn("could not load best score", "error", err)
		return
	}
	if best > 0 {
		e.best = best
	}
}

// Reset clears the board and score, then spawns the opening tiles.
// The best score is kept.
func (e *Engine) Reset() {
	e.score = 0
	e.over = false
	e.won = false
	e.grid = NewGrid(e.size)

	for range initialTiles {
		e.SpawnTile()
	}
}

// SpawnTile places a 2 (or, with the configured probability, a 4) on a
// uniformly chosen empty cell. On a full grid it does nothing and ok is false.
func (e *Engine) SpawnTile() (pos Pos, value int, ok bool) {
	empty := e.grid.EmptyCells()
	if len(empty) == 0 {
		return Pos{}, 0, false
	}

	// Cell and value come from two independent draws.
	pos = empty[e.rng.Intn(len(empty))]
	value = spawnValue
	if e.rng.Float64() < e.spawn4Prob {
		value = spawnFour
	}

	e.grid.cells[pos.Row][pos.Col] = Tile{Value: value}
	return pos, value, true
}

// ApplyMove slides and merges the board in the given direction.
// It never spawns a tile and never sets Over; see Move for the full turn.
func (e *Engine) ApplyMove(dir Direction) MoveResult {
	if !dir.Valid() {
		return MoveResult{}
	}

	e.grid.clearMerged()
	before := e.grid.Clone()

	next, gained, maxMerged := Slide(e.grid, dir)
	e.grid = next

	res := MoveResult{
		Changed:    !next.Equal(before),
		ScoreDelta: gained,
	}

	if maxMerged >= e.winTile && !e.won {
		e.won = true
		res.ReachedNewMilestone = true
	}

	if gained > 0 {
		e.addScore(gained)
	}

	return res
}

// addScore updates the score and, if exceeded, the best score.
func (e *Engine) addScore(delta int) {
	e.score += delta
	if e.score <= e.best {
		return
	}
	e.best = e.score
	if e.store == nil {
		return
	}
	if err := e.store.SaveBestScore(e.best); err != nil {
		e.logger.Warn("could not persist best score", "best", e.best, "error", err)
	}
}

// IsTerminal reports whether the board is full and no neighbours match.
func (e *Engine) IsTerminal() bool {
	return !CanMove(e.grid)
}

// Move plays one turn: apply the move, spawn a tile if the board changed,
// and end the game if no further move is possible. It does nothing once
// the game is over.
func (e *Engine) Move(dir Direction) Turn {
	if e.over {
		return Turn{Over: true}
	}

	turn := Turn{MoveResult: e.ApplyMove(dir)}
	if !turn.Changed {
		return turn
	}

	turn.SpawnPos, turn.SpawnValue, turn.Spawned = e.SpawnTile()

	if e.IsTerminal() {
		e.over = true
	}
	turn.Over = e.over
	return turn
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Best returns the best score seen this session or loaded from storage.
func (e *Engine) Best() int { return e.best }

// Over reports whether the game has ended.
func (e *Engine) Over() bool { return e.over }

// Won reports whether the win tile has been reached this game.
func (e *Engine) Won() bool { return e.won }

// Size returns the board dimension.
func (e *Engine) Size() int { return e.size }

// WinTile returns the milestone tile value.
func (e *Engine) WinTile() int { return e.winTile }
