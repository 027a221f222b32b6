package t2048

import (
	"errors"
	"io"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
)

type memBest struct {
	best    int
	saves   int
	saveErr error
	loadErr error
}

func (m *memBest) BestScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.best, nil
}

func (m *memBest) SaveBestScore(score int) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.best = score
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestEngine(values [][]int, opts ...Option) *Engine {
	opts = append([]Option{WithSize(len(values)), WithSeed(42), WithLogger(quietLogger())}, opts...)
	e := New(opts...)
	e.grid = gridFromValues(values)
	return e
}

func TestReset(t *testing.T) {
	e := New(WithSeed(7))
	e.score = 500
	e.best = 900
	e.over = true
	e.won = true

	e.Reset()

	if e.Score() != 0 || e.Over() || e.Won() {
		t.Errorf("Reset left score=%d over=%v won=%v", e.Score(), e.Over(), e.Won())
	}
	if e.Best() != 900 {
		t.Errorf("Reset should keep best score, got %d", e.Best())
	}
	if n := len(e.grid.EmptyCells()); n != DefaultSize*DefaultSize-2 {
		t.Errorf("Reset should spawn exactly two tiles, %d cells empty", n)
	}
	for _, row := range e.State().Grid {
		for _, tile := range row {
			if !tile.Empty() && tile.Value != 2 && tile.Value != 4 {
				t.Errorf("unexpected opening tile %d", tile.Value)
			}
		}
	}
}

func TestDeterministicSpawn(t *testing.T) {
	e1 := New(WithSeed(12345))
	e1.Reset()

	e2 := New(WithSeed(12345))
	e2.Reset()

	if !e1.grid.Equal(e2.grid) {
		t.Errorf("same seed should produce same initial board:\n%v\nvs\n%v", gridValues(e1.grid), gridValues(e2.grid))
	}
}

func TestApplyMoveEndToEnd(t *testing.T) {
	e := newTestEngine([][]int{
		{2, 2, 4, 4},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := e.ApplyMove(DirLeft)

	if got := valuesOf(e.grid.Row(0)); !reflect.DeepEqual(got, []int{4, 8, 0, 0}) {
		t.Errorf("row = %v, want [4 8 0 0]", got)
	}
	if !res.Changed {
		t.Error("move should report a change")
	}
	if res.ScoreDelta != 12 || e.Score() != 12 {
		t.Errorf("score delta = %d, score = %d, want 12", res.ScoreDelta, e.Score())
	}
	if res.ReachedNewMilestone {
		t.Error("no milestone expected")
	}
	if n := len(e.grid.EmptyCells()); n != 14 {
		t.Errorf("ApplyMove must not spawn, %d cells empty", n)
	}
}

func TestApplyMoveNoOp(t *testing.T) {
	values := [][]int{
		{4, 2, 0, 0},
		{2, 0, 0, 0},
		{8, 4, 2, 0},
		{0, 0, 0, 0},
	}
	e := newTestEngine(values)

	res := e.ApplyMove(DirLeft)

	if res.Changed {
		t.Error("compacted rows without pairs should not change")
	}
	if res.ScoreDelta != 0 || e.Score() != 0 {
		t.Errorf("no-op should not score, delta=%d", res.ScoreDelta)
	}
	if got := gridValues(e.grid); !reflect.DeepEqual(got, values) {
		t.Errorf("grid changed on no-op:\n%v", got)
	}

	turn := e.Move(DirLeft)
	if turn.Spawned {
		t.Error("no tile should spawn after a no-op move")
	}
}

func TestApplyMoveInvalidDirection(t *testing.T) {
	e := newTestEngine([][]int{
		{2, 2},
		{0, 0},
	})
	e.grid.cells[0][0].JustMerged = true

	res := e.ApplyMove(Direction(9))
	if res != (MoveResult{}) {
		t.Errorf("invalid direction result = %+v, want zero", res)
	}
	if !e.grid.At(0, 0).JustMerged {
		t.Error("invalid direction should not touch the grid")
	}
}

func TestApplyMoveClearsJustMerged(t *testing.T) {
	e := newTestEngine([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	e.ApplyMove(DirLeft)
	if !e.grid.At(0, 0).JustMerged {
		t.Fatal("merged tile should be flagged")
	}

	res := e.ApplyMove(DirDown)
	if !res.Changed {
		t.Fatal("move down should change the grid")
	}
	for _, row := range e.State().Grid {
		for _, tile := range row {
			if tile.JustMerged {
				t.Errorf("stale JustMerged on tile %d", tile.Value)
			}
		}
	}
}

func TestMilestoneReportedOnce(t *testing.T) {
	e := newTestEngine([][]int{
		{1024, 1024, 0, 0},
		{2048, 2048, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	res := e.ApplyMove(DirRight)
	if !res.ReachedNewMilestone || !e.Won() {
		t.Fatalf("first 2048 should set won, got %+v won=%v", res, e.Won())
	}
	if e.Status() != StatusWon {
		t.Errorf("Status = %s, want won", e.Status())
	}

	e.grid = gridFromValues([][]int{
		{2048, 2048, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	res = e.ApplyMove(DirLeft)
	if res.ReachedNewMilestone {
		t.Error("milestone should not be reported twice")
	}
	if !e.Won() {
		t.Error("won should stay set")
	}
}

func TestCustomWinTile(t *testing.T) {
	e := newTestEngine([][]int{
		{64, 64},
		{0, 0},
	}, WithWinTile(128))

	res := e.ApplyMove(DirLeft)
	if !res.ReachedNewMilestone {
		t.Error("reaching the configured win tile should report the milestone")
	}
}

func TestIsTerminal(t *testing.T) {
	checker := [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	e := newTestEngine(checker)
	if !e.IsTerminal() {
		t.Error("checkerboard without pairs should be terminal")
	}
	if e.Over() {
		t.Error("IsTerminal must not set over")
	}

	e.grid.cells[3][3] = Tile{Value: 4}
	if e.IsTerminal() {
		t.Error("one adjacent equal pair should not be terminal")
	}

	e.grid.cells[3][3] = Tile{}
	if e.IsTerminal() {
		t.Error("an empty cell should not be terminal")
	}
}

func TestMoveEndsGame(t *testing.T) {
	e := newTestEngine([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{8, 4, 2, 4},
		{16, 8, 2, 0},
	}, WithSpawnFourProbability(0))

	turn := e.Move(DirRight)

	if !turn.Changed || !turn.Spawned {
		t.Fatalf("move should change and spawn, got %+v", turn)
	}
	if turn.SpawnPos != (Pos{Row: 3, Col: 0}) || turn.SpawnValue != 2 {
		t.Errorf("spawn at %+v value %d, want (3,0) value 2", turn.SpawnPos, turn.SpawnValue)
	}
	if !turn.Over || !e.Over() || e.Status() != StatusOver {
		t.Fatal("full board without pairs should end the game")
	}

	before := e.grid.Clone()
	if turn := e.Move(DirLeft); turn.Changed {
		t.Error("moves after game over should be ignored")
	}
	if !e.grid.Equal(before) {
		t.Error("grid changed after game over")
	}
}

func TestSpawnTileFullGrid(t *testing.T) {
	e := newTestEngine([][]int{
		{2, 4},
		{8, 16},
	})

	if _, _, ok := e.SpawnTile(); ok {
		t.Error("spawn on a full grid should be a no-op")
	}
	if got := gridValues(e.grid); !reflect.DeepEqual(got, [][]int{{2, 4}, {8, 16}}) {
		t.Errorf("full grid changed: %v", got)
	}
}

func TestSpawnDistribution(t *testing.T) {
	const trials = 10000
	e := New(WithSeed(99))
	fours := 0

	for range trials {
		e.grid = gridFromValues([][]int{
			{2, 0, 2, 0},
			{0, 2, 0, 2},
			{2, 0, 2, 0},
			{0, 2, 0, 2},
		})
		pos, value, ok := e.SpawnTile()
		if !ok {
			t.Fatal("spawn should succeed on a grid with empty cells")
		}
		if (pos.Row+pos.Col)%2 == 0 {
			t.Fatalf("spawned onto occupied cell %+v", pos)
		}
		switch value {
		case 4:
			fours++
		case 2:
		default:
			t.Fatalf("unexpected spawn value %d", value)
		}
	}

	ratio := float64(fours) / trials
	if ratio < 0.08 || ratio > 0.12 {
		t.Errorf("ratio of 4s = %.3f, want about 0.10", ratio)
	}
}

func TestMoveConservesMass(t *testing.T) {
	e := New(WithSeed(3))
	e.Reset()

	for i := range 200 {
		dir := Directions[i%len(Directions)]
		before := gridSum(e.grid)
		turn := e.Move(dir)
		want := before + turn.SpawnValue
		if got := gridSum(e.grid); got != want {
			t.Fatalf("move %d (%s): sum = %d, want %d", i, dir, got, want)
		}
		if turn.Over {
			break
		}
	}
}

func TestBestScoreLoadedAndPersisted(t *testing.T) {
	store := &memBest{best: 10}
	e := newTestEngine([][]int{
		{4, 4, 0, 0},
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, WithBestStore(store))

	if e.Best() != 10 {
		t.Fatalf("best should load from store, got %d", e.Best())
	}

	e.ApplyMove(DirLeft)

	if e.Best() != 12 || store.best != 12 {
		t.Errorf("best = %d, stored = %d, want 12", e.Best(), store.best)
	}

	e.Reset()
	if e.Best() != 12 {
		t.Errorf("best should survive reset, got %d", e.Best())
	}
}

func TestBestScoreNotSavedBelowBest(t *testing.T) {
	store := &memBest{best: 1000}
	e := newTestEngine([][]int{
		{4, 4},
		{0, 0},
	}, WithBestStore(store))

	e.ApplyMove(DirLeft)

	if store.saves != 0 {
		t.Errorf("store written %d times while below best", store.saves)
	}
	if e.Best() != 1000 {
		t.Errorf("best = %d, want 1000", e.Best())
	}
}

func TestBestScoreStoreFailure(t *testing.T) {
	store := &memBest{saveErr: errors.New("disk full"), loadErr: errors.New("locked")}
	e := newTestEngine([][]int{
		{8, 8},
		{0, 0},
	}, WithBestStore(store))

	if e.Best() != 0 {
		t.Errorf("failed load should leave best at 0, got %d", e.Best())
	}

	res := e.ApplyMove(DirLeft)

	if !res.Changed || e.Score() != 16 || e.Best() != 16 {
		t.Errorf("storage failure corrupted state: %+v score=%d best=%d", res, e.Score(), e.Best())
	}
}

func TestStateIsACopy(t *testing.T) {
	e := newTestEngine([][]int{
		{2, 0},
		{0, 0},
	})

	st := e.State()
	st.Grid[0][0] = Tile{Value: 1024}

	if e.grid.At(0, 0).Value != 2 {
		t.Error("mutating a snapshot should not change the engine")
	}
	if st.Size != 2 || st.Status != StatusPlaying || st.MaxTile != 2 {
		t.Errorf("unexpected snapshot %+v", st)
	}
}

func TestWithSizeBounds(t *testing.T) {
	if e := New(WithSize(1)); e.Size() != DefaultSize {
		t.Errorf("size 1 should be ignored, got %d", e.Size())
	}
	if e := New(WithSize(6)); e.Size() != 6 {
		t.Errorf("size 6 should be accepted, got %d", e.Size())
	}
}
