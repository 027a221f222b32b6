package tui

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/t2048"
)

const (
	cellWidth  = 7 // inner width 6 fits 131072, plus one border column
	cellHeight = 2 // one text row plus one border row
	hudHeight  = 3
	minWidth   = 30
)

// boardDims returns the board's outer width and height in cells.
func boardDims(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// requiredSize returns the smallest screen that fits the HUD, board and banner.
func requiredSize(size int) (w, h int) {
	bw, bh := boardDims(size)
	return max(bw, minWidth), hudHeight + 1 + bh + 2
}

// drawGame renders the full game screen for st. Merged tiles are drawn bold
// while flashing is set.
func drawGame(dst *core.Screen, st t2048.GameState, flashing bool) {
	dst.Clear()

	needW, needH := requiredSize(st.Size)
	if dst.Width() < needW || dst.Height() < needH {
		drawTooSmall(dst, needW, needH)
		return
	}

	boardW, boardH := boardDims(st.Size)
	board := dst.Bounds().Centered(boardW, boardH)
	board.Y = hudHeight + 1

	drawHUD(dst, st, board)
	drawGridLines(dst, st.Size, board)
	drawTiles(dst, st, board, flashing)

	switch st.Status {
	case t2048.StatusOver:
		drawOverlay(dst, board,
			"GAME OVER",
			fmt.Sprintf("Score: %d", st.Score),
			fmt.Sprintf("Max tile: %d", st.MaxTile),
			"Press R to restart",
		)
	case t2048.StatusWon:
		banner := fmt.Sprintf("You reached %d!", st.WinTile)
		x := board.X + (board.W-len(banner))/2
		dst.DrawStyledText(x, board.Bottom()+1, banner, core.ColorBrightYellow, true)
	}
}

func drawTooSmall(dst *core.Screen, needW, needH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", needW, needH))
}

// drawHUD draws the title, score, best score and board size above the board.
func drawHUD(dst *core.Screen, st t2048.GameState, board core.Rect) {
	title := "2048"
	dst.DrawStyledText(board.X+(board.W-len(title))/2, 0, title, core.ColorOrange, true)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", st.Score))
	best := fmt.Sprintf("Best: %d", st.BestScore)
	dst.DrawText(max(board.Right()-len(best), board.X), 1, best)

	dst.DrawStyledText(board.X, 2, fmt.Sprintf("%dx%d", st.Size, st.Size), core.ColorGray, false)
	maxTile := fmt.Sprintf("Max: %d", st.MaxTile)
	dst.DrawStyledText(max(board.Right()-len(maxTile), board.X), 2, maxTile, core.ColorGray, false)
}

// drawGridLines draws the cell borders with box-drawing characters.
func drawGridLines(dst *core.Screen, size int, board core.Rect) {
	for y := range size + 1 {
		for x := range size + 1 {
			px := board.X + x*cellWidth
			py := board.Y + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, core.Cell{Rune: corner, Color: core.ColorGray})

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Color: core.ColorGray})
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Color: core.ColorGray})
				}
			}
		}
	}
}

// drawTiles writes each tile value centered in its cell.
func drawTiles(dst *core.Screen, st t2048.GameState, board core.Rect, flashing bool) {
	for r, row := range st.Grid {
		for c, tile := range row {
			if tile.Empty() {
				continue
			}
			text := strconv.Itoa(tile.Value)
			pad := max((cellWidth-1-len(text))/2, 0)
			x := board.X + c*cellWidth + 1 + pad
			y := board.Y + r*cellHeight + 1
			dst.DrawStyledText(x, y, text, core.TileColor(tile.Value), flashing && tile.JustMerged)
		}
	}
}

// drawOverlay draws a boxed message centered on the board.
func drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := board.Centered(maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		x := box.X + (box.W-len(line))/2
		if i == 0 {
			dst.DrawStyledText(x, box.Y+1+i, line, core.ColorBrightRed, true)
			continue
		}
		dst.DrawText(x, box.Y+1+i, line)
	}
}
