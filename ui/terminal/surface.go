package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/they4kman/gomemory/game"
	"github.com/they4kman/gomemory/ui"
)

const (
	cellWidth  = 14
	cellHeight = 3
	cellGap    = 1

	// Rows above the board, holding the status message
	boardTop = 2
)

// Keys select cards from the keyboard, in position order. q and r are taken
// by quit and restart.
const keys = "1234567890abcdefghijklmnopstuvwxyz"

var (
	styleMessage = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleBack    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorSilver)
	styleFace    = tcell.StyleDefault.Background(tcell.ColorSilver).Foreground(tcell.ColorBlack)
	styleHelp    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type surface struct {
	screen tcell.Screen
	grid   ui.Grid
}

func newSurface(screen tcell.Screen, numCards, columns int) *surface {
	return &surface{
		screen: screen,
		grid: ui.Grid{
			NumCards:   numCards,
			Columns:    columns,
			CellWidth:  cellWidth,
			CellHeight: cellHeight,
			Gap:        cellGap,
		},
	}
}

// DrawMessage starts a new frame
func (s *surface) DrawMessage(msg string) {
	s.screen.Clear()
	drawText(s.screen, 0, 0, cellWidth*s.grid.Columns, styleMessage, msg)
	drawText(s.screen, 0, boardTop+s.grid.Height()+1, s.grid.Width(), styleHelp, "click or press a card's key | r: restart | q: quit")
}

func (s *surface) DrawSprite(name string, pos int) {
	x, y := s.grid.Origin(pos)
	y += boardTop

	style := styleFace
	if name == game.BackSprite {
		style = styleBack
	}

	for row := 0; row < cellHeight; row++ {
		for col := 0; col < cellWidth; col++ {
			s.screen.SetContent(x+col, y+row, ' ', nil, style)
		}
	}

	if pos < len(keys) {
		s.screen.SetContent(x, y, rune(keys[pos]), nil, style.Bold(true))
	}

	label := []rune(name)
	if name == game.BackSprite {
		label = []rune("?")
	}
	if len(label) > cellWidth-2 {
		label = label[:cellWidth-2]
	}
	drawText(s.screen, x+(cellWidth-len(label))/2, y+cellHeight/2, len(label), style, string(label))
}

func (s *surface) Flush() {
	s.screen.Show()
}

// indexAt maps a screen cell to a board position, or -1
func (s *surface) indexAt(x, y int) int {
	return s.grid.IndexAt(x, y-boardTop)
}

func keyIndex(r rune) int {
	for i, key := range keys {
		if key == r {
			return i
		}
	}
	return -1
}

func drawText(screen tcell.Screen, x, y, maxWidth int, style tcell.Style, text string) {
	col := 0
	for _, r := range text {
		if col >= maxWidth {
			return
		}
		screen.SetContent(x+col, y, r, nil, style)
		col++
	}
}
