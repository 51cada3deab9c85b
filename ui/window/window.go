// Package window plays the game in an OpenGL window, driven by the mouse.
package window

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomemory/game"
	"github.com/they4kman/gomemory/ui"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const (
	cardWidth    = 100
	cardHeight   = 120
	cardGap      = 10
	margin       = 20
	headerHeight = 50
)

type surface struct {
	win  *pixelgl.Window
	grid ui.Grid

	imd     *imdraw.IMDraw
	message *text.Text
	labels  *text.Text
}

func newSurface(win *pixelgl.Window, grid ui.Grid) *surface {
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	topLeft := win.Bounds().Vertices()[1]

	message := text.New(topLeft.Add(pixel.V(margin, -30)), atlas)
	message.Color = colornames.Black

	labels := text.New(pixel.ZV, atlas)
	labels.Color = colornames.Black

	return &surface{
		win:     win,
		grid:    grid,
		imd:     imdraw.New(nil),
		message: message,
		labels:  labels,
	}
}

// DrawMessage starts a new frame
func (s *surface) DrawMessage(msg string) {
	s.imd.Clear()
	s.labels.Clear()
	s.message.Clear()

	s.message.Color = colornames.Black
	if msg == game.MessageWin {
		s.message.Color = colornames.Green
	}
	fmt.Fprint(s.message, msg)
}

func (s *surface) DrawSprite(name string, pos int) {
	min, max := s.cardBounds(pos)

	if name == game.BackSprite {
		s.imd.Color = colornames.Steelblue
	} else {
		s.imd.Color = colornames.Ivory
	}
	s.imd.Push(min, max)
	s.imd.Rectangle(0)

	if name == game.BackSprite {
		return
	}

	center := min.Add(max).Scaled(0.5)
	width := s.labels.BoundsOf(name).W()
	s.labels.Dot = center.Sub(pixel.V(width/2, s.labels.LineHeight/4))
	fmt.Fprint(s.labels, name)
}

func (s *surface) Flush() {
	s.win.Clear(colornames.Gainsboro)
	s.imd.Draw(s.win)
	s.message.Draw(s.win, pixel.IM)
	s.labels.Draw(s.win, pixel.IM)
}

// boardTop is the window y coordinate of the board's top edge
func (s *surface) boardTop() float64 {
	return s.win.Bounds().Max.Y - headerHeight
}

// cardBounds returns the bottom-left and top-right corners of the card at pos
func (s *surface) cardBounds(pos int) (pixel.Vec, pixel.Vec) {
	x, y := s.grid.Origin(pos)
	min := pixel.V(float64(margin+x), s.boardTop()-float64(y+s.grid.CellHeight))
	return min, min.Add(pixel.V(float64(s.grid.CellWidth), float64(s.grid.CellHeight)))
}

// indexAt maps a window point to a board position, or -1
func (s *surface) indexAt(p pixel.Vec) int {
	x, y := p.X-margin, s.boardTop()-p.Y
	if x < 0 || y < 0 {
		return -1
	}
	return s.grid.IndexAt(int(x), int(y))
}

// Run opens a window and plays until it is closed. It must be called from
// the function passed to pixelgl.Run.
func Run(config game.GameConfig) error {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	grid := ui.Grid{
		NumCards:   2 * len(config.PairIDs),
		Columns:    config.Columns,
		CellWidth:  cardWidth,
		CellHeight: cardHeight,
		Gap:        cardGap,
	}

	cfg := pixelgl.WindowConfig{
		Title: "gomemory",
		Bounds: pixel.R(
			0, 0,
			float64(grid.Width()+2*margin),
			float64(grid.Height()+headerHeight+margin),
		),
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer win.Destroy()

	surface := newSurface(win, grid)
	board := game.NewGame(surface, config)
	if err := board.Initialize(config.PairIDs); err != nil {
		return err
	}

	if config.Director != nil {
		config.Director.Init(board)
		config.Director.ActContinuously()
		defer config.Director.End()
	}

	interval := config.RedrawInterval
	if interval <= 0 {
		interval = game.DefaultRedrawInterval
	}
	frame := time.NewTicker(interval)
	defer frame.Stop()

	var (
		frames = 0
		second = time.Tick(time.Second)
	)

	for !win.Closed() {
		<-frame.C
		board.Render()
		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", cfg.Title, frames))
			frames = 0
		default:
		}

		if win.JustPressed(pixelgl.KeyEscape) {
			win.SetClosed(true)
			continue
		}

		// Start a new game with R, or with Enter once the game is won
		if win.JustPressed(pixelgl.KeyR) || (win.JustPressed(pixelgl.KeyEnter) && board.IsWon()) {
			if err := board.Initialize(config.PairIDs); err != nil {
				return err
			}
			continue
		}

		if win.JustPressed(pixelgl.MouseButtonLeft) && win.MouseInsideWindow() {
			p := win.MousePosition()
			pos := surface.indexAt(p)
			log.WithFields(logrus.Fields{"x": p.X, "y": p.Y, "position": pos}).Debug("click")
			board.HandleSelect(pos)
		}
	}
	return nil
}
