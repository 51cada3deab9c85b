// Package terminal plays the game in a terminal, with mouse and keyboard
// input.
package terminal

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomemory/game"
)

func Run(config game.GameConfig) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	return play(screen, config)
}

func play(screen tcell.Screen, config game.GameConfig) error {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	screen.EnableMouse()

	surface := newSurface(screen, 2*len(config.PairIDs), config.Columns)
	board := game.NewGame(surface, config)
	if err := board.Initialize(config.PairIDs); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		game.RenderLoop(ctx, config.RedrawInterval, board)
	}()
	defer func() {
		cancel()
		<-rendered
	}()

	if config.Director != nil {
		config.Director.Init(board)
		config.Director.ActContinuously()
		defer config.Director.End()
	}

	var buttons tcell.ButtonMask
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil

		case *tcell.EventResize:
			screen.Sync()

		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC, ev.Rune() == 'q':
				return nil
			case ev.Rune() == 'r', ev.Key() == tcell.KeyEnter && board.IsWon():
				if err := board.Initialize(config.PairIDs); err != nil {
					return err
				}
			case ev.Key() == tcell.KeyRune:
				board.HandleSelect(keyIndex(ev.Rune()))
			}

		case *tcell.EventMouse:
			// Only the press edge selects; held buttons keep reporting
			pressed := ev.Buttons()
			if pressed&tcell.Button1 != 0 && buttons&tcell.Button1 == 0 {
				x, y := ev.Position()
				pos := surface.indexAt(x, y)
				log.WithFields(logrus.Fields{"x": x, "y": y, "position": pos}).Debug("click")
				board.HandleSelect(pos)
			}
			buttons = pressed
		}
	}
}
