package random

import (
	"math/rand"
	"sync"
	"time"

	"github.com/they4kman/gomemory/game"
)

// Director selects a uniformly random hidden card on every act.
type Director struct {
	game.BaseDirector

	// Seed for the director's choices; 0 picks one from the clock
	Seed int64

	lock  sync.Mutex
	board *game.Game
	rand  *rand.Rand
}

func (director *Director) Init(board *game.Game) {
	director.lock.Lock()
	defer director.lock.Unlock()

	seed := director.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	director.board = board
	director.rand = rand.New(rand.NewSource(seed))
}

func (director *Director) Act() {
	director.lock.Lock()
	defer director.lock.Unlock()

	if director.board == nil {
		return
	}

	view := director.board.View()
	if view.Locked {
		return
	}
	if pos, ok := Pick(director.rand, view); ok {
		director.board.HandleSelect(pos)
	}
}

func (director *Director) ActContinuously() {
	director.Run(director.Act)
}

func (director *Director) End() {
	director.Stop()
}

// Pick returns a uniformly random hidden position of view, if there is one
func Pick(rng *rand.Rand, view game.BoardView) (int, bool) {
	hidden := make([]int, 0, len(view.Cards))
	for _, card := range view.Cards {
		if card.Status == game.Hidden {
			hidden = append(hidden, card.Position)
		}
	}

	if len(hidden) == 0 {
		return 0, false
	}
	return hidden[rng.Intn(len(hidden))], true
}
