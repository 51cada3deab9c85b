// Package recall provides a director with perfect memory: every card it has
// seen face up is remembered, so each pair costs at most one wasted attempt.
package recall

import (
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/they4kman/gomemory/director/random"
	"github.com/they4kman/gomemory/game"
	"github.com/they4kman/gomemory/util/collections"
)

type Director struct {
	game.BaseDirector

	// Seed for choosing among unseen cards; 0 picks one from the clock
	Seed int64

	lock  sync.Mutex
	board *game.Game
	rand  *rand.Rand

	// Positions seen for each id, and the id seen at each position
	seen  map[string]collections.Set[int]
	known map[int]string

	numCards int
	matched  int
}

type actor func(view game.BoardView) (int, bool)

func (director *Director) Init(board *game.Game) {
	director.lock.Lock()
	defer director.lock.Unlock()

	seed := director.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	director.board = board
	director.rand = rand.New(rand.NewSource(seed))
	director.forget()
}

func (director *Director) forget() {
	director.seen = make(map[string]collections.Set[int])
	director.known = make(map[int]string)
	director.matched = 0
}

func (director *Director) Act() {
	director.lock.Lock()
	defer director.lock.Unlock()

	if director.board == nil {
		return
	}

	// A mismatched second card is only face up while the game is locked
	view := director.board.View()
	director.observe(view)
	if view.Locked {
		return
	}

	actors := []actor{
		director.actPartner,
		director.actKnownPair,
		director.actUnseen,
		director.actRandom,
	}
	for _, act := range actors {
		if pos, ok := act(view); ok {
			director.board.HandleSelect(pos)
			return
		}
	}
}

func (director *Director) ActContinuously() {
	director.Run(director.Act)
}

func (director *Director) End() {
	director.Stop()
}

// observe records every face-up card, forgetting everything first if the
// board was dealt again since the last act.
func (director *Director) observe(view game.BoardView) {
	if len(view.Cards) != director.numCards || view.MatchedPairs < director.matched || director.conflicts(view) {
		director.forget()
		director.numCards = len(view.Cards)
	}
	director.matched = view.MatchedPairs

	for _, card := range view.Cards {
		if card.ID == "" {
			continue
		}
		director.known[card.Position] = card.ID
		if director.seen[card.ID] == nil {
			director.seen[card.ID] = collections.NewSet[int]()
		}
		director.seen[card.ID].Add(card.Position)
	}
}

func (director *Director) conflicts(view game.BoardView) bool {
	for _, card := range view.Cards {
		if id, ok := director.known[card.Position]; ok && card.ID != "" && id != card.ID {
			return true
		}
	}
	return false
}

// actPartner completes the held card's pair, if the partner has been seen
func (director *Director) actPartner(view game.BoardView) (int, bool) {
	held := view.Held()
	if held < 0 {
		return 0, false
	}

	for _, pos := range sorted(director.seen[view.Cards[held].ID]) {
		if pos != held && view.Cards[pos].Status == game.Hidden {
			return pos, true
		}
	}
	return 0, false
}

// actKnownPair starts on a pair whose positions are both remembered
func (director *Director) actKnownPair(view game.BoardView) (int, bool) {
	if view.Held() >= 0 {
		return 0, false
	}

	ids := make([]string, 0, len(director.seen))
	for id := range director.seen {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if director.seen[id].Len() != 2 {
			continue
		}
		positions := sorted(director.seen[id])
		if view.Cards[positions[0]].Status == game.Hidden && view.Cards[positions[1]].Status == game.Hidden {
			return positions[0], true
		}
	}
	return 0, false
}

// actUnseen picks a random hidden card that has never been face up
func (director *Director) actUnseen(view game.BoardView) (int, bool) {
	hidden := collections.NewSet[int]()
	for _, card := range view.Cards {
		if card.Status == game.Hidden {
			hidden.Add(card.Position)
		}
	}

	knownPositions := collections.NewSet[int]()
	for pos := range director.known {
		knownPositions.Add(pos)
	}

	unseen := hidden.Difference(knownPositions)
	if unseen.Len() == 0 {
		return 0, false
	}
	positions := sorted(unseen)
	return positions[director.rand.Intn(len(positions))], true
}

func (director *Director) actRandom(view game.BoardView) (int, bool) {
	return random.Pick(director.rand, view)
}

func sorted(set collections.Set[int]) []int {
	items := set.Items()
	sort.Ints(items)
	return items
}
