package game

import (
	"math/rand"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// noCard marks the absence of a held card
const noCard = -1

type Game struct {
	lock sync.Mutex

	surface     Surface
	scheduler   Scheduler
	log         logrus.FieldLogger
	rand        *rand.Rand
	revertDelay time.Duration

	cards        []Card
	held         int
	locked       bool
	message      string
	matchedPairs int

	// Bumped by every Initialize; a scheduled revert only applies to the
	// generation it was scheduled in
	generation uint64
	pending    Timer
}

// NewGame creates an empty game drawing onto surface. Initialize must be
// called before the game can be played.
func NewGame(surface Surface, config GameConfig) *Game {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scheduler := config.Scheduler
	if scheduler == nil {
		scheduler = RealtimeScheduler{}
	}

	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	revertDelay := config.RevertDelay
	if revertDelay <= 0 {
		revertDelay = DefaultRevertDelay
	}

	return &Game{
		surface:     surface,
		scheduler:   scheduler,
		log:         log,
		rand:        rand.New(rand.NewSource(seed)),
		revertDelay: revertDelay,
		held:        noCard,
		message:     MessageGreeting,
	}
}

// Initialize deals a fresh, shuffled board holding two cards per pair id,
// discarding the current one. On error the current board is left as is.
func (game *Game) Initialize(pairIDs []string) error {
	if err := validatePairIDs(pairIDs); err != nil {
		return err
	}

	game.lock.Lock()
	defer game.lock.Unlock()

	if game.pending != nil {
		game.pending.Stop()
		game.pending = nil
	}
	game.generation++

	game.cards = dealCards(pairIDs, game.rand)
	game.held = noCard
	game.locked = false
	game.message = MessageGreeting
	game.matchedPairs = 0

	game.log.WithFields(logrus.Fields{
		"generation": game.generation,
		"pairs":      len(pairIDs),
	}).Info("game initialized")
	return nil
}

// HandleSelect reveals the card at index. Selections that cannot apply (the
// game is locked, the index is off the board, or the card is not Hidden) are
// ignored.
func (game *Game) HandleSelect(index int) {
	game.lock.Lock()
	defer game.lock.Unlock()

	log := game.log.WithField("position", index)

	switch {
	case game.locked:
		log.Debug("select ignored: locked")
		return
	case index < 0 || index >= len(game.cards):
		log.Debug("select ignored: off board")
		return
	case !game.cards[index].IsHidden():
		log.Debug("select ignored: card not hidden")
		return
	}

	card := &game.cards[index]
	if err := card.Flip(); err != nil {
		log.WithError(err).Warn("select could not flip card")
		return
	}
	log = log.WithField("id", card.id)

	if game.held == noCard {
		game.held = index
		log.Debug("card held")
		return
	}

	held := &game.cards[game.held]
	if card.Matches(held) {
		card.MarkFound()
		held.MarkFound()
		game.held = noCard
		game.matchedPairs++

		if game.matchedPairs == game.numPairs() {
			game.message = MessageWin
			game.locked = true
			log.WithField("matched", game.matchedPairs).Info("game won")
		} else {
			game.message = MessageMatchFound
			log.WithField("matched", game.matchedPairs).Debug("pair matched")
		}
		return
	}

	game.locked = true
	game.message = MessageTryAgain
	log.WithField("held", game.held).Debug("mismatch, reverting")

	generation, first, second := game.generation, game.held, index
	game.pending = game.scheduler.AfterFunc(game.revertDelay, func() {
		game.revert(generation, first, second)
	})
}

// revert flips back a mismatched pair and unlocks the game, unless the board
// it was scheduled for has since been replaced.
func (game *Game) revert(generation uint64, first, second int) {
	game.lock.Lock()
	defer game.lock.Unlock()

	if generation != game.generation || game.pending == nil {
		game.log.WithField("generation", generation).Debug("stale revert dropped")
		return
	}
	game.pending = nil

	for _, pos := range []int{first, second} {
		if err := game.cards[pos].Flip(); err != nil {
			game.log.WithError(err).WithField("position", pos).Warn("revert could not flip card")
		}
	}
	game.held = noCard
	game.locked = false
}

func (game *Game) numPairs() int {
	return len(game.cards) / 2
}

func (game *Game) IsWon() bool {
	game.lock.Lock()
	defer game.lock.Unlock()
	return len(game.cards) > 0 && game.matchedPairs == game.numPairs()
}

func (game *Game) NumCards() int {
	game.lock.Lock()
	defer game.lock.Unlock()
	return len(game.cards)
}
