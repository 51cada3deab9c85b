package recall

import (
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gomemory/game"
)

func newGame(t *testing.T, scheduler game.Scheduler, seed int64) *game.Game {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)

	config := game.NewGameConfig()
	config.Seed = seed
	config.Scheduler = scheduler
	config.Logger = logger

	board := game.NewGame(nil, config)
	if err := board.Initialize(game.DefaultPairIDs); err != nil {
		t.Fatal(err)
	}
	return board
}

func TestDirectorWinsWithBoundedSelections(t *testing.T) {
	numPairs := len(game.DefaultPairIDs)

	for seed := int64(1); seed <= 20; seed++ {
		scheduler := game.NewManualScheduler()
		board := newGame(t, scheduler, seed)

		director := &Director{Seed: seed}
		director.Init(board)

		acts := 0
		for !board.IsWon() {
			if acts > 6*numPairs {
				t.Fatalf("seed %d: no win after %d selections", seed, acts)
			}
			director.Act()
			acts++
			scheduler.Advance(game.DefaultRevertDelay)
		}
	}
}

func TestDirectorCompletesHeldPair(t *testing.T) {
	const seed = 9
	scheduler := game.NewManualScheduler()
	board := newGame(t, scheduler, seed)

	director := &Director{Seed: seed}
	director.Init(board)

	// Act until a mismatch; the card held before the last act was observed
	held := -1
	for !board.View().Locked {
		held = board.View().Held()
		director.Act()
	}
	if held < 0 {
		t.Fatal("mismatch without a held card")
	}
	scheduler.Advance(game.DefaultRevertDelay)

	id := idAt(t, seed, held)
	partner := -1
	for pos := 0; pos < board.NumCards(); pos++ {
		if pos != held && idAt(t, seed, pos) == id {
			partner = pos
		}
	}

	matched := board.View().MatchedPairs
	board.HandleSelect(partner)
	director.Act()

	if got := board.View().MatchedPairs; got != matched+1 {
		t.Errorf("expected the director to complete the %s pair, matched %d -> %d", id, matched, got)
	}
}

func TestDirectorForgetsAfterNewDeal(t *testing.T) {
	scheduler := game.NewManualScheduler()
	board := newGame(t, scheduler, 4)

	director := &Director{Seed: 4}
	director.Init(board)
	for i := 0; i < 6; i++ {
		director.Act()
		scheduler.Advance(game.DefaultRevertDelay)
	}

	if err := board.Initialize([]string{"sun", "moon"}); err != nil {
		t.Fatal(err)
	}
	for acts := 0; !board.IsWon(); acts++ {
		if acts > 12 {
			t.Fatal("director did not adapt to the new board")
		}
		director.Act()
		scheduler.Advance(game.DefaultRevertDelay)
	}
}

// idAt reads the id at pos by dealing an identical board and revealing it
func idAt(t *testing.T, seed int64, pos int) string {
	t.Helper()

	twin := newGame(t, game.NewManualScheduler(), seed)
	twin.HandleSelect(pos)
	return twin.View().Cards[pos].ID
}

func TestDirectorRemembersMismatchedCard(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		scheduler := game.NewManualScheduler()
		board := newGame(t, scheduler, seed)

		director := &Director{Seed: seed}
		director.Init(board)

		// Act until a mismatch locks the board
		for !board.View().Locked {
			if board.IsWon() {
				break
			}
			director.Act()
		}
		if board.IsWon() {
			continue
		}

		var revealed []int
		for _, card := range board.View().Cards {
			if card.Status == game.Revealed {
				revealed = append(revealed, card.Position)
			}
		}
		if len(revealed) != 2 {
			t.Fatalf("seed %d: expected two revealed cards while locked, got %v", seed, revealed)
		}

		director.Act()
		scheduler.Advance(game.DefaultRevertDelay)
		director.Act()

		for _, pos := range revealed {
			if _, ok := director.known[pos]; !ok {
				t.Errorf("seed %d: mismatched card at %d was never remembered", seed, pos)
			}
		}
	}
}
