package game

import (
	"fmt"
	"io/ioutil"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
)

type recordingSurface struct {
	lock    sync.Mutex
	calls   []string
	flushes int
}

func (surface *recordingSurface) DrawSprite(name string, pos int) {
	surface.lock.Lock()
	defer surface.lock.Unlock()
	surface.calls = append(surface.calls, fmt.Sprintf("sprite %s@%d", name, pos))
}

func (surface *recordingSurface) DrawMessage(msg string) {
	surface.lock.Lock()
	defer surface.lock.Unlock()
	surface.calls = append(surface.calls, "message "+msg)
}

func (surface *recordingSurface) Flush() {
	surface.lock.Lock()
	defer surface.lock.Unlock()
	surface.flushes++
}

func (surface *recordingSurface) reset() {
	surface.lock.Lock()
	defer surface.lock.Unlock()
	surface.calls = nil
	surface.flushes = 0
}

func (surface *recordingSurface) numFlushes() int {
	surface.lock.Lock()
	defer surface.lock.Unlock()
	return surface.flushes
}

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(ioutil.Discard)
	return logger
}

func testConfig(scheduler Scheduler) GameConfig {
	config := NewGameConfig()
	config.Seed = 1
	config.Scheduler = scheduler
	config.Logger = quietLogger()
	return config
}

func newTestGame(t *testing.T, pairIDs []string) (*Game, *ManualScheduler, *recordingSurface) {
	t.Helper()

	scheduler := NewManualScheduler()
	surface := &recordingSurface{}
	game := NewGame(surface, testConfig(scheduler))
	if err := game.Initialize(pairIDs); err != nil {
		t.Fatalf("failed to initialize game: %s", err)
	}
	return game, scheduler, surface
}

// positionsByID maps each pair id to the two positions holding it
func positionsByID(game *Game) map[string][]int {
	game.lock.Lock()
	defer game.lock.Unlock()

	positions := make(map[string][]int)
	for pos, card := range game.cards {
		positions[card.id] = append(positions[card.id], pos)
	}
	return positions
}

// mismatchedPositions returns two positions holding different ids
func mismatchedPositions(t *testing.T, game *Game) (int, int) {
	t.Helper()

	game.lock.Lock()
	defer game.lock.Unlock()

	for j := 1; j < len(game.cards); j++ {
		if game.cards[j].id != game.cards[0].id {
			return 0, j
		}
	}
	t.Fatal("board has no mismatched cards")
	return 0, 0
}

type gameState struct {
	cards        []Card
	held         int
	locked       bool
	message      string
	matchedPairs int
	generation   uint64
}

func snapshot(game *Game) gameState {
	game.lock.Lock()
	defer game.lock.Unlock()

	return gameState{
		cards:        append([]Card(nil), game.cards...),
		held:         game.held,
		locked:       game.locked,
		message:      game.message,
		matchedPairs: game.matchedPairs,
		generation:   game.generation,
	}
}

func statusAt(game *Game, pos int) CardStatus {
	game.lock.Lock()
	defer game.lock.Unlock()
	return game.cards[pos].status
}
