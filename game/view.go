package game

import (
	"context"
	"time"
)

// CardView is the renderable state of one board position. ID is empty while
// the card is Hidden.
type CardView struct {
	Position int
	Status   CardStatus
	ID       string
}

type BoardView struct {
	Message      string
	Cards        []CardView
	MatchedPairs int
	TotalPairs   int
	Locked       bool
	Won          bool
}

// Held returns the position of the card awaiting a second selection, or -1
func (view BoardView) Held() int {
	revealed := -1
	for _, card := range view.Cards {
		if card.Status == Revealed {
			if revealed != -1 {
				// Two revealed cards: a mismatch waiting to be reverted
				return -1
			}
			revealed = card.Position
		}
	}
	return revealed
}

func (game *Game) View() BoardView {
	game.lock.Lock()
	defer game.lock.Unlock()

	cards := make([]CardView, len(game.cards))
	for i, card := range game.cards {
		cards[i] = CardView{Position: i, Status: card.status}
		if card.status != Hidden {
			cards[i].ID = card.id
		}
	}

	return BoardView{
		Message:      game.message,
		Cards:        cards,
		MatchedPairs: game.matchedPairs,
		TotalPairs:   game.numPairs(),
		Locked:       game.locked,
		Won:          len(game.cards) > 0 && game.matchedPairs == game.numPairs(),
	}
}

// Render draws the status message and every card onto the game's surface.
func (game *Game) Render() {
	if game.surface == nil {
		return
	}

	game.lock.Lock()
	message := game.message
	cards := append([]Card(nil), game.cards...)
	game.lock.Unlock()

	game.surface.DrawMessage(message)
	for pos := range cards {
		cards[pos].Render(game.surface, pos)
	}

	if flusher, ok := game.surface.(Flusher); ok {
		flusher.Flush()
	}
}

// RenderLoop renders the game every interval until ctx is done.
func RenderLoop(ctx context.Context, interval time.Duration, game *Game) {
	if interval <= 0 {
		interval = DefaultRedrawInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			game.Render()
		}
	}
}
