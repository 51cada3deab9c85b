package game

import (
	"errors"
	"fmt"
)

// ErrCardMatched is returned by Flip on a card that has already been matched.
// The card is left untouched.
var ErrCardMatched = errors.New("card already matched")

type Card struct {
	id     string
	status CardStatus
}

func NewCard(id string) Card {
	return Card{id: id, status: Hidden}
}

func (card *Card) String() string {
	return fmt.Sprintf("Card(%s, %s)", card.id, card.status)
}

func (card *Card) ID() string {
	return card.id
}

func (card *Card) Status() CardStatus {
	return card.status
}

func (card *Card) IsHidden() bool {
	return card.status == Hidden
}

// Flip toggles a card between Hidden and Revealed
func (card *Card) Flip() error {
	switch card.status {
	case Hidden:
		card.status = Revealed
	case Revealed:
		card.status = Hidden
	default:
		return ErrCardMatched
	}
	return nil
}

func (card *Card) MarkFound() {
	card.status = Matched
}

func (card *Card) Matches(other *Card) bool {
	return other != nil && card.id == other.id
}

// Render draws the card at pos: the back sprite while Hidden, its own sprite
// otherwise.
func (card *Card) Render(surface Surface, pos int) {
	if card.status == Hidden {
		surface.DrawSprite(BackSprite, pos)
	} else {
		surface.DrawSprite(card.id, pos)
	}
}
