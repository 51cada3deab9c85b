package game

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	ErrNoPairs         = errors.New("at least one pair id is required")
	ErrEmptyPairID     = errors.New("pair id must not be empty")
	ErrDuplicatePairID = errors.New("pair id listed more than once")
	ErrReservedPairID  = fmt.Errorf("pair id %q is reserved for the card back", BackSprite)
	ErrOddDeck         = errors.New("deck has an odd number of cards")
	ErrUnpairedCard    = errors.New("deck card does not appear exactly twice")
)

func validatePairIDs(pairIDs []string) error {
	if len(pairIDs) == 0 {
		return ErrNoPairs
	}

	seen := make(map[string]struct{}, len(pairIDs))
	for i, id := range pairIDs {
		switch {
		case id == "":
			return fmt.Errorf("pair %d: %w", i, ErrEmptyPairID)
		case id == BackSprite:
			return fmt.Errorf("pair %d: %w", i, ErrReservedPairID)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("pair %q: %w", id, ErrDuplicatePairID)
		}
		seen[id] = struct{}{}
	}
	return nil
}

// PairsFromDeck converts a full deck, where every id is listed twice, into
// the list of distinct pair ids in order of first appearance.
func PairsFromDeck(deck []string) ([]string, error) {
	if len(deck)%2 != 0 {
		return nil, fmt.Errorf("%d cards: %w", len(deck), ErrOddDeck)
	}

	counts := make(map[string]int, len(deck)/2)
	pairIDs := make([]string, 0, len(deck)/2)
	for _, id := range deck {
		if counts[id] == 0 {
			pairIDs = append(pairIDs, id)
		}
		counts[id]++
	}
	for _, id := range pairIDs {
		if counts[id] != 2 {
			return nil, fmt.Errorf("%q appears %d times: %w", id, counts[id], ErrUnpairedCard)
		}
	}
	return pairIDs, nil
}

// dealCards lays out two cards per pair id, in shuffled order
func dealCards(pairIDs []string, rng *rand.Rand) []Card {
	cards := make([]Card, 0, 2*len(pairIDs))
	for _, id := range pairIDs {
		cards = append(cards, NewCard(id), NewCard(id))
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
