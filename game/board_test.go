package game

import (
	"errors"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

func TestPairsFromDeck(t *testing.T) {
	deck := []string{"8-ball", "potato", "dinosaur", "8-ball", "dinosaur", "potato"}

	pairIDs, err := PairsFromDeck(deck)
	if err != nil {
		t.Fatal(err)
	}

	expected := []string{"8-ball", "potato", "dinosaur"}
	if !reflect.DeepEqual(pairIDs, expected) {
		t.Errorf("expected %v, got %v", expected, pairIDs)
	}
}

func TestPairsFromDeckRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		deck []string
		err  error
	}{
		{"odd", []string{"a", "a", "b"}, ErrOddDeck},
		{"single", []string{"a", "b"}, ErrUnpairedCard},
		{"triple", []string{"a", "a", "a", "b"}, ErrUnpairedCard},
	}

	for _, test := range tests {
		if _, err := PairsFromDeck(test.deck); !errors.Is(err, test.err) {
			t.Errorf("%s: expected %v, got %v", test.name, test.err, err)
		}
	}
}

func TestDealCardsIsPermutation(t *testing.T) {
	pairIDs := []string{"kronos", "rocket", "unicorn"}
	rng := rand.New(rand.NewSource(7))

	var expected []string
	for _, id := range pairIDs {
		expected = append(expected, id, id)
	}
	sort.Strings(expected)

	for run := 0; run < 20; run++ {
		cards := dealCards(pairIDs, rng)

		var got []string
		for _, card := range cards {
			got = append(got, card.id)
			if card.status != Hidden {
				t.Errorf("dealt card %s is not hidden", card.id)
			}
		}
		sort.Strings(got)

		if !reflect.DeepEqual(got, expected) {
			t.Fatalf("deal is not a permutation: expected %v, got %v", expected, got)
		}
	}
}
