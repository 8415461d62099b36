package game

import (
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

type Hand struct {
	cards map[card.Card]bool
}

func NewHand() *Hand {
	return &Hand{cards: map[card.Card]bool{}}
}

func (h *Hand) AddCards(cards card.Cards) {
	for _, c := range cards {
		h.cards[c] = true
	}
}

func (h *Hand) Contains(c card.Card) bool {
	return h.cards[c]
}

// Owns checks that every id is held and appears only once in cards.
func (h *Hand) Owns(cards card.Cards) error {
	seen := make(map[card.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return consts.ErrorsPokersDuplicated
		}
		seen[c] = true
		if !h.cards[c] {
			return consts.ErrorsPokersNotOwned
		}
	}
	return nil
}

// RemoveCards removes all of cards or, if any is not owned, none of them.
func (h *Hand) RemoveCards(cards card.Cards) error {
	if err := h.Owns(cards); err != nil {
		return err
	}
	for _, c := range cards {
		delete(h.cards, c)
	}
	return nil
}

// Cards returns the hand in ascending order.
func (h *Hand) Cards() card.Cards {
	cards := make(card.Cards, 0, len(h.cards))
	for c := range h.cards {
		cards = append(cards, c)
	}
	return cards.Sorted()
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) Size() int {
	return len(h.cards)
}
