package game

import (
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

// Pile is the bonus pile: the cards withheld from the deal until a landlord
// takes them. It belongs to the session goroutine.
type Pile struct {
	cards card.Cards
	taken bool
}

func NewPile(cards card.Cards) *Pile {
	pile := &Pile{cards: make(card.Cards, len(cards))}
	copy(pile.cards, cards)
	return pile
}

func (p *Pile) Cards() card.Cards {
	return p.cards.Sorted()
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// Take empties the pile. It succeeds once.
func (p *Pile) Take() (card.Cards, error) {
	if p.taken {
		return nil, consts.ErrorsBonusTaken
	}
	cards := p.cards.Sorted()
	p.cards = nil
	p.taken = true
	return cards, nil
}
