package game

import (
	"github.com/ratel-online/core/util/rand"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

// Intn returns a uniform value in [0, n).
type Intn func(n int) int

var DefaultIntn Intn = rand.Intn

type Deck struct {
	cards    card.Cards
	shuffled bool
}

// NewDeck returns the ordered id range [1, total].
func NewDeck(total int) *Deck {
	cards := make(card.Cards, total)
	for i := range cards {
		cards[i] = card.Card(i + 1)
	}
	return &Deck{cards: cards}
}

// Shuffle applies a Fisher-Yates permutation. Only the first call has an
// effect.
func (d *Deck) Shuffle(intn Intn) {
	if d.shuffled {
		return
	}
	if intn == nil {
		intn = DefaultIntn
	}
	for i := len(d.cards) - 1; i > 0; i-- {
		j := intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
	d.shuffled = true
}

// Deal slices the deck into consecutive chunks of perPlayer cards, one per
// player in order, and returns the rest as the bonus pile.
func (d *Deck) Deal(players, perPlayer int) ([]*Hand, *Pile, error) {
	if players < 1 || perPlayer < 1 || players*perPlayer > len(d.cards) {
		return nil, nil, consts.ErrorsGamePlayersInvalid
	}
	hands := make([]*Hand, players)
	for i := range hands {
		hands[i] = NewHand()
		hands[i].AddCards(d.cards[i*perPlayer : (i+1)*perPlayer])
	}
	return hands, NewPile(d.cards[players*perPlayer:]), nil
}
