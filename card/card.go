package card

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ratel-online/landlord/consts"
)

// Card is a card id. Ids start at 1 and id and id+DeckFaces share a face.
type Card int

type Suit int

const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
	Jokers
)

var suits = map[Suit]string{
	Hearts:   "♥",
	Spades:   "♠",
	Diamonds: "♦",
	Clubs:    "♣",
	Jokers:   "",
}

var ranks = []string{"3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A", "2"}

type Face struct {
	Suit Suit
	Rank string
}

func (f Face) String() string {
	return suits[f.Suit] + f.Rank
}

func (f Face) Color() Color {
	switch f.Suit {
	case Hearts, Diamonds:
		return Red
	case Jokers:
		return Joker
	}
	return Black
}

var faces = func() []Face {
	list := make([]Face, 0, consts.DeckFaces)
	for _, suit := range []Suit{Hearts, Spades, Diamonds, Clubs} {
		for _, rank := range ranks {
			list = append(list, Face{Suit: suit, Rank: rank})
		}
	}
	return append(list, Face{Suit: Jokers, Rank: "jk"}, Face{Suit: Jokers, Rank: "JK"})
}()

// Table resolves faces for the ids of one shoe, [1, total]. Every
// consts.DeckFaces consecutive ids form one deck.
type Table struct {
	total int
}

func NewTable(total int) Table {
	return Table{total: total}
}

func (t Table) Total() int {
	return t.total
}

func (t Table) Valid(c Card) bool {
	return c >= 1 && int(c) <= t.total
}

// Face reports false for ids outside the shoe.
func (t Table) Face(c Card) (Face, bool) {
	if !t.Valid(c) {
		return Face{}, false
	}
	return faces[(int(c)-1)%len(faces)], true
}

func (t Table) Name(c Card) string {
	face, ok := t.Face(c)
	if !ok {
		return "?" + strconv.Itoa(int(c))
	}
	return face.String()
}

func (t Table) Paint(c Card) string {
	face, ok := t.Face(c)
	if !ok {
		return t.Name(c)
	}
	return face.Color().Paintf("%s(%d)", face.String(), int(c))
}

// Names renders cs as "[♥4 ♠3 jk]".
func (t Table) Names(cs Cards) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, t.Name(c))
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (t Table) PaintCards(cs Cards) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, t.Paint(c))
	}
	return strings.Join(parts, " ")
}

type Cards []Card

func FromInts(ids []int) Cards {
	cards := make(Cards, len(ids))
	for i, id := range ids {
		cards[i] = Card(id)
	}
	return cards
}

func (cs Cards) Ints() []int {
	ids := make([]int, len(cs))
	for i, c := range cs {
		ids[i] = int(c)
	}
	return ids
}

// Sorted returns an ascending copy.
func (cs Cards) Sorted() Cards {
	sorted := make(Cards, len(cs))
	copy(sorted, cs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	return sorted
}
