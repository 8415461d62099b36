package database

import (
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/game"
	"github.com/ratel-online/landlord/message"
	"github.com/ratel-online/landlord/rule"
)

// Session is one game from deal to winner. Players and hands are indexed by
// join order and never resized.
type Session struct {
	Rules    rule.Rules
	Players  []Channel
	Hands    []*game.Hand
	Bonus    *game.Pile
	Landlord int
	Resolved bool
	State    consts.StateID

	LastType  string
	LastCards card.Cards

	// Intn drives the shuffle; nil means game.DefaultIntn.
	Intn game.Intn

	turn *game.Cycler
}

func NewSession(rules rule.Rules, players []Channel) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if len(players) != rules.Players {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	return &Session{
		Rules:    rules,
		Players:  players,
		Landlord: -1,
		State:    consts.StateDeal,
		LastType: message.TurnNone,
		turn:     game.NewCycler(len(players), 0),
	}, nil
}

func (s *Session) Turn() int {
	return s.turn.Current()
}

// Advance passes the turn to the next player in join order.
func (s *Session) Advance() int {
	return s.turn.Next()
}

// Broadcast writes out to every player, stopping at the first failure.
func (s *Session) Broadcast(out message.Outbound) error {
	for _, player := range s.Players {
		if err := player.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// Remaining counts the cards still held across all hands.
func (s *Session) Remaining() int {
	total := 0
	for _, hand := range s.Hands {
		total += hand.Size()
	}
	return total
}

// AwardBonus moves the whole bonus pile into the landlord's hand and makes
// the landlord the current player.
func (s *Session) AwardBonus(landlord int) (card.Cards, error) {
	if landlord < 0 || landlord >= len(s.Hands) {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	cards, err := s.Bonus.Take()
	if err != nil {
		return nil, err
	}
	s.Hands[landlord].AddCards(cards)
	s.Landlord = landlord
	s.Resolved = true
	s.turn = game.NewCycler(len(s.Players), landlord)
	return cards, nil
}

func (s *Session) Name(index int) string {
	return PlayerName(index)
}
