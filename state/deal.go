package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/game"
	"github.com/ratel-online/landlord/message"
)

type deal struct{}

func (*deal) Next(ctx context.Context, session *database.Session) (consts.StateID, error) {
	rules := session.Rules
	deck := game.NewDeck(rules.TotalCards())
	deck.Shuffle(session.Intn)
	hands, bonus, err := deck.Deal(rules.Players, rules.PlayerCards)
	if err != nil {
		return 0, err
	}
	session.Hands = hands
	session.Bonus = bonus
	for i, player := range session.Players {
		if err := player.Write(message.Init(hands[i].Cards())); err != nil {
			return 0, err
		}
	}
	log.Infof("dealt %d x %d cards, bonus pile %s\n", rules.Players, rules.PlayerCards, rules.Table().Names(bonus.Cards()))
	if err := session.Broadcast(message.Notice("Cards dealt, waiting for the landlord...")); err != nil {
		return 0, err
	}
	return consts.StateRob, nil
}
