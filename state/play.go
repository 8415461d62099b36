package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/event"
	"github.com/ratel-online/landlord/message"
)

type play struct{}

func (*play) Next(ctx context.Context, session *database.Session) (consts.StateID, error) {
	for {
		i := session.Turn()
		err := handlePlay(ctx, session, i)
		if err != nil {
			return 0, err
		}
		if session.Hands[i].Empty() {
			log.Infof("%s win the game\n", session.Name(i))
			event.GameWon.Emit(event.GameWonPayload{PlayerName: session.Name(i), Landlord: i == session.Landlord})
			return consts.StateOver, session.Broadcast(message.Notice("%s win the game!", session.Name(i)))
		}
		session.Advance()
	}
}

// handlePlay prompts player i until one play or skip is resolved. Invalid
// answers are re-prompted up to PlayRetries times within PlayTimeout; after
// that the turn is skipped.
func handlePlay(ctx context.Context, session *database.Session, i int) error {
	player := session.Players[i]
	playCtx, cancel := context.WithTimeout(ctx, session.Rules.PlayTimeout)
	defer cancel()
	for retries := 1; ; retries++ {
		req, err := player.Ask(playCtx, message.SetTurn(session.LastType, session.LastCards))
		if err != nil {
			timeout, err := timedOut(ctx, err)
			if !timeout {
				return err
			}
			log.Infof("%s play timeout, skipped\n", session.Name(i))
			return skip(session, i)
		}
		var reason error
		switch req := req.(type) {
		case message.Turn:
			if req.Skip() {
				return skip(session, i)
			}
			reason = session.Hands[i].RemoveCards(req.Cards)
			if reason == nil {
				return sell(session, i, req.Cards)
			}
		case message.Invalid:
			reason = req.Err
		default:
			reason = consts.ErrorsUnexpectedMessage
		}
		if retries >= session.Rules.PlayRetries {
			log.Infof("%s failed %d times, skipped\n", session.Name(i), retries)
			if err := player.Write(message.Notice("%sToo many invalid plays, your turn is skipped", reason.Error())); err != nil {
				return err
			}
			return skip(session, i)
		}
		if err := player.Write(message.Notice("%sPlease play again", reason.Error())); err != nil {
			return err
		}
	}
}

func skip(session *database.Session, i int) error {
	session.LastType = message.TurnSkip
	session.LastCards = nil
	event.PlayerSkipped.Emit(event.PlayerSkippedPayload{PlayerName: session.Name(i)})
	if err := session.Broadcast(message.Notice("%s skipped", session.Name(i))); err != nil {
		return err
	}
	return session.Broadcast(message.Announce(nil))
}

func sell(session *database.Session, i int, cards card.Cards) error {
	sells := cards.Sorted()
	session.LastType = message.TurnPlay
	session.LastCards = sells
	log.Infof("%s played %v, %d left\n", session.Name(i), sells.Ints(), session.Hands[i].Size())
	event.CardsPlayed.Emit(event.CardsPlayedPayload{
		PlayerName: session.Name(i),
		Cards:      sells.Ints(),
		Left:       session.Hands[i].Size(),
	})
	if err := session.Broadcast(message.Notice("%s played %s", session.Name(i), session.Rules.Table().Names(sells))); err != nil {
		return err
	}
	return session.Broadcast(message.Announce(sells))
}
