package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/event"
	"github.com/ratel-online/landlord/message"
)

type rob struct{}

func (*rob) Next(ctx context.Context, session *database.Session) (consts.StateID, error) {
	for _, player := range session.Players {
		player.Drain()
	}
	if err := session.Broadcast(message.AskRob()); err != nil {
		return 0, err
	}
	sweeps := session.Rules.RobSweeps
	for sweep := 1; sweep <= sweeps; sweep++ {
		for i := range session.Players {
			yes, err := handleRob(ctx, session, i)
			if err != nil {
				return 0, err
			}
			if yes {
				return consts.StatePlay, becomeLandlord(session, i, false)
			}
		}
		if sweep < sweeps {
			notice := message.Notice("Nobody robbed the landlord, asking again (%d/%d)", sweep+1, sweeps)
			if err := session.Broadcast(notice); err != nil {
				return 0, err
			}
		}
	}
	log.Infof("nobody robbed after %d sweeps, forcing %s\n", sweeps, session.Name(0))
	return consts.StatePlay, becomeLandlord(session, 0, true)
}

// handleRob waits for one yes/no answer from player i. A timeout is a no.
func handleRob(ctx context.Context, session *database.Session, i int) (bool, error) {
	player := session.Players[i]
	robCtx, cancel := context.WithTimeout(ctx, session.Rules.RobTimeout)
	defer cancel()
	for {
		req, err := player.Await(robCtx)
		if err != nil {
			timeout, err := timedOut(ctx, err)
			if !timeout {
				return false, err
			}
			log.Infof("%s rob timeout\n", session.Name(i))
			return false, session.Broadcast(message.Notice("%s don't rob", session.Name(i)))
		}
		bid, ok := req.(message.Bid)
		if !ok {
			if err := player.Write(message.Notice("%sAnswer 1 to rob or 0 to pass", consts.ErrorsInputInvalid.Error())); err != nil {
				return false, err
			}
			continue
		}
		if bid.Rob {
			return true, session.Broadcast(message.Notice("%s rob", session.Name(i)))
		}
		if err := session.Broadcast(message.Notice("%s don't rob", session.Name(i))); err != nil {
			return false, err
		}
		return false, nil
	}
}

func becomeLandlord(session *database.Session, landlord int, forced bool) error {
	bonus, err := session.AwardBonus(landlord)
	if err != nil {
		return err
	}
	log.Infof("%s became landlord, got %s\n", session.Name(landlord), session.Rules.Table().Names(bonus))
	event.LandlordChosen.Emit(event.LandlordChosenPayload{
		PlayerName: session.Name(landlord),
		Bonus:      bonus.Sorted().Ints(),
		Forced:     forced,
	})
	if err := session.Players[landlord].Write(message.Add(bonus)); err != nil {
		return err
	}
	notice := message.Notice("%s became landlord", session.Name(landlord))
	if forced {
		notice = message.Notice("Nobody robbed, %s became landlord by default", session.Name(landlord))
	}
	return session.Broadcast(notice)
}
