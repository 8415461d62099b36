package state

import (
	"context"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
)

var states = map[consts.StateID]State{}

func init() {
	register(consts.StateDeal, &deal{})
	register(consts.StateRob, &rob{})
	register(consts.StatePlay, &play{})
}

func register(id consts.StateID, state State) {
	states[id] = state
}

type State interface {
	Next(ctx context.Context, session *database.Session) (consts.StateID, error)
}

// Run drives session from its current state until a winner is declared.
func Run(ctx context.Context, session *database.Session) error {
	for session.State != consts.StateOver {
		state, ok := states[session.State]
		if !ok {
			return consts.ErrorsExist
		}
		log.Infof("session entering %s\n", consts.States[session.State])
		next, err := state.Next(ctx, session)
		if err != nil {
			log.Error(err)
			return err
		}
		session.State = next
	}
	return nil
}

// timedOut reports whether err is a per-step timeout rather than the
// session context ending.
func timedOut(ctx context.Context, err error) (bool, error) {
	if err != consts.ErrorsTimeout {
		return false, err
	}
	if ctx.Err() != nil {
		return false, consts.ErrorsCanceled
	}
	return true, nil
}
