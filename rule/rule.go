package rule

import (
	"fmt"
	"time"

	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

var Default = Rules{
	Players:     consts.Players,
	PlayerCards: consts.PlayerCards,
	Decks:       consts.Decks,
	RobSweeps:   consts.RobSweeps,
	RobTimeout:  consts.RobTimeout,
	PlayTimeout: consts.PlayTimeout,
	PlayRetries: consts.PlayRetries,
}

// Rules fixes the shape of one session. The card id space is
// [1, TotalCards] and every deck contributes consts.DeckFaces ids.
type Rules struct {
	Players     int
	PlayerCards int
	Decks       int
	RobSweeps   int
	RobTimeout  time.Duration
	PlayTimeout time.Duration
	PlayRetries int
}

func (r Rules) TotalCards() int {
	return r.Decks * consts.DeckFaces
}

// Table resolves faces for every id the rules deal.
func (r Rules) Table() card.Table {
	return card.NewTable(r.TotalCards())
}

func (r Rules) BonusCards() int {
	return r.TotalCards() - r.Players*r.PlayerCards
}

func (r Rules) Validate() error {
	switch {
	case r.Players < 2:
		return invalid("players must be at least 2, got %d", r.Players)
	case r.PlayerCards < 1:
		return invalid("player cards must be positive, got %d", r.PlayerCards)
	case r.Decks < 1:
		return invalid("decks must be positive, got %d", r.Decks)
	case r.BonusCards() < 0:
		return invalid("%d players x %d cards exceeds %d cards", r.Players, r.PlayerCards, r.TotalCards())
	case r.RobSweeps < 1:
		return invalid("rob sweeps must be positive, got %d", r.RobSweeps)
	case r.PlayRetries < 1:
		return invalid("play retries must be positive, got %d", r.PlayRetries)
	case r.RobTimeout <= 0 || r.PlayTimeout <= 0:
		return invalid("timeouts must be positive, got %s and %s", r.RobTimeout, r.PlayTimeout)
	}
	return nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", consts.ErrorsRulesInvalid, fmt.Sprintf(format, args...))
}
