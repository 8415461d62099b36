package state

import (
	"context"
	"errors"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/game"
	"github.com/ratel-online/landlord/message"
	"github.com/ratel-online/landlord/rule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted answers requests in order. Once the script runs out it blocks
// until the context ends, or fails with closed when set.
type scripted struct {
	index   int
	replies []message.Request
	writes  []message.Outbound
	prompts int
	awaits  int
	closed  bool
	order   *[]int
}

func (s *scripted) Write(out message.Outbound) error {
	s.writes = append(s.writes, out)
	return nil
}

func (s *scripted) Ask(ctx context.Context, prompt message.Outbound) (message.Request, error) {
	s.prompts++
	*s.order = append(*s.order, s.index)
	if err := s.Write(prompt); err != nil {
		return nil, err
	}
	return s.Await(ctx)
}

func (s *scripted) Await(ctx context.Context) (message.Request, error) {
	s.awaits++
	if len(s.replies) > 0 {
		req := s.replies[0]
		s.replies = s.replies[1:]
		return req, nil
	}
	if s.closed {
		return nil, consts.ErrorsChanClosed
	}
	<-ctx.Done()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return nil, consts.ErrorsTimeout
	}
	return nil, consts.ErrorsCanceled
}

func (s *scripted) Drain() {}

func (s *scripted) ops(op message.Op) []message.Outbound {
	list := make([]message.Outbound, 0)
	for _, out := range s.writes {
		if out.Operation == op {
			list = append(list, out)
		}
	}
	return list
}

func (s *scripted) notices() []string {
	list := make([]string, 0)
	for _, out := range s.ops(message.OpMessage) {
		list = append(list, out.Message.(string))
	}
	return list
}

func testRules() rule.Rules {
	rules := rule.Default
	rules.RobTimeout = 20 * time.Millisecond
	rules.PlayTimeout = 50 * time.Millisecond
	return rules
}

func newSession(t *testing.T, rules rule.Rules) (*database.Session, []*scripted) {
	order := make([]int, 0)
	fakes := make([]*scripted, rules.Players)
	channels := make([]database.Channel, rules.Players)
	for i := range fakes {
		fakes[i] = &scripted{index: i, order: &order}
		channels[i] = fakes[i]
	}
	session, err := database.NewSession(rules, channels)
	require.NoError(t, err)
	session.Intn = rand.New(rand.NewSource(42)).Intn
	return session, fakes
}

func dealt(t *testing.T, rules rule.Rules) (*database.Session, []*scripted) {
	session, fakes := newSession(t, rules)
	next, err := (&deal{}).Next(context.Background(), session)
	require.NoError(t, err)
	require.Equal(t, consts.StateRob, next)
	return session, fakes
}

func ids(out message.Outbound) []int {
	return out.Message.([]int)
}

func TestDeal(t *testing.T) {
	session, fakes := dealt(t, testRules())

	all := make([]int, 0, 108)
	for i, fake := range fakes {
		inits := fake.ops(message.OpInit)
		require.Len(t, inits, 1)
		hand := ids(inits[0])
		require.Len(t, hand, 25)
		assert.Equal(t, session.Hands[i].Cards().Ints(), hand)
		assert.True(t, sort.IntsAreSorted(hand))
		all = append(all, hand...)
	}
	all = append(all, session.Bonus.Cards().Ints()...)
	expected := make([]int, 108)
	for i := range expected {
		expected[i] = i + 1
	}
	assert.ElementsMatch(t, expected, all)
	assert.Equal(t, 100, session.Remaining())
}

func TestRob(t *testing.T) {
	t.Run("first_yes_becomes_landlord", func(t *testing.T) {
		session, fakes := dealt(t, testRules())
		bonus := session.Bonus.Cards()
		fakes[0].replies = []message.Request{message.Bid{Rob: false}}
		fakes[1].replies = []message.Request{message.Bid{Rob: false}}
		fakes[2].replies = []message.Request{message.Bid{Rob: true}}
		fakes[3].replies = []message.Request{message.Bid{Rob: true}}

		next, err := (&rob{}).Next(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, consts.StatePlay, next)

		assert.Equal(t, 2, session.Landlord)
		assert.True(t, session.Resolved)
		assert.Equal(t, 2, session.Turn())
		assert.Equal(t, 33, session.Hands[2].Size())
		for _, i := range []int{0, 1, 3} {
			assert.Equal(t, 25, session.Hands[i].Size())
		}
		for _, c := range bonus {
			assert.True(t, session.Hands[2].Contains(c))
		}
		assert.Equal(t, 0, session.Bonus.Size())
		assert.Equal(t, 0, fakes[3].awaits)

		for i, fake := range fakes {
			assert.Len(t, fake.ops(message.OpAskS), 1)
			if i == 2 {
				require.Len(t, fake.ops(message.OpAdd), 1)
				assert.Equal(t, bonus.Ints(), ids(fake.ops(message.OpAdd)[0]))
			} else {
				assert.Empty(t, fake.ops(message.OpAdd))
			}
			assert.Contains(t, fake.notices(), "Player 3 became landlord")
		}
	})

	t.Run("re_polls_without_re_asking", func(t *testing.T) {
		session, fakes := dealt(t, testRules())
		for _, fake := range fakes {
			fake.replies = []message.Request{message.Bid{Rob: false}}
		}
		fakes[1].replies = append(fakes[1].replies, message.Bid{Rob: true})

		_, err := (&rob{}).Next(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, 1, session.Landlord)
		assert.Equal(t, 2, fakes[0].awaits)
		assert.Equal(t, 1, fakes[2].awaits)
		for _, fake := range fakes {
			assert.Len(t, fake.ops(message.OpAskS), 1)
		}
	})

	t.Run("forces_the_first_player_after_all_sweeps_decline", func(t *testing.T) {
		rules := testRules()
		rules.RobSweeps = 2
		session, fakes := dealt(t, rules)
		for _, fake := range fakes {
			fake.replies = []message.Request{message.Bid{Rob: false}, message.Bid{Rob: false}}
		}

		_, err := (&rob{}).Next(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, 0, session.Landlord)
		assert.Equal(t, 33, session.Hands[0].Size())
		assert.Contains(t, fakes[3].notices(), "Nobody robbed, Player 1 became landlord by default")
	})

	t.Run("counts_a_timeout_as_no", func(t *testing.T) {
		session, fakes := dealt(t, testRules())
		fakes[1].replies = []message.Request{message.Bid{Rob: true}}

		_, err := (&rob{}).Next(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, 1, session.Landlord)
		assert.Contains(t, fakes[2].notices(), "Player 1 don't rob")
	})

	t.Run("re_asks_after_invalid_input", func(t *testing.T) {
		session, fakes := dealt(t, testRules())
		fakes[0].replies = []message.Request{
			message.Invalid{Op: message.OpAnsS, Err: consts.ErrorsInputInvalid},
			message.Turn{Cards: card.Cards{1}},
			message.Bid{Rob: true},
		}

		_, err := (&rob{}).Next(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, 0, session.Landlord)
		assert.Len(t, fakes[0].notices(), 5)
		assert.Equal(t, 0, fakes[1].awaits)
	})

	t.Run("aborts_on_a_lost_connection", func(t *testing.T) {
		session, fakes := dealt(t, testRules())
		fakes[0].closed = true

		_, err := (&rob{}).Next(context.Background(), session)
		assert.Equal(t, consts.ErrorsChanClosed, err)
		assert.False(t, session.Resolved)
	})
}

// seated deals fixed hands and makes landlord the current player.
func seated(t *testing.T, landlord int, hands ...card.Cards) (*database.Session, []*scripted) {
	session, fakes := newSession(t, testRules())
	session.Hands = make([]*game.Hand, len(hands))
	for i, cards := range hands {
		session.Hands[i] = game.NewHand()
		session.Hands[i].AddCards(cards)
	}
	session.Bonus = game.NewPile(nil)
	_, err := session.AwardBonus(landlord)
	require.NoError(t, err)
	session.State = consts.StatePlay
	return session, fakes
}

func TestPlay(t *testing.T) {
	t.Run("runs_round_robin_until_a_hand_is_empty", func(t *testing.T) {
		session, fakes := seated(t, 2,
			card.Cards{1, 2}, card.Cards{3}, card.Cards{5, 6}, card.Cards{7})
		fakes[2].replies = []message.Request{message.Turn{Cards: card.Cards{5}}}
		fakes[3].replies = []message.Request{message.Turn{}}
		fakes[0].replies = []message.Request{
			message.Invalid{Op: message.OpAnsTurn, Err: consts.ErrorsInputInvalid},
			message.Turn{Cards: card.Cards{9}},
			message.Turn{Cards: card.Cards{1}},
		}
		fakes[1].replies = []message.Request{message.Turn{Cards: card.Cards{3}}}

		err := Run(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, consts.StateOver, session.State)

		assert.Equal(t, []int{2, 3, 0, 0, 0, 1}, *fakes[0].order)
		assert.Equal(t, card.Cards{2}, session.Hands[0].Cards())
		assert.True(t, session.Hands[1].Empty())
		assert.Equal(t, card.Cards{6}, session.Hands[2].Cards())
		assert.Equal(t, card.Cards{7}, session.Hands[3].Cards())
		assert.Equal(t, 3, session.Remaining())

		for _, fake := range fakes {
			announces := fake.ops(message.OpAnnounce)
			require.Len(t, announces, 4)
			assert.Equal(t, []int{5}, ids(announces[0]))
			assert.Empty(t, ids(announces[1]))
			assert.Equal(t, []int{1}, ids(announces[2]))
			assert.Equal(t, []int{3}, ids(announces[3]))
			assert.Contains(t, fake.notices(), "Player 2 win the game!")
			assert.Contains(t, fake.notices(), "Player 4 skipped")
		}
		assert.Len(t, fakes[0].notices(), 7)
		assert.Len(t, fakes[3].notices(), 5)
	})

	t.Run("prompts_with_the_last_resolved_action", func(t *testing.T) {
		session, fakes := seated(t, 0,
			card.Cards{1, 2, 9}, card.Cards{3, 4}, card.Cards{5, 6}, card.Cards{7, 8})
		fakes[0].replies = []message.Request{message.Turn{Cards: card.Cards{2, 1}}}
		fakes[1].replies = []message.Request{message.Turn{}}
		fakes[2].replies = []message.Request{message.Turn{Cards: card.Cards{6, 5}}}

		err := Run(context.Background(), session)
		require.NoError(t, err)

		first := fakes[0].ops(message.OpSetTurn)[0]
		assert.Equal(t, message.TurnNone, first.Type)
		second := fakes[1].ops(message.OpSetTurn)[0]
		assert.Equal(t, message.TurnPlay, second.Type)
		assert.Equal(t, []int{1, 2}, second.Value)
		third := fakes[2].ops(message.OpSetTurn)[0]
		assert.Equal(t, message.TurnSkip, third.Type)
		assert.Empty(t, third.Value)
	})

	t.Run("skips_after_too_many_invalid_plays", func(t *testing.T) {
		session, fakes := seated(t, 3,
			card.Cards{1}, card.Cards{2}, card.Cards{3}, card.Cards{4, 5})
		fakes[3].replies = []message.Request{
			message.Turn{Cards: card.Cards{1}},
			message.Turn{Cards: card.Cards{4, 4}},
			message.Bid{Rob: true},
		}
		fakes[0].replies = []message.Request{message.Turn{Cards: card.Cards{1}}}

		err := Run(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, 3, fakes[3].prompts)
		assert.Equal(t, 2, session.Hands[3].Size())
		assert.True(t, session.Hands[0].Empty())
		assert.Empty(t, ids(fakes[1].ops(message.OpAnnounce)[0]))
	})

	t.Run("skips_on_timeout", func(t *testing.T) {
		session, fakes := seated(t, 1,
			card.Cards{1}, card.Cards{2, 3}, card.Cards{4}, card.Cards{5})
		fakes[2].replies = []message.Request{message.Turn{Cards: card.Cards{4}}}

		err := Run(context.Background(), session)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, *fakes[0].order)
		assert.Equal(t, 2, session.Hands[1].Size())
		assert.Contains(t, fakes[0].notices(), "Player 2 skipped")
	})

	t.Run("stops_when_the_session_is_canceled", func(t *testing.T) {
		session, _ := seated(t, 0,
			card.Cards{1}, card.Cards{2}, card.Cards{3}, card.Cards{4})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := Run(ctx, session)
		assert.Equal(t, consts.ErrorsCanceled, err)
		assert.Equal(t, consts.StatePlay, session.State)
	})
}

func TestRun(t *testing.T) {
	session, fakes := newSession(t, testRules())
	fakes[0].closed = true

	err := Run(context.Background(), session)
	assert.Equal(t, consts.ErrorsChanClosed, err)
	assert.Equal(t, consts.StateRob, session.State)
	for _, fake := range fakes {
		assert.Len(t, fake.ops(message.OpInit), 1)
	}
}
