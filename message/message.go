package message

import (
	"fmt"
	"math"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/json"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

type Op string

// Server to client.
const (
	OpMessage  Op = "message"
	OpInit     Op = "init"
	OpAskS     Op = "AskS"
	OpAdd      Op = "Add"
	OpSetTurn  Op = "SetTurn"
	OpAnnounce Op = "Announce"
)

// Client to server.
const (
	OpAnsS    Op = "AnsS"
	OpAnsTurn Op = "AnsTurn"
)

const (
	TurnNone = "none"
	TurnPlay = "play"
	TurnSkip = "skip"
)

type Outbound struct {
	Status    int         `json:"status"`
	Operation Op          `json:"Operation"`
	Message   interface{} `json:"message"`
	Type      string      `json:"type,omitempty"`
	Value     interface{} `json:"value,omitempty"`
}

type Inbound struct {
	Status    int         `json:"Status"`
	Operation Op          `json:"Operation"`
	Message   interface{} `json:"message"`
}

func (o Outbound) Packet() protocol.Packet {
	return protocol.Packet{Body: json.Marshal(o)}
}

func (i Inbound) Packet() protocol.Packet {
	return protocol.Packet{Body: json.Marshal(i)}
}

func outbound(op Op, msg interface{}) Outbound {
	return Outbound{Status: consts.StatusOK, Operation: op, Message: msg}
}

func Notice(format string, args ...interface{}) Outbound {
	return outbound(OpMessage, fmt.Sprintf(format, args...))
}

func Init(cards card.Cards) Outbound {
	return outbound(OpInit, cards.Sorted().Ints())
}

func AskRob() Outbound {
	return outbound(OpAskS, nil)
}

func Add(cards card.Cards) Outbound {
	return outbound(OpAdd, cards.Sorted().Ints())
}

// SetTurn prompts for a play. kind is one of TurnNone, TurnPlay or TurnSkip
// and describes the last resolved action; last holds the ids it played.
func SetTurn(kind string, last card.Cards) Outbound {
	o := outbound(OpSetTurn, nil)
	o.Type = kind
	o.Value = last.Sorted().Ints()
	return o
}

// Announce carries the ids played by the previous player, empty on a skip.
func Announce(cards card.Cards) Outbound {
	return outbound(OpAnnounce, cards.Sorted().Ints())
}

func AnswerRob(rob bool) Inbound {
	answer := 0
	if rob {
		answer = 1
	}
	return Inbound{Status: consts.StatusOK, Operation: OpAnsS, Message: answer}
}

func AnswerTurn(cards card.Cards) Inbound {
	return Inbound{Status: consts.StatusOK, Operation: OpAnsTurn, Message: cards.Ints()}
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

func toCards(v interface{}) (card.Cards, bool) {
	if v == nil {
		return card.Cards{}, true
	}
	switch list := v.(type) {
	case []interface{}:
		cards := make(card.Cards, 0, len(list))
		for _, item := range list {
			id, ok := toInt(item)
			if !ok {
				return nil, false
			}
			cards = append(cards, card.Card(id))
		}
		return cards, true
	case []int:
		return card.FromInts(list), true
	}
	return nil, false
}
