package message

import (
	"fmt"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

// Event is a decoded server message as seen by a client.
type Event interface {
	event()
}

type NoticeEvent struct {
	Text string
}

type InitEvent struct {
	Cards card.Cards
}

type AskRobEvent struct{}

type AddEvent struct {
	Cards card.Cards
}

type SetTurnEvent struct {
	Type string
	Last card.Cards
}

type AnnounceEvent struct {
	Cards card.Cards
}

func (NoticeEvent) event()   {}
func (InitEvent) event()     {}
func (AskRobEvent) event()   {}
func (AddEvent) event()      {}
func (SetTurnEvent) event()  {}
func (AnnounceEvent) event() {}

func DecodeEvent(packet *protocol.Packet) (Event, error) {
	out := Outbound{}
	if err := packet.Unmarshal(&out); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrorsMessageMalformed, err)
	}
	malformed := fmt.Errorf("%w: bad %s payload", consts.ErrorsMessageMalformed, out.Operation)
	switch out.Operation {
	case OpMessage:
		text, ok := out.Message.(string)
		if !ok {
			return nil, malformed
		}
		return NoticeEvent{Text: text}, nil
	case OpAskS:
		return AskRobEvent{}, nil
	case OpInit, OpAdd, OpAnnounce:
		cards, ok := toCards(out.Message)
		if !ok {
			return nil, malformed
		}
		switch out.Operation {
		case OpInit:
			return InitEvent{Cards: cards}, nil
		case OpAdd:
			return AddEvent{Cards: cards}, nil
		}
		return AnnounceEvent{Cards: cards}, nil
	case OpSetTurn:
		last, ok := toCards(out.Value)
		if !ok {
			return nil, malformed
		}
		return SetTurnEvent{Type: out.Type, Last: last}, nil
	default:
		return nil, fmt.Errorf("%w: %q", consts.ErrorsUnknownOperation, out.Operation)
	}
}
