package message

import (
	"fmt"

	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

// Request is a decoded client message: Bid, Turn or Invalid.
type Request interface {
	request()
}

type Bid struct {
	Rob bool
}

// Turn is a play; no cards means skip.
type Turn struct {
	Cards card.Cards
}

func (t Turn) Skip() bool {
	return len(t.Cards) == 0
}

// Invalid is a known operation whose payload could not be read. It is
// handed to the coordinator so the sender can be re-prompted.
type Invalid struct {
	Op  Op
	Err error
}

func (Bid) request()     {}
func (Turn) request()    {}
func (Invalid) request() {}

// DecodeRequest returns an error for frames that are not JSON or that name
// an operation the server does not accept; those are dropped by callers.
func DecodeRequest(packet *protocol.Packet) (Request, error) {
	in := Inbound{}
	if err := packet.Unmarshal(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", consts.ErrorsMessageMalformed, err)
	}
	switch in.Operation {
	case OpAnsS:
		answer, ok := toInt(in.Message)
		if !ok || (answer != 0 && answer != 1) {
			return Invalid{Op: in.Operation, Err: consts.ErrorsInputInvalid}, nil
		}
		return Bid{Rob: answer == 1}, nil
	case OpAnsTurn:
		cards, ok := toCards(in.Message)
		if !ok {
			return Invalid{Op: in.Operation, Err: consts.ErrorsInputInvalid}, nil
		}
		return Turn{Cards: cards}, nil
	default:
		return nil, fmt.Errorf("%w: %q", consts.ErrorsUnknownOperation, in.Operation)
	}
}
