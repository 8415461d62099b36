package consts

import (
	"time"
)

type StateID int

const (
	_ StateID = iota
	StateDeal
	StateRob
	StatePlay
	StateOver
)

const (
	Players     = 4
	PlayerCards = 25
	Decks       = 2
	DeckFaces   = 54

	RobSweeps   = 3
	PlayRetries = 3

	RobTimeout  = 20 * time.Second
	PlayTimeout = 40 * time.Second

	// StatusOK is the only status ever put on the wire.
	StatusOK = 200

	DefaultAddr = ":9999"
	WsPath      = "/ws"
)

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

var (
	ErrorsExist              = NewErr(1, true, "Exist. ")
	ErrorsChanClosed         = NewErr(1, true, "Chan closed. ")
	ErrorsTimeout            = NewErr(1, false, "Timeout. ")
	ErrorsCanceled           = NewErr(1, true, "Canceled. ")
	ErrorsInputInvalid       = NewErr(1, false, "Input invalid. ")
	ErrorsMessageMalformed   = NewErr(1, false, "Message malformed. ")
	ErrorsUnknownOperation   = NewErr(1, false, "Unknown operation. ")
	ErrorsUnexpectedMessage  = NewErr(1, false, "Unexpected message. ")
	ErrorsPokersNotOwned     = NewErr(1, false, "Pokers not in your hand. ")
	ErrorsPokersDuplicated   = NewErr(1, false, "Pokers duplicated. ")
	ErrorsGamePlayersInvalid = NewErr(1, true, "Game players invalid. ")
	ErrorsRulesInvalid       = NewErr(1, true, "Rules invalid. ")
	ErrorsBonusTaken         = NewErr(1, true, "Bonus pile already taken. ")
	ErrorsTransportInvalid   = NewErr(1, true, "Transport invalid. ")

	States = map[StateID]string{
		StateDeal:   "Deal",
		StateRob:    "Rob",
		StatePlay:   "Play",
		StateOver:   "Over",
	}
)
