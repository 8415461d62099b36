package event

var LandlordChosen = &landlordChosenEmitter{}

type LandlordChosenPayload struct {
	PlayerName string
	Bonus      []int
	Forced     bool
}

type LandlordChosenListener interface {
	OnLandlordChosen(LandlordChosenPayload)
}

type landlordChosenEmitter struct {
	listeners []LandlordChosenListener
}

func (e *landlordChosenEmitter) AddListener(listener LandlordChosenListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *landlordChosenEmitter) Emit(payload LandlordChosenPayload) {
	for _, listener := range e.listeners {
		listener.OnLandlordChosen(payload)
	}
}
