package event

var CardsPlayed = &cardsPlayedEmitter{}

type CardsPlayedPayload struct {
	PlayerName string
	Cards      []int
	Left       int
}

type CardsPlayedListener interface {
	OnCardsPlayed(CardsPlayedPayload)
}

type cardsPlayedEmitter struct {
	listeners []CardsPlayedListener
}

func (e *cardsPlayedEmitter) AddListener(listener CardsPlayedListener) {
	e.listeners = append(e.listeners, listener)
}

func (e *cardsPlayedEmitter) Emit(payload CardsPlayedPayload) {
	for _, listener := range e.listeners {
		listener.OnCardsPlayed(payload)
	}
}
