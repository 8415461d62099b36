package main

import (
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/event"
)

// summary tallies a session's plays and logs them once a winner is known.
type summary struct {
	players  int
	landlord string
	plays    map[string]int
	skips    map[string]int
}

func newSummary(players int) *summary {
	s := &summary{players: players, plays: map[string]int{}, skips: map[string]int{}}
	event.LandlordChosen.AddListener(s)
	event.CardsPlayed.AddListener(s)
	event.PlayerSkipped.AddListener(s)
	event.GameWon.AddListener(s)
	return s
}

func (s *summary) OnLandlordChosen(payload event.LandlordChosenPayload) {
	s.landlord = payload.PlayerName
}

func (s *summary) OnCardsPlayed(payload event.CardsPlayedPayload) {
	s.plays[payload.PlayerName]++
}

func (s *summary) OnPlayerSkipped(payload event.PlayerSkippedPayload) {
	s.skips[payload.PlayerName]++
}

func (s *summary) OnGameWon(payload event.GameWonPayload) {
	side := "farmers"
	if payload.Landlord {
		side = "landlord"
	}
	log.Infof("%s won for the %s, landlord was %s\n", payload.PlayerName, side, s.landlord)
	for _, line := range s.lines() {
		log.Infof("%s\n", line)
	}
}

// lines reports every player in join order, including those who never
// played.
func (s *summary) lines() []string {
	lines := make([]string, 0, s.players)
	for i := 0; i < s.players; i++ {
		name := database.PlayerName(i)
		lines = append(lines, fmt.Sprintf("%s played %d times, skipped %d", name, s.plays[name], s.skips[name]))
	}
	return lines
}
