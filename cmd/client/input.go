package main

import (
	"strconv"
	"strings"

	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
)

// parseRob reads a y/n answer.
func parseRob(line string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes", "1":
		return true, nil
	case "n", "no", "0":
		return false, nil
	}
	return false, consts.ErrorsInputInvalid
}

// parseTurn reads space separated card ids within table. "0", "p" and
// "pass" skip.
func parseTurn(line string, table card.Table) (card.Cards, error) {
	fields := strings.Fields(line)
	if len(fields) == 1 {
		switch strings.ToLower(fields[0]) {
		case "0", "p", "pass":
			return card.Cards{}, nil
		}
	}
	if len(fields) == 0 {
		return nil, consts.ErrorsInputInvalid
	}
	cards := make(card.Cards, 0, len(fields))
	for _, field := range fields {
		id, err := strconv.Atoi(field)
		if err != nil || !table.Valid(card.Card(id)) {
			return nil, consts.ErrorsInputInvalid
		}
		cards = append(cards, card.Card(id))
	}
	return cards, nil
}

func sameCards(a, b card.Cards) bool {
	if len(a) != len(b) {
		return false
	}
	a, b = a.Sorted(), b.Sorted()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
