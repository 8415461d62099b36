package main

import (
	"bufio"
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/landlord/card"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/message"
)

type client struct {
	conn    *network.Conn
	table   card.Table
	hand    card.Cards
	robbing bool
	turn    bool
	pending card.Cards
}

func main() {
	addr := flag.String("addr", "127.0.0.1"+consts.DefaultAddr, "server address")
	transport := flag.String("transport", "tcp", "tcp or ws")
	decks := flag.Int("decks", consts.Decks, "54 card decks the server deals from")
	flag.Parse()
	if *decks < 1 {
		log.Errorf("%sdecks must be positive, got %d\n", consts.ErrorsRulesInvalid.Error(), *decks)
		os.Exit(2)
	}

	conn, err := dial(*transport, *addr)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	defer conn.Close()
	show("Connected to", *addr)

	events := make(chan message.Event, 16)
	lines := make(chan string)
	async.Async(func() {
		defer close(events)
		for {
			packet, err := conn.Read()
			if err != nil {
				log.Error(err)
				return
			}
			ev, err := message.DecodeEvent(packet)
			if err != nil {
				log.Error(err)
				continue
			}
			events <- ev
		}
	})
	async.Async(func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	})

	c := &client{conn: conn, table: card.NewTable(*decks * consts.DeckFaces)}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				show("Disconnected")
				return
			}
			c.handleEvent(ev)
		case line := <-lines:
			if err := c.handleLine(line); err != nil {
				log.Error(err)
				return
			}
		}
	}
}

func dial(transport, addr string) (*network.Conn, error) {
	switch transport {
	case "tcp":
		conn, err := net.Dial("tcp", addr)
		if err != nil {
			return nil, err
		}
		return network.Wrapper(protocol.NewTcpReadWriteCloser(conn)), nil
	case "ws":
		conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr+consts.WsPath, nil)
		if err != nil {
			return nil, err
		}
		return network.Wrapper(protocol.NewWebsocketReadWriteCloser(conn)), nil
	}
	return nil, fmt.Errorf("%w: %q", consts.ErrorsTransportInvalid, transport)
}

func (c *client) handleEvent(ev message.Event) {
	switch ev := ev.(type) {
	case message.NoticeEvent:
		show(ev.Text)
	case message.InitEvent:
		c.hand = ev.Cards.Sorted()
		show("Your pokers:", c.table.PaintCards(c.hand))
	case message.AskRobEvent:
		c.robbing = true
		show("Would you like to be the landlord? (y or n)")
	case message.AddEvent:
		c.hand = append(c.hand, ev.Cards...).Sorted()
		show("You got the bonus pile:", c.table.PaintCards(ev.Cards))
		show("Your pokers:", c.table.PaintCards(c.hand))
	case message.SetTurnEvent:
		c.robbing = false
		c.turn = true
		c.pending = nil
		switch ev.Type {
		case message.TurnPlay:
			show("Last play:", c.table.PaintCards(ev.Last))
		case message.TurnSkip:
			show("Last player skipped")
		}
		show("Your pokers:", c.table.PaintCards(c.hand))
		show("It's your turn, play card ids separated by spaces or p to pass")
	case message.AnnounceEvent:
		c.robbing = false
		if len(ev.Cards) == 0 {
			show("Last player skipped")
			return
		}
		show("Played:", c.table.PaintCards(ev.Cards))
		if c.pending != nil && sameCards(c.pending, ev.Cards) {
			c.removeCards(ev.Cards)
		}
		c.pending = nil
	}
}

func (c *client) handleLine(line string) error {
	switch {
	case c.turn:
		cards, err := parseTurn(line, c.table)
		if err != nil {
			show(err.Error() + "Input card ids or p")
			return nil
		}
		c.turn = false
		c.pending = cards
		return c.conn.Write(message.AnswerTurn(cards).Packet())
	case c.robbing:
		rob, err := parseRob(line)
		if err != nil {
			show(err.Error() + "Input y or n")
			return nil
		}
		return c.conn.Write(message.AnswerRob(rob).Packet())
	}
	show("Please wait for your turn")
	return nil
}

func (c *client) removeCards(played card.Cards) {
	gone := map[card.Card]bool{}
	for _, p := range played {
		gone[p] = true
	}
	hand := make(card.Cards, 0, len(c.hand))
	for _, h := range c.hand {
		if !gone[h] {
			hand = append(hand, h)
		}
	}
	c.hand = hand
}

func show(args ...interface{}) {
	fmt.Fprintln(card.Stdout, args...)
}
