package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/network"
	"github.com/ratel-online/landlord/rule"
	"github.com/ratel-online/landlord/state"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Println("main", err)
			async.PrintStackTrace(err)
		}
	}()
	addr := flag.String("addr", consts.DefaultAddr, "address to listen on")
	transport := flag.String("transport", "tcp", "tcp or ws")
	rules := rule.Default
	flag.IntVar(&rules.Players, "players", rules.Players, "players per session")
	flag.IntVar(&rules.PlayerCards, "cards", rules.PlayerCards, "cards dealt to each player")
	flag.IntVar(&rules.Decks, "decks", rules.Decks, "54 card decks in the shoe")
	flag.IntVar(&rules.RobSweeps, "sweeps", rules.RobSweeps, "rob sweeps before the first player is forced to be landlord")
	flag.DurationVar(&rules.RobTimeout, "rob-timeout", rules.RobTimeout, "time a player has to answer the rob prompt")
	flag.DurationVar(&rules.PlayTimeout, "play-timeout", rules.PlayTimeout, "time a player has to finish a turn")
	flag.IntVar(&rules.PlayRetries, "retries", rules.PlayRetries, "invalid plays allowed per turn")
	flag.Parse()

	if err := rules.Validate(); err != nil {
		log.Error(err)
		os.Exit(2)
	}
	nw, err := newNetwork(*transport, *addr)
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	newSummary(rules.Players)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, nw, rules); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newNetwork(transport, addr string) (network.Network, error) {
	switch transport {
	case "tcp":
		return network.NewTcpServer(addr), nil
	case "ws":
		return network.NewWebsocketServer(addr), nil
	}
	return nil, fmt.Errorf("%w: %q", consts.ErrorsTransportInvalid, transport)
}

// serve runs a single session: accept, deal, rob and play until a winner.
func serve(ctx context.Context, nw network.Network, rules rule.Rules) error {
	if err := nw.Listen(); err != nil {
		return err
	}
	log.Infof("waiting for %d players...\n", rules.Players)
	players, err := network.Accept(ctx, nw, rules.Players)
	if err != nil {
		return err
	}
	channels := make([]database.Channel, len(players))
	for i, player := range players {
		channels[i] = player
		defer player.Close()
	}
	session, err := database.NewSession(rules, channels)
	if err != nil {
		return err
	}
	return state.Run(ctx, session)
}
