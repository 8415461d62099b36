package network

import (
	"context"
	"fmt"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/database"
	"github.com/ratel-online/landlord/message"
)

// Network is a listening transport handing out one connection per player.
type Network interface {
	Listen() error
	Accept() (protocol.ReadWriteCloser, string, error)
	Addr() string
	Close() error
}

// Accept blocks until n players are connected on nw, which must already be
// listening. Players are indexed by arrival order. nw is closed on return;
// any failure aborts the whole bootstrap.
func Accept(ctx context.Context, nw Network, n int) ([]*database.Player, error) {
	database.Reset()
	stop := make(chan struct{})
	defer close(stop)
	defer func() {
		if err := nw.Close(); err != nil {
			log.Error(err)
		}
	}()
	async.Async(func() {
		select {
		case <-ctx.Done():
			_ = nw.Close()
		case <-stop:
		}
	})

	players := make([]*database.Player, 0, n)
	for len(players) < n {
		rwc, ip, err := nw.Accept()
		if err != nil {
			closeAll(players)
			if ctx.Err() != nil {
				return nil, consts.ErrorsCanceled
			}
			return nil, err
		}
		player := database.Connected(network.Wrapper(rwc), ip)
		async.Async(func() {
			_ = player.Listening()
		})
		players = append(players, player)
		log.Infof("%s connected, %d/%d\n", player, len(players), n)
		if len(players) < n {
			err = player.Write(message.Notice("Connected as %s, waiting for %d more players...", player.Name(), n-len(players)))
			if err != nil {
				closeAll(players)
				return nil, err
			}
		}
	}
	for _, player := range players {
		if !player.Online() {
			log.Infof("%s left before the game started\n", player)
			closeAll(players)
			return nil, fmt.Errorf("%w: %s left", consts.ErrorsGamePlayersInvalid, player.Name())
		}
	}
	if err := database.Broadcast(message.Notice("All %d players connected, game starting!", n)); err != nil {
		closeAll(players)
		return nil, err
	}
	return players, nil
}

func closeAll(players []*database.Player) {
	for _, player := range players {
		_ = player.Close()
	}
}
