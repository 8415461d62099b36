package database

import (
	"sort"
	"sync/atomic"

	"github.com/awesome-cap/hashmap"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/landlord/message"
)

var playerIds int64 = -1
var players = hashmap.New()

// Connected registers a new connection under the next join index.
func Connected(conn *network.Conn, ip string) *Player {
	player := &Player{
		ID: atomic.AddInt64(&playerIds, 1),
		IP: ip,
	}
	player.Conn(conn)
	players.Set(player.ID, player)
	return player
}

// GetPlayers returns the connected players in join order.
func GetPlayers() []*Player {
	list := make([]*Player, 0)
	players.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Player))
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].ID < list[j].ID
	})
	return list
}

// Broadcast writes out to every registered player and stops at the first
// failed write.
func Broadcast(out message.Outbound) error {
	for _, player := range GetPlayers() {
		if err := player.Write(out); err != nil {
			return err
		}
	}
	return nil
}

// Reset forgets every registered player and restarts join indices at 0.
func Reset() {
	for _, player := range GetPlayers() {
		players.Del(player.ID)
	}
	atomic.StoreInt64(&playerIds, -1)
}
