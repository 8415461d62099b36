package database

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/network"
	"github.com/ratel-online/landlord/consts"
	"github.com/ratel-online/landlord/message"
)

// Channel is the coordinator's view of one connected player.
type Channel interface {
	Write(out message.Outbound) error
	// Ask drops pending requests, sends prompt and waits for the next one.
	Ask(ctx context.Context, prompt message.Outbound) (message.Request, error)
	// Await waits for the next request without prompting.
	Await(ctx context.Context) (message.Request, error)
	Drain()
}

type Player struct {
	ID int64  `json:"id"`
	IP string `json:"ip"`

	conn   *network.Conn
	data   chan message.Request
	online int32
	closed sync.Once
}

// PlayerName is the display name of the player at a 0-based join index.
func PlayerName(index int) string {
	return fmt.Sprintf("Player %d", index+1)
}

func (p *Player) Name() string {
	return PlayerName(int(p.ID))
}

func (p *Player) String() string {
	return fmt.Sprintf("%s[%s]", p.Name(), p.IP)
}

func (p *Player) Conn(conn *network.Conn) {
	p.conn = conn
	p.data = make(chan message.Request, 16)
	atomic.StoreInt32(&p.online, 1)
}

func (p *Player) Online() bool {
	return atomic.LoadInt32(&p.online) == 1
}

func (p *Player) Write(out message.Outbound) error {
	return p.conn.Write(out.Packet())
}

// Listening decodes frames until the connection fails. Malformed frames and
// unknown operations are logged and dropped.
func (p *Player) Listening() error {
	defer p.offline()
	for {
		pack, err := p.conn.Read()
		if err != nil {
			log.Error(err)
			return err
		}
		req, err := message.DecodeRequest(pack)
		if err != nil {
			log.Errorf("%s sent %v, dropped\n", p, err)
			continue
		}
		select {
		case p.data <- req:
		default:
			log.Infof("%s inbox full, dropped %T\n", p, req)
		}
	}
}

// Close shuts the connection; Listening then returns and releases the
// player.
func (p *Player) Close() error {
	return p.conn.Close()
}

func (p *Player) offline() {
	p.closed.Do(func() {
		atomic.StoreInt32(&p.online, 0)
		_ = p.conn.Close()
		close(p.data)
		players.Del(p.ID)
		log.Infof("%s lost connection\n", p)
	})
}

func (p *Player) Drain() {
	for {
		select {
		case req, ok := <-p.data:
			if !ok {
				return
			}
			log.Infof("%s stale %T discarded\n", p, req)
		default:
			return
		}
	}
}

func (p *Player) Ask(ctx context.Context, prompt message.Outbound) (message.Request, error) {
	p.Drain()
	if err := p.Write(prompt); err != nil {
		return nil, err
	}
	return p.Await(ctx)
}

func (p *Player) Await(ctx context.Context) (message.Request, error) {
	select {
	case req, ok := <-p.data:
		if !ok {
			return nil, consts.ErrorsChanClosed
		}
		return req, nil
	case <-ctx.Done():
		return nil, contextError(ctx)
	}
}

func contextError(ctx context.Context) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return consts.ErrorsTimeout
	}
	return consts.ErrorsCanceled
}
