package network

import (
	"net"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/landlord/consts"
)

type Websocket struct {
	addr     string
	listener net.Listener
	server   *http.Server
	conns    chan accepted
	done     chan struct{}
	once     sync.Once
}

type accepted struct {
	rwc protocol.ReadWriteCloser
	ip  string
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func NewWebsocketServer(addr string) *Websocket {
	return &Websocket{
		addr:  addr,
		conns: make(chan accepted),
		done:  make(chan struct{}),
	}
}

func (w *Websocket) Listen() error {
	listener, err := net.Listen("tcp", w.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	w.listener = listener
	mux := http.NewServeMux()
	mux.HandleFunc(consts.WsPath, w.serveWs)
	w.server = &http.Server{Handler: mux}
	async.Async(func() {
		if err := w.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error(err)
		}
	})
	log.Infof("Websocket server listening on %s%s\n", listener.Addr(), consts.WsPath)
	return nil
}

func (w *Websocket) serveWs(rw http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(rw, r, nil)
	if err != nil {
		log.Error(err)
		return
	}
	select {
	case w.conns <- accepted{rwc: protocol.NewWebsocketReadWriteCloser(conn), ip: r.RemoteAddr}:
	case <-w.done:
		_ = conn.Close()
	}
}

func (w *Websocket) Accept() (protocol.ReadWriteCloser, string, error) {
	select {
	case conn := <-w.conns:
		return conn.rwc, conn.ip, nil
	case <-w.done:
		return nil, "", net.ErrClosed
	}
}

func (w *Websocket) Addr() string {
	if w.listener == nil {
		return w.addr
	}
	return w.listener.Addr().String()
}

func (w *Websocket) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		if w.server != nil {
			err = w.server.Close()
		}
	})
	return err
}
