package network

import (
	"net"
	"sync"

	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/protocol"
)

type Tcp struct {
	addr     string
	listener net.Listener
	once     sync.Once
}

func NewTcpServer(addr string) *Tcp {
	return &Tcp{addr: addr}
}

func (t *Tcp) Listen() error {
	listener, err := net.Listen("tcp", t.addr)
	if err != nil {
		log.Error(err)
		return err
	}
	t.listener = listener
	log.Infof("Tcp server listening on %s\n", listener.Addr())
	return nil
}

func (t *Tcp) Accept() (protocol.ReadWriteCloser, string, error) {
	conn, err := t.listener.Accept()
	if err != nil {
		log.Infof("listener.Accept err %v\n", err)
		return nil, "", err
	}
	return protocol.NewTcpReadWriteCloser(conn), conn.RemoteAddr().String(), nil
}

func (t *Tcp) Addr() string {
	if t.listener == nil {
		return t.addr
	}
	return t.listener.Addr().String()
}

func (t *Tcp) Close() error {
	var err error
	t.once.Do(func() {
		if t.listener != nil {
			err = t.listener.Close()
		}
	})
	return err
}
