package network

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Transport serves the spectator websocket feed
// Every message carries the session id so spectators can tell game runs apart
type Transport struct {
	config   *Config
	session  string
	hello    Message
	peers    *PeerManager
	upgrader websocket.Upgrader

	listener net.Listener
	server   *http.Server

	running atomic.Bool
	wg      sync.WaitGroup
}

// NewTransport creates a feed for an arena of width x height
func NewTransport(cfg *Config, width, height int) *Transport {
	t := &Transport{
		config:  cfg,
		session: uuid.NewString(),
		peers:   NewPeerManager(cfg),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			// Spectators are read-only, any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	t.hello = *NewMessage(MsgHello)
	t.hello.ArenaWidth = width
	t.hello.ArenaHeight = height

	t.peers.SetHandlers(t.onConnect, t.onDisconnect)
	return t
}

// Session returns the id stamped on every message
func (t *Transport) Session() string {
	return t.session
}

// Start binds the configured address and begins accepting spectators
func (t *Transport) Start() error {
	if !t.running.CompareAndSwap(false, true) {
		return nil // Already running
	}

	ln, err := net.Listen("tcp", t.config.Address)
	if err != nil {
		t.running.Store(false)
		return fmt.Errorf("failed to listen on %s: %w", t.config.Address, err)
	}
	t.listener = ln

	mux := http.NewServeMux()
	mux.HandleFunc(t.config.Path, t.handleFeed)
	t.server = &http.Server{Handler: mux, ReadHeaderTimeout: t.config.WriteTimeout}

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		if err := t.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("network: serve: %v", err)
		}
	}()

	log.Printf("network: spectator feed on ws://%s%s session %s", ln.Addr(), t.config.Path, t.session)
	return nil
}

// handleFeed upgrades HTTP to a websocket spectator connection
func (t *Transport) handleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := t.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("network: upgrade: %v", err)
		return
	}
	if _, err := t.peers.AddConnection(conn); err != nil {
		log.Printf("network: %s rejected: %v", r.RemoteAddr, err)
	}
}

func (t *Transport) onConnect(p *Peer) {
	hello := t.hello
	hello.Session = t.session
	p.Send(&hello)
	log.Printf("network: peer %d connected from %s", p.ID, p.Addr)
}

func (t *Transport) onDisconnect(id PeerID) {
	log.Printf("network: peer %d disconnected", id)
}

// Addr returns the bound address, nil before Start
func (t *Transport) Addr() net.Addr {
	if t.listener == nil {
		return nil
	}
	return t.listener.Addr()
}

// Stop closes the listener and every spectator connection
func (t *Transport) Stop() error {
	if !t.running.CompareAndSwap(true, false) {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), t.config.WriteTimeout)
	defer cancel()
	err := t.server.Shutdown(ctx)

	t.peers.Close()
	t.wg.Wait()
	return err
}

// Broadcast stamps msg with the session and sends it to every spectator
func (t *Transport) Broadcast(msg *Message) {
	msg.Session = t.session
	t.peers.Broadcast(msg)
}

// PeerCount returns connected peer count
func (t *Transport) PeerCount() int {
	return t.peers.PeerCount()
}

// IsRunning returns transport state
func (t *Transport) IsRunning() bool {
	return t.running.Load()
}
