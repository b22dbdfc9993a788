package ws

import (
	"context"
	"log"
	"sync"
)

const (
	broadcastBuffer  = 1024
	membershipBuffer = 128
)

// Hub fans catalog events out to every connected Client. Membership changes
// go through channels handled by Run; the RWMutex only guards reads made
// from other goroutines.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}

	events chan []byte
	joins  chan *Client
	leaves chan *Client
	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		events:  make(chan []byte, broadcastBuffer),
		joins:   make(chan *Client, membershipBuffer),
		leaves:  make(chan *Client, membershipBuffer),
		logger:  logger,
	}
}

// Run serves membership and broadcast requests until ctx is cancelled, then
// closes every client's send channel.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case c := <-h.joins:
			h.add(c)
		case c := <-h.leaves:
			if h.remove(c) {
				h.logf("WS disconnected | total_clients=%d", h.ClientCount())
			}
		case msg := <-h.events:
			h.fanout(msg)
		}
	}
}

func (h *Hub) add(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	total := len(h.clients)
	h.mu.Unlock()
	h.logf("WS joined | total_clients=%d", total)
}

// remove reports whether c was a member; its send channel is closed once.
func (h *Hub) remove(c *Client) bool {
	if c == nil {
		return false
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return false
	}
	delete(h.clients, c)
	close(c.send)
	return true
}

// fanout never blocks: a client whose buffer is full is disconnected.
func (h *Hub) fanout(msg []byte) {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		members = append(members, c)
	}
	h.mu.RUnlock()

	var slow []*Client
	for _, c := range members {
		select {
		case c.send <- msg:
		default:
			slow = append(slow, c)
		}
	}
	for _, c := range slow {
		h.remove(c)
	}
	h.logf("WS broadcast | clients=%d dropped=%d", len(members)-len(slow), len(slow))
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}

func (h *Hub) Register(c *Client) {
	if h != nil {
		h.joins <- c
	}
}

func (h *Hub) Unregister(c *Client) {
	if h != nil {
		h.leaves <- c
	}
}

// Broadcast queues msg for every client, dropping it when the queue is full.
func (h *Hub) Broadcast(msg []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- msg:
	default:
		h.logf("WS broadcast dropped | reason=buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
