// Package ws pushes order events to connected dashboards over websockets.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync/atomic"

	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/domain/services"
	"procurement/internal/core/ports"
)

const (
	broadcastBuffer = 256
	clientBuffer    = 16
)

var _ ports.OrderEventPublisher = (*Hub)(nil)

// Hub owns the set of connected clients. A single goroutine (Run) registers,
// unregisters and broadcasts; each client only receives events for orders its
// role may observe. A client whose send buffer is full is disconnected.
type Hub struct {
	clients    map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan ports.OrderEvent
	done       chan struct{}
	connected  atomic.Int64

	policy services.AccessPolicy
	logger *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan ports.OrderEvent, broadcastBuffer),
		done:       make(chan struct{}),
		policy:     services.NewAccessPolicy(),
		logger:     logger.With("component", "ws_hub"),
	}
}

// Run dispatches until ctx is cancelled, then disconnects every client.
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for c := range h.clients {
			h.remove(c)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-h.register:
			h.clients[c] = struct{}{}
			h.connected.Add(1)
			h.logger.Debug("client connected", "user_id", c.profile.ID().String(), "role", c.profile.Role().String())
		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				h.remove(c)
			}
		case event := <-h.broadcast:
			h.dispatch(event)
		}
	}
}

// Publish queues the event for delivery. It never blocks: when the queue is
// full the event is dropped and logged.
func (h *Hub) Publish(_ context.Context, event ports.OrderEvent) {
	select {
	case h.broadcast <- event:
	case <-h.done:
	default:
		h.logger.Warn("order event dropped", "type", string(event.Type), "order_id", event.OrderID)
	}
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	return int(h.connected.Load())
}

func (h *Hub) dispatch(event ports.OrderEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to encode order event", "error", err)
		return
	}

	for c := range h.clients {
		if !h.policy.CanViewOrder(c.profile, event.Status) {
			continue
		}
		select {
		case c.send <- payload:
		default:
			h.logger.Warn("slow client dropped", "user_id", c.profile.ID().String())
			h.remove(c)
		}
	}
}

func (h *Hub) remove(c *Client) {
	delete(h.clients, c)
	close(c.send)
	h.connected.Add(-1)
}

func (h *Hub) join(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) leave(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// CanSubscribe reports whether the profile may receive the event stream.
func (h *Hub) CanSubscribe(profile user.Profile) error {
	return h.policy.Authorize(profile, services.ActionReceiveOrderFeed)
}
