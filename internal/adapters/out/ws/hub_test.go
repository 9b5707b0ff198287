package ws_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"procurement/internal/adapters/out/ws"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/user"
	"procurement/internal/core/ports"
	"procurement/internal/pkg/errs"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile(t *testing.T, id string, role user.Role) user.Profile {
	t.Helper()
	p, err := user.NewProfile(kernel.MustIDFromString(id), id+"@example.com", "User "+id, role, time.Now())
	require.NoError(t, err)
	return p
}

// startHub serves the hub on a test server; the profile is chosen by the
// "as" query parameter.
func startHub(t *testing.T, profiles map[string]user.Profile) (*ws.Hub, string) {
	t.Helper()

	hub := ws.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)

	upgrader := &websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile := profiles[r.URL.Query().Get("as")]
		if err := hub.CanSubscribe(profile); err != nil {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		_ = hub.Serve(upgrader, w, r, profile)
	}))
	t.Cleanup(server.Close)

	return hub, "ws" + strings.TrimPrefix(server.URL, "http")
}

func dial(t *testing.T, url, as string) *websocket.Conn {
	t.Helper()
	conn, resp, err := websocket.DefaultDialer.Dial(url+"?as="+as, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readEvent(t *testing.T, conn *websocket.Conn) (map[string]any, error) {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(300 * time.Millisecond))
	_, data, err := conn.ReadMessage()
	if err != nil {
		return nil, err
	}
	var event map[string]any
	require.NoError(t, json.Unmarshal(data, &event))
	return event, nil
}

func event(eventType ports.OrderEventType, status order.Status) ports.OrderEvent {
	return ports.OrderEvent{
		Type:       eventType,
		OrderID:    "o1",
		Status:     status,
		StatusName: status.String(),
		ClientName: "Setor A",
	}
}

func TestHub_DeliversOnlyVisibleEvents(t *testing.T) {
	hub, url := startHub(t, map[string]user.Profile{
		"approver":   newProfile(t, "ap1", user.Approver),
		"purchasing": newProfile(t, "pu1", user.Purchasing),
	})
	approver := dial(t, url, "approver")
	purchasing := dial(t, url, "purchasing")
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	hub.Publish(t.Context(), event(ports.OrderSubmitted, order.Pending))

	got, err := readEvent(t, approver)
	require.NoError(t, err)
	assert.Equal(t, "order.submitted", got["type"])
	assert.Equal(t, "pending", got["status"])
	assert.Equal(t, "Setor A", got["clientName"])

	_, err = readEvent(t, purchasing)
	require.Error(t, err, "purchasing must not see pending orders")

	// a timed-out read leaves the connection unusable, so reconnect
	purchasing = dial(t, url, "purchasing")
	require.Eventually(t, func() bool { return hub.ClientCount() == 3 }, time.Second, 5*time.Millisecond)
	hub.Publish(t.Context(), event(ports.OrderCompleted, order.Completed))

	got, err = readEvent(t, purchasing)
	require.NoError(t, err)
	assert.Equal(t, "order.completed", got["type"])
}

func TestHub_RejectsRolesWithoutFeed(t *testing.T) {
	hub, _ := startHub(t, nil)

	err := hub.CanSubscribe(newProfile(t, "s1", user.Supervisor))

	require.ErrorIs(t, err, errs.ErrAccessDenied)
	require.NoError(t, hub.CanSubscribe(newProfile(t, "a1", user.Admin)))
}

func TestHub_UnregistersClosedClients(t *testing.T) {
	hub, url := startHub(t, map[string]user.Profile{"admin": newProfile(t, "a1", user.Admin)})
	conn := dial(t, url, "admin")
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_PublishNeverBlocks(t *testing.T) {
	hub := ws.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range 1000 {
			hub.Publish(t.Context(), event(ports.OrderSubmitted, order.Pending))
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
}
