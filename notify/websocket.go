package notify

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/nikhitha4605/storefront-api/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub pushes order events and toasts to connected websocket clients.
// Delivery is best-effort: a dead client is dropped, never retried.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool), log: log}
}

// Handler upgrades the connection and parks it until the client goes
// away. Clients only listen; inbound messages are drained and ignored.
func (h *Hub) Handler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		conn.Close()
	}()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) broadcast(payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Debug("dropping websocket client", zap.Error(err))
			client.Close()
			delete(h.clients, client)
		}
	}
}

// BroadcastOrder pushes a freshly placed order to every listener.
func (h *Hub) BroadcastOrder(order models.Order) {
	h.broadcast(gin.H{"event": "order_placed", "order": order})
}

// Notify implements Notifier by pushing toasts over the socket.
func (h *Hub) Notify(kind Kind, message string) {
	h.broadcast(gin.H{"event": "toast", "kind": kind, "message": message})
}
