package cartControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/Greenoni119/k2.0/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub streams cart snapshots to every open tab of a client, so a mutation
// in one tab shows up in the others without a reload.
type Hub struct {
	mu    sync.Mutex
	conns map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{conns: make(map[string]map[*websocket.Conn]bool)}
}

// GET /cart/ws
func (h *Hub) CartWebSocketHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientID, ok := middleware.ClientID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		h.register(clientID, conn)
		defer h.unregister(clientID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}

// Broadcast pushes a cart snapshot to every connection of the client.
func (h *Hub) Broadcast(clientID string, snapshot interface{}) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns[clientID] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}

func (h *Hub) register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.conns[clientID] == nil {
		h.conns[clientID] = make(map[*websocket.Conn]bool)
	}
	h.conns[clientID][conn] = true
}

func (h *Hub) unregister(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns[clientID], conn)
	if len(h.conns[clientID]) == 0 {
		delete(h.conns, clientID)
	}
}
