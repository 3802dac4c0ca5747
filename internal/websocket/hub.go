package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Hub fans redis pub/sub conversation events out to connected clients.
// One subscription per conversation with at least one open socket.
type Hub struct {
	mu          sync.RWMutex
	connections map[uuid.UUID][]*websocket.Conn
	redisClient *redis.Client
	cancelFuncs map[uuid.UUID]context.CancelFunc
}

func NewHub(redisClient *redis.Client) *Hub {
	return &Hub{
		connections: make(map[uuid.UUID][]*websocket.Conn),
		redisClient: redisClient,
		cancelFuncs: make(map[uuid.UUID]context.CancelFunc),
	}
}

// HandleWebSocket upgrades the connection and subscribes it to the
// conversation named in the query string.
func (h *Hub) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conversationID, err := uuid.Parse(r.URL.Query().Get("conversation_id"))
	if err != nil {
		http.Error(w, "Invalid conversation_id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	h.registerConnection(conversationID, conn)

	// Keep connection alive and handle disconnect
	go func() {
		defer h.unregisterConnection(conversationID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}()
}

func (h *Hub) registerConnection(conversationID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.connections[conversationID] = append(h.connections[conversationID], conn)

	// First connection for this conversation starts the subscription.
	if len(h.connections[conversationID]) == 1 {
		ctx, cancel := context.WithCancel(context.Background())
		h.cancelFuncs[conversationID] = cancel
		go h.subscribeToPubSub(ctx, conversationID)
	}

	log.Printf("WebSocket connected: conversation %s (total: %d)", conversationID, len(h.connections[conversationID]))
}

func (h *Hub) unregisterConnection(conversationID uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conn.Close()

	conns := h.connections[conversationID]
	for i, c := range conns {
		if c == conn {
			h.connections[conversationID] = append(conns[:i], conns[i+1:]...)
			break
		}
	}

	if len(h.connections[conversationID]) == 0 {
		delete(h.connections, conversationID)
		if cancel, ok := h.cancelFuncs[conversationID]; ok {
			cancel()
			delete(h.cancelFuncs, conversationID)
		}
	}

	log.Printf("WebSocket disconnected: conversation %s", conversationID)
}

func (h *Hub) subscribeToPubSub(ctx context.Context, conversationID uuid.UUID) {
	channel := "conversation_updates:" + conversationID.String()
	pubsub := h.redisClient.Subscribe(ctx, channel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcast(conversationID, []byte(msg.Payload))
		}
	}
}

func (h *Hub) broadcast(conversationID uuid.UUID, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, conn := range h.connections[conversationID] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}

// SendToConversation sends a message directly to a conversation's sockets
// (for use outside pub/sub).
func (h *Hub) SendToConversation(conversationID uuid.UUID, msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	h.broadcast(conversationID, data)
}
