package ws

import (
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub tracks live connections per store room. Every connected terminal
// of a store sees bills created by the others as they happen.
type Hub struct {
	logger *gecho.Logger

	mu    sync.Mutex
	rooms map[uuid.UUID]map[*websocket.Conn]bool
}

func NewHub(logger *gecho.Logger) *Hub {
	return &Hub{
		logger: logger,
		rooms:  make(map[uuid.UUID]map[*websocket.Conn]bool),
	}
}

// Join adds a connection to a store room and announces it
func (h *Hub) Join(storeId uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	room, ok := h.rooms[storeId]
	if !ok {
		room = make(map[*websocket.Conn]bool)
		h.rooms[storeId] = room
	}
	room[conn] = true
	h.mu.Unlock()

	h.Broadcast(storeId, map[string]any{
		"event": "joined",
	})
}

// Leave drops a connection from its store room
func (h *Hub) Leave(storeId uuid.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if room, ok := h.rooms[storeId]; ok {
		delete(room, conn)
		if len(room) == 0 {
			delete(h.rooms, storeId)
		}
	}
}

// Broadcast sends a JSON payload to every connection in a store room.
// Dead connections are dropped on write failure.
func (h *Hub) Broadcast(storeId uuid.UUID, payload any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	room, ok := h.rooms[storeId]
	if !ok {
		return
	}

	for conn := range room {
		if err := conn.WriteJSON(payload); err != nil {
			h.logger.Warn("Dropping dead websocket connection",
				gecho.Field("store_id", storeId),
				gecho.Field("error", err),
			)
			conn.Close()
			delete(room, conn)
		}
	}
	if len(room) == 0 {
		delete(h.rooms, storeId)
	}
}

// NotifyBill pushes a freshly created bill into the store room
func (h *Hub) NotifyBill(storeId uuid.UUID, bill any) {
	h.Broadcast(storeId, map[string]any{
		"event": "bill_created",
		"bill":  bill,
	})
}
