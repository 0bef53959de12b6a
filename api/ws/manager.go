package ws

import (
	"net/http"
	"storebill_server/api/middleware"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type WsRoutesManager struct {
	logger *gecho.Logger
	hub    *Hub
	mw     *middleware.Middleware

	upgrader websocket.Upgrader
}

func NewWsRoutesManager(logger *gecho.Logger, hub *Hub, mw *middleware.Middleware) *WsRoutesManager {
	return &WsRoutesManager{
		logger: logger,
		hub:    hub,
		mw:     mw,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

func (wrm *WsRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/ws/stores/{storeId}", func(r chi.Router) {
		r.Use(wrm.mw.UserAuthMiddleware)
		r.Use(wrm.mw.StoreOwnershipMiddleware)
		r.Get("/", wrm.HandleStoreRoom)
	})
}

// HandleStoreRoom upgrades the connection and parks it in the store room
// until the client goes away.
func (wrm *WsRoutesManager) HandleStoreRoom(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	conn, err := wrm.upgrader.Upgrade(w, r, nil)
	if err != nil {
		wrm.logger.Warn("Websocket upgrade failed", gecho.Field("error", err))
		return
	}

	wrm.hub.Join(store.Id, conn)
	defer func() {
		wrm.hub.Leave(store.Id, conn)
		conn.Close()
	}()

	// Drain the connection; the server only pushes.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
