package bills

import (
	"storebill_server/api/middleware"
	"storebill_server/api/ws"
	"storebill_server/services"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type BillRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	billingService *services.BillingService
	hub            *ws.Hub
	mw             *middleware.Middleware
}

func NewBillRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	billingService *services.BillingService,
	hub *ws.Hub,
	mw *middleware.Middleware,
) *BillRoutesManager {
	return &BillRoutesManager{
		logger:         logger,
		cfg:            cfg,
		billingService: billingService,
		hub:            hub,
		mw:             mw,
	}
}

func (brm *BillRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/stores/{storeId}/bills", func(r chi.Router) {
		r.Use(brm.mw.UserAuthMiddleware)
		r.Use(brm.mw.StoreOwnershipMiddleware)
		r.Use(brm.mw.CSRFMiddleware())

		r.Post("/", brm.HandleCreate)
		r.Get("/", brm.HandleList)
		r.Get("/{billId}", brm.HandleFetch)
	})
}
