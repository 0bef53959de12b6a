package api

import (
	"storebill_server/api/auth"
	"storebill_server/api/bills"
	"storebill_server/api/health"
	"storebill_server/api/middleware"
	"storebill_server/api/products"
	"storebill_server/api/stores"
	"storebill_server/api/ws"
	"storebill_server/services"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type routerManager struct {
	authRoutes    *auth.AuthRoutesManager
	storeRoutes   *stores.StoreRoutesManager
	productRoutes *products.ProductRoutesManager
	billRoutes    *bills.BillRoutesManager
	wsRoutes      *ws.WsRoutesManager
	healthRoutes  *health.HealthRoutesManager
}

func NewRouterManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	sm *services.ServiceManager,
	hub *ws.Hub,
	mw *middleware.Middleware,
) *routerManager {
	return &routerManager{
		authRoutes:    auth.NewAuthRoutesManager(logger, cfg, sm.AuthService, sm.UserService, sm.TokenService, sm.EmailService, mw),
		storeRoutes:   stores.NewStoreRoutesManager(logger, cfg, sm.StoreService, sm.TokenService, mw),
		productRoutes: products.NewProductRoutesManager(logger, cfg, sm.ProductService, mw),
		billRoutes:    bills.NewBillRoutesManager(logger, cfg, sm.BillingService, hub, mw),
		wsRoutes:      ws.NewWsRoutesManager(logger, hub, mw),
		healthRoutes:  health.NewHealthRoutesManager(sm.HealthService),
	}
}

func (rm *routerManager) RegisterRoutes(r chi.Router) {
	rm.authRoutes.RegisterRoutes(r)
	rm.storeRoutes.RegisterRoutes(r)
	rm.productRoutes.RegisterRoutes(r)
	rm.billRoutes.RegisterRoutes(r)
	rm.wsRoutes.RegisterRoutes(r)
	rm.healthRoutes.RegisterRoutes(r)
}
