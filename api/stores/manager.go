package stores

import (
	"storebill_server/api/middleware"
	"storebill_server/services"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type StoreRoutesManager struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	storeService *services.StoreService
	tokenService *services.TokenService
	mw           *middleware.Middleware
}

func NewStoreRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	storeService *services.StoreService,
	tokenService *services.TokenService,
	mw *middleware.Middleware,
) *StoreRoutesManager {
	return &StoreRoutesManager{
		logger:       logger,
		cfg:          cfg,
		storeService: storeService,
		tokenService: tokenService,
		mw:           mw,
	}
}

func (srm *StoreRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/stores", func(r chi.Router) {
		r.Use(srm.mw.UserAuthMiddleware)
		r.Use(srm.mw.CSRFMiddleware())

		r.Post("/publish-token", srm.HandleIssuePublishToken)
		r.Post("/", srm.HandleCreate)
		r.Get("/", srm.HandleList)
		r.Get("/paginated", srm.HandleListPaginated)

		r.Route("/{storeId}", func(r chi.Router) {
			r.Use(srm.mw.StoreOwnershipMiddleware)
			r.Get("/", srm.HandleFetch)
			r.Patch("/", srm.HandleUpdate)
			r.Delete("/", srm.HandleDelete)
		})
	})
}
