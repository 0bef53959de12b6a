package products

import (
	"storebill_server/api/middleware"
	"storebill_server/services"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type ProductRoutesManager struct {
	logger         *gecho.Logger
	cfg            *structs.Config
	productService *services.ProductService
	mw             *middleware.Middleware
}

func NewProductRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	productService *services.ProductService,
	mw *middleware.Middleware,
) *ProductRoutesManager {
	return &ProductRoutesManager{
		logger:         logger,
		cfg:            cfg,
		productService: productService,
		mw:             mw,
	}
}

func (prm *ProductRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/api/stores/{storeId}/products", func(r chi.Router) {
		r.Use(prm.mw.UserAuthMiddleware)
		r.Use(prm.mw.StoreOwnershipMiddleware)
		r.Use(prm.mw.CSRFMiddleware())

		r.Post("/", prm.HandleCreate)
		r.Get("/", prm.HandleList)
		r.Get("/search", prm.HandleSearch)
		r.Get("/full_search", prm.HandleFullSearch)

		r.Route("/{productId}", func(r chi.Router) {
			r.Get("/", prm.HandleFetch)
			r.Patch("/", prm.HandleUpdate)
			r.Delete("/", prm.HandleDelete)
		})
	})
}
