package products

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleList returns one page of the store's inventory
func (prm *ProductRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	pagination := handling.ParsePagination(r)
	result, err := prm.productService.List(r.Context(), store.Id, pagination)
	if err != nil {
		handling.HandleError(err, "Failed to list products", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) HandleFetch(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	productId, err := uuid.Parse(chi.URLParam(r, "productId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid product id"), gecho.Send())
		return
	}

	product, err := prm.productService.GetById(r.Context(), store.Id, productId)
	if err != nil {
		handling.HandleError(err, "Product not found", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
