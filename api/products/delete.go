package products

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandleDelete removes a product. Past bills are unaffected; they carry
// their own snapshot of the product name and price.
func (prm *ProductRoutesManager) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	if err := prm.productService.Delete(r.Context(), store.Id, productId); err != nil {
		handling.HandleError(err, "Failed to delete product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product deleted"),
		gecho.Send(),
	)
}
