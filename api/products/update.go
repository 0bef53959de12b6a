package products

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (prm *ProductRoutesManager) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	body, err := lib.ExtractAndValidateBody[structs.ProductPatch](r)
	if err != nil {
		prm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	product, err := prm.productService.Patch(r.Context(), store.Id, productId, body)
	if err != nil {
		handling.HandleError(err, "Failed to update product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product updated"),
		gecho.WithData(product),
		gecho.Send(),
	)
}
