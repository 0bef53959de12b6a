package products

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

func (prm *ProductRoutesManager) HandleCreate(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.ProductRequest](r)
	if err != nil {
		prm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	product, err := prm.productService.Create(r.Context(), store.Id, body)
	if err != nil {
		handling.HandleError(err, "Failed to create product", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}
