package stores

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleUpdate applies a partial update to the store. Existing bills are
// untouched; they keep the identity snapshot taken when they were created.
func (srm *StoreRoutesManager) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.StorePatch](r)
	if err != nil {
		srm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	updated, err := srm.storeService.Patch(r.Context(), store.Id, body)
	if err != nil {
		handling.HandleError(err, "Failed to update store", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Store updated"),
		gecho.WithData(updated),
		gecho.Send(),
	)
}
