package stores

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"

	"github.com/MonkyMars/gecho"
)

// HandleDelete removes the store with its products and bills
func (srm *StoreRoutesManager) HandleDelete(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	if err := srm.storeService.Delete(r.Context(), store.Id); err != nil {
		handling.HandleError(err, "Failed to delete store", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Store deleted"),
		gecho.Send(),
	)
}
