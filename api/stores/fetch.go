package stores

import (
	"net/http"
	"storebill_server/api/middleware"

	"github.com/MonkyMars/gecho"
)

func (srm *StoreRoutesManager) HandleFetch(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(store),
		gecho.Send(),
	)
}
