package products

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"

	"github.com/MonkyMars/gecho"
)

// HandleSearch answers the as-you-type lookup: substring match on name
// or batch, at most a handful of rows.
func (prm *ProductRoutesManager) HandleSearch(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	query := r.URL.Query().Get("q")
	results, err := prm.productService.Search(r.Context(), store.Id, query)
	if err != nil {
		handling.HandleError(err, "Search failed", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(results),
		gecho.Send(),
	)
}

// HandleFullSearch answers the typo-tolerant lookup: trigram similarity
// over the whole inventory, scored and sorted.
func (prm *ProductRoutesManager) HandleFullSearch(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	query := r.URL.Query().Get("q")
	results, err := prm.productService.FullSearch(r.Context(), store.Id, query)
	if err != nil {
		handling.HandleError(err, "Search failed", prm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(results),
		gecho.Send(),
	)
}
