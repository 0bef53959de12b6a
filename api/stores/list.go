package stores

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"

	"github.com/MonkyMars/gecho"
)

// HandleList returns all stores of the user with product counts
func (srm *StoreRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	summaries, err := srm.storeService.ListByUser(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Failed to list stores", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(summaries),
		gecho.Send(),
	)
}

// HandleListPaginated returns one page of the user's stores
func (srm *StoreRoutesManager) HandleListPaginated(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	pagination := handling.ParsePagination(r)
	result, err := srm.storeService.ListByUserPaginated(r.Context(), claims.Sub, pagination)
	if err != nil {
		handling.HandleError(err, "Failed to list stores", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
