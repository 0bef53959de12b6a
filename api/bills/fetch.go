package bills

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (brm *BillRoutesManager) HandleFetch(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	billId, err := uuid.Parse(chi.URLParam(r, "billId"))
	if err != nil {
		gecho.BadRequest(w, gecho.WithMessage("Invalid bill id"), gecho.Send())
		return
	}

	bill, err := brm.billingService.GetBill(r.Context(), store.Id, billId)
	if err != nil {
		handling.HandleError(err, "Bill not found", brm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(bill),
		gecho.Send(),
	)
}

// HandleList returns one page of the store's bills, newest first
func (brm *BillRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	pagination := handling.ParsePagination(r)
	result, err := brm.billingService.ListBills(r.Context(), store.Id, pagination)
	if err != nil {
		handling.HandleError(err, "Failed to list bills", brm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}
