package bills

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleCreate persists a bill and pushes it to every terminal connected
// to the store room.
func (brm *BillRoutesManager) HandleCreate(w http.ResponseWriter, r *http.Request) {
	store, ok := middleware.GetStoreFromContext(r.Context())
	if !ok {
		gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.BillRequest](r)
	if err != nil {
		brm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	bill, err := brm.billingService.CreateBill(r.Context(), store.Id, body)
	if err != nil {
		handling.HandleError(err, "Failed to create bill", brm.logger, w)
		return
	}

	brm.hub.NotifyBill(store.Id, bill)

	gecho.Success(w,
		gecho.WithMessage("Bill created"),
		gecho.WithData(bill),
		gecho.Send(),
	)
}
