package stores

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

// HandleCreate registers a store. The publish token is redeemed first;
// if anything later fails the token is already burned, matching the
// one-token-one-attempt contract.
func (srm *StoreRoutesManager) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.StoreRequest](r)
	if err != nil {
		srm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	tokenOwner, err := srm.tokenService.ConsumePublishToken(r.Context(), body.PublishToken)
	if err != nil {
		handling.HandleError(err, "Invalid or expired publish token", srm.logger, w)
		return
	}
	if tokenOwner != claims.Sub {
		srm.logger.Warn("Publish token used by a different user",
			gecho.Field("token_owner", tokenOwner),
			gecho.Field("user_id", claims.Sub),
		)
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or expired publish token"), gecho.Send())
		return
	}

	store, err := srm.storeService.Create(r.Context(), claims.Sub, body)
	if err != nil {
		handling.HandleError(err, "Failed to create store", srm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Store created"),
		gecho.WithData(store),
		gecho.Send(),
	)
}
