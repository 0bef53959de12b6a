package auth

import (
	"net/http"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleRegister(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.RegisterRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	user, err := arm.authService.Register(r.Context(), body)
	if err != nil {
		if lib.IsConflict(err) {
			gecho.Conflict(w, gecho.WithMessage("An account with this phone number or email already exists"), gecho.Send())
			return
		}
		handling.HandleError(err, "Failed to register", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
