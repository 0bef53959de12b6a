package auth

import (
	"net/http"
	"storebill_server/api/middleware"
	"storebill_server/config"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	user, err := arm.userService.GetById(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "User not found", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}

func (arm *AuthRoutesManager) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UserPatch](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	user, err := arm.userService.Patch(r.Context(), claims.Sub, body)
	if err != nil {
		handling.HandleError(err, "Failed to update account", arm.logger, w)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Account updated"),
		gecho.WithData(user),
		gecho.Send(),
	)
}

func (arm *AuthRoutesManager) HandleDeleteMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	if err := arm.userService.Delete(r.Context(), claims.Sub); err != nil {
		handling.HandleError(err, "Failed to delete account", arm.logger, w)
		return
	}

	production := config.IsProduction(arm.cfg)
	lib.ClearCookie(lib.AccessCookieName, production, w)

	gecho.Success(w,
		gecho.WithMessage("Account deleted"),
		gecho.Send(),
	)
}
