package auth

import (
	"net/http"
	"storebill_server/config"
	"storebill_server/handling"
	"storebill_server/lib"
	"storebill_server/structs"
	"time"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.AuthRequest](r)
	if err != nil {
		arm.logger.Warn("Failed to extract request body", gecho.Field("error", err))
		handling.HandleBodyError(err, w)
		return
	}

	user, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		arm.logger.Warn("Login failed", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
		return
	}

	accessToken, err := lib.GenerateToken(user, arm.cfg.Auth.AccessTokenSecret, arm.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		arm.logger.Error("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	refreshToken, err := lib.GenerateToken(user, arm.cfg.Auth.RefreshTokenSecret, arm.cfg.Auth.RefreshTokenExpiry)
	if err != nil {
		arm.logger.Error("Failed to generate refresh token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Unable to complete login. Please try again"), gecho.Send())
		return
	}

	production := config.IsProduction(arm.cfg)
	lib.SetCookie(lib.AccessCookieName, accessToken, time.Now().Add(arm.cfg.Auth.AccessTokenExpiry), production, w)
	lib.SetCookie(lib.RefreshCookieName, refreshToken, time.Now().Add(arm.cfg.Auth.RefreshTokenExpiry), production, w)

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
