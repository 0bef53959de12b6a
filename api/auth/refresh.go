package auth

import (
	"net/http"
	"storebill_server/config"
	"storebill_server/handling"
	"storebill_server/lib"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleRefresh exchanges a valid refresh cookie for a fresh access
// cookie. The refresh token itself is left alone; it ages out on its
// own expiry.
func (arm *AuthRoutesManager) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	refreshToken, err := lib.GetCookieValue(lib.RefreshCookieName, r)
	if err != nil {
		gecho.Unauthorized(w, gecho.WithMessage("Missing refresh token"), gecho.Send())
		return
	}

	claims, err := lib.ParseToken(refreshToken, arm.cfg.Auth.RefreshTokenSecret)
	if err != nil {
		arm.logger.Warn("Invalid refresh token", gecho.Field("error", err))
		gecho.Unauthorized(w, gecho.WithMessage("Invalid or expired refresh token"), gecho.Send())
		return
	}

	// The account may have been deleted since the token was minted
	user, err := arm.userService.GetById(r.Context(), claims.Sub)
	if err != nil {
		handling.HandleError(err, "Account no longer exists", arm.logger, w)
		return
	}

	accessToken, err := lib.GenerateToken(user, arm.cfg.Auth.AccessTokenSecret, arm.cfg.Auth.AccessTokenExpiry)
	if err != nil {
		arm.logger.Error("Failed to generate access token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	production := config.IsProduction(arm.cfg)
	lib.SetCookie(lib.AccessCookieName, accessToken, time.Now().Add(arm.cfg.Auth.AccessTokenExpiry), production, w)

	gecho.Success(w,
		gecho.WithMessage("Token refreshed"),
		gecho.Send(),
	)
}
