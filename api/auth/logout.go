package auth

import (
	"net/http"
	"storebill_server/config"
	"storebill_server/lib"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogout(w http.ResponseWriter, r *http.Request) {
	production := config.IsProduction(arm.cfg)
	lib.ClearCookie(lib.AccessCookieName, production, w)
	lib.ClearCookie(lib.RefreshCookieName, production, w)

	gecho.Success(w,
		gecho.WithMessage("Logged out successfully"),
		gecho.Send(),
	)
}
