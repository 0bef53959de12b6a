package auth

import (
	"net/http"
	"storebill_server/config"
	"storebill_server/lib"
	"time"

	"github.com/MonkyMars/gecho"
)

// HandleCSRF generates a CSRF token and sets the double-submit cookie
func (arm *AuthRoutesManager) HandleCSRF(w http.ResponseWriter, r *http.Request) {
	token, err := lib.GenerateRandomToken()
	if err != nil {
		arm.logger.Error("Failed to generate CSRF token", gecho.Field("error", err))
		gecho.InternalServerError(w,
			gecho.WithMessage("Failed to generate CSRF token"),
			gecho.Send(),
		)
		return
	}

	expiry := time.Now().Add(arm.cfg.Auth.CSRFTokenExpiry)
	lib.SetCSRFCookie(token, expiry, config.IsProduction(arm.cfg), w)

	gecho.Success(w,
		gecho.WithData(map[string]string{
			"csrf_token": token,
		}),
		gecho.Send(),
	)
}
