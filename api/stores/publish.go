package stores

import (
	"net/http"
	"storebill_server/api/middleware"

	"github.com/MonkyMars/gecho"
)

// HandleIssuePublishToken mints a one-time token the client must present
// to create a store. The token expires on its own if never used.
func (srm *StoreRoutesManager) HandleIssuePublishToken(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.Send())
		return
	}

	token, err := srm.tokenService.IssuePublishToken(r.Context(), claims.Sub)
	if err != nil {
		srm.logger.Error("Failed to issue publish token", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.Send())
		return
	}

	gecho.Success(w,
		gecho.WithData(map[string]any{
			"publish_token": token,
			"expires_in":    int(srm.cfg.Cache.PublishTokenExpiry.Seconds()),
		}),
		gecho.Send(),
	)
}
