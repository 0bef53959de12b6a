package middleware

import (
	"context"
	"net/http"
	"storebill_server/lib"
	"storebill_server/structs"
	"storebill_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Context keys for storing request-scoped data
type contextKey string

const (
	ClaimsContextKey contextKey = "claims"
	StoreContextKey  contextKey = "store"
)

// UserAuthMiddleware protects routes to only logged-in users
func (mw *Middleware) UserAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := lib.ExtractClaims(r, mw.cfg.Auth.AccessTokenSecret)
		if err != nil {
			mw.logger.Warn("Failed to extract claims from request", gecho.Field("error", err))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StoreOwnershipMiddleware resolves the {storeId} URL parameter and
// verifies the store belongs to the authenticated user. Stores owned by
// someone else answer 404, not 403, so store ids are not probeable.
// Must be used after UserAuthMiddleware.
func (mw *Middleware) StoreOwnershipMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or missing access token"), gecho.Send())
			return
		}

		storeId, err := uuid.Parse(chi.URLParam(r, "storeId"))
		if err != nil {
			gecho.BadRequest(w, gecho.WithMessage("Invalid store id"), gecho.Send())
			return
		}

		store, err := mw.storeService.GetById(r.Context(), storeId)
		if err != nil || store.UserId != claims.Sub {
			gecho.NotFound(w, gecho.WithMessage("Store not found"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), StoreContextKey, store)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetClaimsFromContext extracts the auth claims from request context
func GetClaimsFromContext(ctx context.Context) (*structs.AuthClaims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*structs.AuthClaims)
	return claims, ok
}

// GetStoreFromContext extracts the resolved store from request context
func GetStoreFromContext(ctx context.Context) (*tables.Store, bool) {
	store, ok := ctx.Value(StoreContextKey).(*tables.Store)
	return store, ok
}
