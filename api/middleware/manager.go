package middleware

import (
	"storebill_server/services"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

type Middleware struct {
	cfg          *structs.Config
	logger       *gecho.Logger
	tokenService *services.TokenService
	storeService *services.StoreService
}

func NewMiddleware(
	cfg *structs.Config,
	logger *gecho.Logger,
	tokenService *services.TokenService,
	storeService *services.StoreService,
) *Middleware {
	return &Middleware{
		cfg:          cfg,
		logger:       logger,
		tokenService: tokenService,
		storeService: storeService,
	}
}
