package auth

import (
	"storebill_server/api/middleware"
	"storebill_server/services"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/go-chi/chi/v5"
)

type AuthRoutesManager struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	authService  *services.AuthService
	userService  *services.UserService
	tokenService *services.TokenService
	emailService *services.EmailService
	mw           *middleware.Middleware
}

func NewAuthRoutesManager(
	logger *gecho.Logger,
	cfg *structs.Config,
	authService *services.AuthService,
	userService *services.UserService,
	tokenService *services.TokenService,
	emailService *services.EmailService,
	mw *middleware.Middleware,
) *AuthRoutesManager {
	return &AuthRoutesManager{
		logger:       logger,
		cfg:          cfg,
		authService:  authService,
		userService:  userService,
		tokenService: tokenService,
		emailService: emailService,
		mw:           mw,
	}
}

func (arm *AuthRoutesManager) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		// CSRF token endpoint (must be called before protected routes)
		r.Get("/csrf", arm.HandleCSRF)

		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.CSRFMiddleware())
			r.Post("/register", arm.HandleRegister)
			r.Post("/login", arm.HandleLogin)
			r.Post("/logout", arm.HandleLogout)
			r.Post("/refresh", arm.HandleRefresh)
			r.Post("/otp/request", arm.HandleOTPRequest)
			r.Post("/otp/verify", arm.HandleOTPVerify)
		})

		// Protected routes for the authenticated account
		r.Group(func(r chi.Router) {
			r.Use(arm.mw.UserAuthMiddleware)
			r.Use(arm.mw.CSRFMiddleware())
			r.Get("/me", arm.HandleMe)
			r.Patch("/me", arm.HandleUpdateMe)
			r.Delete("/me", arm.HandleDeleteMe)
		})
	})
}
