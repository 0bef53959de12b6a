package services

import (
	"storebill_server/database"
	"storebill_server/structs"

	"github.com/MonkyMars/gecho"
)

type ServiceManager struct {
	AuthService    *AuthService
	UserService    *UserService
	StoreService   *StoreService
	ProductService *ProductService
	BillingService *BillingService
	TokenService   *TokenService
	EmailService   *EmailService
	HealthService  *HealthService
}

func NewServiceManager(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *ServiceManager {
	tokenService := NewTokenService(logger, cfg)
	emailService := NewEmailService(logger, cfg)
	authService := NewAuthService(logger, cfg, db)
	userService := NewUserService(logger, db)
	storeService := NewStoreService(logger, db)
	productService := NewProductService(logger, db)
	billingService := NewBillingService(logger, db, productService)
	healthService := NewHealthService(logger, db, tokenService)

	return &ServiceManager{
		AuthService:    authService,
		UserService:    userService,
		StoreService:   storeService,
		ProductService: productService,
		BillingService: billingService,
		TokenService:   tokenService,
		EmailService:   emailService,
		HealthService:  healthService,
	}
}

// Close releases service-held connections (currently just Redis).
func (sm *ServiceManager) Close() error {
	return sm.TokenService.Close()
}
