package services

import (
	"context"
	"storebill_server/database"
	"storebill_server/lib"
	"storebill_server/structs"
	"storebill_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	db     *database.DB
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config, db *database.DB) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
		db:     db,
	}
}

// Register creates a new user account. The phone number is the login
// identity and must be unique.
func (as *AuthService) Register(ctx context.Context, req *structs.RegisterRequest) (*tables.User, error) {
	hash, err := lib.HashPassword(req.Password, nil)
	if err != nil {
		as.logger.Error("Failed to hash password", gecho.Field("error", err))
		return nil, err
	}

	user := &tables.User{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		PasswordHash: hash,
		Address:      req.Address,
		GstNo:        req.GstNo,
	}

	if err := database.Create(as.db, ctx, user); err != nil {
		return nil, lib.MapPgError(err)
	}

	as.logger.Info("User registered", gecho.Field("user_id", user.Id))
	return user, nil
}

// Login verifies the phone/password pair and returns the matching user.
// Unknown phone and bad password both come back as ErrInvalidCredentials
// so the response never reveals which half was wrong.
func (as *AuthService) Login(ctx context.Context, req *structs.AuthRequest) (*tables.User, error) {
	user, err := database.Query[tables.User](as.db).
		Context(ctx).
		Where("phone", req.Phone).
		First()
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrInvalidCredentials
	}

	ok, err := lib.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil {
		as.logger.Error("Failed to verify password", gecho.Field("error", err))
		return nil, err
	}
	if !ok {
		return nil, lib.ErrInvalidCredentials
	}

	return user, nil
}
