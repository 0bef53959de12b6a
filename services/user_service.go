package services

import (
	"context"
	"storebill_server/database"
	"storebill_server/lib"
	"storebill_server/structs"
	"storebill_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type UserService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewUserService(logger *gecho.Logger, db *database.DB) *UserService {
	return &UserService{
		logger: logger,
		db:     db,
	}
}

// GetById fetches a user by id
func (us *UserService) GetById(ctx context.Context, id uuid.UUID) (*tables.User, error) {
	user, err := database.FindByID[tables.User](us.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}
	return user, nil
}

// Patch applies the non-nil fields of the patch to the user row and
// returns the updated user.
func (us *UserService) Patch(ctx context.Context, id uuid.UUID, patch *structs.UserPatch) (*tables.User, error) {
	values := map[string]any{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Email != nil {
		values["email"] = *patch.Email
	}
	if patch.Address != nil {
		values["address"] = *patch.Address
	}
	if patch.GstNo != nil {
		values["gst_no"] = *patch.GstNo
	}
	if len(values) == 0 {
		return us.GetById(ctx, id)
	}
	values["updated_at"] = time.Now()

	affected, err := database.Query[tables.User](us.db).
		Context(ctx).
		Where("id", id).
		Update(values)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return us.GetById(ctx, id)
}

// Delete removes the user account. Stores, products, and bills cascade
// at the database level.
func (us *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := database.Query[tables.User](us.db).
		Context(ctx).
		Where("id", id).
		Delete()
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	us.logger.Info("User deleted", gecho.Field("user_id", id))
	return nil
}
