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

type StoreService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewStoreService(logger *gecho.Logger, db *database.DB) *StoreService {
	return &StoreService{
		logger: logger,
		db:     db,
	}
}

// Create registers a new store under the given user. Publish-token
// consumption happens in the handler before this is called.
func (ss *StoreService) Create(ctx context.Context, userId uuid.UUID, req *structs.StoreRequest) (*tables.Store, error) {
	store := &tables.Store{
		UserId:  userId,
		Name:    req.Name,
		Owner:   req.Owner,
		Phone:   req.Phone,
		TelCode: req.TelCode,
		Address: req.Address,
		Email:   req.Email,
		GstNo:   req.GstNo,
	}
	if store.TelCode == "" {
		store.TelCode = "+91"
	}

	if err := database.Create(ss.db, ctx, store); err != nil {
		return nil, lib.MapPgError(err)
	}

	ss.logger.Info("Store created",
		gecho.Field("store_id", store.Id),
		gecho.Field("user_id", userId),
	)
	return store, nil
}

// GetById fetches a store by id
func (ss *StoreService) GetById(ctx context.Context, id uuid.UUID) (*tables.Store, error) {
	store, err := database.FindByID[tables.Store](ss.db, ctx, id)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if store == nil {
		return nil, lib.ErrNotFound
	}
	return store, nil
}

// ListByUser returns all stores of a user, newest first, each with its
// product count.
func (ss *StoreService) ListByUser(ctx context.Context, userId uuid.UUID) ([]tables.StoreSummary, error) {
	const query = `
		SELECT s.*, count(p.id) AS total_products
		FROM stores s
		LEFT JOIN products p ON p.store_id = s.id
		WHERE s.user_id = ?
		GROUP BY s.id
		ORDER BY s.created_at DESC`

	summaries, err := database.RawQuery[tables.StoreSummary](ss.db, ctx, query, userId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return summaries, nil
}

// ListByUserPaginated returns one page of a user's stores
func (ss *StoreService) ListByUserPaginated(ctx context.Context, userId uuid.UUID, p database.Pagination) (*database.PaginatedResult[tables.Store], error) {
	q := database.Query[tables.Store](ss.db).
		Context(ctx).
		Where("user_id", userId).
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(q, p)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// Patch applies the non-nil fields of the patch to the store row and
// returns the updated store. Bills keep their snapshot of the old
// identity; only future bills pick up the change.
func (ss *StoreService) Patch(ctx context.Context, id uuid.UUID, patch *structs.StorePatch) (*tables.Store, error) {
	values := map[string]any{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Owner != nil {
		values["owner"] = *patch.Owner
	}
	if patch.Phone != nil {
		values["phone"] = *patch.Phone
	}
	if patch.TelCode != nil {
		values["tel_code"] = *patch.TelCode
	}
	if patch.Address != nil {
		values["address"] = *patch.Address
	}
	if patch.Email != nil {
		values["email"] = *patch.Email
	}
	if patch.GstNo != nil {
		values["gst_no"] = *patch.GstNo
	}
	if len(values) == 0 {
		return ss.GetById(ctx, id)
	}
	values["updated_at"] = time.Now()

	affected, err := database.Query[tables.Store](ss.db).
		Context(ctx).
		Where("id", id).
		Update(values)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return ss.GetById(ctx, id)
}

// Delete removes a store. Products and bills cascade at the database level.
func (ss *StoreService) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := database.Query[tables.Store](ss.db).
		Context(ctx).
		Where("id", id).
		Delete()
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ss.logger.Info("Store deleted", gecho.Field("store_id", id))
	return nil
}
