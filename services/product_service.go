package services

import (
	"context"
	"sort"
	"storebill_server/database"
	"storebill_server/lib"
	"storebill_server/structs"
	"storebill_server/structs/tables"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// SimilarityThreshold is the minimum trigram similarity for a product to
// appear in fuzzy search results, matching the pg_trgm default.
const SimilarityThreshold = 0.3

// SearchLimit caps substring search results
const SearchLimit = 5

type ProductService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewProductService(logger *gecho.Logger, db *database.DB) *ProductService {
	return &ProductService{
		logger: logger,
		db:     db,
	}
}

// Create adds a product to a store's inventory
func (ps *ProductService) Create(ctx context.Context, storeId uuid.UUID, req *structs.ProductRequest) (*tables.Product, error) {
	product := &tables.Product{
		StoreId:    storeId,
		Name:       req.Name,
		Quantity:   req.Quantity,
		PackSize:   req.PackSize,
		GstPercent: req.GstPercent,
		Expiry:     req.Expiry,
		Batch:      req.Batch,
		MRP:        req.MRP,
		Unit:       req.Unit,
	}
	if product.Unit == "" {
		product.Unit = "units"
	}

	if err := database.Create(ps.db, ctx, product); err != nil {
		return nil, lib.MapPgError(err)
	}

	ps.logger.Info("Product created",
		gecho.Field("product_id", product.Id),
		gecho.Field("store_id", storeId),
	)
	return product, nil
}

// GetById fetches a product scoped to its store. Products from other
// stores are invisible, not forbidden.
func (ps *ProductService) GetById(ctx context.Context, storeId, productId uuid.UUID) (*tables.Product, error) {
	product, err := database.Query[tables.Product](ps.db).
		Context(ctx).
		Where("id", productId).
		Where("store_id", storeId).
		First()
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}
	return product, nil
}

// List returns one page of a store's inventory, newest first
func (ps *ProductService) List(ctx context.Context, storeId uuid.UUID, p database.Pagination) (*database.PaginatedResult[tables.Product], error) {
	q := database.Query[tables.Product](ps.db).
		Context(ctx).
		Where("store_id", storeId).
		OrderBy("created_at", database.DESC)

	result, err := database.Paginate(q, p)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// GetByIds fetches products by id within one store
func (ps *ProductService) GetByIds(ctx context.Context, storeId uuid.UUID, ids []uuid.UUID) ([]tables.Product, error) {
	if len(ids) == 0 {
		return []tables.Product{}, nil
	}

	idValues := make([]any, 0, len(ids))
	for _, id := range ids {
		idValues = append(idValues, id)
	}

	products, err := database.Query[tables.Product](ps.db).
		Context(ctx).
		Where("store_id", storeId).
		WhereIn("id", idValues).
		All()
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// Search performs a case-insensitive substring match on product name and
// batch, capped at SearchLimit rows in storage order. An empty query
// returns nothing.
func (ps *ProductService) Search(ctx context.Context, storeId uuid.UUID, query string) ([]tables.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []tables.Product{}, nil
	}

	pattern := "%" + query + "%"
	products, err := database.Query[tables.Product](ps.db).
		Context(ctx).
		Where("store_id", storeId).
		WhereRaw("(name ILIKE ? OR batch ILIKE ?)", pattern, pattern).
		Limit(SearchLimit).
		All()
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return products, nil
}

// RankedProduct is a product with its fuzzy-match score
type RankedProduct struct {
	tables.Product
	Score float64 `json:"score"`
}

// FullSearch performs trigram fuzzy matching over a store's inventory.
// The candidate set is fetched store-scoped and scored in process, which
// keeps the ranking deterministic and testable.
func (ps *ProductService) FullSearch(ctx context.Context, storeId uuid.UUID, query string) ([]RankedProduct, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []RankedProduct{}, nil
	}

	products, err := database.Query[tables.Product](ps.db).
		Context(ctx).
		Where("store_id", storeId).
		All()
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return RankProducts(products, query), nil
}

// RankProducts scores products against the query and returns those above
// the similarity threshold, best match first. A product's score is the
// better of its name and batch similarity.
func RankProducts(products []tables.Product, query string) []RankedProduct {
	ranked := make([]RankedProduct, 0)
	for _, product := range products {
		score := lib.Similarity(product.Name, query)
		if batchScore := lib.Similarity(product.Batch, query); batchScore > score {
			score = batchScore
		}
		if score > SimilarityThreshold {
			ranked = append(ranked, RankedProduct{Product: product, Score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Patch applies the non-nil fields of the patch to the product row and
// returns the updated product.
func (ps *ProductService) Patch(ctx context.Context, storeId, productId uuid.UUID, patch *structs.ProductPatch) (*tables.Product, error) {
	values := map[string]any{}
	if patch.Name != nil {
		values["name"] = *patch.Name
	}
	if patch.Quantity != nil {
		values["quantity"] = *patch.Quantity
	}
	if patch.PackSize != nil {
		values["pack_size"] = *patch.PackSize
	}
	if patch.GstPercent != nil {
		values["gst_percent"] = *patch.GstPercent
	}
	if patch.Expiry != nil {
		values["expiry"] = *patch.Expiry
	}
	if patch.Batch != nil {
		values["batch"] = *patch.Batch
	}
	if patch.MRP != nil {
		values["mrp"] = *patch.MRP
	}
	if patch.Unit != nil {
		values["unit"] = *patch.Unit
	}
	if len(values) == 0 {
		return ps.GetById(ctx, storeId, productId)
	}
	values["updated_at"] = time.Now()

	affected, err := database.Query[tables.Product](ps.db).
		Context(ctx).
		Where("id", productId).
		Where("store_id", storeId).
		Update(values)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return ps.GetById(ctx, storeId, productId)
}

// Delete removes a product from the inventory. Bill items keep their
// snapshot of the product name.
func (ps *ProductService) Delete(ctx context.Context, storeId, productId uuid.UUID) error {
	affected, err := database.Query[tables.Product](ps.db).
		Context(ctx).
		Where("id", productId).
		Where("store_id", storeId).
		Delete()
	if err != nil {
		return lib.MapPgError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}

	ps.logger.Info("Product deleted",
		gecho.Field("product_id", productId),
		gecho.Field("store_id", storeId),
	)
	return nil
}
