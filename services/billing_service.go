package services

import (
	"context"
	"fmt"
	"runtime/debug"
	"storebill_server/database"
	"storebill_server/lib"
	"storebill_server/structs"
	"storebill_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type BillingService struct {
	logger         *gecho.Logger
	db             *database.DB
	productService *ProductService
}

func NewBillingService(logger *gecho.Logger, db *database.DB, productService *ProductService) *BillingService {
	return &BillingService{
		logger:         logger,
		db:             db,
		productService: productService,
	}
}

// ComputeLineTotal prices one bill line: MRP times quantity, discount
// applied before GST, rounded once at the end. Intermediate values are
// never rounded.
func ComputeLineTotal(mrp float64, quantity int, discountPercent, gstPercent float64) float64 {
	base := mrp * float64(quantity)
	discounted := base * (1 - discountPercent/100)
	taxed := discounted * (1 + gstPercent/100)
	return lib.RoundCurrency(taxed)
}

// CreateBill persists a bill and its items in one transaction. The store
// identity is snapshotted onto the bill, and each item snapshots the
// product name, so the bill stays a faithful record no matter what
// happens to the store or inventory afterwards.
func (bs *BillingService) CreateBill(ctx context.Context, storeId uuid.UUID, req *structs.BillRequest) (resp *structs.BillResponse, err error) {
	store, err := database.FindByID[tables.Store](bs.db, ctx, storeId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if store == nil {
		return nil, lib.ErrNotFound
	}

	// Resolve every referenced product up front so a bad line fails the
	// whole bill before anything is written.
	productIds := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		productIds = append(productIds, item.ProductId)
	}

	products, err := bs.productService.GetByIds(ctx, storeId, productIds)
	if err != nil {
		return nil, err
	}

	productMap := make(map[uuid.UUID]*tables.Product, len(products))
	for i := range products {
		productMap[products[i].Id] = &products[i]
	}
	for _, item := range req.Items {
		if _, exists := productMap[item.ProductId]; !exists {
			return nil, fmt.Errorf("product %s: %w", item.ProductId, lib.ErrNotFound)
		}
	}

	billNumber, err := lib.GenerateBillNumber()
	if err != nil {
		return nil, err
	}

	tx, err := bs.db.BeginTx(ctx, nil)
	if err != nil {
		bs.logger.Error("Failed to begin transaction", gecho.Field("error", err))
		return nil, lib.MapPgError(err)
	}

	defer func() {
		if p := recover(); p != nil {
			bs.logger.Error(fmt.Sprintf("Panic during bill creation: %v", p),
				gecho.Field("stack_trace", string(debug.Stack())))
			tx.Rollback()
			err = fmt.Errorf("panic recovered: %v", p)
		} else if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	bill := &tables.Bill{
		StoreId:      storeId,
		BillNumber:   billNumber,
		CustomerName: req.CustomerName,
		DoctorName:   req.DoctorName,

		StoreName:    store.Name,
		OwnerName:    store.Owner,
		StoreGstNo:   store.GstNo,
		StoreAddress: store.Address,
		StorePhone:   store.TelCode + " " + store.Phone,
	}

	if _, err = tx.NewInsert().Model(bill).Returning("*").Exec(ctx); err != nil {
		err = lib.MapPgError(err)
		return nil, err
	}

	items := make([]*tables.BillItem, 0, len(req.Items))
	total := 0.0
	for _, line := range req.Items {
		product := productMap[line.ProductId]
		lineTotal := ComputeLineTotal(product.MRP, line.Quantity, line.DiscountPercent, line.GstPercent)
		total += lineTotal

		items = append(items, &tables.BillItem{
			BillId:          bill.Id,
			ProductId:       product.Id,
			ProductName:     product.Name,
			Quantity:        line.Quantity,
			DiscountPercent: line.DiscountPercent,
			GstPercent:      line.GstPercent,
			TotalPrice:      lineTotal,
		})
	}

	if _, err = tx.NewInsert().Model(&items).Returning("*").Exec(ctx); err != nil {
		err = lib.MapPgError(err)
		return nil, err
	}

	bill.Items = items

	bs.logger.Info("Bill created",
		gecho.Field("bill_id", bill.Id),
		gecho.Field("bill_number", bill.BillNumber),
		gecho.Field("store_id", storeId),
		gecho.Field("items", len(items)),
	)

	return &structs.BillResponse{Bill: bill, Total: lib.RoundCurrency(total)}, nil
}

// GetBill fetches one bill with its items, scoped to the store
func (bs *BillingService) GetBill(ctx context.Context, storeId, billId uuid.UUID) (*structs.BillResponse, error) {
	bill, err := database.Query[tables.Bill](bs.db).
		Context(ctx).
		Where("id", billId).
		Where("store_id", storeId).
		Relation("Items").
		First()
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if bill == nil {
		return nil, lib.ErrNotFound
	}

	total := 0.0
	for _, item := range bill.Items {
		total += item.TotalPrice
	}

	return &structs.BillResponse{Bill: bill, Total: lib.RoundCurrency(total)}, nil
}

// ListBills returns one page of a store's bills, newest billing date first
func (bs *BillingService) ListBills(ctx context.Context, storeId uuid.UUID, p database.Pagination) (*database.PaginatedResult[tables.Bill], error) {
	q := database.Query[tables.Bill](bs.db).
		Context(ctx).
		Where("store_id", storeId).
		OrderBy("billing_date", database.DESC)

	result, err := database.Paginate(q, p)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}
