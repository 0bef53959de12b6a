//go:build integration

package services

import (
	"context"
	"errors"
	"fmt"
	"storebill_server/config"
	"storebill_server/database"
	"storebill_server/lib"
	"storebill_server/structs"
	"storebill_server/structs/tables"
	"testing"

	"github.com/google/uuid"
)

// These tests need a reachable Postgres instance (configured through the
// usual environment variables) and run with: go test -tags integration

func setupIntegration(t *testing.T) (*ServiceManager, *database.DB, context.Context) {
	t.Helper()

	cfg := config.Load()
	logger := config.NewLogger(cfg)

	db, err := database.Connect(cfg.Database, logger)
	if err != nil {
		t.Skipf("database unavailable: %v", err)
	}

	ctx := context.Background()
	if err := database.Migrate(ctx, db, logger); err != nil {
		t.Fatalf("migrations failed: %v", err)
	}

	sm := NewServiceManager(logger, cfg, db)
	t.Cleanup(func() {
		sm.Close()
		db.Close()
	})

	return sm, db, ctx
}

// seedStore registers a throwaway user with one store. Both are removed
// again through the user cascade when the test finishes.
func seedStore(t *testing.T, sm *ServiceManager, ctx context.Context) *tables.Store {
	t.Helper()

	phone := fmt.Sprintf("9%s", uuid.New().String()[:12])
	user, err := sm.AuthService.Register(ctx, &structs.RegisterRequest{
		Name:     "Test Owner",
		Phone:    phone,
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(func() {
		sm.UserService.Delete(ctx, user.Id)
	})

	store, err := sm.StoreService.Create(ctx, user.Id, &structs.StoreRequest{
		Name:    "City Pharmacy",
		Owner:   "Test Owner",
		Phone:   "9876543210",
		Address: "12 Market Road",
		GstNo:   "27AAPFU0939F1Z",
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	return store
}

func seedProduct(t *testing.T, sm *ServiceManager, ctx context.Context, storeId uuid.UUID, name string) *tables.Product {
	t.Helper()

	product, err := sm.ProductService.Create(ctx, storeId, &structs.ProductRequest{
		Name:       name,
		Quantity:   50,
		GstPercent: 18,
		MRP:        100,
	})
	if err != nil {
		t.Fatalf("create product %q: %v", name, err)
	}
	return product
}

type countRow struct {
	Count int `bun:"count"`
}

func countStoreBills(t *testing.T, db *database.DB, ctx context.Context, storeId uuid.UUID) (bills, items int) {
	t.Helper()

	rows, err := database.RawQuery[countRow](db, ctx,
		"SELECT count(*) AS count FROM bills WHERE store_id = ?", storeId)
	if err != nil {
		t.Fatalf("count bills: %v", err)
	}
	bills = rows[0].Count

	rows, err = database.RawQuery[countRow](db, ctx,
		"SELECT count(*) AS count FROM bill_items bi JOIN bills b ON b.id = bi.bill_id WHERE b.store_id = ?", storeId)
	if err != nil {
		t.Fatalf("count bill items: %v", err)
	}
	items = rows[0].Count
	return bills, items
}

func TestCreateBillRollsBackOnMissingProduct(t *testing.T) {
	sm, db, ctx := setupIntegration(t)
	store := seedStore(t, sm, ctx)
	product := seedProduct(t, sm, ctx, store.Id, "Paracetamol 500mg")

	_, err := sm.BillingService.CreateBill(ctx, store.Id, &structs.BillRequest{
		CustomerName: "Walk-in",
		Items: []structs.BillLineRequest{
			{ProductId: product.Id, Quantity: 2},
			{ProductId: uuid.New(), Quantity: 1},
		},
	})
	if !errors.Is(err, lib.ErrNotFound) {
		t.Fatalf("CreateBill with unknown product: err = %v, want ErrNotFound", err)
	}

	bills, items := countStoreBills(t, db, ctx, store.Id)
	if bills != 0 || items != 0 {
		t.Errorf("after failed bill: %d bills, %d items persisted, want 0/0", bills, items)
	}
}

func TestBillSnapshotSurvivesStoreEdits(t *testing.T) {
	sm, _, ctx := setupIntegration(t)
	store := seedStore(t, sm, ctx)
	product := seedProduct(t, sm, ctx, store.Id, "Amoxicillin 250mg")

	created, err := sm.BillingService.CreateBill(ctx, store.Id, &structs.BillRequest{
		Items: []structs.BillLineRequest{
			{ProductId: product.Id, Quantity: 3, DiscountPercent: 10, GstPercent: 18},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if created.Total != 318.60 {
		t.Errorf("bill total = %.2f, want 318.60", created.Total)
	}

	newName := "Renamed Pharmacy"
	newOwner := "New Owner"
	if _, err := sm.StoreService.Patch(ctx, store.Id, &structs.StorePatch{
		Name:  &newName,
		Owner: &newOwner,
	}); err != nil {
		t.Fatalf("patch store: %v", err)
	}

	fetched, err := sm.BillingService.GetBill(ctx, store.Id, created.Id)
	if err != nil {
		t.Fatalf("GetBill: %v", err)
	}
	if fetched.StoreName != store.Name {
		t.Errorf("bill store name = %q, want snapshot %q", fetched.StoreName, store.Name)
	}
	if fetched.OwnerName != store.Owner {
		t.Errorf("bill owner name = %q, want snapshot %q", fetched.OwnerName, store.Owner)
	}
}

func TestStoreDeleteCascades(t *testing.T) {
	sm, db, ctx := setupIntegration(t)
	store := seedStore(t, sm, ctx)
	product := seedProduct(t, sm, ctx, store.Id, "Cetirizine 10mg")

	created, err := sm.BillingService.CreateBill(ctx, store.Id, &structs.BillRequest{
		Items: []structs.BillLineRequest{
			{ProductId: product.Id, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill: %v", err)
	}

	if err := sm.StoreService.Delete(ctx, store.Id); err != nil {
		t.Fatalf("delete store: %v", err)
	}

	if _, err := sm.ProductService.GetById(ctx, store.Id, product.Id); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("product after cascade: err = %v, want ErrNotFound", err)
	}

	rows, err := database.RawQuery[countRow](db, ctx,
		"SELECT count(*) AS count FROM bill_items WHERE bill_id = ?", created.Id)
	if err != nil {
		t.Fatalf("count orphaned items: %v", err)
	}
	if rows[0].Count != 0 {
		t.Errorf("bill items after cascade = %d, want 0", rows[0].Count)
	}
}

func TestSearchReturnsOldestMatchesFirst(t *testing.T) {
	sm, _, ctx := setupIntegration(t)
	store := seedStore(t, sm, ctx)

	firstFive := make(map[uuid.UUID]bool)
	for i := 1; i <= 6; i++ {
		product := seedProduct(t, sm, ctx, store.Id, fmt.Sprintf("Ibuprofen %d00mg", i))
		if i <= 5 {
			firstFive[product.Id] = true
		}
	}

	results, err := sm.ProductService.Search(ctx, store.Id, "ibupro")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != SearchLimit {
		t.Fatalf("Search returned %d rows, want %d", len(results), SearchLimit)
	}

	// No explicit ordering: the LIMIT keeps the earliest-stored rows
	for _, result := range results {
		if !firstFive[result.Id] {
			t.Errorf("Search returned %q (%s), not among the first five inserted", result.Name, result.Id)
		}
	}
}
