package tables

import (
	"time"

	"github.com/google/uuid"
)

// Bill is an immutable audit record. The store identity columns are
// snapshotted once at creation so later edits to the store never rewrite
// billing history.
type Bill struct {
	tableName  struct{}  `bun:"table:bills,alias:b"`
	Id         uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	StoreId    uuid.UUID `json:"store_id" bun:"store_id,notnull,type:uuid"`
	BillNumber string    `json:"bill_number" bun:"bill_number,notnull,unique"`

	CustomerName string    `json:"customer_name,omitempty" bun:"customer_name"`
	DoctorName   string    `json:"doctor_name,omitempty" bun:"doctor_name"`
	BillingDate  time.Time `json:"billing_date" bun:"billing_date,notnull,default:now()"`

	// Store identity at billing time
	StoreName    string `json:"store_name" bun:"store_name,notnull"`
	OwnerName    string `json:"owner_name" bun:"owner_name,notnull"`
	StoreGstNo   string `json:"store_gst_no,omitempty" bun:"store_gst_no"`
	StoreAddress string `json:"store_address,omitempty" bun:"store_address"`
	StorePhone   string `json:"store_phone,omitempty" bun:"store_phone"`

	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`

	Items []*BillItem `json:"items,omitempty" bun:"rel:has-many,join:id=bill_id"`
}

// BillItem joins a bill to a product with the transaction-specific data.
// The product reference is informational; product rows may outlive or
// predecease the bill independently.
type BillItem struct {
	tableName struct{}  `bun:"table:bill_items,alias:bi"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	BillId    uuid.UUID `json:"bill_id" bun:"bill_id,notnull,type:uuid"`
	ProductId uuid.UUID `json:"product_id" bun:"product_id,notnull,type:uuid"`

	// Snapshot of the product name at billing time
	ProductName string `json:"product_name" bun:"product_name,notnull"`

	Quantity        int     `json:"quantity" bun:"quantity,notnull"`
	DiscountPercent float64 `json:"discount_percent" bun:"discount_percent,notnull,default:0"`
	GstPercent      float64 `json:"gst_percent" bun:"gst_percent,notnull,default:0"`
	TotalPrice      float64 `json:"total_price" bun:"total_price,notnull"`
}
