package tables

import (
	"time"

	"github.com/google/uuid"
)

// Product is a single inventory line in a store. Name and batch carry a
// composite trigram GIN index (see database/migrations.go) so both the
// substring and the fuzzy search paths stay cheap on large inventories.
type Product struct {
	tableName  struct{}   `bun:"table:products,alias:p"`
	Id         uuid.UUID  `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	StoreId    uuid.UUID  `json:"store_id" bun:"store_id,notnull,type:uuid"`
	Name       string     `json:"name" bun:"name,notnull"`
	Quantity   int        `json:"quantity" bun:"quantity,notnull,default:0"`
	PackSize   *int       `json:"pack_size,omitempty" bun:"pack_size,nullzero"`
	GstPercent int        `json:"gst_percent" bun:"gst_percent,notnull"`
	Expiry     *time.Time `json:"expiry,omitempty" bun:"expiry,nullzero"`
	Batch      string     `json:"batch,omitempty" bun:"batch,type:varchar(12)"`
	MRP        float64    `json:"mrp" bun:"mrp,notnull"`
	Unit       string     `json:"unit" bun:"unit,notnull,default:'units'"`
	CreatedAt  time.Time  `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt  time.Time  `json:"updated_at" bun:"updated_at,notnull,default:now()"`
}
