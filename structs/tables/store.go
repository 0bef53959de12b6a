package tables

import (
	"time"

	"github.com/google/uuid"
)

type Store struct {
	tableName struct{}  `bun:"table:stores,alias:s"`
	Id        uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	UserId    uuid.UUID `json:"user_id" bun:"user_id,notnull,type:uuid"`
	Name      string    `json:"name" bun:"name,notnull"`
	Owner     string    `json:"owner" bun:"owner,notnull"`
	Phone     string    `json:"phone,omitempty" bun:"phone"`
	TelCode   string    `json:"tel_code,omitempty" bun:"tel_code,notnull,default:'+91'"`
	Address   string    `json:"address,omitempty" bun:"address"`
	Email     *string   `json:"email,omitempty" bun:"email,nullzero"`
	GstNo     string    `json:"gst_no,omitempty" bun:"gst_no"`
	CreatedAt time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt time.Time `json:"updated_at" bun:"updated_at,notnull,default:now()"`

	Products []*Product `json:"products,omitempty" bun:"rel:has-many,join:id=store_id"`
	Bills    []*Bill    `json:"bills,omitempty" bun:"rel:has-many,join:id=store_id"`
}

// StoreSummary is a store row extended with its product count for list views.
type StoreSummary struct {
	Store         `bun:",extend"`
	TotalProducts int `json:"total_products" bun:"total_products"`
}
