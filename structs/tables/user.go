package tables

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	tableName    struct{}  `bun:"table:users,alias:u"`
	Id           uuid.UUID `json:"id" bun:"id,pk,type:uuid,default:gen_random_uuid()"`
	Name         string    `json:"name" bun:"name,notnull"`
	Phone        string    `json:"phone" bun:"phone,unique,notnull"`
	Email        *string   `json:"email,omitempty" bun:"email,unique,nullzero"`
	PasswordHash string    `json:"-" bun:"password_hash,notnull"`
	Address      string    `json:"address,omitempty" bun:"address"`
	GstNo        string    `json:"gst_no,omitempty" bun:"gst_no"`
	CreatedAt    time.Time `json:"created_at" bun:"created_at,notnull,default:now()"`
	UpdatedAt    time.Time `json:"updated_at" bun:"updated_at,notnull,default:now()"`

	Stores []*Store `json:"stores,omitempty" bun:"rel:has-many,join:id=user_id"`
}
