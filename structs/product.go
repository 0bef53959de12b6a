package structs

import "time"

type ProductRequest struct {
	Name       string     `json:"name" validate:"required,min=1,max=100"`
	Quantity   int        `json:"quantity" validate:"gte=0"`
	PackSize   *int       `json:"pack_size,omitempty" validate:"omitempty,gt=0"`
	GstPercent int        `json:"gst_percent" validate:"gte=0,lte=100"`
	Expiry     *time.Time `json:"expiry,omitempty"`
	Batch      string     `json:"batch,omitempty" validate:"omitempty,max=12"`
	MRP        float64    `json:"mrp" validate:"required,gt=0"`
	Unit       string     `json:"unit,omitempty" validate:"omitempty,max=20"`
}

// ProductPatch carries one optional field per mutable product column.
// Applied field-by-field; nil fields are untouched.
type ProductPatch struct {
	Name       *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Quantity   *int       `json:"quantity,omitempty" validate:"omitempty,gte=0"`
	PackSize   *int       `json:"pack_size,omitempty" validate:"omitempty,gt=0"`
	GstPercent *int       `json:"gst_percent,omitempty" validate:"omitempty,gte=0,lte=100"`
	Expiry     *time.Time `json:"expiry,omitempty"`
	Batch      *string    `json:"batch,omitempty" validate:"omitempty,max=12"`
	MRP        *float64   `json:"mrp,omitempty" validate:"omitempty,gt=0"`
	Unit       *string    `json:"unit,omitempty" validate:"omitempty,max=20"`
}
