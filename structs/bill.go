package structs

import (
	"storebill_server/structs/tables"

	"github.com/google/uuid"
)

type BillLineRequest struct {
	ProductId       uuid.UUID `json:"product_id" validate:"required"`
	Quantity        int       `json:"quantity" validate:"required,min=1"`
	DiscountPercent float64   `json:"discount_percent" validate:"gte=0,lte=100"`
	GstPercent      float64   `json:"gst_percent" validate:"gte=0,lte=100"`
}

type BillRequest struct {
	CustomerName string            `json:"customer_name,omitempty" validate:"omitempty,max=100"`
	DoctorName   string            `json:"doctor_name,omitempty" validate:"omitempty,max=100"`
	Items        []BillLineRequest `json:"items" validate:"required,min=1,dive"`
}

// BillResponse is a bill with its items and the derived grand total.
// The total is never stored; it is summed from the item totals on read.
type BillResponse struct {
	*tables.Bill
	Total float64 `json:"total"`
}
