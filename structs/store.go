package structs

type StoreRequest struct {
	PublishToken string  `json:"publish_token" validate:"required"`
	Name         string  `json:"name" validate:"required,min=2,max=100"`
	Owner        string  `json:"owner" validate:"required,min=2,max=150"`
	Phone        string  `json:"phone" validate:"required,min=9,max=20"`
	TelCode      string  `json:"tel_code,omitempty" validate:"omitempty,max=5"`
	Address      string  `json:"address,omitempty" validate:"omitempty,max=200"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	GstNo        string  `json:"gst_no,omitempty" validate:"omitempty,max=50"`
}

// StorePatch carries one optional field per mutable store column.
type StorePatch struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Owner   *string `json:"owner,omitempty" validate:"omitempty,min=2,max=150"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,min=9,max=20"`
	TelCode *string `json:"tel_code,omitempty" validate:"omitempty,max=5"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	GstNo   *string `json:"gst_no,omitempty" validate:"omitempty,max=50"`
}
