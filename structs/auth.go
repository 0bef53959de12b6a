package structs

import (
	"time"

	"github.com/google/uuid"
)

type ArgonParams struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen uint32
}

type AuthClaims struct {
	Sub   uuid.UUID `json:"sub"`
	Phone string    `json:"phone"`
	Iat   time.Time `json:"iat"`
	Exp   time.Time `json:"exp"`
	Jti   uuid.UUID `json:"jti"`
}

type AuthRequest struct {
	Phone    string `json:"phone" validate:"required,min=9,max=20"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Phone    string  `json:"phone" validate:"required,min=9,max=20"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Password string  `json:"password" validate:"required,min=6,max=100"`
	Address  string  `json:"address,omitempty" validate:"omitempty,max=200"`
	GstNo    string  `json:"gst_no,omitempty" validate:"omitempty,max=15"`
}

type OTPRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type OTPVerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// UserPatch carries one optional field per mutable user column.
// Nil means "leave unchanged".
type UserPatch struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Address *string `json:"address,omitempty" validate:"omitempty,max=200"`
	GstNo   *string `json:"gst_no,omitempty" validate:"omitempty,max=15"`
}
