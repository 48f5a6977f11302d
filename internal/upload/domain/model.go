// Package domain models payment-proof uploads: screenshots of bank or wallet
// transfers an operator reviews before the amount is credited to an order.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

var (
	ErrNotFound        = errors.New("upload not found")
	ErrNoImages        = errors.New("upload needs at least one image")
	ErrInvalidAmount   = errors.New("upload amount must be positive")
	ErrMissingOrderRef = errors.New("upload order reference is required")
	ErrAlreadyReviewed = errors.New("upload already reviewed")
)

type Status string

const (
	StatusUnderApproval Status = "under_approval"
	StatusApproved      Status = "approved"
	StatusRejected      Status = "rejected"
)

type Upload struct {
	ID        snowflake.ID      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	OrderCode string            `json:"order_code" gorm:"type:varchar(32);index;not null"`
	ImageURLs datatypes.JSON    `json:"image_urls" gorm:"type:jsonb"`
	AmountEGP float64           `json:"amount_egp" gorm:"not null"`
	Status    Status            `json:"status" gorm:"type:varchar(20);index"`
	Metadata  datatypes.JSONMap `json:"metadata" gorm:"type:jsonb;default:'{}'"`
	Reviewed  *time.Time        `json:"reviewed_at"`
	CreatedAt time.Time         `json:"created_at" gorm:"not null"`
	UpdatedAt time.Time         `json:"updated_at" gorm:"not null"`
}

func (Upload) TableName() string { return "uploads" }

type ListFilter struct {
	Status    Status `form:"status"`
	OrderCode string `form:"order_code"`
}

type Repository interface {
	Insert(ctx context.Context, u *Upload) error
	FindByID(ctx context.Context, id snowflake.ID) (*Upload, error)
	List(ctx context.Context, filter ListFilter) ([]Upload, error)
	Update(ctx context.Context, u *Upload) error
}

// OrderGateway is what approval needs from the order side: credit the
// payment, or create a placeholder order when the referenced code does not
// exist yet.
type OrderGateway interface {
	ApplyPayment(ctx context.Context, code string, amountEGP float64) error
	CreatePlaceholder(ctx context.Context, code string, depositEGP float64) error
}

type CreateRequest struct {
	OrderCode string         `json:"order_code"`
	ImageURLs []string       `json:"image_urls"`
	AmountEGP float64        `json:"amount_egp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Upload, error)
	Get(ctx context.Context, id snowflake.ID) (*Upload, error)
	List(ctx context.Context, filter ListFilter) ([]Upload, error)
	Approve(ctx context.Context, id snowflake.ID) (*Upload, error)
	Reject(ctx context.Context, id snowflake.ID, reason string) (*Upload, error)
}
