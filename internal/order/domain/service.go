package domain

import (
	"context"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

// CreateRequest carries the raw fields for a new order. Derived fields are
// always computed server-side.
type CreateRequest struct {
	Channel      pricing.Channel `json:"channel"`
	Tier         pricing.Tier    `json:"tier"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	AccountName  string          `json:"account_name"`

	GrossSource          float64 `json:"gross_source"`
	Pieces               int     `json:"pieces"`
	Discount1            float64 `json:"discount1"`
	Discount2            float64 `json:"discount2"`
	Discount3            float64 `json:"discount3"`
	Coupon               float64 `json:"coupon"`
	PaidToSource         float64 `json:"paid_to_source"`
	ExtraSource          float64 `json:"extra_source"`
	LossSource           float64 `json:"loss_source"`
	DepositEGP           float64 `json:"deposit_egp"`
	PaidAfterDeliveryEGP float64 `json:"paid_after_delivery_egp"`

	UploadID string `json:"upload_id,omitempty"`
}

// Patch is a partial raw-field edit. Nil fields are left untouched. Any
// non-nil field triggers a full derived-field recompute.
type Patch struct {
	Tier         *pricing.Tier `json:"tier,omitempty"`
	CustomerID   *string       `json:"customer_id,omitempty"`
	CustomerName *string       `json:"customer_name,omitempty"`
	AccountName  *string       `json:"account_name,omitempty"`

	GrossSource          *float64 `json:"gross_source,omitempty"`
	Pieces               *int     `json:"pieces,omitempty"`
	Discount1            *float64 `json:"discount1,omitempty"`
	Discount2            *float64 `json:"discount2,omitempty"`
	Discount3            *float64 `json:"discount3,omitempty"`
	Coupon               *float64 `json:"coupon,omitempty"`
	PaidToSource         *float64 `json:"paid_to_source,omitempty"`
	ExtraSource          *float64 `json:"extra_source,omitempty"`
	LossSource           *float64 `json:"loss_source,omitempty"`
	DepositEGP           *float64 `json:"deposit_egp,omitempty"`
	PaidAfterDeliveryEGP *float64 `json:"paid_after_delivery_egp,omitempty"`
}

// StatusChange is the result of a workflow transition. NotificationLink is
// set only when the transition composed an outbound message (entry into
// distribution); sending it is the operator's action, not the service's.
type StatusChange struct {
	Order            *Order `json:"order"`
	NotificationLink string `json:"notification_link,omitempty"`
}

// BatchResult summarizes a bulk operation. Failures never roll back the
// items that already succeeded.
type BatchResult struct {
	Succeeded int               `json:"succeeded"`
	Failed    int               `json:"failed"`
	Errors    map[string]string `json:"errors,omitempty"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Order, error)
	Get(ctx context.Context, code string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, error)
	Update(ctx context.Context, code string, patch Patch) (*Order, error)
	ChangeStatus(ctx context.Context, code string, status Status) (*StatusChange, error)
	ApplyPayment(ctx context.Context, code string, amountEGP float64) (*Order, error)
	Delete(ctx context.Context, code string) error
	BulkDelete(ctx context.Context, codes []string) BatchResult
	BulkPlace(ctx context.Context, codes []string, status Status) BatchResult
}
