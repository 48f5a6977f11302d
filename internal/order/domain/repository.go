package domain

import (
	"context"
	"time"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

// ListFilter narrows List results. Zero values mean "no constraint".
type ListFilter struct {
	Channel      pricing.Channel
	Status       Status
	CustomerID   string
	AccountName  string
	CreatedAfter time.Time
	CreatedUntil time.Time
}

type Repository interface {
	// NextSequence atomically allocates the next order number for a channel.
	NextSequence(ctx context.Context, channel pricing.Channel) (int64, error)

	Insert(ctx context.Context, o *Order) error
	FindByCode(ctx context.Context, code string) (*Order, error)
	List(ctx context.Context, filter ListFilter) ([]Order, error)

	// UpdateFields applies a partial-field merge to one order document and
	// returns the updated document. The merge is atomic per document.
	UpdateFields(ctx context.Context, code string, fields map[string]any) (*Order, error)

	Delete(ctx context.Context, code string) error

	// DeleteDeliveredBefore removes orders whose delivery timestamp is older
	// than the cutoff. Used by the retention job.
	DeleteDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
