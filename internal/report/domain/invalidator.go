package domain

import "context"

// Invalidator drops cached report aggregates after an order mutation. The
// order service calls it best-effort; reports tolerate a short staleness
// window anyway via TTL.
type Invalidator interface {
	InvalidateOrders(ctx context.Context)
}
