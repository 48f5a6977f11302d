package domain

import "context"

// CustomerDirectory resolves the contact number used when composing
// notification deep links. Implemented by the customer context; optional
// so the order service still works when no customer store is wired.
type CustomerDirectory interface {
	Phone(ctx context.Context, customerID string) (string, error)
}
