package domain

import "errors"

var (
	ErrNotFound          = errors.New("order: not found")
	ErrDuplicateCode     = errors.New("order: code already exists")
	ErrInvalidStatus     = errors.New("order: invalid status")
	ErrBackwardStatus    = errors.New("order: status cannot move backward")
	ErrInvalidCode       = errors.New("order: invalid order code")
	ErrMissingCustomer   = errors.New("order: customer is required")
	ErrPersistence       = errors.New("order: persistence failure")
	ErrConsistency       = errors.New("order: derived-field consistency violation")
	ErrRecomputeInFlight = errors.New("order: recompute already in progress for this order")
)
