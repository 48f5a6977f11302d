// Package domain holds the customer records behind order intake.
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

var (
	ErrNotFound    = errors.New("customer: not found")
	ErrInvalidName = errors.New("customer: name is required")
)

type Customer struct {
	ID          string       `bson:"_id" json:"id"`
	Name        string       `bson:"name" json:"name"`
	Phone       string       `bson:"phone" json:"phone"`
	Tier        pricing.Tier `bson:"tier" json:"tier"`
	Notes       string       `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time    `bson:"created_at" json:"created_at"`
	LastUpdated time.Time    `bson:"last_updated" json:"last_updated"`
}

type Repository interface {
	Insert(ctx context.Context, c *Customer) error
	FindByID(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name  string       `json:"name"`
	Phone string       `json:"phone"`
	Tier  pricing.Tier `json:"tier"`
	Notes string       `json:"notes"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Customer, error)
	Get(ctx context.Context, id string) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, c Customer) (*Customer, error)
	Delete(ctx context.Context, id string) error
}
