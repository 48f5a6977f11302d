// Package domain holds the source-side purchasing accounts orders are
// attributed to. Accounts are referenced from orders by name, so renames
// do not rewrite historical orders.
package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("account not found")
	ErrInvalidName   = errors.New("account name is required")
	ErrDuplicateName = errors.New("account name already exists")
)

type Account struct {
	ID          string    `bson:"_id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Channel     string    `bson:"channel,omitempty" json:"channel,omitempty"`
	Notes       string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	LastUpdated time.Time `bson:"last_updated" json:"last_updated"`
}

type Repository interface {
	Insert(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, id string) (*Account, error)
	FindByName(ctx context.Context, name string) (*Account, error)
	List(ctx context.Context) ([]Account, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id string) error
}

type CreateRequest struct {
	Name    string `json:"name"`
	Channel string `json:"channel"`
	Notes   string `json:"notes"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Account, error)
	Get(ctx context.Context, id string) (*Account, error)
	List(ctx context.Context) ([]Account, error)
	Update(ctx context.Context, id string, req CreateRequest) (*Account, error)
	Delete(ctx context.Context, id string) error
}
