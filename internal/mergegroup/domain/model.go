// Package domain models merged shipping groups: several orders consolidated
// under one tracking number so they travel as a single parcel.
package domain

import (
	"context"
	"errors"
	"time"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
)

var (
	ErrNotFound        = errors.New("merge group not found")
	ErrTooFewMembers   = errors.New("merge group needs at least two member orders")
	ErrMixedChannels   = errors.New("merge group members must share one channel")
	ErrMemberNotFound  = errors.New("member order not found")
	ErrAlreadyMember   = errors.New("order is already a member of the group")
	ErrInvalidTracking = errors.New("tracking number is required")
)

type Group struct {
	ID             string    `bson:"_id" json:"id"`
	Name           string    `bson:"name" json:"name"`
	TrackingNumber string    `bson:"tracking_number" json:"tracking_number"`
	Channel        string    `bson:"channel" json:"channel"`
	MemberCodes    []string  `bson:"member_codes" json:"member_codes"`
	CombinedPieces int       `bson:"combined_pieces" json:"combined_pieces"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	LastUpdated    time.Time `bson:"last_updated" json:"last_updated"`
}

func (g *Group) HasMember(code string) bool {
	for _, c := range g.MemberCodes {
		if c == code {
			return true
		}
	}
	return false
}

type Repository interface {
	Insert(ctx context.Context, g *Group) error
	FindByID(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context) ([]Group, error)
	Update(ctx context.Context, g *Group) error
	Delete(ctx context.Context, id string) error
}

// OrderReader is the slice of the order store the group service needs to
// validate membership. Satisfied by the order repository.
type OrderReader interface {
	FindByCode(ctx context.Context, code string) (*orderdomain.Order, error)
}

type CreateRequest struct {
	Name           string   `json:"name"`
	TrackingNumber string   `json:"tracking_number"`
	MemberCodes    []string `json:"member_codes"`
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Group, error)
	Get(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context) ([]Group, error)
	AddMember(ctx context.Context, id, code string) (*Group, error)
	// RemoveMember drops a member; removing the last member deletes the
	// group and returns nil.
	RemoveMember(ctx context.Context, id, code string) (*Group, error)
	Delete(ctx context.Context, id string) error
}
