package service

import (
	"context"
	"time"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/domain"
)

// NewOrderGateway adapts the order context for upload approval. Placeholder
// orders keep the referenced code rather than allocating a fresh one, so the
// operator finds the order under the code written on the proof.
func NewOrderGateway(svc orderdomain.Service, repo orderdomain.Repository) domain.OrderGateway {
	return orderGateway{svc: svc, repo: repo}
}

type orderGateway struct {
	svc  orderdomain.Service
	repo orderdomain.Repository
}

func (g orderGateway) ApplyPayment(ctx context.Context, code string, amountEGP float64) error {
	_, err := g.svc.ApplyPayment(ctx, code, amountEGP)
	return err
}

func (g orderGateway) CreatePlaceholder(ctx context.Context, code string, depositEGP float64) error {
	channel, ok := orderdomain.ChannelForCode(code)
	if !ok {
		return orderdomain.ErrInvalidCode
	}

	now := time.Now().UTC()
	o := &orderdomain.Order{
		Code:        code,
		Channel:     channel,
		Tier:        pricing.TierRetail,
		DepositEGP:  depositEGP,
		Status:      orderdomain.StatusRequested,
		CreatedAt:   now,
		LastUpdated: now,
	}
	return g.repo.Insert(ctx, o)
}
