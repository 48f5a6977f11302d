// Package service caches the settings document in memory and hands out
// immutable snapshots of it.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
	settingsdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
)

type Params struct {
	fx.In

	Log  *zap.Logger
	Repo settingsdomain.Repository
}

type Service struct {
	log  *zap.Logger
	repo settingsdomain.Repository

	mu  sync.RWMutex
	doc *settingsdomain.Document
}

func New(p Params) settingsdomain.Service {
	return &Service{
		log:  p.Log.Named("settings.service"),
		repo: p.Repo,
	}
}

func (s *Service) Get(ctx context.Context) (*settingsdomain.Document, error) {
	doc, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	copied := *doc
	return &copied, nil
}

func (s *Service) Update(ctx context.Context, doc settingsdomain.Document) (*settingsdomain.Document, error) {
	if err := validateRules(doc.Rules); err != nil {
		return nil, err
	}
	doc.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, &doc); err != nil {
		return nil, err
	}

	// Swap the cached pointer; snapshots already handed out keep the old
	// document.
	s.mu.Lock()
	s.doc = &doc
	s.mu.Unlock()

	s.log.Info("settings updated", zap.Time("updated_at", doc.UpdatedAt))

	copied := doc
	return &copied, nil
}

func (s *Service) Rules(ctx context.Context) (pricing.Rules, error) {
	doc, err := s.current(ctx)
	if err != nil {
		return pricing.Rules{}, err
	}
	return doc.Rules.ToRules(), nil
}

func (s *Service) Templates(ctx context.Context) (settingsdomain.Templates, error) {
	doc, err := s.current(ctx)
	if err != nil {
		return settingsdomain.Templates{}, err
	}
	return doc.Templates, nil
}

func (s *Service) current(ctx context.Context) (*settingsdomain.Document, error) {
	s.mu.RLock()
	doc := s.doc
	s.mu.RUnlock()
	if doc != nil {
		return doc, nil
	}

	loaded, err := s.repo.Load(ctx)
	if errors.Is(err, settingsdomain.ErrNotLoaded) {
		loaded = defaultDocument()
		if saveErr := s.repo.Save(ctx, loaded); saveErr != nil {
			return nil, saveErr
		}
		s.log.Info("seeded default settings document")
	} else if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.doc = loaded
	s.mu.Unlock()
	return loaded, nil
}

func validateRules(r settingsdomain.RulesDoc) error {
	rates := []float64{
		r.Barry.Retail, r.Barry.WholesaleBelow, r.Barry.WholesaleAbove,
		r.Gawy.Retail, r.Gawy.WholesaleBelow, r.Gawy.WholesaleAbove,
	}
	for _, rate := range rates {
		if rate <= 0 {
			return settingsdomain.ErrInvalidRules
		}
	}
	if r.WholesaleThreshold < 0 || r.ExtraMultiplier < 0 || r.CouponRate < 0 || r.ShippingPerOrder < 0 {
		return settingsdomain.ErrInvalidRules
	}
	return nil
}

func defaultDocument() *settingsdomain.Document {
	return &settingsdomain.Document{
		ID: settingsdomain.DocumentID,
		Rules: settingsdomain.RulesDoc{
			Barry: settingsdomain.ChannelRatesDoc{
				Retail:         13.5,
				WholesaleBelow: 12.75,
				WholesaleAbove: 12.25,
			},
			Gawy: settingsdomain.ChannelRatesDoc{
				Retail:         15.5,
				WholesaleBelow: 14.5,
				WholesaleAbove: 14,
			},
			WholesaleThreshold: 1500,
			ExtraMultiplier:    2,
			CouponRate:         1,
			ShippingPerOrder:   50,
		},
		Templates: settingsdomain.Templates{
			InDistribution: "Hello {customerName}, your order {orderId} is out for distribution. Outstanding balance: {outstandingAmount} EGP.",
		},
		StatusNames: []string{
			string(orderdomain.StatusRequested),
			string(orderdomain.StatusOrderPlaced),
			string(orderdomain.StatusShippedToDestination),
			string(orderdomain.StatusDeliveredToDestination),
			string(orderdomain.StatusInDistribution),
			string(orderdomain.StatusShippedToClient),
		},
		ClientTypes: []string{string(pricing.TierRetail), string(pricing.TierWholesale)},
		OrderTypes:  []string{string(pricing.ChannelBarry), string(pricing.ChannelGawy)},
		UpdatedAt:   time.Now().UTC(),
	}
}
