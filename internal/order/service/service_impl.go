// Package service implements the order workflow and the recompute-on-edit
// reconciliation path. Every raw-field change routes through here so that
// derived fields are recomputed exactly once, against one pinned rules
// snapshot, and persisted as a single document merge.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/notify"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
	reportdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/report/domain"
	settingsdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
)

type Params struct {
	fx.In

	Log       *zap.Logger
	Repo      domain.Repository
	Settings  settingsdomain.Service
	Customers domain.CustomerDirectory `optional:"true"`
	Reports   reportdomain.Invalidator `optional:"true"`
}

type Service struct {
	log       *zap.Logger
	repo      domain.Repository
	settings  settingsdomain.Service
	customers domain.CustomerDirectory
	reports   reportdomain.Invalidator

	// inFlight guards against a second recompute for the same order
	// starting before the prior persistence call resolves.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

func New(p Params) domain.Service {
	return &Service{
		log:       p.Log.Named("order.service"),
		repo:      p.Repo,
		settings:  p.Settings,
		customers: p.Customers,
		reports:   p.Reports,
		inFlight:  make(map[string]struct{}),
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Order, error) {
	if !req.Channel.Valid() || !req.Tier.Valid() {
		return nil, pricing.ErrInvalidClassification
	}
	if strings.TrimSpace(req.CustomerID) == "" && strings.TrimSpace(req.CustomerName) == "" {
		return nil, domain.ErrMissingCustomer
	}

	rules, err := s.settings.Rules(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &domain.Order{
		CustomerID:           req.CustomerID,
		CustomerName:         req.CustomerName,
		AccountName:          req.AccountName,
		Channel:              req.Channel,
		Tier:                 req.Tier,
		GrossSource:          req.GrossSource,
		Pieces:               req.Pieces,
		Discount1:            req.Discount1,
		Discount2:            req.Discount2,
		Discount3:            req.Discount3,
		Coupon:               req.Coupon,
		PaidToSource:         req.PaidToSource,
		ExtraSource:          req.ExtraSource,
		LossSource:           req.LossSource,
		DepositEGP:           req.DepositEGP,
		PaidAfterDeliveryEGP: req.PaidAfterDeliveryEGP,
		Status:               domain.StatusRequested,
		UploadID:             req.UploadID,
		CreatedAt:            now,
		LastUpdated:          now,
	}

	fin, err := pricing.Calculate(o.PricingInput(), rules)
	if err != nil {
		return nil, err
	}
	o.ApplyFinancials(fin)

	seq, err := s.repo.NextSequence(ctx, req.Channel)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}
	o.Code = domain.FormatCode(req.Channel, seq)

	if err := s.repo.Insert(ctx, o); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	s.log.Info("order created",
		zap.String("code", o.Code),
		zap.String("channel", string(o.Channel)),
		zap.String("tier", string(o.Tier)),
	)
	s.invalidateReports(ctx)
	return o, nil
}

func (s *Service) Get(ctx context.Context, code string) (*domain.Order, error) {
	return s.repo.FindByCode(ctx, code)
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	domain.SortByCode(orders)
	return orders, nil
}

// Update applies a partial raw-field edit, recomputes every derived field
// against one rules snapshot, and persists everything in a single merge.
// On any failure the stored order is left exactly as it was.
func (s *Service) Update(ctx context.Context, code string, patch domain.Patch) (*domain.Order, error) {
	release, err := s.acquire(code)
	if err != nil {
		return nil, err
	}
	defer release()

	current, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	rules, err := s.settings.Rules(ctx)
	if err != nil {
		return nil, err
	}

	next := *current
	applyPatch(&next, patch)

	fin, err := pricing.Calculate(next.PricingInput(), rules)
	if err != nil {
		return nil, err
	}
	next.ApplyFinancials(fin)

	if next.OutstandingEGP < 0 {
		// The calculator clamps outstanding at zero; reaching here means a
		// broken invariant, not bad user input.
		return nil, domain.ErrConsistency
	}

	next.LastUpdated = time.Now().UTC()

	updated, err := s.repo.UpdateFields(ctx, code, reconcileFields(&next))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	s.invalidateReports(ctx)
	return updated, nil
}

func (s *Service) ChangeStatus(ctx context.Context, code string, status domain.Status) (*domain.StatusChange, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	current, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransition(status) {
		return nil, domain.ErrBackwardStatus
	}

	fields := map[string]any{
		"status":       status,
		"last_updated": time.Now().UTC(),
	}
	// The delivery timestamp is stamped once; later edits and repeated
	// transitions must not overwrite it. The retention job keys off it.
	if status == domain.StatusDeliveredToDestination && current.DeliveredAt == nil {
		fields["delivered_at"] = time.Now().UTC()
	}

	updated, err := s.repo.UpdateFields(ctx, code, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	change := &domain.StatusChange{Order: updated}
	if status == domain.StatusInDistribution {
		change.NotificationLink = s.composeDistributionLink(ctx, updated)
	}

	s.log.Info("order status changed",
		zap.String("code", code),
		zap.String("from", string(current.Status)),
		zap.String("to", string(status)),
	)
	s.invalidateReports(ctx)
	return change, nil
}

func (s *Service) ApplyPayment(ctx context.Context, code string, amountEGP float64) (*domain.Order, error) {
	if amountEGP <= 0 {
		return nil, pricing.ErrInvalidOrderInput
	}

	current, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	deposit := current.DepositEGP + amountEGP
	return s.Update(ctx, code, domain.Patch{DepositEGP: &deposit})
}

func (s *Service) Delete(ctx context.Context, code string) error {
	if err := s.repo.Delete(ctx, code); err != nil {
		return err
	}
	s.invalidateReports(ctx)
	return nil
}

func (s *Service) BulkDelete(ctx context.Context, codes []string) domain.BatchResult {
	result := domain.BatchResult{Errors: map[string]string{}}
	for _, code := range codes {
		if err := s.repo.Delete(ctx, code); err != nil {
			result.Failed++
			result.Errors[code] = err.Error()
			continue
		}
		result.Succeeded++
	}
	if result.Succeeded > 0 {
		s.invalidateReports(ctx)
	}
	return result
}

func (s *Service) BulkPlace(ctx context.Context, codes []string, status domain.Status) domain.BatchResult {
	result := domain.BatchResult{Errors: map[string]string{}}
	for _, code := range codes {
		if _, err := s.ChangeStatus(ctx, code, status); err != nil {
			result.Failed++
			result.Errors[code] = err.Error()
			continue
		}
		result.Succeeded++
	}
	return result
}

func (s *Service) composeDistributionLink(ctx context.Context, o *domain.Order) string {
	templates, err := s.settings.Templates(ctx)
	if err != nil {
		s.log.Warn("notification template unavailable", zap.Error(err))
		return ""
	}

	phone := ""
	if s.customers != nil && o.CustomerID != "" {
		phone, err = s.customers.Phone(ctx, o.CustomerID)
		if err != nil {
			s.log.Warn("customer phone lookup failed",
				zap.String("customer_id", o.CustomerID), zap.Error(err))
		}
	}

	return notify.WhatsAppLink(phone, templates.InDistribution, notify.LinkData{
		CustomerName:   o.CustomerName,
		OrderCode:      o.Code,
		OutstandingEGP: o.OutstandingEGP,
	})
}

func (s *Service) invalidateReports(ctx context.Context) {
	if s.reports != nil {
		s.reports.InvalidateOrders(ctx)
	}
}

func (s *Service) acquire(code string) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[code]; busy {
		return nil, domain.ErrRecomputeInFlight
	}
	s.inFlight[code] = struct{}{}
	return func() {
		s.mu.Lock()
		delete(s.inFlight, code)
		s.mu.Unlock()
	}, nil
}

func applyPatch(o *domain.Order, p domain.Patch) {
	if p.Tier != nil {
		o.Tier = *p.Tier
	}
	if p.CustomerID != nil {
		o.CustomerID = *p.CustomerID
	}
	if p.CustomerName != nil {
		o.CustomerName = *p.CustomerName
	}
	if p.AccountName != nil {
		o.AccountName = *p.AccountName
	}
	if p.GrossSource != nil {
		o.GrossSource = *p.GrossSource
	}
	if p.Pieces != nil {
		o.Pieces = *p.Pieces
	}
	if p.Discount1 != nil {
		o.Discount1 = *p.Discount1
	}
	if p.Discount2 != nil {
		o.Discount2 = *p.Discount2
	}
	if p.Discount3 != nil {
		o.Discount3 = *p.Discount3
	}
	if p.Coupon != nil {
		o.Coupon = *p.Coupon
	}
	if p.PaidToSource != nil {
		o.PaidToSource = *p.PaidToSource
	}
	if p.ExtraSource != nil {
		o.ExtraSource = *p.ExtraSource
	}
	if p.LossSource != nil {
		o.LossSource = *p.LossSource
	}
	if p.DepositEGP != nil {
		o.DepositEGP = *p.DepositEGP
	}
	if p.PaidAfterDeliveryEGP != nil {
		o.PaidAfterDeliveryEGP = *p.PaidAfterDeliveryEGP
	}
}

// reconcileFields builds the single partial-field merge persisted after a
// recompute: all raw inputs, all derived fields, and the bookkeeping stamp.
func reconcileFields(o *domain.Order) map[string]any {
	return map[string]any{
		"tier":                    o.Tier,
		"customer_id":             o.CustomerID,
		"customer_name":           o.CustomerName,
		"account_name":            o.AccountName,
		"gross_source":            o.GrossSource,
		"pieces":                  o.Pieces,
		"discount1":               o.Discount1,
		"discount2":               o.Discount2,
		"discount3":               o.Discount3,
		"coupon":                  o.Coupon,
		"paid_to_source":          o.PaidToSource,
		"extra_source":            o.ExtraSource,
		"loss_source":             o.LossSource,
		"deposit_egp":             o.DepositEGP,
		"paid_after_delivery_egp": o.PaidAfterDeliveryEGP,
		"net_source":              o.NetSource,
		"rate":                    o.Rate,
		"base_egp":                o.BaseEGP,
		"extra_egp":               o.ExtraEGP,
		"total_egp":               o.TotalEGP,
		"outstanding_egp":         o.OutstandingEGP,
		"last_updated":            o.LastUpdated,
	}
}
