package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/customer/domain"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	log   *zap.Logger
	genID *snowflake.Node
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("customer.service"),
		genID: p.GenID,
		repo:  p.Repo,
	}
}

// AsDirectory exposes the customer store as the phone lookup the order
// service uses when composing notification links.
func AsDirectory(svc domain.Service) orderdomain.CustomerDirectory {
	return directory{svc: svc}
}

type directory struct {
	svc domain.Service
}

func (d directory) Phone(ctx context.Context, customerID string) (string, error) {
	c, err := d.svc.Get(ctx, customerID)
	if err != nil {
		return "", err
	}
	return c.Phone, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	tier := req.Tier
	if tier == "" {
		tier = pricing.TierRetail
	}

	now := time.Now().UTC()
	c := &domain.Customer{
		ID:          s.genID.Generate().String(),
		Name:        name,
		Phone:       strings.TrimSpace(req.Phone),
		Tier:        tier,
		Notes:       req.Notes,
		CreatedAt:   now,
		LastUpdated: now,
	}
	if err := s.repo.Insert(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) Update(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, domain.ErrInvalidName
	}
	c.LastUpdated = time.Now().UTC()
	if err := s.repo.Update(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
