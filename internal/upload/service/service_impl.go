package service

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/domain"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Orders domain.OrderGateway
}

type Service struct {
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	orders domain.OrderGateway
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("upload.service"),
		genID:  p.GenID,
		repo:   p.Repo,
		orders: p.Orders,
	}
}

// ObjectKey names a stored proof image. Keys are random so two uploads of
// the same file never collide in the bucket.
func ObjectKey(fileName string) string {
	return "uploads/" + uuid.NewString() + strings.ToLower(path.Ext(fileName))
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Upload, error) {
	code := strings.TrimSpace(req.OrderCode)
	if code == "" {
		return nil, domain.ErrMissingOrderRef
	}
	if len(req.ImageURLs) == 0 {
		return nil, domain.ErrNoImages
	}
	if req.AmountEGP <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	urls, err := json.Marshal(req.ImageURLs)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u := &domain.Upload{
		ID:        s.genID.Generate(),
		OrderCode: code,
		ImageURLs: datatypes.JSON(urls),
		AmountEGP: req.AmountEGP,
		Status:    domain.StatusUnderApproval,
		Metadata:  datatypes.JSONMap(req.Metadata),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("payment proof received",
		zap.String("upload_id", u.ID.String()),
		zap.String("order_code", u.OrderCode),
		zap.Float64("amount_egp", u.AmountEGP))
	return u, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*domain.Upload, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filter domain.ListFilter) ([]domain.Upload, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) Approve(ctx context.Context, id snowflake.ID) (*domain.Upload, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Status != domain.StatusUnderApproval {
		return nil, domain.ErrAlreadyReviewed
	}

	err = s.orders.ApplyPayment(ctx, u.OrderCode, u.AmountEGP)
	if errors.Is(err, orderdomain.ErrNotFound) {
		// Proof arrived before the order was entered; create the order
		// now with the payment as its deposit.
		err = s.orders.CreatePlaceholder(ctx, u.OrderCode, u.AmountEGP)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	u.Status = domain.StatusApproved
	u.Reviewed = &now
	u.UpdatedAt = now
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("payment proof approved",
		zap.String("upload_id", u.ID.String()),
		zap.String("order_code", u.OrderCode))
	return u, nil
}

func (s *Service) Reject(ctx context.Context, id snowflake.ID, reason string) (*domain.Upload, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u.Status != domain.StatusUnderApproval {
		return nil, domain.ErrAlreadyReviewed
	}

	now := time.Now().UTC()
	u.Status = domain.StatusRejected
	u.Reviewed = &now
	u.UpdatedAt = now
	if reason != "" {
		if u.Metadata == nil {
			u.Metadata = datatypes.JSONMap{}
		}
		u.Metadata["rejection_reason"] = reason
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
