package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/domain"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
)

type Params struct {
	fx.In

	Log    *zap.Logger
	GenID  *snowflake.Node
	Repo   domain.Repository
	Orders domain.OrderReader
}

type Service struct {
	log    *zap.Logger
	genID  *snowflake.Node
	repo   domain.Repository
	orders domain.OrderReader
}

func New(p Params) domain.Service {
	return &Service{
		log:    p.Log.Named("mergegroup.service"),
		genID:  p.GenID,
		repo:   p.Repo,
		orders: p.Orders,
	}
}

// dedupeCodes drops repeated codes while keeping first-occurrence order, so
// an order listed twice never double-counts its pieces.
func dedupeCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// resolveMembers loads every member order, checks they share one channel and
// returns the channel plus the combined piece count.
func (s *Service) resolveMembers(ctx context.Context, codes []string) (string, int, error) {
	channel := ""
	pieces := 0
	for _, code := range codes {
		o, err := s.orders.FindByCode(ctx, code)
		if errors.Is(err, orderdomain.ErrNotFound) {
			return "", 0, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, code)
		}
		if err != nil {
			return "", 0, err
		}
		if channel == "" {
			channel = string(o.Channel)
		} else if channel != string(o.Channel) {
			return "", 0, domain.ErrMixedChannels
		}
		pieces += o.Pieces
	}
	return channel, pieces, nil
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Group, error) {
	if strings.TrimSpace(req.TrackingNumber) == "" {
		return nil, domain.ErrInvalidTracking
	}
	codes := dedupeCodes(req.MemberCodes)
	if len(codes) < 2 {
		return nil, domain.ErrTooFewMembers
	}

	channel, pieces, err := s.resolveMembers(ctx, codes)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	g := &domain.Group{
		ID:             s.genID.Generate().String(),
		Name:           strings.TrimSpace(req.Name),
		TrackingNumber: strings.TrimSpace(req.TrackingNumber),
		Channel:        channel,
		MemberCodes:    codes,
		CombinedPieces: pieces,
		CreatedAt:      now,
		LastUpdated:    now,
	}
	if err := s.repo.Insert(ctx, g); err != nil {
		return nil, err
	}
	s.log.Info("merge group created",
		zap.String("group_id", g.ID),
		zap.String("tracking", g.TrackingNumber),
		zap.Int("members", len(g.MemberCodes)))
	return g, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Group, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.Group, error) {
	return s.repo.List(ctx)
}

func (s *Service) AddMember(ctx context.Context, id, code string) (*domain.Group, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if g.HasMember(code) {
		return nil, domain.ErrAlreadyMember
	}

	o, err := s.orders.FindByCode(ctx, code)
	if errors.Is(err, orderdomain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, code)
	}
	if err != nil {
		return nil, err
	}
	if string(o.Channel) != g.Channel {
		return nil, domain.ErrMixedChannels
	}

	g.MemberCodes = append(g.MemberCodes, code)
	g.CombinedPieces += o.Pieces
	g.LastUpdated = time.Now().UTC()
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) RemoveMember(ctx context.Context, id, code string) (*domain.Group, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !g.HasMember(code) {
		return nil, fmt.Errorf("%w: %s", domain.ErrMemberNotFound, code)
	}

	members := make([]string, 0, len(g.MemberCodes)-1)
	for _, c := range g.MemberCodes {
		if c != code {
			members = append(members, c)
		}
	}
	if len(members) == 0 {
		if err := s.repo.Delete(ctx, id); err != nil {
			return nil, err
		}
		s.log.Info("merge group emptied and removed", zap.String("group_id", id))
		return nil, nil
	}

	pieces := g.CombinedPieces
	if o, err := s.orders.FindByCode(ctx, code); err == nil {
		pieces -= o.Pieces
	}
	if pieces < 0 {
		pieces = 0
	}

	g.MemberCodes = members
	g.CombinedPieces = pieces
	g.LastUpdated = time.Now().UTC()
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
