package service

import (
	"context"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/domain"
	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

type memRepo struct {
	groups map[string]*domain.Group
}

func newMemRepo() *memRepo {
	return &memRepo{groups: map[string]*domain.Group{}}
}

func (r *memRepo) Insert(_ context.Context, g *domain.Group) error {
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *memRepo) FindByID(_ context.Context, id string) (*domain.Group, error) {
	g, ok := r.groups[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (r *memRepo) List(_ context.Context) ([]domain.Group, error) {
	out := make([]domain.Group, 0, len(r.groups))
	for _, g := range r.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (r *memRepo) Update(_ context.Context, g *domain.Group) error {
	if _, ok := r.groups[g.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *g
	r.groups[g.ID] = &cp
	return nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.groups[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.groups, id)
	return nil
}

type stubOrders struct {
	byCode map[string]*orderdomain.Order
}

func (s stubOrders) FindByCode(_ context.Context, code string) (*orderdomain.Order, error) {
	o, ok := s.byCode[code]
	if !ok {
		return nil, orderdomain.ErrNotFound
	}
	return o, nil
}

func newService(t *testing.T, repo domain.Repository, orders domain.OrderReader) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(Params{
		Log:    zap.NewNop(),
		GenID:  node,
		Repo:   repo,
		Orders: orders,
	})
}

func barryOrder(code string, pieces int) *orderdomain.Order {
	return &orderdomain.Order{Code: code, Channel: pricing.ChannelBarry, Pieces: pieces}
}

func TestCreateCombinesPieces(t *testing.T) {
	repo := newMemRepo()
	orders := stubOrders{byCode: map[string]*orderdomain.Order{
		"B-1": barryOrder("B-1", 3),
		"B-2": barryOrder("B-2", 5),
	}}
	svc := newService(t, repo, orders)

	g, err := svc.Create(context.Background(), domain.CreateRequest{
		Name:           "week 12 parcel",
		TrackingNumber: "TRK-9001",
		MemberCodes:    []string{"B-1", "B-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 8, g.CombinedPieces)
	assert.Equal(t, string(pricing.ChannelBarry), g.Channel)
	assert.Equal(t, []string{"B-1", "B-2"}, g.MemberCodes)
}

func TestCreateRejectsMixedChannels(t *testing.T) {
	repo := newMemRepo()
	gawy := &orderdomain.Order{Code: "G-1", Channel: pricing.ChannelGawy, Pieces: 2}
	orders := stubOrders{byCode: map[string]*orderdomain.Order{
		"B-1": barryOrder("B-1", 3),
		"G-1": gawy,
	}}
	svc := newService(t, repo, orders)

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		TrackingNumber: "TRK-9002",
		MemberCodes:    []string{"B-1", "G-1"},
	})
	assert.ErrorIs(t, err, domain.ErrMixedChannels)
	assert.Empty(t, repo.groups)
}

func TestCreateRejectsTooFewMembers(t *testing.T) {
	svc := newService(t, newMemRepo(), stubOrders{byCode: map[string]*orderdomain.Order{
		"B-1": barryOrder("B-1", 1),
	}})

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		TrackingNumber: "TRK-9003",
		MemberCodes:    []string{"B-1"},
	})
	assert.ErrorIs(t, err, domain.ErrTooFewMembers)
}

func TestCreateDeduplicatesMemberCodes(t *testing.T) {
	repo := newMemRepo()
	orders := stubOrders{byCode: map[string]*orderdomain.Order{
		"B-1": barryOrder("B-1", 3),
		"B-2": barryOrder("B-2", 5),
	}}
	svc := newService(t, repo, orders)

	g, err := svc.Create(context.Background(), domain.CreateRequest{
		TrackingNumber: "TRK-9007",
		MemberCodes:    []string{"B-1", "B-1", "B-2"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"B-1", "B-2"}, g.MemberCodes)
	assert.Equal(t, 8, g.CombinedPieces)

	// A single order repeated is still a one-member group.
	_, err = svc.Create(context.Background(), domain.CreateRequest{
		TrackingNumber: "TRK-9008",
		MemberCodes:    []string{"B-1", "B-1"},
	})
	assert.ErrorIs(t, err, domain.ErrTooFewMembers)
}

func TestCreateRejectsUnknownMember(t *testing.T) {
	svc := newService(t, newMemRepo(), stubOrders{byCode: map[string]*orderdomain.Order{
		"B-1": barryOrder("B-1", 1),
	}})

	_, err := svc.Create(context.Background(), domain.CreateRequest{
		TrackingNumber: "TRK-9004",
		MemberCodes:    []string{"B-1", "B-404"},
	})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestAddMemberUpdatesPiecesAndRejectsDuplicates(t *testing.T) {
	repo := newMemRepo()
	orders := stubOrders{byCode: map[string]*orderdomain.Order{
		"B-1": barryOrder("B-1", 3),
		"B-2": barryOrder("B-2", 5),
		"B-3": barryOrder("B-3", 4),
	}}
	svc := newService(t, repo, orders)

	g, err := svc.Create(context.Background(), domain.CreateRequest{
		TrackingNumber: "TRK-9005",
		MemberCodes:    []string{"B-1", "B-2"},
	})
	require.NoError(t, err)

	g, err = svc.AddMember(context.Background(), g.ID, "B-3")
	require.NoError(t, err)
	assert.Equal(t, 12, g.CombinedPieces)

	_, err = svc.AddMember(context.Background(), g.ID, "B-3")
	assert.ErrorIs(t, err, domain.ErrAlreadyMember)
}

func TestRemoveLastMemberDeletesGroup(t *testing.T) {
	repo := newMemRepo()
	orders := stubOrders{byCode: map[string]*orderdomain.Order{
		"B-1": barryOrder("B-1", 3),
		"B-2": barryOrder("B-2", 5),
	}}
	svc := newService(t, repo, orders)

	g, err := svc.Create(context.Background(), domain.CreateRequest{
		TrackingNumber: "TRK-9006",
		MemberCodes:    []string{"B-1", "B-2"},
	})
	require.NoError(t, err)

	g, err = svc.RemoveMember(context.Background(), g.ID, "B-1")
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, []string{"B-2"}, g.MemberCodes)
	assert.Equal(t, 5, g.CombinedPieces)

	gone, err := svc.RemoveMember(context.Background(), g.ID, "B-2")
	require.NoError(t, err)
	assert.Nil(t, gone)

	_, err = svc.Get(context.Background(), g.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
