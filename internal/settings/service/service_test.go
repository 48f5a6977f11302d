package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
	settingsdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
)

type stubRepo struct {
	doc   *settingsdomain.Document
	saves int
}

func (r *stubRepo) Load(_ context.Context) (*settingsdomain.Document, error) {
	if r.doc == nil {
		return nil, settingsdomain.ErrNotLoaded
	}
	cp := *r.doc
	return &cp, nil
}

func (r *stubRepo) Save(_ context.Context, doc *settingsdomain.Document) error {
	cp := *doc
	r.doc = &cp
	r.saves++
	return nil
}

func TestSeedsDefaultsOnFirstLoad(t *testing.T) {
	repo := &stubRepo{}
	svc := New(Params{Log: zap.NewNop(), Repo: repo})

	rules, err := svc.Rules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.saves)
	assert.Equal(t, "13.5", rules.Barry.Retail.String())
	assert.Equal(t, "1500", rules.WholesaleThreshold.String())

	tpl, err := svc.Templates(context.Background())
	require.NoError(t, err)
	assert.Contains(t, tpl.InDistribution, "{customerName}")
}

func TestSeededEnumerableLists(t *testing.T) {
	repo := &stubRepo{}
	svc := New(Params{Log: zap.NewNop(), Repo: repo})

	doc, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{
		string(orderdomain.StatusRequested),
		string(orderdomain.StatusOrderPlaced),
		string(orderdomain.StatusShippedToDestination),
		string(orderdomain.StatusDeliveredToDestination),
		string(orderdomain.StatusInDistribution),
		string(orderdomain.StatusShippedToClient),
	}, doc.StatusNames)
	assert.Equal(t, []string{string(pricing.TierRetail), string(pricing.TierWholesale)}, doc.ClientTypes)
	assert.Equal(t, []string{string(pricing.ChannelBarry), string(pricing.ChannelGawy)}, doc.OrderTypes)
}

func TestUpdateSwapsSnapshot(t *testing.T) {
	repo := &stubRepo{}
	svc := New(Params{Log: zap.NewNop(), Repo: repo})

	doc, err := svc.Get(context.Background())
	require.NoError(t, err)

	before, err := svc.Rules(context.Background())
	require.NoError(t, err)

	doc.Rules.Barry.Retail = 14.25
	_, err = svc.Update(context.Background(), *doc)
	require.NoError(t, err)

	after, err := svc.Rules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "14.25", after.Barry.Retail.String())

	// The snapshot taken before the update is untouched.
	assert.Equal(t, "13.5", before.Barry.Retail.String())
}

func TestUpdateRejectsInvalidRules(t *testing.T) {
	repo := &stubRepo{}
	svc := New(Params{Log: zap.NewNop(), Repo: repo})

	doc, err := svc.Get(context.Background())
	require.NoError(t, err)

	doc.Rules.Gawy.Retail = 0
	_, err = svc.Update(context.Background(), *doc)
	assert.ErrorIs(t, err, settingsdomain.ErrInvalidRules)

	rules, err := svc.Rules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "15.5", rules.Gawy.Retail.String())
}
