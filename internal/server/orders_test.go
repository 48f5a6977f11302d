package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

type stubOrderService struct {
	orderdomain.Service

	orders map[string]*orderdomain.Order
}

func (s *stubOrderService) Get(_ context.Context, code string) (*orderdomain.Order, error) {
	o, ok := s.orders[code]
	if !ok {
		return nil, orderdomain.ErrNotFound
	}
	return o, nil
}

func (s *stubOrderService) Create(_ context.Context, req orderdomain.CreateRequest) (*orderdomain.Order, error) {
	if !req.Channel.Valid() {
		return nil, pricing.ErrInvalidClassification
	}
	return &orderdomain.Order{Code: "B-1", Channel: req.Channel, Tier: req.Tier}, nil
}

func newTestRouter(t *testing.T, orders orderdomain.Service) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	srv := &Server{log: zap.NewNop(), orderSvc: orders}
	srv.engine = gin.New()
	srv.registerRoutes()
	return srv.engine
}

func TestGetOrderStatusMapping(t *testing.T) {
	svc := &stubOrderService{orders: map[string]*orderdomain.Order{
		"B-1": {Code: "B-1", Channel: pricing.ChannelBarry, Tier: pricing.TierRetail},
	}}
	router := newTestRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/B-1", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"B-1"`)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/orders/B-404", nil)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusNotFound, resp.Code)
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	router := newTestRouter(t, &stubOrderService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/orders",
		strings.NewReader(`{"channel":"unknown","tier":"retail"}`))
	req.Header.Set("Content-Type", "application/json")
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &stubOrderService{})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
}
