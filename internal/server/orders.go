package server

import (
	"time"

	"github.com/gin-gonic/gin"

	orderdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/order/domain"
	"github.com/PeterNasrGab/orders-tracking-system-sub000/internal/pricing"
)

func (s *Server) CreateOrder(c *gin.Context) {
	var req orderdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	o, err := s.orderSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, o)
}

func (s *Server) ListOrders(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	orders, err := s.orderSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, orders, len(orders))
}

func (s *Server) GetOrder(c *gin.Context) {
	o, err := s.orderSvc.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, o)
}

func (s *Server) UpdateOrder(c *gin.Context) {
	var patch orderdomain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	o, err := s.orderSvc.Update(c.Request.Context(), c.Param("code"), patch)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, o)
}

func (s *Server) ChangeOrderStatus(c *gin.Context) {
	var req struct {
		Status orderdomain.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	change, err := s.orderSvc.ChangeStatus(c.Request.Context(), c.Param("code"), req.Status)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, change)
}

func (s *Server) ApplyOrderPayment(c *gin.Context) {
	var req struct {
		AmountEGP float64 `json:"amount_egp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	o, err := s.orderSvc.ApplyPayment(c.Request.Context(), c.Param("code"), req.AmountEGP)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, o)
}

func (s *Server) DeleteOrder(c *gin.Context) {
	if err := s.orderSvc.Delete(c.Request.Context(), c.Param("code")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": c.Param("code")})
}

func (s *Server) BulkDeleteOrders(c *gin.Context) {
	var req struct {
		Codes []string `json:"codes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	respondData(c, s.orderSvc.BulkDelete(c.Request.Context(), req.Codes))
}

func (s *Server) BulkPlaceOrders(c *gin.Context) {
	var req struct {
		Codes  []string           `json:"codes"`
		Status orderdomain.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}
	if req.Status == "" {
		req.Status = orderdomain.StatusOrderPlaced
	}

	respondData(c, s.orderSvc.BulkPlace(c.Request.Context(), req.Codes, req.Status))
}

func orderFilterFromQuery(c *gin.Context) (orderdomain.ListFilter, error) {
	filter := orderdomain.ListFilter{
		Channel:     pricing.Channel(c.Query("channel")),
		Status:      orderdomain.Status(c.Query("status")),
		CustomerID:  c.Query("customer_id"),
		AccountName: c.Query("account_name"),
	}
	if v := c.Query("created_after"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return orderdomain.ListFilter{}, err
		}
		filter.CreatedAfter = t
	}
	if v := c.Query("created_until"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return orderdomain.ListFilter{}, err
		}
		filter.CreatedUntil = t
	}
	return filter, nil
}
