package server

import (
	"github.com/gin-gonic/gin"

	customerdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/customer/domain"
)

func (s *Server) CreateCustomer(c *gin.Context) {
	var req customerdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	cust, err := s.custSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, cust)
}

func (s *Server) ListCustomers(c *gin.Context) {
	customers, err := s.custSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, customers, len(customers))
}

func (s *Server) GetCustomer(c *gin.Context) {
	cust, err := s.custSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, cust)
}

func (s *Server) UpdateCustomer(c *gin.Context) {
	var cust customerdomain.Customer
	if err := c.ShouldBindJSON(&cust); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}
	cust.ID = c.Param("id")

	updated, err := s.custSvc.Update(c.Request.Context(), cust)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, updated)
}

func (s *Server) DeleteCustomer(c *gin.Context) {
	if err := s.custSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": c.Param("id")})
}
