package server

import (
	"github.com/gin-gonic/gin"

	accountdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/account/domain"
)

func (s *Server) CreateAccount(c *gin.Context) {
	var req accountdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	a, err := s.acctSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, a)
}

func (s *Server) ListAccounts(c *gin.Context) {
	accounts, err := s.acctSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, accounts, len(accounts))
}

func (s *Server) GetAccount(c *gin.Context) {
	a, err := s.acctSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, a)
}

func (s *Server) UpdateAccount(c *gin.Context) {
	var req accountdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	a, err := s.acctSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, a)
}

func (s *Server) DeleteAccount(c *gin.Context) {
	if err := s.acctSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": c.Param("id")})
}
