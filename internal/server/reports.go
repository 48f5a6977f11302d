package server

import (
	"github.com/gin-gonic/gin"
)

func (s *Server) AccountsReport(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	groups, err := s.reportSvc.Accounts(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, groups, len(groups))
}

func (s *Server) ClientsReport(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	groups, err := s.reportSvc.Clients(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, groups, len(groups))
}

func (s *Server) DailyReport(c *gin.Context) {
	filter, err := orderFilterFromQuery(c)
	if err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	days, err := s.reportSvc.Daily(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, days, len(days))
}
