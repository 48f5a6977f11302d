package server

import (
	"github.com/gin-gonic/gin"

	settingsdomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/settings/domain"
)

func (s *Server) GetSettings(c *gin.Context) {
	doc, err := s.settings.Get(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, doc)
}

func (s *Server) UpdateSettings(c *gin.Context) {
	var doc settingsdomain.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	updated, err := s.settings.Update(c.Request.Context(), doc)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, updated)
}
