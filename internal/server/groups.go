package server

import (
	"github.com/gin-gonic/gin"

	mergedomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/mergegroup/domain"
)

func (s *Server) CreateMergeGroup(c *gin.Context) {
	var req mergedomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	g, err := s.groupSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, g)
}

func (s *Server) ListMergeGroups(c *gin.Context) {
	groups, err := s.groupSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, groups, len(groups))
}

func (s *Server) GetMergeGroup(c *gin.Context) {
	g, err := s.groupSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, g)
}

func (s *Server) AddMergeGroupMember(c *gin.Context) {
	var req struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	g, err := s.groupSvc.AddMember(c.Request.Context(), c.Param("id"), req.Code)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, g)
}

func (s *Server) RemoveMergeGroupMember(c *gin.Context) {
	g, err := s.groupSvc.RemoveMember(c.Request.Context(), c.Param("id"), c.Param("code"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	if g == nil {
		respondData(c, gin.H{"deleted": c.Param("id")})
		return
	}
	respondData(c, g)
}

func (s *Server) DeleteMergeGroup(c *gin.Context) {
	if err := s.groupSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, gin.H{"deleted": c.Param("id")})
}
