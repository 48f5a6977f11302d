package server

import (
	"strconv"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"

	uploaddomain "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/domain"
	uploadservice "github.com/PeterNasrGab/orders-tracking-system-sub000/internal/upload/service"
)

func (s *Server) CreateUpload(c *gin.Context) {
	var req uploaddomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	u, err := s.uploadSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, u)
}

func (s *Server) ListUploads(c *gin.Context) {
	var filter uploaddomain.ListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	uploads, err := s.uploadSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondList(c, uploads, len(uploads))
}

func (s *Server) GetUpload(c *gin.Context) {
	id, err := uploadID(c)
	if err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	u, err := s.uploadSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, u)
}

func (s *Server) ApproveUpload(c *gin.Context) {
	id, err := uploadID(c)
	if err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	u, err := s.uploadSvc.Approve(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, u)
}

func (s *Server) RejectUpload(c *gin.Context) {
	id, err := uploadID(c)
	if err != nil {
		AbortWithError(c, errInvalidRequest)
		return
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		AbortWithError(c, errInvalidRequest)
		return
	}

	u, err := s.uploadSvc.Reject(c.Request.Context(), id, req.Reason)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	respondData(c, u)
}

// NewUploadObjectKey issues a storage key for a client-side image upload.
func (s *Server) NewUploadObjectKey(c *gin.Context) {
	respondData(c, gin.H{"key": uploadservice.ObjectKey(c.Query("filename"))})
}

func uploadID(c *gin.Context) (snowflake.ID, error) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, err
	}
	return snowflake.ID(n), nil
}
