package handler

import (
	"Dresscode/internal/pkg/response"
	"Dresscode/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	progressSvc service.ProgressService
}

func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressSvc: progressSvc,
	}
}

func (s *ProgressHandler) GetProgress(c *gin.Context) {
	userID := c.GetUint64("user_id")

	progress, err := s.progressSvc.GetProgress(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, progress)
}
