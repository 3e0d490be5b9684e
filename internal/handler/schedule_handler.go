package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChrisHallak/course-scheduling/internal/dto"
	"github.com/ChrisHallak/course-scheduling/internal/service"
	appErrors "github.com/ChrisHallak/course-scheduling/pkg/errors"
	"github.com/ChrisHallak/course-scheduling/pkg/response"
)

type scheduler interface {
	CreateSchedule(ctx context.Context, req dto.CreateScheduleRequest) (dto.CreateScheduleResponse, error)
	DistributeGroups(ctx context.Context, req dto.DistributeGroupsRequest) (dto.DistributeGroupsResponse, error)
}

// ScheduleHandler exposes the scheduling endpoints.
type ScheduleHandler struct {
	service scheduler
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: svc}
}

// Register mounts the routes on the engine.
func (h *ScheduleHandler) Register(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.POST("/create_schedule", h.CreateSchedule)
	r.POST("/distribute_groups", h.DistributeGroups)
}

func (h *ScheduleHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "healthy"})
}

func (h *ScheduleHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid schedule payload"))
		return
	}

	result, err := h.service.CreateSchedule(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

func (h *ScheduleHandler) DistributeGroups(c *gin.Context) {
	var req dto.DistributeGroupsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid distribution payload"))
		return
	}

	result, err := h.service.DistributeGroups(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}
