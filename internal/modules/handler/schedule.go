package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/model"
	"github.com/modelday/modelday/internal/modules/serializer"
	"github.com/modelday/modelday/internal/modules/service"
)

type ScheduleHandler struct {
	svc service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: s}
}

type TimeSlotReq struct {
	ID       string `json:"id"`
	Time     string `json:"time" binding:"required"`
	Activity string `json:"activity" binding:"required"`
	Category string `json:"category"`
	Color    string `json:"color"`
}

func toTimeSlots(reqs []TimeSlotReq) []model.TimeSlot {
	slots := make([]model.TimeSlot, 0, len(reqs))
	for _, r := range reqs {
		slots = append(slots, model.TimeSlot{
			ID:       r.ID,
			Time:     r.Time,
			Activity: r.Activity,
			Category: r.Category,
			Color:    r.Color,
		})
	}
	return slots
}

type CustomizeScheduleReq struct {
	UserID          uuid.UUID     `json:"userId" binding:"required"`
	RoleModelID     uuid.UUID     `json:"roleModelId" binding:"required"`
	CurrentSchedule []TimeSlotReq `json:"currentSchedule" binding:"required,min=1"`
	UserQuery       string        `json:"userQuery" binding:"required"`
}

// CustomizeSchedule asks the model to rework the submitted schedule around
// the user's request. Nothing is persisted; the caller reviews the proposal
// and confirms separately.
func (h *ScheduleHandler) CustomizeSchedule(c *gin.Context) {
	req := CustomizeScheduleReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Customize(c.Request.Context(), service.CustomizeScheduleInput{
		UserID:          req.UserID,
		RoleModelID:     req.RoleModelID,
		CurrentSchedule: toTimeSlots(req.CurrentSchedule),
		UserQuery:       req.UserQuery,
	})
	if err != nil {
		// Upstream and parse messages are user-facing here: a parse failure
		// tells the caller to rephrase the request.
		c.JSON(http.StatusInternalServerError, serializer.Err(err.Error(), err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(out))
}

type ConfirmScheduleReq struct {
	UserID        uuid.UUID     `json:"userId" binding:"required"`
	RoleModelID   uuid.UUID     `json:"roleModelId" binding:"required"`
	RoleModelName string        `json:"roleModelName" binding:"required"`
	Schedule      []TimeSlotReq `json:"schedule" binding:"required,min=1"`
}

// ConfirmSchedule persists a reviewed schedule and makes it the user's
// active one.
func (h *ScheduleHandler) ConfirmSchedule(c *gin.Context) {
	req := ConfirmScheduleReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Confirm(c.Request.Context(), service.ConfirmScheduleInput{
		UserID:        req.UserID,
		RoleModelID:   req.RoleModelID,
		RoleModelName: req.RoleModelName,
		Schedule:      toTimeSlots(req.Schedule),
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrActiveScheduleExists),
			errors.Is(err, service.ErrRoleModelNotFound),
			errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, serializer.Err(err.Error(), err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("Failed to save schedule: "+err.Error(), err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.OK(out))
}

func (h *ScheduleHandler) GetActiveSchedule(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid user_id", err))
		return
	}

	out, err := h.svc.ActiveSchedule(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusBadRequest, serializer.Err(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	// No active schedule is a normal state, not an error.
	c.JSON(http.StatusOK, serializer.OK(out))
}

type StopScheduleReq struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

func (h *ScheduleHandler) StopSchedule(c *gin.Context) {
	req := StopScheduleReq{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.Stop(c.Request.Context(), req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoActiveSchedule),
			errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusBadRequest, serializer.Err(err.Error(), err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.OK(out))
}
