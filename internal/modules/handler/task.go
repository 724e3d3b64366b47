package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/serializer"
	"github.com/modelday/modelday/internal/modules/service"
)

type TaskHandler struct {
	svc service.TaskService
}

func NewTaskHandler(s service.TaskService) *TaskHandler {
	return &TaskHandler{svc: s}
}

func (h *TaskHandler) StartTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid task_id", err))
		return
	}

	out, err := h.svc.Start(c.Request.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound),
			errors.Is(err, service.ErrTaskAlreadyCompleted):
			c.JSON(http.StatusBadRequest, serializer.Err(err.Error(), err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.OK(out))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	taskID, err := uuid.Parse(c.Param("task_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid task_id", err))
		return
	}

	out, err := h.svc.Complete(c.Request.Context(), taskID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound),
			errors.Is(err, service.ErrTaskAlreadyCompleted):
			c.JSON(http.StatusBadRequest, serializer.Err(err.Error(), err))
		default:
			c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		}
		return
	}

	c.JSON(http.StatusOK, serializer.OK(out))
}
