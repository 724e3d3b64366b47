package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/modelday/modelday/internal/modules/serializer"
	"github.com/modelday/modelday/internal/modules/service"
)

type RoleModelHandler struct {
	svc service.RoleModelService
}

func NewRoleModelHandler(s service.RoleModelService) *RoleModelHandler {
	return &RoleModelHandler{svc: s}
}

func (h *RoleModelHandler) ListRoleModels(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}
	c.JSON(http.StatusOK, serializer.OK(items))
}

func (h *RoleModelHandler) GetRoleModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("invalid role model id", err))
		return
	}

	rm, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoleModelNotFound) {
			c.JSON(http.StatusNotFound, serializer.Err(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(rm))
}
