package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/modelday/modelday/internal/modules/serializer"
	"github.com/modelday/modelday/internal/modules/service"
	"github.com/modelday/modelday/internal/pkg/paging"
)

type RankingHandler struct {
	svc service.RankingService
}

func NewRankingHandler(s service.RankingService) *RankingHandler {
	return &RankingHandler{svc: s}
}

type GetRankingsReq struct {
	Limit    int    `form:"limit,default=20" binding:"min=0,max=100"`
	Cursor   string `form:"cursor"`
	TimeDesc bool   `form:"time_desc,default=false"`
}

func (h *RankingHandler) GetRankings(c *gin.Context) {
	req := GetRankingsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	out, err := h.svc.List(c.Request.Context(), service.ListRankingsInput{
		Cursor:   req.Cursor,
		Limit:    req.Limit,
		TimeDesc: req.TimeDesc,
	})
	if err != nil {
		if errors.Is(err, paging.ErrInvalidCursor) {
			c.JSON(http.StatusBadRequest, serializer.ParamErr(err.Error(), err))
			return
		}
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(out))
}

type GetTopRankingsReq struct {
	Limit int `form:"limit,default=20" binding:"min=0,max=100"`
}

func (h *RankingHandler) GetTopRankings(c *gin.Context) {
	req := GetTopRankingsReq{}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, serializer.ParamErr("", err))
		return
	}

	items, err := h.svc.Top(c.Request.Context(), req.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, serializer.DBErr("", err))
		return
	}

	c.JSON(http.StatusOK, serializer.OK(items))
}
