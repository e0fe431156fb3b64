package controller_feed

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/controller"
	"github.com/stylesong/stylesong/usecase/usecase_feed"
)

type FeedController struct {
	usecase *usecase_feed.FeedUsecase
}

func NewFeedController(uc *usecase_feed.FeedUsecase) *FeedController {
	return &FeedController{usecase: uc}
}

func (c *FeedController) CreateSession(ctx *gin.Context) {
	userID := ctx.GetString("x-user-id")
	session := c.usecase.CreateSession(userID)
	controller.SuccessResponse(ctx, "session", session.Snapshot(), 1)
}

func (c *FeedController) CloseSession(ctx *gin.Context) {
	c.usecase.CloseSession(ctx.Param("id"))
	controller.SuccessResponse(ctx, "closed", true, 1)
}

type LoadPageRequest struct {
	Page int `json:"page" binding:"required,min=1"`
}

func (c *FeedController) LoadPage(ctx *gin.Context) {
	var req LoadPageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	state, err := c.usecase.LoadPage(ctx, ctx.Param("id"), req.Page)
	if err != nil {
		// 加载失败不算硬错误：返回带错误标记的会话状态，客户端据此展示重试入口
		controller.SuccessResponse(ctx, "state", state, len(state.Posts))
		return
	}

	controller.SuccessResponse(ctx, "state", state, len(state.Posts))
}

func (c *FeedController) Refresh(ctx *gin.Context) {
	state, err := c.usecase.Refresh(ctx, ctx.Param("id"))
	if err != nil {
		controller.SuccessResponse(ctx, "state", state, len(state.Posts))
		return
	}

	controller.SuccessResponse(ctx, "state", state, len(state.Posts))
}

type ScrollRequest struct {
	ScrollTop      float64 `json:"scroll_top" binding:"min=0"`
	ViewportHeight float64 `json:"viewport_height" binding:"required,gt=0"`
	ScrollHeight   float64 `json:"scroll_height" binding:"required,gt=0"`
}

func (c *FeedController) OnScroll(ctx *gin.Context) {
	var req ScrollRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	state, err := c.usecase.OnScroll(ctx, ctx.Param("id"), req.ScrollTop, req.ViewportHeight, req.ScrollHeight)
	if err != nil {
		controller.SuccessResponse(ctx, "state", state, len(state.Posts))
		return
	}

	controller.SuccessResponse(ctx, "state", state, len(state.Posts))
}

type InteractionRequest struct {
	PostID string `json:"post_id" binding:"required"`
}

func (c *FeedController) ToggleLike(ctx *gin.Context) {
	var req InteractionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	post, err := c.usecase.ToggleLike(ctx.Param("id"), req.PostID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "POST_NOT_FOUND", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "post", post, 1)
}

func (c *FeedController) ToggleSave(ctx *gin.Context) {
	var req InteractionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	post, err := c.usecase.ToggleSave(ctx.Param("id"), req.PostID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "POST_NOT_FOUND", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "post", post, 1)
}

func (c *FeedController) DoubleTapLike(ctx *gin.Context) {
	var req InteractionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	fired, post, err := c.usecase.DoubleTapLike(ctx.Param("id"), req.PostID)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "POST_NOT_FOUND", err.Error())
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"fired": fired, "post": post})
}

type TrendingRequest struct {
	Limit int `form:"limit,default=10" binding:"min=1,max=50"`
}

func (c *FeedController) TrendingHashtags(ctx *gin.Context) {
	var req TrendingRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	tags, err := c.usecase.TrendingHashtags(ctx.Param("id"), req.Limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusNotFound, "SESSION_NOT_FOUND", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "hashtags", tags, len(tags))
}
