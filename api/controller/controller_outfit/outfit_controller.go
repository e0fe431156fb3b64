package controller_outfit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/controller"
	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/usecase/usecase_outfit"
)

type OutfitController struct {
	catalogUsecase    *usecase_outfit.CatalogUsecase
	preferenceUsecase *usecase_outfit.PreferenceUsecase
	brandIndexUsecase *usecase_outfit.BrandIndexUsecase
}

func NewOutfitController(
	catalogUsecase *usecase_outfit.CatalogUsecase,
	preferenceUsecase *usecase_outfit.PreferenceUsecase,
	brandIndexUsecase *usecase_outfit.BrandIndexUsecase,
) *OutfitController {
	return &OutfitController{
		catalogUsecase:    catalogUsecase,
		preferenceUsecase: preferenceUsecase,
		brandIndexUsecase: brandIndexUsecase,
	}
}

type ListOutfitsRequest struct {
	Page     int    `form:"page,default=1" binding:"min=1"`
	PageSize int    `form:"page_size,default=20" binding:"min=1,max=100"`
	Sort     string `form:"sort"`
	Order    string `form:"order" binding:"omitempty,oneof=asc desc"`
}

func (c *OutfitController) ListOutfits(ctx *gin.Context) {
	var req ListOutfitsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	outfits, total, err := c.catalogUsecase.ListOutfits(ctx, req.Page, req.PageSize, domain.SortOrder{Sort: req.Sort, Order: req.Order})
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "LIST_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "outfits", outfits, int(total))
}

type SearchOutfitsRequest struct {
	Query    string `form:"query" binding:"required"`
	Category string `form:"category"`
	Limit    int    `form:"limit,default=20" binding:"min=1,max=100"`
}

func (c *OutfitController) SearchOutfits(ctx *gin.Context) {
	var req SearchOutfitsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	outfits, err := c.catalogUsecase.Search(ctx, req.Query, req.Category, req.Limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadGateway, "SEARCH_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "outfits", outfits, len(outfits))
}

type RecommendRequest struct {
	Limit int `form:"limit,default=30" binding:"min=1,max=100"`
}

func (c *OutfitController) Recommend(ctx *gin.Context) {
	var req RecommendRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	userID := ctx.GetString("x-user-id")
	outfits, err := c.preferenceUsecase.Recommend(ctx, userID, req.Limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "RECOMMEND_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "outfits", outfits, len(outfits))
}

func (c *OutfitController) BrandIndex(ctx *gin.Context) {
	groups, err := c.brandIndexUsecase.BrandIndex(ctx)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "BRAND_INDEX_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "brands", groups, len(groups))
}
