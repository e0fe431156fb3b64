package controller_outfit

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/controller"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
	"github.com/stylesong/stylesong/usecase/usecase_outfit"
)

type PreferenceController struct {
	usecase *usecase_outfit.PreferenceUsecase
}

func NewPreferenceController(uc *usecase_outfit.PreferenceUsecase) *PreferenceController {
	return &PreferenceController{usecase: uc}
}

func (c *PreferenceController) GetPreference(ctx *gin.Context) {
	userID := ctx.GetString("x-user-id")
	prefs := c.usecase.LoadPreference(ctx, userID)
	controller.SuccessResponse(ctx, "preference", prefs, 1)
}

func (c *PreferenceController) PutPreference(ctx *gin.Context) {
	var prefs outfit_models.StylePreference
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	userID := ctx.GetString("x-user-id")
	if err := c.usecase.SavePreference(ctx, userID, prefs); err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "SAVE_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "preference", prefs, 1)
}
