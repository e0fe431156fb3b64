package controller_tryon

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/controller"
	"github.com/stylesong/stylesong/domain/domain_tryon/tryon_models"
	"github.com/stylesong/stylesong/usecase/usecase_tryon"
)

// 上传照片大小上限
const maxUploadBytes = 10 << 20

type TryOnController struct {
	usecase *usecase_tryon.TryOnUsecase
}

func NewTryOnController(uc *usecase_tryon.TryOnUsecase) *TryOnController {
	return &TryOnController{usecase: uc}
}

func (c *TryOnController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", "缺少image文件字段")
		return
	}
	if file.Size > maxUploadBytes {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "FILE_TOO_LARGE", "上传文件超过大小限制")
		return
	}

	f, err := file.Open()
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "UPLOAD_FAILED", err.Error())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "UPLOAD_FAILED", err.Error())
		return
	}

	ref, err := c.usecase.SaveUpload(data)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "UPLOAD_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "image_ref", ref, 1)
}

type GenerateRequest struct {
	HumanImageRef   string `json:"human_image_ref" binding:"required"`
	GarmentImageRef string `json:"garment_image_ref" binding:"required"`
	Category        string `json:"category"`
}

func (c *TryOnController) Generate(ctx *gin.Context) {
	var req GenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	userID := ctx.GetString("x-user-id")
	result, err := c.usecase.Generate(ctx, userID, tryon_models.TryOnRequest{
		HumanImageRef:   req.HumanImageRef,
		GarmentImageRef: req.GarmentImageRef,
		Category:        req.Category,
	})
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "GENERATE_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "result", result, 1)
}

type HistoryRequest struct {
	Limit int64 `form:"limit,default=20" binding:"min=1,max=100"`
}

func (c *TryOnController) History(ctx *gin.Context) {
	var req HistoryRequest
	if err := ctx.ShouldBind(&req); err != nil {
		controller.ErrorResponse(ctx, http.StatusBadRequest, "INVALID_PARAMS", err.Error())
		return
	}

	userID := ctx.GetString("x-user-id")
	tasks, err := c.usecase.GetHistory(ctx, userID, req.Limit)
	if err != nil {
		controller.ErrorResponse(ctx, http.StatusInternalServerError, "HISTORY_FAILED", err.Error())
		return
	}

	controller.SuccessResponse(ctx, "tasks", tasks, len(tasks))
}
