package tryon_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

type TryOnRequest struct {
	HumanImageRef   string `json:"human_image_ref"`
	GarmentImageRef string `json:"garment_image_ref"`
	Category        string `json:"category"`
}

type TryOnResult struct {
	TaskID    string `json:"task_id"`
	ResultRef string `json:"result_ref"`
	Status    string `json:"status"`
	Fallback  bool   `json:"fallback"`
}

// TryOnTask 试穿任务记录（异步落库的历史）
type TryOnTask struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TaskID          string             `bson:"task_id" json:"task_id"`
	UserID          string             `bson:"user_id" json:"user_id"`
	HumanImageRef   string             `bson:"human_image_ref" json:"human_image_ref"`
	GarmentImageRef string             `bson:"garment_image_ref" json:"garment_image_ref"`
	ResultRef       string             `bson:"result_ref" json:"result_ref"`
	Status          string             `bson:"status" json:"status"`
	Fallback        bool               `bson:"fallback" json:"fallback"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// 按品类固定的兜底效果图
// 生成服务失败或返回不可用数据时替换，绝不把失败抛给用户
var fallbackImages = map[string]string{
	outfit_models.CategoryCasual:       "https://cdn.stylesong.app/tryon/fallback_casual.jpg",
	outfit_models.CategoryProfessional: "https://cdn.stylesong.app/tryon/fallback_professional.jpg",
	outfit_models.CategoryStreetwear:   "https://cdn.stylesong.app/tryon/fallback_streetwear.jpg",
	outfit_models.CategoryAthleisure:   "https://cdn.stylesong.app/tryon/fallback_athleisure.jpg",
	outfit_models.CategoryBohemian:     "https://cdn.stylesong.app/tryon/fallback_bohemian.jpg",
	outfit_models.CategoryVintage:      "https://cdn.stylesong.app/tryon/fallback_vintage.jpg",
	outfit_models.CategoryMinimalist:   "https://cdn.stylesong.app/tryon/fallback_minimalist.jpg",
	outfit_models.CategoryGlamorous:    "https://cdn.stylesong.app/tryon/fallback_glamorous.jpg",
}

const defaultFallbackImage = "https://cdn.stylesong.app/tryon/fallback_default.jpg"

func FallbackImageFor(category string) string {
	if ref, ok := fallbackImages[category]; ok {
		return ref
	}
	return defaultFallbackImage
}
