package outfit_models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 服装品类（固定枚举）
const (
	CategoryCasual       = "Casual"
	CategoryProfessional = "Professional"
	CategoryStreetwear   = "Streetwear"
	CategoryAthleisure   = "Athleisure"
	CategoryBohemian     = "Bohemian"
	CategoryVintage      = "Vintage"
	CategoryMinimalist   = "Minimalist"
	CategoryGlamorous    = "Glamorous"
)

var ValidCategories = map[string]bool{
	CategoryCasual:       true,
	CategoryProfessional: true,
	CategoryStreetwear:   true,
	CategoryAthleisure:   true,
	CategoryBohemian:     true,
	CategoryVintage:      true,
	CategoryMinimalist:   true,
	CategoryGlamorous:    true,
}

// 色板枚举
var ValidColors = map[string]bool{
	"black": true, "white": true, "gray": true, "red": true,
	"blue": true, "navy": true, "green": true, "yellow": true,
	"pink": true, "purple": true, "brown": true, "beige": true,
	"orange": true, "cream": true,
}

// 图案枚举
var ValidPatterns = map[string]bool{
	"solid": true, "striped": true, "plaid": true, "floral": true,
	"polka_dot": true, "graphic": true, "animal_print": true, "color_block": true,
}

// 场合枚举
var ValidOccasions = map[string]bool{
	"work": true, "date": true, "party": true, "daily": true,
	"travel": true, "sport": true, "wedding": true, "beach": true,
}

// 版型枚举
var ValidFits = map[string]bool{
	"slim": true, "regular": true, "loose": true, "oversized": true, "tailored": true,
}

// 搜索结果缺失描述信号时的兜底取值
const DefaultCategory = CategoryCasual

func DefaultColors() []string { return []string{"black", "white"} }

type OutfitRecord struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OutfitID    string             `bson:"outfit_id" json:"outfit_id"`
	ImageRef    string             `bson:"image_ref" json:"image_ref"`
	Title       string             `bson:"title" json:"title"`
	Brand       string             `bson:"brand" json:"brand"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Colors      []string           `bson:"colors" json:"colors"`
	Patterns    []string           `bson:"patterns" json:"patterns"`
	Occasions   []string           `bson:"occasions" json:"occasions"`
	Fit         string             `bson:"fit" json:"fit"`

	// 排序时计算的相关度分数，不落库
	Score float64 `bson:"-" json:"score"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
