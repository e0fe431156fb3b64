package outfit_models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// 描述文本关键词 → 品类 的分类表
// 搜索后端返回的记录经常缺失category字段，只能从描述文本里猜
var categoryKeywords = map[string][]string{
	CategoryProfessional: {"suit", "blazer", "office", "formal", "business", "tailored"},
	CategoryStreetwear:   {"street", "hoodie", "sneaker", "oversized", "graphic tee", "cargo"},
	CategoryAthleisure:   {"athleisure", "gym", "yoga", "legging", "sport", "active"},
	CategoryBohemian:     {"boho", "bohemian", "flowy", "fringe", "maxi"},
	CategoryVintage:      {"vintage", "retro", "classic", "80s", "90s"},
	CategoryMinimalist:   {"minimal", "clean lines", "monochrome", "essential"},
	CategoryGlamorous:    {"glam", "sequin", "gown", "evening", "cocktail", "sparkle"},
}

var titleCaser = cases.Title(language.English)

// ClassifyDescription 按关键词给描述文本归类，无命中时回落到默认品类
func ClassifyDescription(text string) string {
	lowered := strings.ToLower(text)
	for category, keywords := range categoryKeywords {
		for _, kw := range keywords {
			if strings.Contains(lowered, kw) {
				return category
			}
		}
	}
	return DefaultCategory
}

// CanonicalCategory 把外部返回的任意大小写品类名归一到枚举写法
func CanonicalCategory(raw string) string {
	canon := titleCaser.String(strings.TrimSpace(raw))
	if ValidCategories[canon] {
		return canon
	}
	return ""
}

// ApplySearchDefaults 容错处理搜索结果：缺失字段按约定补默认值
func ApplySearchDefaults(o *OutfitRecord) {
	if c := CanonicalCategory(o.Category); c != "" {
		o.Category = c
	} else {
		o.Category = ClassifyDescription(o.Title + " " + o.Description)
	}
	if len(o.Colors) == 0 {
		o.Colors = DefaultColors()
	}
	if o.Patterns == nil {
		o.Patterns = []string{}
	}
	if o.Occasions == nil {
		o.Occasions = []string{}
	}
	if o.Title == "" {
		o.Title = "Untitled Look"
	}
}
