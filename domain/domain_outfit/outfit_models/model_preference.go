package outfit_models

// StylePreference 用户的多选风格偏好
// 六个集合字段，枚举约束与OutfitRecord对应字段一致（brands仅受品牌目录约束）
type StylePreference struct {
	Categories []string `bson:"categories" json:"categories"`
	Colors     []string `bson:"colors" json:"colors"`
	Patterns   []string `bson:"patterns" json:"patterns"`
	Occasions  []string `bson:"occasions" json:"occasions"`
	Brands     []string `bson:"brands" json:"brands"`
	Fit        []string `bson:"fit" json:"fit"`
}

// EmptyStylePreference 全空默认偏好（用户尚未表达偏好）
func EmptyStylePreference() StylePreference {
	return StylePreference{
		Categories: []string{},
		Colors:     []string{},
		Patterns:   []string{},
		Occasions:  []string{},
		Brands:     []string{},
		Fit:        []string{},
	}
}

func (p StylePreference) IsEmpty() bool {
	return len(p.Categories) == 0 &&
		len(p.Colors) == 0 &&
		len(p.Patterns) == 0 &&
		len(p.Occasions) == 0 &&
		len(p.Brands) == 0 &&
		len(p.Fit) == 0
}

// Normalize 丢弃不在枚举范围内的取值，保证落库数据满足枚举不变式
func (p *StylePreference) Normalize() {
	p.Categories = keepValid(p.Categories, ValidCategories)
	p.Colors = keepValid(p.Colors, ValidColors)
	p.Patterns = keepValid(p.Patterns, ValidPatterns)
	p.Occasions = keepValid(p.Occasions, ValidOccasions)
	p.Fit = keepValid(p.Fit, ValidFits)
	if p.Brands == nil {
		p.Brands = []string{}
	}
}

func keepValid(values []string, valid map[string]bool) []string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if valid[v] {
			kept = append(kept, v)
		}
	}
	return kept
}
