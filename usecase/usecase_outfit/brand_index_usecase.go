package usecase_outfit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/mozillazg/go-pinyin"

	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_interface"
)

type BrandIndexUsecase struct {
	catalogRepo outfit_interface.CatalogRepository
	timeout     time.Duration
}

func NewBrandIndexUsecase(catalogRepo outfit_interface.CatalogRepository, timeout time.Duration) *BrandIndexUsecase {
	return &BrandIndexUsecase{
		catalogRepo: catalogRepo,
		timeout:     timeout,
	}
}

type BrandGroup struct {
	Initial string   `json:"initial"`
	Brands  []string `json:"brands"`
}

// BrandIndex 品牌首字母索引：中文品牌按拼音首字母归组
func (uc *BrandIndexUsecase) BrandIndex(ctx context.Context) ([]BrandGroup, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	brands, err := uc.catalogRepo.DistinctBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("获取品牌索引失败: %w", err)
	}

	grouped := make(map[string][]string)
	for _, brand := range brands {
		initial := brandInitial(brand)
		grouped[initial] = append(grouped[initial], brand)
	}

	initials := make([]string, 0, len(grouped))
	for initial := range grouped {
		initials = append(initials, initial)
	}
	sort.Strings(initials)

	groups := make([]BrandGroup, 0, len(initials))
	for _, initial := range initials {
		groups = append(groups, BrandGroup{Initial: initial, Brands: grouped[initial]})
	}
	return groups, nil
}

var pinyinArgs = pinyin.NewArgs()

func brandInitial(brand string) string {
	trimmed := strings.TrimSpace(brand)
	if trimmed == "" {
		return "#"
	}

	first := []rune(trimmed)[0]
	if unicode.Is(unicode.Han, first) {
		result := pinyin.Pinyin(string(first), pinyinArgs)
		if len(result) > 0 && len(result[0]) > 0 && len(result[0][0]) > 0 {
			return strings.ToUpper(result[0][0][:1])
		}
		return "#"
	}
	if unicode.IsLetter(first) {
		return strings.ToUpper(string(first))
	}
	return "#"
}
