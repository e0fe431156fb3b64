package usecase_outfit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
)

type fakeBrandCatalog struct {
	brands []string
}

func (f *fakeBrandCatalog) GetAll(_ context.Context) ([]outfit_models.OutfitRecord, error) {
	return []outfit_models.OutfitRecord{}, nil
}

func (f *fakeBrandCatalog) GetPaginated(_ context.Context, _, _ int64, _ domain.SortOrder) ([]outfit_models.OutfitRecord, int64, error) {
	return []outfit_models.OutfitRecord{}, 0, nil
}

func (f *fakeBrandCatalog) GetByOutfitID(_ context.Context, _ string) (*outfit_models.OutfitRecord, error) {
	return nil, nil
}

func (f *fakeBrandCatalog) DistinctBrands(_ context.Context) ([]string, error) {
	return f.brands, nil
}

func TestBrandIndex_GroupsByInitial(t *testing.T) {
	repo := &fakeBrandCatalog{brands: []string{"Acne Studios", "Balenciaga", "adidas", "百丽", "7 For All Mankind"}}
	uc := NewBrandIndexUsecase(repo, 2*time.Second)

	groups, err := uc.BrandIndex(context.Background())
	require.NoError(t, err)

	byInitial := map[string][]string{}
	for _, g := range groups {
		byInitial[g.Initial] = g.Brands
	}

	// 英文按首字母（不区分大小写），中文按拼音首字母，数字开头归入#
	assert.ElementsMatch(t, []string{"Acne Studios", "adidas"}, byInitial["A"])
	assert.ElementsMatch(t, []string{"Balenciaga", "百丽"}, byInitial["B"])
	assert.ElementsMatch(t, []string{"7 For All Mankind"}, byInitial["#"])

	// 分组按首字母升序排列
	require.Len(t, groups, 3)
	assert.Equal(t, "#", groups[0].Initial)
	assert.Equal(t, "A", groups[1].Initial)
	assert.Equal(t, "B", groups[2].Initial)
}

func TestBrandInitial(t *testing.T) {
	assert.Equal(t, "Z", brandInitial("Zara"))
	assert.Equal(t, "U", brandInitial("uniqlo"))
	assert.Equal(t, "L", brandInitial("李宁"))
	assert.Equal(t, "#", brandInitial("361度"))
	assert.Equal(t, "#", brandInitial(""))
	assert.Equal(t, "#", brandInitial("   "))
}
