package usecase_outfit

import (
	"context"
	"fmt"
	"time"

	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_interface"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
)

type CatalogUsecase struct {
	catalogRepo outfit_interface.CatalogRepository
	searchRepo  outfit_interface.SearchRepository
	timeout     time.Duration
}

func NewCatalogUsecase(
	catalogRepo outfit_interface.CatalogRepository,
	searchRepo outfit_interface.SearchRepository,
	timeout time.Duration,
) *CatalogUsecase {
	return &CatalogUsecase{
		catalogRepo: catalogRepo,
		searchRepo:  searchRepo,
		timeout:     timeout,
	}
}

func (uc *CatalogUsecase) ListOutfits(ctx context.Context, page, pageSize int, sort domain.SortOrder) ([]outfit_models.OutfitRecord, int64, error) {
	if page <= 0 {
		return nil, 0, fmt.Errorf("page参数必须大于0")
	}
	if pageSize <= 0 {
		return nil, 0, fmt.Errorf("page_size参数必须大于0")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	skip := int64(page-1) * int64(pageSize)
	return uc.catalogRepo.GetPaginated(ctx, skip, int64(pageSize), sort)
}

func (uc *CatalogUsecase) GetOutfit(ctx context.Context, outfitID string) (*outfit_models.OutfitRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	outfit, err := uc.catalogRepo.GetByOutfitID(ctx, outfitID)
	if err != nil {
		return nil, fmt.Errorf("获取服装记录失败: %w", err)
	}
	return outfit, nil
}

// Search 代理到外部搜索后端，结果已带分类兜底
func (uc *CatalogUsecase) Search(ctx context.Context, query, category string, limit int) ([]outfit_models.OutfitRecord, error) {
	if query == "" {
		return nil, fmt.Errorf("query参数是必需的")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	outfits, err := uc.searchRepo.Search(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("搜索服装失败: %w", err)
	}
	return outfits, nil
}
