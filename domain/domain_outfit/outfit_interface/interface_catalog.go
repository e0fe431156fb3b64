package outfit_interface

import (
	"context"

	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
)

type CatalogRepository interface {
	GetAll(ctx context.Context) ([]outfit_models.OutfitRecord, error)
	GetPaginated(ctx context.Context, skip, limit int64, sort domain.SortOrder) ([]outfit_models.OutfitRecord, int64, error)
	GetByOutfitID(ctx context.Context, outfitID string) (*outfit_models.OutfitRecord, error)
	DistinctBrands(ctx context.Context) ([]string, error)
}
