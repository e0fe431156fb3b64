package repository_outfit

import (
	"context"
	"fmt"
	"sort"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_interface"
	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_models"
	"github.com/stylesong/stylesong/mongo"
	"github.com/stylesong/stylesong/repository"
)

type catalogRepository struct {
	base       domain.BaseRepository[outfit_models.OutfitRecord]
	db         mongo.Database
	collection string
}

func NewCatalogRepository(db mongo.Database, collection string) outfit_interface.CatalogRepository {
	return &catalogRepository{
		base:       repository.NewBaseMongoRepository[outfit_models.OutfitRecord](db, collection),
		db:         db,
		collection: collection,
	}
}

func (r *catalogRepository) GetAll(ctx context.Context) ([]outfit_models.OutfitRecord, error) {
	return r.base.GetAll(ctx)
}

func (r *catalogRepository) GetPaginated(ctx context.Context, skip, limit int64, sortOrder domain.SortOrder) ([]outfit_models.OutfitRecord, int64, error) {
	sortField := sortOrder.Sort
	if sortField == "" {
		sortField = "created_at"
	}
	ascending := sortOrder.Order == "asc"

	outfits, err := r.base.GetPaginatedSorted(ctx, bson.M{}, skip, limit, sortField, ascending)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.base.Count(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}
	return outfits, total, nil
}

func (r *catalogRepository) GetByOutfitID(ctx context.Context, outfitID string) (*outfit_models.OutfitRecord, error) {
	if outfitID == "" {
		return nil, fmt.Errorf("outfit_id参数是必需的")
	}
	return r.base.GetOneByFilter(ctx, bson.M{"outfit_id": outfitID})
}

func (r *catalogRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	coll := r.db.Collection(r.collection)
	values, err := coll.Distinct(ctx, "brand", bson.M{"brand": bson.M{"$ne": ""}})
	if err != nil {
		return nil, fmt.Errorf("获取品牌列表失败: %w", err)
	}

	brands := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			brands = append(brands, s)
		}
	}
	sort.Strings(brands)
	return brands, nil
}
