package repository_tryon

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/domain/domain_tryon/tryon_interface"
	"github.com/stylesong/stylesong/domain/domain_tryon/tryon_models"
	"github.com/stylesong/stylesong/mongo"
	"github.com/stylesong/stylesong/repository"
)

type tryOnTaskRepository struct {
	base domain.BaseRepository[tryon_models.TryOnTask]
}

func NewTryOnTaskRepository(db mongo.Database, collection string) tryon_interface.TryOnTaskRepository {
	return &tryOnTaskRepository{
		base: repository.NewBaseMongoRepository[tryon_models.TryOnTask](db, collection),
	}
}

func (r *tryOnTaskRepository) Save(ctx context.Context, task *tryon_models.TryOnTask) error {
	if task == nil {
		return fmt.Errorf("task不能为空")
	}
	return r.base.Create(ctx, task)
}

func (r *tryOnTaskRepository) GetByUser(ctx context.Context, userID string, limit int64) ([]tryon_models.TryOnTask, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id参数是必需的")
	}
	if limit <= 0 {
		limit = 20
	}
	return r.base.GetPaginatedSorted(ctx, bson.M{"user_id": userID}, 0, limit, "created_at", false)
}
