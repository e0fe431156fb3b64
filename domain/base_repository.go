package domain

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BaseRepository 通用Repository接口，提供标准CRUD操作
// T: 实体类型，必须包含ID字段
type BaseRepository[T any] interface {
	// 基础CRUD操作
	Create(ctx context.Context, entity *T) error
	CreateMany(ctx context.Context, entities []*T) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)

	// 查询操作
	GetAll(ctx context.Context) ([]T, error)
	GetByFilter(ctx context.Context, filter interface{}) ([]T, error)
	GetOneByFilter(ctx context.Context, filter interface{}) (*T, error)
	Count(ctx context.Context, filter interface{}) (int64, error)

	// 分页查询
	GetPaginated(ctx context.Context, filter interface{}, skip, limit int64) ([]T, error)
	GetPaginatedSorted(ctx context.Context, filter interface{}, skip, limit int64, sortField string, ascending bool) ([]T, error)
}
