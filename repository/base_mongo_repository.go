package repository

import (
	"context"
	"errors"
	"fmt"

	driver "go.mongodb.org/mongo-driver/mongo"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/mongo"
)

// BaseMongoRepository MongoDB通用Repository实现
type BaseMongoRepository[T any] struct {
	db         mongo.Database
	collection string
}

// NewBaseMongoRepository 创建新的MongoDB Repository实例
func NewBaseMongoRepository[T any](db mongo.Database, collection string) domain.BaseRepository[T] {
	return &BaseMongoRepository[T]{
		db:         db,
		collection: collection,
	}
}

// Create 创建新实体
func (r *BaseMongoRepository[T]) Create(ctx context.Context, entity *T) error {
	if entity == nil {
		return errors.New("entity cannot be nil")
	}

	coll := r.db.Collection(r.collection)
	if _, err := coll.InsertOne(ctx, entity); err != nil {
		return fmt.Errorf("创建实体失败: %w", err)
	}
	return nil
}

// CreateMany 批量创建实体
func (r *BaseMongoRepository[T]) CreateMany(ctx context.Context, entities []*T) error {
	if len(entities) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(entities))
	for _, e := range entities {
		docs = append(docs, e)
	}

	coll := r.db.Collection(r.collection)
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("批量创建实体失败: %w", err)
	}
	return nil
}

// GetByID 根据ID获取实体
func (r *BaseMongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	if id.IsZero() {
		return nil, errors.New("id cannot be empty")
	}

	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, fmt.Errorf("entity not found with id: %s", id.Hex())
		}
		return nil, fmt.Errorf("获取实体失败: %w", err)
	}
	return &entity, nil
}

// GetAll 获取全部实体
func (r *BaseMongoRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.GetByFilter(ctx, bson.M{})
}

// GetByFilter 按过滤条件查询实体列表
func (r *BaseMongoRepository[T]) GetByFilter(ctx context.Context, filter interface{}) ([]T, error) {
	coll := r.db.Collection(r.collection)
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("查询实体失败: %w", err)
	}
	defer cursor.Close(ctx)

	entities := make([]T, 0)
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("解析实体失败: %w", err)
	}
	return entities, nil
}

// GetOneByFilter 按过滤条件查询单个实体
func (r *BaseMongoRepository[T]) GetOneByFilter(ctx context.Context, filter interface{}) (*T, error) {
	coll := r.db.Collection(r.collection)
	var entity T
	err := coll.FindOne(ctx, filter).Decode(&entity)
	if err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, err
		}
		return nil, fmt.Errorf("查询实体失败: %w", err)
	}
	return &entity, nil
}

// Count 实体计数
func (r *BaseMongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("统计实体失败: %w", err)
	}
	return count, nil
}

// GetPaginated 分页查询
func (r *BaseMongoRepository[T]) GetPaginated(ctx context.Context, filter interface{}, skip, limit int64) ([]T, error) {
	coll := r.db.Collection(r.collection)
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("分页查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	entities := make([]T, 0)
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("解析实体失败: %w", err)
	}
	return entities, nil
}

// GetPaginatedSorted 带排序的分页查询
func (r *BaseMongoRepository[T]) GetPaginatedSorted(ctx context.Context, filter interface{}, skip, limit int64, sortField string, ascending bool) ([]T, error) {
	direction := 1
	if !ascending {
		direction = -1
	}

	coll := r.db.Collection(r.collection)
	opts := options.Find().
		SetSkip(skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: sortField, Value: direction}})
	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("分页查询失败: %w", err)
	}
	defer cursor.Close(ctx)

	entities := make([]T, 0)
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("解析实体失败: %w", err)
	}
	return entities, nil
}
