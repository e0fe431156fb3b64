package repository_outfit

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylesong/stylesong/domain/domain_outfit/outfit_interface"
	"github.com/stylesong/stylesong/mongo"
)

// preferenceDocument 键值存储文档：value为序列化后的偏好JSON
type preferenceDocument struct {
	Key       string    `bson:"key"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type preferenceRepository struct {
	db         mongo.Database
	collection string
}

func NewPreferenceRepository(db mongo.Database, collection string) outfit_interface.PreferenceRepository {
	return &preferenceRepository{
		db:         db,
		collection: collection,
	}
}

func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("key参数是必需的")
	}

	coll := r.db.Collection(r.collection)
	var doc preferenceDocument
	if err := coll.FindOne(ctx, bson.M{"key": key}).Decode(&doc); err != nil {
		return "", fmt.Errorf("读取偏好记录失败: %w", err)
	}
	return doc.Value, nil
}

// Set 写入偏好记录，同键覆盖（last-write-wins）
func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("key参数是必需的")
	}

	coll := r.db.Collection(r.collection)
	update := bson.M{"$set": bson.M{
		"value":      value,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, bson.M{"key": key}, update, opts); err != nil {
		return fmt.Errorf("写入偏好记录失败: %w", err)
	}
	return nil
}
