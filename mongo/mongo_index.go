package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylesong/stylesong/domain"
)

func CreateIndexes(db Database) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Outfit Catalog Collection
	catalogCollection := db.Collection(domain.CollectionOutfitCatalog)
	createIndex(ctx, catalogCollection, bson.D{{Key: "outfit_id", Value: 1}}, "outfit_id")
	createIndex(ctx, catalogCollection, bson.D{{Key: "category", Value: 1}}, "category")
	createIndex(ctx, catalogCollection, bson.D{{Key: "brand", Value: 1}}, "brand")
	createIndex(ctx, catalogCollection, bson.D{{Key: "created_at", Value: -1}}, "created_at")
	// 复合索引优化：偏好过滤常按品类+色彩查
	createIndex(ctx, catalogCollection, bson.D{
		{Key: "category", Value: 1},
		{Key: "colors", Value: 1}}, "category_colors_compound")
	createTextIndex(ctx, catalogCollection, bson.D{
		{Key: "title", Value: "text"},
		{Key: "brand", Value: "text"},
		{Key: "description", Value: "text"}}, "outfit_text_search")

	// Preference Collection
	preferenceCollection := db.Collection(domain.CollectionStylePreference)
	createIndex(ctx, preferenceCollection, bson.D{{Key: "key", Value: 1}}, "key")

	// Feed Content Collection
	feedCollection := db.Collection(domain.CollectionFeedContent)
	createIndex(ctx, feedCollection, bson.D{{Key: "post_id", Value: 1}}, "post_id")
	createIndex(ctx, feedCollection, bson.D{{Key: "created_at", Value: 1}}, "created_at")

	// Interaction Collection
	interactionCollection := db.Collection(domain.CollectionFeedInteraction)
	createIndex(ctx, interactionCollection, bson.D{
		{Key: "user_id", Value: 1},
		{Key: "post_id", Value: 1}}, "user_post_compound")

	// TryOn Task Collection
	tryonCollection := db.Collection(domain.CollectionTryOnTask)
	createIndex(ctx, tryonCollection, bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}, "user_created_compound")
	createIndex(ctx, tryonCollection, bson.D{{Key: "task_id", Value: 1}}, "task_id")
}

func createIndex(ctx context.Context, coll Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		fmt.Printf("创建索引 %s 失败: %v\n", name, err)
	}
}

func createTextIndex(ctx context.Context, coll Collection, keys bson.D, name string) {
	model := mongo.IndexModel{
		Keys:    keys,
		Options: options.Index().SetName(name).SetDefaultLanguage("english"),
	}
	if _, err := coll.Indexes().CreateOne(ctx, model); err != nil {
		fmt.Printf("创建文本索引 %s 失败: %v\n", name, err)
	}
}
