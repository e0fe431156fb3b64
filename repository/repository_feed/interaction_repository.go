package repository_feed

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/stylesong/stylesong/domain/domain_feed/feed_interface"
	"github.com/stylesong/stylesong/mongo"
)

type interactionRepository struct {
	db         mongo.Database
	collection string
}

func NewInteractionRepository(db mongo.Database, collection string) feed_interface.InteractionRepository {
	return &interactionRepository{
		db:         db,
		collection: collection,
	}
}

func (r *interactionRepository) UpdateLiked(ctx context.Context, userID, postID string, liked bool) error {
	return r.upsertField(ctx, userID, postID, "liked", liked)
}

func (r *interactionRepository) UpdateSaved(ctx context.Context, userID, postID string, saved bool) error {
	return r.upsertField(ctx, userID, postID, "saved", saved)
}

func (r *interactionRepository) upsertField(ctx context.Context, userID, postID, field string, value bool) error {
	if userID == "" || postID == "" {
		return fmt.Errorf("user_id和post_id参数都是必需的")
	}

	coll := r.db.Collection(r.collection)
	filter := bson.M{"user_id": userID, "post_id": postID}
	update := bson.M{"$set": bson.M{
		field:        value,
		"updated_at": time.Now().UTC(),
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("更新交互状态失败: %w", err)
	}
	return nil
}
