package repository_feed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/domain/domain_feed/feed_interface"
	"github.com/stylesong/stylesong/domain/domain_feed/feed_models"
	"github.com/stylesong/stylesong/mongo"
	"github.com/stylesong/stylesong/repository"
)

type contentRepository struct {
	base       domain.BaseRepository[feed_models.FeedPost]
	collection string
}

func NewContentRepository(db mongo.Database, collection string) feed_interface.ContentSource {
	return &contentRepository{
		base:       repository.NewBaseMongoRepository[feed_models.FeedPost](db, collection),
		collection: collection,
	}
}

// FetchPage 确定性切片：start=(page-1)*limit，按created_at升序保证稳定顺序
func (r *contentRepository) FetchPage(ctx context.Context, page, limit int) ([]feed_models.FeedPost, bool, error) {
	if page <= 0 {
		return nil, false, fmt.Errorf("page参数必须大于0")
	}
	if limit <= 0 {
		return nil, false, fmt.Errorf("limit参数必须大于0")
	}

	skip := int64(page-1) * int64(limit)
	posts, err := r.base.GetPaginatedSorted(ctx, bson.M{}, skip, int64(limit), "created_at", true)
	if err != nil {
		return nil, false, fmt.Errorf("获取信息流内容失败: %w", err)
	}

	total, err := r.base.Count(ctx, bson.M{})
	if err != nil {
		return nil, false, fmt.Errorf("统计信息流内容失败: %w", err)
	}

	for i := range posts {
		posts[i].ApplyMediaFallbacks()
	}

	hasMore := skip+int64(len(posts)) < total
	return posts, hasMore, nil
}

func (r *contentRepository) Count(ctx context.Context) (int64, error) {
	return r.base.Count(ctx, bson.M{})
}
