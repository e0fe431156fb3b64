package feed_interface

import (
	"context"

	"github.com/stylesong/stylesong/domain/domain_feed/feed_models"
)

// ContentSource 信息流内容源
// FetchPage按 start=(page-1)*limit 的确定性切片返回第page页内容
type ContentSource interface {
	FetchPage(ctx context.Context, page, limit int) ([]feed_models.FeedPost, bool, error)
	Count(ctx context.Context) (int64, error)
}

// InteractionRepository 点赞/收藏状态的异步落库
// 会话内状态生效不依赖落库结果（fire-and-forget）
type InteractionRepository interface {
	UpdateLiked(ctx context.Context, userID, postID string, liked bool) error
	UpdateSaved(ctx context.Context, userID, postID string, saved bool) error
}
