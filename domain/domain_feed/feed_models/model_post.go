package feed_models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 媒体引用缺失时的兜底资源
const (
	FallbackMediaRef       = "https://cdn.stylesong.app/fallback/feed_media.mp4"
	FallbackThumbnailRef   = "https://cdn.stylesong.app/fallback/feed_thumbnail.jpg"
	FallbackUserProfileRef = "https://cdn.stylesong.app/fallback/avatar.png"
)

type ProductTag struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	ImageRef string  `bson:"image_ref" json:"image_ref"`
}

type FeedPost struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PostID         string             `bson:"post_id" json:"post_id"`
	MediaRef       string             `bson:"media_ref" json:"media_ref"`
	ThumbnailRef   string             `bson:"thumbnail_ref" json:"thumbnail_ref"`
	UserProfileRef string             `bson:"user_profile_ref" json:"user_profile_ref"`
	UserName       string             `bson:"user_name" json:"user_name"`
	BrandName      string             `bson:"brand_name" json:"brand_name"`
	Description    string             `bson:"description" json:"description"`
	LikeCount      int                `bson:"like_count" json:"like_count"`
	CommentCount   int                `bson:"comment_count" json:"comment_count"`
	ShareCount     int                `bson:"share_count" json:"share_count"`

	// 用户侧交互状态，仅存在于会话内存中
	IsLiked bool `bson:"-" json:"is_liked"`
	IsSaved bool `bson:"-" json:"is_saved"`

	ProductTag *ProductTag `bson:"product_tag,omitempty" json:"product_tag,omitempty"`
	CreatedAt  time.Time   `bson:"created_at" json:"created_at"`
}

// ApplyMediaFallbacks 媒体引用为空时替换为兜底资源
func (p *FeedPost) ApplyMediaFallbacks() {
	if p.MediaRef == "" {
		p.MediaRef = FallbackMediaRef
	}
	if p.ThumbnailRef == "" {
		p.ThumbnailRef = FallbackThumbnailRef
	}
	if p.UserProfileRef == "" {
		p.UserProfileRef = FallbackUserProfileRef
	}
}

// Hashtags 按空白切分描述文本，提取#开头的话题标签
func (p *FeedPost) Hashtags() []string {
	tags := make([]string, 0, 4)
	for _, token := range strings.Fields(p.Description) {
		if strings.HasPrefix(token, "#") && len(token) > 1 {
			tags = append(tags, token)
		}
	}
	return tags
}
