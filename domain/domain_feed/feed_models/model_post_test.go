package feed_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashtags(t *testing.T) {
	cases := []struct {
		name        string
		description string
		want        []string
	}{
		{"多个标签", "今日穿搭 #ootd #streetstyle 走起", []string{"#ootd", "#streetstyle"}},
		{"无标签", "随便写点什么", []string{}},
		{"裸井号不算标签", "价格 # 99", []string{}},
		{"空描述", "", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := FeedPost{Description: tc.description}
			assert.Equal(t, tc.want, p.Hashtags())
		})
	}
}

func TestApplyMediaFallbacks(t *testing.T) {
	p := FeedPost{}
	p.ApplyMediaFallbacks()

	assert.Equal(t, FallbackMediaRef, p.MediaRef)
	assert.Equal(t, FallbackThumbnailRef, p.ThumbnailRef)
	assert.Equal(t, FallbackUserProfileRef, p.UserProfileRef)
}

func TestApplyMediaFallbacks_KeepsExistingRefs(t *testing.T) {
	p := FeedPost{
		MediaRef:       "https://cdn.example.com/v.mp4",
		ThumbnailRef:   "https://cdn.example.com/t.jpg",
		UserProfileRef: "https://cdn.example.com/a.png",
	}
	p.ApplyMediaFallbacks()

	assert.Equal(t, "https://cdn.example.com/v.mp4", p.MediaRef)
	assert.Equal(t, "https://cdn.example.com/t.jpg", p.ThumbnailRef)
	assert.Equal(t, "https://cdn.example.com/a.png", p.UserProfileRef)
}
