package usecase_feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stylesong/stylesong/domain/domain_feed/feed_models"
)

// fakeContentSource 从后备切片按页取数，支持按页注入失败和抓取钩子
type fakeContentSource struct {
	backing    []feed_models.FeedPost
	failPages  map[int]bool
	fetchCount int
	onFetch    func(page int)
}

func (f *fakeContentSource) FetchPage(_ context.Context, page, limit int) ([]feed_models.FeedPost, bool, error) {
	f.fetchCount++
	if f.onFetch != nil {
		f.onFetch(page)
	}
	if f.failPages[page] {
		return nil, false, errors.New("内容服务不可用")
	}

	start := (page - 1) * limit
	if start >= len(f.backing) {
		return []feed_models.FeedPost{}, false, nil
	}
	end := start + limit
	if end > len(f.backing) {
		end = len(f.backing)
	}
	posts := make([]feed_models.FeedPost, end-start)
	copy(posts, f.backing[start:end])
	return posts, end < len(f.backing), nil
}

func (f *fakeContentSource) Count(_ context.Context) (int64, error) {
	return int64(len(f.backing)), nil
}

type manualClock struct {
	t time.Time
}

func (c *manualClock) Now() time.Time {
	return c.t
}

func (c *manualClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func makePosts(n int) []feed_models.FeedPost {
	posts := make([]feed_models.FeedPost, n)
	for i := range posts {
		posts[i] = feed_models.FeedPost{
			PostID:      fmt.Sprintf("post-%02d", i+1),
			UserName:    fmt.Sprintf("user-%02d", i+1),
			Description: "今日穿搭 #ootd",
			LikeCount:   10 * (i + 1),
		}
	}
	return posts
}

func newTestSession(src *fakeContentSource, maxPages int, clock *manualClock) *FeedSession {
	return NewFeedSession("session-1", "user-1", src, nil, 5, maxPages, clock.Now)
}

func TestLoadPage_FirstPageReplacesPosts(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(12)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)

	require.NoError(t, s.LoadPage(context.Background(), 1))

	state := s.Snapshot()
	require.Len(t, state.Posts, 5)
	assert.Equal(t, "post-01", state.Posts[0].PostID)
	assert.Equal(t, 1, state.CurrentPage)
	assert.True(t, state.HasMore)
	assert.False(t, state.IsFetchingError)
}

func TestLoadPage_AppendsWithDedup(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(12)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)

	require.NoError(t, s.LoadPage(context.Background(), 1))
	require.NoError(t, s.LoadPage(context.Background(), 2))

	state := s.Snapshot()
	require.Len(t, state.Posts, 10)

	seen := map[string]bool{}
	for _, p := range state.Posts {
		assert.False(t, seen[p.PostID], "帖子id重复: %s", p.PostID)
		seen[p.PostID] = true
	}
	assert.Equal(t, 2, state.CurrentPage)
}

func TestLoadPage_ExhaustionPadsFromFront(t *testing.T) {
	// 后备序列6条、页大小5：第2页自然切片只有1条，需补齐4条合成帖
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)

	require.NoError(t, s.LoadPage(context.Background(), 1))
	require.NoError(t, s.LoadPage(context.Background(), 2))

	state := s.Snapshot()
	require.Len(t, state.Posts, 10)

	seen := map[string]bool{}
	synthesized := 0
	for _, p := range state.Posts {
		assert.False(t, seen[p.PostID])
		seen[p.PostID] = true
		if strings.Contains(p.PostID, "_") {
			synthesized++
			assert.True(t, strings.HasPrefix(p.PostID, "post-"))
			assert.False(t, p.IsLiked)
			assert.False(t, p.IsSaved)
		}
	}
	assert.Equal(t, 4, synthesized)
	assert.True(t, state.HasMore, "补齐后信息流仍应可继续加载")
}

func TestLoadPage_StopsAtMaxPages(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 3, clock)

	require.NoError(t, s.LoadPage(context.Background(), 1))
	require.NoError(t, s.LoadPage(context.Background(), 2))
	require.NoError(t, s.LoadPage(context.Background(), 3))

	state := s.Snapshot()
	assert.False(t, state.HasMore)
	assert.Equal(t, 3, state.CurrentPage)

	// 封顶之后不应再访问内容源
	before := src.fetchCount
	require.NoError(t, s.LoadPage(context.Background(), 4))
	assert.Equal(t, before, src.fetchCount)
	assert.Equal(t, 3, s.Snapshot().CurrentPage)
}

func TestLoadPage_RejectsNonPositivePage(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)

	assert.Error(t, s.LoadPage(context.Background(), 0))
	assert.Error(t, s.LoadPage(context.Background(), -1))
}

func TestLoadPage_FailureKeepsExistingPosts(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(12), failPages: map[int]bool{2: true}}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)

	require.NoError(t, s.LoadPage(context.Background(), 1))
	err := s.LoadPage(context.Background(), 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "加载第2页失败")

	state := s.Snapshot()
	assert.Len(t, state.Posts, 5)
	assert.True(t, state.IsFetchingError)
	assert.Equal(t, 1, state.CurrentPage)

	// 内容源恢复后重试成功，错误标志清除
	src.failPages = nil
	require.NoError(t, s.LoadPage(context.Background(), 2))
	state = s.Snapshot()
	assert.Len(t, state.Posts, 10)
	assert.False(t, state.IsFetchingError)
}

func TestRefresh_DiscardsStaleResponse(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(12)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)

	require.NoError(t, s.LoadPage(context.Background(), 1))

	// 第2页抓取进行中触发刷新：该响应的generation已过期，合并时必须丢弃
	refreshed := false
	src.onFetch = func(page int) {
		if page == 2 && !refreshed {
			refreshed = true
			src.onFetch = nil
			require.NoError(t, s.Refresh(context.Background()))
		}
	}
	require.NoError(t, s.LoadPage(context.Background(), 2))

	state := s.Snapshot()
	assert.Equal(t, 1, state.CurrentPage)
	require.Len(t, state.Posts, 5)
	assert.Equal(t, "post-01", state.Posts[0].PostID)
}

func TestRefresh_ResetsStateAndReloads(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(12)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 2, clock)

	require.NoError(t, s.LoadPage(context.Background(), 1))
	require.NoError(t, s.LoadPage(context.Background(), 2))
	require.False(t, s.Snapshot().HasMore)

	require.NoError(t, s.Refresh(context.Background()))

	state := s.Snapshot()
	assert.Equal(t, 1, state.CurrentPage)
	assert.Len(t, state.Posts, 5)
	assert.True(t, state.HasMore)
	assert.Equal(t, 0, state.CurrentIndex)
}

func TestOnScroll_UpdatesCurrentIndex(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(30)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	clock.Advance(time.Second)
	require.NoError(t, s.OnScroll(context.Background(), 1600, 800, 24000))

	assert.Equal(t, 2, s.Snapshot().CurrentIndex)
}

func TestOnScroll_CoalescesRapidEvents(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(30)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	clock.Advance(time.Second)
	require.NoError(t, s.OnScroll(context.Background(), 1600, 800, 24000))
	require.Equal(t, 2, s.Snapshot().CurrentIndex)

	// 间隔不足合并窗口的事件被忽略
	clock.Advance(50 * time.Millisecond)
	require.NoError(t, s.OnScroll(context.Background(), 3200, 800, 24000))
	assert.Equal(t, 2, s.Snapshot().CurrentIndex)

	// 越过窗口后恢复处理
	clock.Advance(150 * time.Millisecond)
	require.NoError(t, s.OnScroll(context.Background(), 3200, 800, 24000))
	assert.Equal(t, 4, s.Snapshot().CurrentIndex)
}

func TestOnScroll_PrefetchesNearBottom(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(30)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	// 距底部700 < 视口800：触发预取下一页
	clock.Advance(time.Second)
	require.NoError(t, s.OnScroll(context.Background(), 2500, 800, 4000))

	state := s.Snapshot()
	assert.Equal(t, 2, state.CurrentPage)
	assert.Len(t, state.Posts, 10)
}

func TestOnScroll_NoPrefetchFarFromBottom(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(30)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	clock.Advance(time.Second)
	require.NoError(t, s.OnScroll(context.Background(), 800, 800, 24000))

	assert.Equal(t, 1, s.Snapshot().CurrentPage)
}

func TestOnScroll_RejectsNonPositiveViewport(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(30)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)

	assert.Error(t, s.OnScroll(context.Background(), 0, 0, 4000))
}

func TestToggleLike_RoundTrip(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	post, err := s.ToggleLike("post-01")
	require.NoError(t, err)
	assert.True(t, post.IsLiked)
	assert.Equal(t, 11, post.LikeCount)

	post, err = s.ToggleLike("post-01")
	require.NoError(t, err)
	assert.False(t, post.IsLiked)
	assert.Equal(t, 10, post.LikeCount)
}

func TestToggleSave_RoundTrip(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	post, err := s.ToggleSave("post-02")
	require.NoError(t, err)
	assert.True(t, post.IsSaved)

	post, err = s.ToggleSave("post-02")
	require.NoError(t, err)
	assert.False(t, post.IsSaved)
}

func TestToggle_UnknownPost(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	_, err := s.ToggleLike("ghost")
	assert.Error(t, err)
	_, err = s.ToggleSave("ghost")
	assert.Error(t, err)
}

func TestDoubleTapLike_WithinWindow(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	fired, _, err := s.DoubleTapLike("post-01")
	require.NoError(t, err)
	assert.False(t, fired)

	clock.Advance(200 * time.Millisecond)
	fired, post, err := s.DoubleTapLike("post-01")
	require.NoError(t, err)
	assert.True(t, fired)
	assert.True(t, post.IsLiked)
	assert.Equal(t, 11, post.LikeCount)
}

func TestDoubleTapLike_OutsideWindowRearms(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	fired, _, err := s.DoubleTapLike("post-01")
	require.NoError(t, err)
	require.False(t, fired)

	clock.Advance(400 * time.Millisecond)
	fired, post, err := s.DoubleTapLike("post-01")
	require.NoError(t, err)
	assert.False(t, fired)
	assert.False(t, post.IsLiked)

	// 超窗的一击重新起表，窗口内再击仍可触发
	clock.Advance(100 * time.Millisecond)
	fired, post, err = s.DoubleTapLike("post-01")
	require.NoError(t, err)
	assert.True(t, fired)
	assert.True(t, post.IsLiked)
}

func TestDoubleTapLike_AlreadyLikedIsIdempotent(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	_, err := s.ToggleLike("post-01")
	require.NoError(t, err)

	fired, _, err := s.DoubleTapLike("post-01")
	require.NoError(t, err)
	require.False(t, fired)

	clock.Advance(100 * time.Millisecond)
	fired, post, err := s.DoubleTapLike("post-01")
	require.NoError(t, err)
	assert.True(t, fired)
	assert.True(t, post.IsLiked)
	assert.Equal(t, 11, post.LikeCount, "已赞帖子不应重复计数")
}

func TestTrendingHashtags(t *testing.T) {
	posts := makePosts(6)
	posts[0].Description = "通勤穿搭 #ootd #workwear"
	posts[1].Description = "周末逛街 #ootd"
	posts[2].Description = "运动日 #athleisure"
	src := &fakeContentSource{backing: posts}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	top := s.TrendingHashtags(2)
	require.Len(t, top, 2)
	assert.Equal(t, "#ootd", top[0].Tag)
	assert.Equal(t, 5, top[0].Count)
}

func TestSnapshot_IsACopy(t *testing.T) {
	src := &fakeContentSource{backing: makePosts(6)}
	clock := &manualClock{t: time.Unix(1700000000, 0)}
	s := newTestSession(src, 20, clock)
	require.NoError(t, s.LoadPage(context.Background(), 1))

	state := s.Snapshot()
	state.Posts[0].IsLiked = true

	assert.False(t, s.Snapshot().Posts[0].IsLiked)
}
