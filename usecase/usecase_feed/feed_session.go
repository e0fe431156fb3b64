package usecase_feed

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stylesong/stylesong/domain/domain_feed/feed_interface"
	"github.com/stylesong/stylesong/domain/domain_feed/feed_models"
	"github.com/stylesong/stylesong/domain/domain_util"
)

type Clock func() time.Time

const (
	// 双击判定窗口：第一下起表，窗口内第二下触发点赞
	doubleTapWindow = 300 * time.Millisecond
	// 滚动事件合并间隔，避免高频滚动反复触发翻页
	scrollCoalesceInterval = 100 * time.Millisecond
)

// FeedState 会话状态快照，控制器直接序列化返回
type FeedState struct {
	SessionID       string                 `json:"session_id"`
	Posts           []feed_models.FeedPost `json:"posts"`
	CurrentPage     int                    `json:"current_page"`
	HasMore         bool                   `json:"has_more"`
	IsLoadingMore   bool                   `json:"is_loading_more"`
	IsFetchingError bool                   `json:"is_fetching_error"`
	CurrentIndex    int                    `json:"current_index"`
}

// FeedSession 单个客户端的信息流会话
// 帖子列表只归会话所有，所有状态变更都经由会话方法
type FeedSession struct {
	id           string
	userID       string
	source       feed_interface.ContentSource
	interactions feed_interface.InteractionRepository
	pageSize     int
	maxPages     int
	now          Clock

	mu              sync.Mutex
	posts           []feed_models.FeedPost
	currentPage     int
	hasMore         bool
	isLoadingFirst  bool
	isLoadingMore   bool
	isFetchingError bool
	currentIndex    int
	generation      int
	lastScrollAt    time.Time
	firstTapAt      map[string]time.Time
}

func NewFeedSession(
	id, userID string,
	source feed_interface.ContentSource,
	interactions feed_interface.InteractionRepository,
	pageSize, maxPages int,
	now Clock,
) *FeedSession {
	if now == nil {
		now = time.Now
	}
	return &FeedSession{
		id:           id,
		userID:       userID,
		source:       source,
		interactions: interactions,
		pageSize:     pageSize,
		maxPages:     maxPages,
		now:          now,
		posts:        []feed_models.FeedPost{},
		hasMore:      true,
		firstTapAt:   map[string]time.Time{},
	}
}

func (s *FeedSession) ID() string { return s.id }

// LoadPage 加载第page页并合并进会话
// 同时只允许一个在途请求；合并前校验generation，刷新后到达的过期响应直接丢弃
func (s *FeedSession) LoadPage(ctx context.Context, page int) error {
	if page <= 0 {
		return fmt.Errorf("page参数必须大于0")
	}

	s.mu.Lock()
	if s.isLoadingFirst || s.isLoadingMore {
		s.mu.Unlock()
		return nil
	}
	if page > 1 && !s.hasMore {
		s.mu.Unlock()
		return nil
	}
	if page > s.maxPages {
		s.hasMore = false
		s.mu.Unlock()
		return nil
	}
	gen := s.generation
	if page == 1 {
		s.isLoadingFirst = true
	} else {
		s.isLoadingMore = true
	}
	s.mu.Unlock()

	pagePosts, srcHasMore, err := s.source.FetchPage(ctx, page, s.pageSize)

	// 耗尽补齐：自然切片不足一页且后备序列非空时，
	// 从序列头部复用内容合成新帖（新id），维持无尽信息流的观感
	var padded []feed_models.FeedPost
	if err == nil && len(pagePosts) < s.pageSize {
		front, _, frontErr := s.source.FetchPage(ctx, 1, s.pageSize)
		if frontErr == nil && len(front) > 0 {
			need := s.pageSize - len(pagePosts)
			for i := 0; i < need; i++ {
				padded = append(padded, s.synthesize(front[i%len(front)]))
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if page == 1 {
		s.isLoadingFirst = false
	} else {
		s.isLoadingMore = false
	}

	if gen != s.generation {
		return nil
	}
	if err != nil {
		s.isFetchingError = true
		return fmt.Errorf("加载第%d页失败: %w", page, err)
	}
	s.isFetchingError = false

	pagePosts = append(pagePosts, padded...)

	if page == 1 {
		s.posts = pagePosts
	} else {
		existing := make(map[string]bool, len(s.posts))
		for _, p := range s.posts {
			existing[p.PostID] = true
		}
		for _, p := range pagePosts {
			if existing[p.PostID] {
				continue
			}
			s.posts = append(s.posts, p)
			existing[p.PostID] = true
		}
	}
	s.currentPage = page

	if page >= s.maxPages {
		s.hasMore = false
	} else {
		s.hasMore = srcHasMore || len(pagePosts) > 0
	}
	return nil
}

func (s *FeedSession) synthesize(p feed_models.FeedPost) feed_models.FeedPost {
	clone := p
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	clone.PostID = fmt.Sprintf("%s_%d_%s", p.PostID, s.now().UnixMilli(), token)
	clone.IsLiked = false
	clone.IsSaved = false
	return clone
}

// Refresh 下拉刷新：推进generation（在途响应作废）并重置到第1页
func (s *FeedSession) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	s.currentPage = 0
	s.currentIndex = 0
	s.hasMore = true
	s.isFetchingError = false
	s.isLoadingFirst = false
	s.isLoadingMore = false
	s.mu.Unlock()

	return s.LoadPage(ctx, 1)
}

// OnScroll 滚动事件处理：合并高频事件，维护当前帖索引，
// 距底部不足一个视口高度时提前预取下一页
func (s *FeedSession) OnScroll(ctx context.Context, scrollTop, viewportHeight, scrollHeight float64) error {
	if viewportHeight <= 0 {
		return fmt.Errorf("viewport_height参数必须大于0")
	}

	s.mu.Lock()
	now := s.now()
	if !s.lastScrollAt.IsZero() && now.Sub(s.lastScrollAt) < scrollCoalesceInterval {
		s.mu.Unlock()
		return nil
	}
	s.lastScrollAt = now

	if idx := int(math.Round(scrollTop / viewportHeight)); idx != s.currentIndex {
		s.currentIndex = idx
	}

	shouldLoad := scrollHeight-(scrollTop+viewportHeight) < viewportHeight &&
		!s.isLoadingFirst && !s.isLoadingMore && s.hasMore
	next := s.currentPage + 1
	s.mu.Unlock()

	if shouldLoad {
		return s.LoadPage(ctx, next)
	}
	return nil
}

// ToggleLike 翻转点赞状态，like_count与is_liked严格同步±1
func (s *FeedSession) ToggleLike(postID string) (*feed_models.FeedPost, error) {
	s.mu.Lock()
	post := s.findPost(postID)
	if post == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("未找到帖子: %s", postID)
	}
	post.IsLiked = !post.IsLiked
	if post.IsLiked {
		post.LikeCount++
	} else {
		post.LikeCount--
	}
	snapshot := *post
	s.mu.Unlock()

	s.persistLiked(snapshot.PostID, snapshot.IsLiked)
	return &snapshot, nil
}

func (s *FeedSession) ToggleSave(postID string) (*feed_models.FeedPost, error) {
	s.mu.Lock()
	post := s.findPost(postID)
	if post == nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("未找到帖子: %s", postID)
	}
	post.IsSaved = !post.IsSaved
	snapshot := *post
	s.mu.Unlock()

	s.persistSaved(snapshot.PostID, snapshot.IsSaved)
	return &snapshot, nil
}

// DoubleTapLike 双击点赞
// 第一下起表；窗口内第二下触发未赞则赞（已赞只做视觉反馈，不重复计数）；
// 窗口外的点击重新起表
func (s *FeedSession) DoubleTapLike(postID string) (bool, *feed_models.FeedPost, error) {
	s.mu.Lock()
	post := s.findPost(postID)
	if post == nil {
		s.mu.Unlock()
		return false, nil, fmt.Errorf("未找到帖子: %s", postID)
	}

	now := s.now()
	first, armed := s.firstTapAt[postID]
	if armed && now.Sub(first) <= doubleTapWindow {
		delete(s.firstTapAt, postID)
		liked := false
		if !post.IsLiked {
			post.IsLiked = true
			post.LikeCount++
			liked = true
		}
		snapshot := *post
		s.mu.Unlock()

		if liked {
			s.persistLiked(snapshot.PostID, true)
		}
		return true, &snapshot, nil
	}

	s.firstTapAt[postID] = now
	snapshot := *post
	s.mu.Unlock()
	return false, &snapshot, nil
}

// TrendingHashtags 统计会话内已加载帖子的话题热度Top-N
func (s *FeedSession) TrendingHashtags(limit int) []domain_util.TagCount {
	s.mu.Lock()
	counts := make(map[string]int)
	for i := range s.posts {
		for _, tag := range s.posts[i].Hashtags() {
			counts[tag]++
		}
	}
	s.mu.Unlock()

	return domain_util.TopTags(counts, limit)
}

func (s *FeedSession) Snapshot() FeedState {
	s.mu.Lock()
	defer s.mu.Unlock()

	posts := make([]feed_models.FeedPost, len(s.posts))
	copy(posts, s.posts)
	return FeedState{
		SessionID:       s.id,
		Posts:           posts,
		CurrentPage:     s.currentPage,
		HasMore:         s.hasMore,
		IsLoadingMore:   s.isLoadingMore,
		IsFetchingError: s.isFetchingError,
		CurrentIndex:    s.currentIndex,
	}
}

// findPost 调用方必须持锁
func (s *FeedSession) findPost(postID string) *feed_models.FeedPost {
	for i := range s.posts {
		if s.posts[i].PostID == postID {
			return &s.posts[i]
		}
	}
	return nil
}

func (s *FeedSession) persistLiked(postID string, liked bool) {
	if s.interactions == nil || s.userID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.interactions.UpdateLiked(ctx, s.userID, postID, liked); err != nil {
			log.Printf("点赞状态落库失败: %v", err)
		}
	}()
}

func (s *FeedSession) persistSaved(postID string, saved bool) {
	if s.interactions == nil || s.userID == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.interactions.UpdateSaved(ctx, s.userID, postID, saved); err != nil {
			log.Printf("收藏状态落库失败: %v", err)
		}
	}()
}
