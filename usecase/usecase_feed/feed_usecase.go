package usecase_feed

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stylesong/stylesong/domain/domain_feed/feed_interface"
	"github.com/stylesong/stylesong/domain/domain_feed/feed_models"
	"github.com/stylesong/stylesong/domain/domain_util"
)

// FeedUsecase 会话注册表：每个客户端一个FeedSession
// 会话随显式关闭丢弃，不做持久化
type FeedUsecase struct {
	source       feed_interface.ContentSource
	interactions feed_interface.InteractionRepository
	pageSize     int
	maxPages     int
	timeout      time.Duration
	now          Clock

	mu       sync.Mutex
	sessions map[string]*FeedSession
}

func NewFeedUsecase(
	source feed_interface.ContentSource,
	interactions feed_interface.InteractionRepository,
	pageSize, maxPages int,
	timeout time.Duration,
) *FeedUsecase {
	return &FeedUsecase{
		source:       source,
		interactions: interactions,
		pageSize:     pageSize,
		maxPages:     maxPages,
		timeout:      timeout,
		now:          time.Now,
		sessions:     map[string]*FeedSession{},
	}
}

func (uc *FeedUsecase) CreateSession(userID string) *FeedSession {
	session := NewFeedSession(uuid.NewString(), userID, uc.source, uc.interactions, uc.pageSize, uc.maxPages, uc.now)

	uc.mu.Lock()
	uc.sessions[session.ID()] = session
	uc.mu.Unlock()
	return session
}

func (uc *FeedUsecase) GetSession(sessionID string) (*FeedSession, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	session, ok := uc.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("未找到会话: %s", sessionID)
	}
	return session, nil
}

func (uc *FeedUsecase) CloseSession(sessionID string) {
	uc.mu.Lock()
	delete(uc.sessions, sessionID)
	uc.mu.Unlock()
}

func (uc *FeedUsecase) LoadPage(ctx context.Context, sessionID string, page int) (FeedState, error) {
	session, err := uc.GetSession(sessionID)
	if err != nil {
		return FeedState{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	loadErr := session.LoadPage(ctx, page)
	return session.Snapshot(), loadErr
}

func (uc *FeedUsecase) Refresh(ctx context.Context, sessionID string) (FeedState, error) {
	session, err := uc.GetSession(sessionID)
	if err != nil {
		return FeedState{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	refreshErr := session.Refresh(ctx)
	return session.Snapshot(), refreshErr
}

func (uc *FeedUsecase) OnScroll(ctx context.Context, sessionID string, scrollTop, viewportHeight, scrollHeight float64) (FeedState, error) {
	session, err := uc.GetSession(sessionID)
	if err != nil {
		return FeedState{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	scrollErr := session.OnScroll(ctx, scrollTop, viewportHeight, scrollHeight)
	return session.Snapshot(), scrollErr
}

func (uc *FeedUsecase) ToggleLike(sessionID, postID string) (*feed_models.FeedPost, error) {
	session, err := uc.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return session.ToggleLike(postID)
}

func (uc *FeedUsecase) ToggleSave(sessionID, postID string) (*feed_models.FeedPost, error) {
	session, err := uc.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return session.ToggleSave(postID)
}

func (uc *FeedUsecase) DoubleTapLike(sessionID, postID string) (bool, *feed_models.FeedPost, error) {
	session, err := uc.GetSession(sessionID)
	if err != nil {
		return false, nil, err
	}
	return session.DoubleTapLike(postID)
}

func (uc *FeedUsecase) TrendingHashtags(sessionID string, limit int) ([]domain_util.TagCount, error) {
	session, err := uc.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	return session.TrendingHashtags(limit), nil
}
