package route_feed

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/controller/controller_feed"
	"github.com/stylesong/stylesong/bootstrap"
	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/mongo"
	"github.com/stylesong/stylesong/repository/repository_feed"
	"github.com/stylesong/stylesong/usecase/usecase_feed"
)

func NewFeedRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	// 初始化repository
	contentRepo := repository_feed.NewContentRepository(db, domain.CollectionFeedContent)
	interactionRepo := repository_feed.NewInteractionRepository(db, domain.CollectionFeedInteraction)

	// 初始化usecase（会话注册表，进程内单例）
	feedUsecase := usecase_feed.NewFeedUsecase(contentRepo, interactionRepo, env.FeedPageSize, env.FeedMaxPages, timeout)

	// 初始化controller
	feedCtrl := controller_feed.NewFeedController(feedUsecase)

	// 注册路由
	feedGroup := group.Group("/feed/sessions")
	{
		// POST /feed/sessions
		feedGroup.POST("", feedCtrl.CreateSession)
		feedGroup.DELETE("/:id", feedCtrl.CloseSession)

		// POST /feed/sessions/:id/pages {"page": 2}
		feedGroup.POST("/:id/pages", feedCtrl.LoadPage)
		feedGroup.POST("/:id/refresh", feedCtrl.Refresh)

		// POST /feed/sessions/:id/scroll {"scroll_top": 1200, "viewport_height": 800, "scroll_height": 4000}
		feedGroup.POST("/:id/scroll", feedCtrl.OnScroll)

		feedGroup.POST("/:id/like", feedCtrl.ToggleLike)
		feedGroup.POST("/:id/save", feedCtrl.ToggleSave)
		feedGroup.POST("/:id/double_tap", feedCtrl.DoubleTapLike)

		// GET /feed/sessions/:id/trending?limit=10
		feedGroup.GET("/:id/trending", feedCtrl.TrendingHashtags)
	}
}
