package route_tryon

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/controller/controller_tryon"
	"github.com/stylesong/stylesong/bootstrap"
	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/mongo"
	"github.com/stylesong/stylesong/repository/repository_tryon"
	"github.com/stylesong/stylesong/usecase/usecase_tryon"
)

func NewTryOnRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	group *gin.RouterGroup,
) {
	// 生成调用远慢于常规请求，单独超时
	generationTimeout := time.Duration(env.TryOnTimeout) * time.Second

	// 初始化repository
	generationRepo := repository_tryon.NewGenerationRepository(env.TryOnAPIURL, env.TryOnAPIKey, generationTimeout)
	taskRepo := repository_tryon.NewTryOnTaskRepository(db, domain.CollectionTryOnTask)

	// 初始化usecase
	tryonUsecase := usecase_tryon.NewTryOnUsecase(generationRepo, taskRepo, env.UploadDir, generationTimeout)

	// 初始化controller
	tryonCtrl := controller_tryon.NewTryOnController(tryonUsecase)

	// 注册路由
	tryonGroup := group.Group("/tryon")
	{
		// POST /tryon/upload (multipart: image)
		tryonGroup.POST("/upload", tryonCtrl.Upload)

		// POST /tryon {"human_image_ref": "...", "garment_image_ref": "...", "category": "Casual"}
		tryonGroup.POST("", tryonCtrl.Generate)

		// GET /tryon/history?limit=20
		tryonGroup.GET("/history", tryonCtrl.History)
	}
}
