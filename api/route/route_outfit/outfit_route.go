package route_outfit

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/controller/controller_outfit"
	"github.com/stylesong/stylesong/bootstrap"
	"github.com/stylesong/stylesong/domain"
	"github.com/stylesong/stylesong/mongo"
	"github.com/stylesong/stylesong/repository/repository_outfit"
	"github.com/stylesong/stylesong/usecase/usecase_outfit"
)

func NewOutfitRouter(
	env *bootstrap.Env,
	timeout time.Duration,
	db mongo.Database,
	public *gin.RouterGroup,
	protected *gin.RouterGroup,
) {
	// 初始化repository
	catalogRepo := repository_outfit.NewCatalogRepository(db, domain.CollectionOutfitCatalog)
	preferenceRepo := repository_outfit.NewPreferenceRepository(db, domain.CollectionStylePreference)
	searchRepo := repository_outfit.NewSearchRepository(env.SearchAPIURL, timeout)

	// 初始化usecase
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	catalogUsecase := usecase_outfit.NewCatalogUsecase(catalogRepo, searchRepo, timeout)
	preferenceUsecase := usecase_outfit.NewPreferenceUsecase(catalogRepo, preferenceRepo, rng, timeout)
	brandIndexUsecase := usecase_outfit.NewBrandIndexUsecase(catalogRepo, timeout)

	// 初始化controller
	outfitCtrl := controller_outfit.NewOutfitController(catalogUsecase, preferenceUsecase, brandIndexUsecase)
	preferenceCtrl := controller_outfit.NewPreferenceController(preferenceUsecase)

	// 注册路由
	outfitGroup := public.Group("/outfits")
	{
		// GET /outfits?page=1&page_size=20&sort=created_at&order=desc
		outfitGroup.GET("", outfitCtrl.ListOutfits)

		// GET /outfits/search?query=blazer&category=Professional&limit=20
		outfitGroup.GET("/search", outfitCtrl.SearchOutfits)
	}

	// GET /brands/index
	public.GET("/brands/index", outfitCtrl.BrandIndex)

	// 个性化推荐与偏好读写需要用户身份
	// GET /outfits/recommend?limit=30
	protected.GET("/outfits/recommend", outfitCtrl.Recommend)

	preferenceGroup := protected.Group("/preferences")
	{
		preferenceGroup.GET("", preferenceCtrl.GetPreference)
		preferenceGroup.PUT("", preferenceCtrl.PutPreference)
	}
}
