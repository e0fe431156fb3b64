package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stylesong/stylesong/api/middleware"
	"github.com/stylesong/stylesong/api/route/route_feed"
	"github.com/stylesong/stylesong/api/route/route_outfit"
	"github.com/stylesong/stylesong/api/route/route_tryon"
	"github.com/stylesong/stylesong/bootstrap"
	"github.com/stylesong/stylesong/mongo"
)

func Setup(env *bootstrap.Env, timeout time.Duration, db mongo.Database, engine *gin.Engine) {
	publicRouter := engine.Group("/api")

	protectedRouter := engine.Group("/api")
	protectedRouter.Use(middleware.JwtAuthMiddleware(env.JWTSecret))

	route_outfit.NewOutfitRouter(env, timeout, db, publicRouter, protectedRouter)
	route_feed.NewFeedRouter(env, timeout, db, protectedRouter)
	route_tryon.NewTryOnRouter(env, timeout, db, protectedRouter)
}
