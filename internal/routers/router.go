package routers

import (
	"time"

	"github.com/haierkeys/note-keeper-service/internal/app"
	"github.com/haierkeys/note-keeper-service/internal/middleware"
	"github.com/haierkeys/note-keeper-service/internal/routers/api_router"
	"github.com/haierkeys/note-keeper-service/pkg/limiter"

	"github.com/gin-gonic/gin"
	ut "github.com/go-playground/universal-translator"
)

var methodLimiters = limiter.NewMethodLimiter().AddBuckets(
	limiter.BucketRule{
		Key:          "/api/user",
		FillInterval: time.Second,
		Capacity:     10,
		Quantum:      10,
	},
)

// NewRouter 创建 API 路由
func NewRouter(appContainer *app.App, uni *ut.UniversalTranslator) *gin.Engine {

	// 获取配置
	cfg := appContainer.Config()

	r := gin.New()

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, appContainer.Version().Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header)) // Trace ID 中间件
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(cfg.GetContextTimeout()))
		api.Use(middleware.Cors())
		api.Use(middleware.LangWithTranslator(uni))
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		// 创建 Handlers（注入 App Container）
		userHandler := api_router.NewUserHandler(appContainer)
		noteHandler := api_router.NewNoteHandler(appContainer)
		shareHandler := api_router.NewShareHandler(appContainer)
		tagHandler := api_router.NewTagHandler(appContainer)
		versionHandler := api_router.NewVersionHandler(appContainer)

		// 无需认证的接口
		api.POST("/user/register", userHandler.Register)
		api.POST("/user/login", userHandler.Login)
		api.GET("/version", versionHandler.ServerVersion)

		// 需要认证的接口
		auth := api.Group("", middleware.UserAuthTokenWithConfig(cfg.Security.AuthTokenKey))

		auth.GET("/user/info", userHandler.UserInfo)
		auth.POST("/user/change_password", userHandler.UserChangePassword)

		auth.GET("/notes", noteHandler.List)
		auth.POST("/notes", noteHandler.Create)
		// 共享给我的列表需要注册在 /notes/:id 之前
		auth.GET("/notes/shared", shareHandler.SharedWithMe)
		auth.GET("/notes/:id", noteHandler.Get)
		auth.PUT("/notes/:id", noteHandler.Update)
		auth.PATCH("/notes/:id", noteHandler.Update)
		auth.DELETE("/notes/:id", noteHandler.Delete)

		auth.PUT("/notes/:id/pin", noteHandler.Pin)
		auth.PUT("/notes/:id/unpin", noteHandler.Unpin)
		auth.PUT("/notes/:id/favorite", noteHandler.Favorite)
		auth.PUT("/notes/:id/unfavorite", noteHandler.Unfavorite)
		auth.PUT("/notes/:id/archive", noteHandler.Archive)
		auth.PUT("/notes/:id/unarchive", noteHandler.Unarchive)

		auth.POST("/notes/:id/share", shareHandler.Share)
		auth.GET("/notes/:id/shares", shareHandler.ListGrants)
		auth.DELETE("/shares/:id", shareHandler.Unshare)

		auth.GET("/tags", tagHandler.List)
		auth.POST("/tags", tagHandler.Create)
	}

	r.Use(middleware.Cors())
	r.NoRoute(middleware.NoFound())

	return r
}
