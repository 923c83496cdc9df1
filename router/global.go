package router

import (
	"net/http"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/BestJex/incubator-wikift/config"
	"github.com/BestJex/incubator-wikift/constant"
	"github.com/BestJex/incubator-wikift/controller"
	"github.com/BestJex/incubator-wikift/middleware"
)

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
// 路由分为三层: 公开接口、USER 角色接口、ADMIN 角色接口。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.WikiftConfig,
	articleController *controller.ArticleController,
	remindController *controller.RemindController,
	spaceController *controller.SpaceController,
	userController *controller.UserController,
	hotArticleController *controller.HotArticleController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，自定义 Recovery 和 Logger
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	logger.Debug("已注册全局中间件")

	// --- 创建 API 版本分组 ---
	v1 := router.Group("/api/v1/wikift")
	logger.Debug("已创建 API/v1/wikift 分组")

	// 公开接口: 无需令牌
	articleController.RegisterPublicRoutes(v1)
	spaceController.RegisterPublicRoutes(v1)
	hotArticleController.RegisterPublicRoutes(v1)

	// USER 角色接口: 令牌 + USER 角色
	userGroup := v1.Group("")
	userGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTConfig, logger))
	userGroup.Use(middleware.RequireRole(middleware.RoleUser))
	articleController.RegisterUserRoutes(userGroup)
	remindController.RegisterUserRoutes(userGroup)
	spaceController.RegisterUserRoutes(userGroup)
	userController.RegisterUserRoutes(userGroup)

	// ADMIN 角色接口: 令牌 + ADMIN 角色
	adminGroup := v1.Group("")
	adminGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTConfig, logger))
	adminGroup.Use(middleware.RequireRole(middleware.RoleAdmin))
	remindController.RegisterAdminRoutes(adminGroup)

	logger.Info("所有控制器路由已注册到 /api/v1/wikift 分组")

	// --- 注册 Swagger UI 路由 ---
	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查等路由 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
