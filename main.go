package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	_ "github.com/BestJex/incubator-wikift/docs" // swag 生成的 API 文档

	appConfig "github.com/BestJex/incubator-wikift/config"
	"github.com/BestJex/incubator-wikift/constant"
	"github.com/BestJex/incubator-wikift/controller"
	"github.com/BestJex/incubator-wikift/dependencies"
	"github.com/BestJex/incubator-wikift/mq/consumer"
	"github.com/BestJex/incubator-wikift/mq/producer"
	"github.com/BestJex/incubator-wikift/repo/mysql"
	redisrepo "github.com/BestJex/incubator-wikift/repo/redis"
	"github.com/BestJex/incubator-wikift/router"
	"github.com/BestJex/incubator-wikift/service"
	"github.com/BestJex/incubator-wikift/tasks"

	sharedCore "github.com/Xushengqwer/go-common/core"
	sharedTracing "github.com/Xushengqwer/go-common/core/tracing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// @title           Wikift Service API
// @version         1.0
// @description     知识库服务，提供文章、空间、标签、点赞、浏览统计与关注提醒等功能。
// @termsOfService  http://swagger.io/terms/

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1/wikift

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @schemes http https
func main() {
	// --- 配置和基础设置 ---
	var configFile string
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "Path to configuration file")
	flag.Parse()

	// 1. 加载配置
	var cfg appConfig.WikiftConfig
	if err := sharedCore.LoadConfig(configFile, &cfg); err != nil {
		log.Fatalf("FATAL: 加载配置失败 (%s): %v", configFile, err)
	}

	// 打印最终生效的配置以供调试
	configBytes, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		log.Fatalf("无法序列化配置以进行打印: %v", err)
	}
	log.Printf("配置加载成功，最终生效的配置如下:\n%s\n", string(configBytes))

	// 2. 初始化 Logger
	logger, loggerErr := sharedCore.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		log.Fatalf("FATAL: 初始化 ZapLogger 失败: %v", loggerErr)
	}
	defer func() {
		logger.Info("正在同步日志...")
		if err := logger.Logger().Sync(); err != nil {
			log.Printf("WARN: ZapLogger Sync 失败: %v\n", err)
		}
	}()
	logger.Info("Logger 初始化成功")

	// 3. 初始化 TracerProvider
	var tracerShutdown func(context.Context) error
	if cfg.TracerConfig.Enabled {
		var err error
		tracerShutdown, err = sharedTracing.InitTracerProvider(
			constant.ServiceName,
			constant.ServiceVersion,
			cfg.TracerConfig,
		)
		if err != nil {
			logger.Fatal("初始化 TracerProvider 失败", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			logger.Info("正在关闭 TracerProvider...")
			if err := tracerShutdown(ctx); err != nil {
				logger.Error("关闭 TracerProvider 失败", zap.Error(err))
			} else {
				logger.Info("TracerProvider 已成功关闭")
			}
		}()
		logger.Info("分布式追踪已初始化")
		// 当前服务没有出站 HTTP 调用，初始化 Transport 备用
		_ = otelhttp.NewTransport(http.DefaultTransport)
	} else {
		logger.Info("分布式追踪已禁用")
		tracerShutdown = func(ctx context.Context) error { return nil }
	}

	// --- 4. 初始化核心依赖 ---
	// 4.1 数据库 (MySQL)
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 数据库失败", zap.Error(dbErr))
	}
	logger.Info("MySQL 数据库连接成功")

	// 4.2 Redis
	rdb, redisErr := dependencies.InitRedis(&cfg, logger)
	if redisErr != nil {
		logger.Fatal("初始化 Redis 失败", zap.Error(redisErr))
	}
	logger.Info("Redis 连接成功")

	// 4.3 Kafka 生产者
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化")
	} else {
		logger.Warn("未配置 Kafka brokers，文章创建提醒将走进程内直连扇出")
	}

	// --- 5. 初始化数据仓库层 (Repositories) ---
	articleRepo := mysql.NewArticleRepository(db, logger)
	articleListRepo := mysql.NewArticleListRepository(db, logger)
	historyRepo := mysql.NewArticleHistoryRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	userRepo := mysql.NewUserRepository(db, logger)
	spaceRepo := mysql.NewSpaceRepository(db, logger)
	remindRepo := mysql.NewRemindRepository(db, logger)
	engagementRepo := mysql.NewEngagementRepository(db, logger)
	logger.Debug("MySQL Repositories 初始化完成")

	rankRepo := redisrepo.NewArticleRankRepository(rdb, logger)
	hotCache := redisrepo.NewHotArticlesCache(rankRepo, articleRepo, rdb, logger)
	logger.Debug("Redis Repositories 初始化完成")

	// --- 6. 初始化服务层 (Services) ---
	remindService := service.NewRemindService(db, remindRepo, articleRepo, userRepo, logger)
	articleService := service.NewArticleService(
		db,
		articleRepo,
		historyRepo,
		tagRepo,
		engagementRepo,
		remindRepo,
		userRepo,
		rankRepo,
		remindService,
		kafkaProducer,
		logger,
	)
	articleListService := service.NewArticleListService(articleListRepo, tagRepo, logger)
	spaceService := service.NewSpaceService(spaceRepo, articleListRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	hotArticleService := service.NewHotArticleService(hotCache, articleListRepo, logger)
	logger.Debug("Services 初始化完成")

	// --- 7. 初始化控制器层 (Controllers) ---
	articleController := controller.NewArticleController(articleService, articleListService)
	remindController := controller.NewRemindController(remindService)
	spaceController := controller.NewSpaceController(spaceService)
	userController := controller.NewUserController(userService)
	hotArticleController := controller.NewHotArticleController(hotArticleService)
	logger.Debug("Controllers 初始化完成")

	// --- 8. 初始化 Kafka 消费者 ---
	var consumers []*consumer.Consumer
	var consumerWg sync.WaitGroup

	// 可取消的 context，用于通知所有消费者停止
	var consumerCtx, consumerCancel = context.WithCancel(context.Background())

	if len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.ConsumerGroupID
		if groupID == "" {
			logger.Warn("Kafka ConsumerGroupID 未在配置中设置，将使用默认值 'wikift_service_group'")
			groupID = "wikift_service_group"
		}

		// 文章创建事件消费者，负责关注者提醒扇出
		createdTopic := cfg.KafkaConfig.Topics.ArticleCreated
		if createdTopic != "" {
			fanoutHandler := consumer.NewRemindFanoutHandler(logger, remindService)
			fanoutConsumer, err := consumer.NewConsumer(
				&cfg.KafkaConfig,
				groupID,
				createdTopic,
				fanoutHandler,
				logger,
			)
			if err != nil {
				logger.Fatal("初始化文章创建事件消费者失败", zap.Error(err))
			}
			consumers = append(consumers, fanoutConsumer)
			logger.Info("文章创建事件消费者已准备就绪", zap.String("topic", createdTopic))
		} else {
			logger.Warn("articleCreated topic 未配置，跳过提醒扇出消费者创建")
		}

		if len(consumers) > 0 {
			logger.Info(fmt.Sprintf("准备启动 %d 个 Kafka 消费者...", len(consumers)))
			for _, c := range consumers {
				consumerWg.Add(1)
				go func(cons *consumer.Consumer) {
					defer consumerWg.Done()
					cons.Start(consumerCtx)
				}(c)
			}
		} else {
			logger.Warn("没有配置任何有效的 Kafka 消费者。")
		}
	} else {
		logger.Warn("Kafka Brokers 未配置，跳过所有 Kafka 消费者初始化。")
	}

	// --- 9. 初始化定时任务 ---
	cacheTask := tasks.NewHotArticlesCacheTask(hotCache, cfg.HotCacheConfig, logger)
	logger.Info("后台定时任务已初始化并启动")

	// --- 10. 设置 Gin 路由器 ---
	ginRouter := router.SetupRouter(logger, &cfg, articleController, remindController, spaceController, userController, hotArticleController)
	logger.Info("Gin 路由器已设置")

	// --- 11. 启动 HTTP 服务器 ---
	serverAddr := fmt.Sprintf(":%s", cfg.ServerConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: ginRouter,
	}

	go func() {
		logger.Info("HTTP 服务器开始监听", zap.String("address", serverAddr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP 服务器启动失败", zap.Error(err))
		}
		logger.Info("HTTP 服务器已停止监听")
	}()

	// --- 12. 优雅关停 ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	receivedSignal := <-quit
	logger.Info("收到关停信号，开始优雅退出...", zap.String("signal", receivedSignal.String()))

	shutdownCtx, shutdownCancelFunc := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancelFunc()

	// a. 停止 HTTP 服务器，允许处理完当前请求
	logger.Info("正在关闭 HTTP 服务器...")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("关闭 HTTP 服务器失败", zap.Error(err))
	} else {
		logger.Info("HTTP 服务器已成功关闭")
	}

	// b. 关闭 Kafka 消费者
	if consumerCancel != nil {
		logger.Info("正在发送停止信号给 Kafka 消费者...")
		consumerCancel()
	}
	logger.Info("等待 Kafka 消费者停止...")
	consumerWg.Wait()

	for _, c := range consumers {
		if err := c.Close(); err != nil {
			logger.Error("关闭某个 Kafka 消费者时出错", zap.Error(err))
		}
	}
	logger.Info("所有 Kafka 消费者已停止。")

	// c. 关闭 Kafka 生产者
	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者时出错", zap.Error(err))
		}
	}

	// d. 停止定时任务调度器，等待运行中的任务结束
	logger.Info("正在停止定时任务...")
	cacheStopCtx := cacheTask.Stop()
	select {
	case <-cacheStopCtx.Done():
		logger.Info("热榜缓存任务已停止")
	case <-shutdownCtx.Done():
		logger.Error("等待定时任务停止超时", zap.Error(shutdownCtx.Err()))
	}

	// e. TracerProvider 的关闭已通过 defer 处理
	_ = tracerShutdown

	logger.Info("服务已成功关闭")
}
