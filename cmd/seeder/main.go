package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"

	appConfig "github.com/BestJex/incubator-wikift/config"
	"github.com/BestJex/incubator-wikift/dependencies"
	"github.com/BestJex/incubator-wikift/mq/producer"
	"github.com/BestJex/incubator-wikift/repo/mysql"
	redisRepo "github.com/BestJex/incubator-wikift/repo/redis"
	"github.com/BestJex/incubator-wikift/service"
)

func main() {
	// --- 0. 解析命令行参数 ---
	var configFile string
	var numUsers int
	var numArticles int
	var waitSeconds int
	flag.StringVar(&configFile, "config", "config/config.development.yaml", "配置文件路径")
	flag.IntVar(&numUsers, "users", 20, "要生成的用户数量 (默认: 20)")
	flag.IntVar(&numArticles, "n", 50, "要生成的文章数量 (默认: 50)")
	flag.IntVar(&waitSeconds, "wait", 5, "数据填充后等待的秒数 (确保异步任务完成, 默认: 5秒)")
	flag.Parse()

	absConfigFile, err := filepath.Abs(configFile)
	if err != nil {
		fmt.Printf("无法获取配置文件的绝对路径 '%s': %v\n", configFile, err)
		absConfigFile = configFile
	}
	fmt.Printf("准备使用配置文件 '%s' 生成 %d 个用户和 %d 篇文章...\n", absConfigFile, numUsers, numArticles)

	if numUsers <= 0 || numArticles <= 0 {
		fmt.Println("错误: 用户数量和文章数量都必须大于 0")
		os.Exit(1)
	}
	if waitSeconds < 0 {
		fmt.Println("错误: 等待秒数不能为负")
		os.Exit(1)
	}

	// --- 1. 加载配置 ---
	var cfg appConfig.WikiftConfig
	if err := core.LoadConfig(absConfigFile, &cfg); err != nil {
		fmt.Printf("加载配置失败 (%s): %v\n", absConfigFile, err)
		os.Exit(1)
	}
	fmt.Println("配置加载成功。")
	if cfg.MySQLConfig.Write.DSN == "" {
		fmt.Println("警告: MySQL Write DSN 为空，请检查配置文件与环境变量。")
	}

	// --- 2. 初始化日志记录器 ---
	logger, loggerErr := core.NewZapLogger(cfg.ZapConfig)
	if loggerErr != nil {
		fmt.Printf("初始化 ZapLogger 失败: %v\n", loggerErr)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Logger().Sync()
	}()
	logger.Info("Logger 初始化成功 (Seeder)")

	// --- 3. 初始化 MySQL ---
	db, dbErr := dependencies.InitMySQL(&cfg, logger)
	if dbErr != nil {
		logger.Fatal("初始化 MySQL 失败 (Seeder)", zap.Error(dbErr))
	}
	logger.Info("MySQL 连接成功 (Seeder)")

	// --- 4. 初始化 Kafka 生产者 (可选) ---
	var kafkaProducer *producer.KafkaProducer
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer = producer.NewKafkaProducer(cfg.KafkaConfig, logger)
		logger.Info("Kafka 生产者已初始化 (Seeder)")
	} else {
		logger.Warn("未配置 Kafka brokers，提醒扇出将走进程内直连路径 (Seeder)")
	}

	// --- 5. 初始化 Redis (可选，失败时排行榜维护被跳过) ---
	var rankRepo redisRepo.ArticleRankRepository
	rdb, redisErr := dependencies.InitRedis(&cfg, logger)
	if redisErr != nil {
		logger.Warn("初始化 Redis 失败 (Seeder)，文章排行榜将不会更新", zap.Error(redisErr))
	} else {
		rankRepo = redisRepo.NewArticleRankRepository(rdb, logger)
	}

	// --- 6. 初始化 Repositories ---
	articleRepo := mysql.NewArticleRepository(db, logger)
	articleListRepo := mysql.NewArticleListRepository(db, logger)
	historyRepo := mysql.NewArticleHistoryRepository(db, logger)
	tagRepo := mysql.NewTagRepository(db, logger)
	userRepo := mysql.NewUserRepository(db, logger)
	spaceRepo := mysql.NewSpaceRepository(db, logger)
	remindRepo := mysql.NewRemindRepository(db, logger)
	engagementRepo := mysql.NewEngagementRepository(db, logger)

	// --- 7. 初始化 Services ---
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
	spaceService := service.NewSpaceService(spaceRepo, articleListRepo, logger)
	userService := service.NewUserService(userRepo, logger)
	logger.Info("Services 已初始化 (Seeder)")

	// --- 8. 执行数据填充 ---
	ctx := context.Background()
	startTime := time.Now()
	logger.Info("开始执行数据填充...", zap.Int("用户数", numUsers), zap.Int("文章数", numArticles))

	Seed(ctx, &seedDeps{
		db:             db,
		userRepo:       userRepo,
		tagRepo:        tagRepo,
		spaceService:   spaceService,
		userService:    userService,
		articleService: articleService,
		logger:         logger,
	}, numUsers, numArticles)

	duration := time.Since(startTime)
	logger.Info("数据填充主要逻辑完成！", zap.Duration("耗时", duration))

	// --- 9. 等待异步任务 (Kafka 发送 / 提醒扇出协程) 完成 ---
	if waitSeconds > 0 {
		logger.Info(fmt.Sprintf("Seeder: 等待 %d 秒以允许异步任务完成...", waitSeconds))
		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}

	if kafkaProducer != nil {
		if err := kafkaProducer.Close(); err != nil {
			logger.Error("关闭 Kafka 生产者失败 (Seeder)", zap.Error(err))
		}
	}

	fmt.Printf("数据填充完成！总耗时（包括等待）: %v\n", time.Since(startTime))
	logger.Info("Seeder main: 所有任务完成，准备退出。")
}
