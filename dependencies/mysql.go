// dependencies/mysql.go
package dependencies

import (
	"fmt"
	"time"

	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	appConfig "github.com/BestJex/incubator-wikift/config"
	"github.com/BestJex/incubator-wikift/models/entities"
)

const (
	mysqlMaxRetries    = 5
	mysqlRetryInterval = 2 * time.Second
)

// InitMySQL 建立主库连接、按需注册读写分离、配置连接池并完成自动迁移。
// 从库为空时退化为单库模式。
func InitMySQL(cfg *appConfig.WikiftConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	mysqlCfg := cfg.MySQLConfig

	if mysqlCfg.Write.DSN == "" {
		return nil, fmt.Errorf("主数据库 DSN (mysql.write.dsn) 未配置")
	}

	db, err := openWriteDB(mysqlCfg.Write.DSN, cfg.GormLogConfig, logger)
	if err != nil {
		return nil, err
	}

	if err := registerReadReplicas(db, &mysqlCfg, logger); err != nil {
		return nil, err
	}

	if err := tuneConnectionPool(db, &mysqlCfg, logger); err != nil {
		return nil, err
	}

	if err := autoMigrate(db, logger); err != nil {
		return nil, err
	}

	logger.Info("成功初始化 MySQL 连接")
	return db, nil
}

// openWriteDB 带重试地连接主库，每次连接成功后还要 Ping 通才算数。
func openWriteDB(dsn string, gormLogCfg sharedConfig.GormLogConfig, logger *core.ZapLogger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: core.NewGormLogger(logger, gormLogCfg),
	}

	var db *gorm.DB
	var err error

	logger.Info("开始连接主数据库...")
	for i := 0; i < mysqlMaxRetries; i++ {
		db, err = gorm.Open(mysql.Open(dsn), gormConfig)
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr != nil {
				err = dbErr
			} else if pingErr := sqlDB.Ping(); pingErr != nil {
				err = pingErr
			} else {
				return db, nil
			}
		}
		logger.Warn("无法连接到主数据库，尝试重试",
			zap.Int("retry", i+1),
			zap.Int("maxRetries", mysqlMaxRetries),
			zap.Error(err))
		if i < mysqlMaxRetries-1 {
			time.Sleep(mysqlRetryInterval)
		}
	}

	logger.Error("无法连接到主数据库", zap.Error(err))
	return nil, fmt.Errorf("无法连接到主数据库: %w", err)
}

// registerReadReplicas 配置 dbresolver 读写分离，读请求在从库间轮询。
func registerReadReplicas(db *gorm.DB, mysqlCfg *appConfig.MySQLConfig, logger *core.ZapLogger) error {
	replicas := make([]gorm.Dialector, 0, len(mysqlCfg.Read))
	for i, replicaCfg := range mysqlCfg.Read {
		if replicaCfg.DSN == "" {
			logger.Warn("发现空的从库 DSN 配置，已跳过", zap.Int("index", i))
			continue
		}
		replicas = append(replicas, mysql.Open(replicaCfg.DSN))
	}

	if len(replicas) == 0 {
		logger.Info("未配置有效的从数据库，不启用读写分离")
		return nil
	}

	err := db.Use(dbresolver.Register(dbresolver.Config{
		Sources:  []gorm.Dialector{mysql.Open(mysqlCfg.Write.DSN)},
		Replicas: replicas,
		Policy:   dbresolver.StrictRoundRobinPolicy(),
	}))
	if err != nil {
		logger.Error("配置 GORM 读写分离插件失败", zap.Error(err))
		return fmt.Errorf("配置 GORM 读写分离失败: %w", err)
	}
	logger.Info("成功配置 GORM 读写分离插件", zap.Int("replicas", len(replicas)))
	return nil
}

// tuneConnectionPool 应用连接池参数，主库的显式设置覆盖共享默认值。
// 读写分离时读写共用同一个池。
func tuneConnectionPool(db *gorm.DB, mysqlCfg *appConfig.MySQLConfig, logger *core.ZapLogger) error {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("无法获取数据库对象以配置连接池", zap.Error(err))
		return fmt.Errorf("无法获取数据库对象: %w", err)
	}

	maxIdle := mysqlCfg.SharedMaxIdleConns
	maxOpen := mysqlCfg.SharedMaxOpenConns
	maxLife := mysqlCfg.SharedConnMaxLifetime
	if mysqlCfg.Write.MaxIdleConns != nil {
		maxIdle = *mysqlCfg.Write.MaxIdleConns
	}
	if mysqlCfg.Write.MaxOpenConns != nil {
		maxOpen = *mysqlCfg.Write.MaxOpenConns
	}
	if mysqlCfg.Write.ConnMaxLifetime != nil {
		maxLife = *mysqlCfg.Write.ConnMaxLifetime
	}

	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetConnMaxLifetime(time.Duration(maxLife) * time.Second)

	logger.Info("配置数据库连接池",
		zap.Int("maxIdleConns", maxIdle),
		zap.Int("maxOpenConns", maxOpen),
		zap.Int("connMaxLifetimeSeconds", maxLife),
	)

	if pingErr := sqlDB.Ping(); pingErr != nil {
		logger.Error("配置连接池后 Ping 数据库失败", zap.Error(pingErr))
		return fmt.Errorf("配置连接池后 Ping 失败: %w", pingErr)
	}
	return nil
}

// autoMigrate 迁移全部业务表。dbresolver 注册后迁移语句仍走主库。
func autoMigrate(db *gorm.DB, logger *core.ZapLogger) error {
	logger.Info("开始执行数据库自动迁移...")
	err := db.AutoMigrate(
		&entities.User{},
		&entities.Role{},
		&entities.UserFollow{},
		&entities.Space{},
		&entities.Tag{},
		&entities.Article{},
		&entities.ArticleHistory{},
		&entities.ArticleFabulous{},
		&entities.ArticleView{},
		&entities.Remind{},
	)
	if err != nil {
		logger.Error("数据库自动迁移失败", zap.Error(err))
		return fmt.Errorf("数据库自动迁移失败: %w", err)
	}
	logger.Info("数据库自动迁移完成")
	return nil
}
