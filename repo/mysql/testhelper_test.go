package mysql

import (
	"testing"

	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// setupTestDB 打开内存 sqlite 并迁移全部表，每个用例独立一份数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
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
	))
	return db
}

func newTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

// mustCreateArticle 直接落库一篇文章，绕过服务层副作用
func mustCreateArticle(t *testing.T, db *gorm.DB, article *entities.Article) *entities.Article {
	t.Helper()
	require.NoError(t, db.Create(article).Error)
	return article
}
