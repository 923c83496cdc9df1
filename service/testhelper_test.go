package service

import (
	"testing"

	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/repo/mysql"
)

// testEnv 聚合一套基于内存 sqlite 的完整服务栈。
// rankRepo 与 kafka 生产者留空，排行榜与事件路径在服务里会被跳过，
// 提醒扇出走进程内直连路径。
type testEnv struct {
	db             *gorm.DB
	articleRepo    mysql.ArticleRepository
	listRepo       mysql.ArticleListRepository
	historyRepo    mysql.ArticleHistoryRepository
	tagRepo        mysql.TagRepository
	userRepo       mysql.UserRepository
	spaceRepo      mysql.SpaceRepository
	remindRepo     mysql.RemindRepository
	engagementRepo mysql.EngagementRepository

	articleService ArticleService
	listService    ArticleListService
	remindService  RemindService
	spaceService   SpaceService
	userService    UserService
	hotService     HotArticleService
}

func newTestEnv(t *testing.T) *testEnv {
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

	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)

	env := &testEnv{
		db:             db,
		articleRepo:    mysql.NewArticleRepository(db, logger),
		listRepo:       mysql.NewArticleListRepository(db, logger),
		historyRepo:    mysql.NewArticleHistoryRepository(db, logger),
		tagRepo:        mysql.NewTagRepository(db, logger),
		userRepo:       mysql.NewUserRepository(db, logger),
		spaceRepo:      mysql.NewSpaceRepository(db, logger),
		remindRepo:     mysql.NewRemindRepository(db, logger),
		engagementRepo: mysql.NewEngagementRepository(db, logger),
	}

	env.remindService = NewRemindService(db, env.remindRepo, env.articleRepo, env.userRepo, logger)
	env.articleService = NewArticleService(
		db,
		env.articleRepo,
		env.historyRepo,
		env.tagRepo,
		env.engagementRepo,
		env.remindRepo,
		env.userRepo,
		nil,
		env.remindService,
		nil,
		logger,
	)
	env.listService = NewArticleListService(env.listRepo, env.tagRepo, logger)
	env.spaceService = NewSpaceService(env.spaceRepo, env.listRepo, logger)
	env.userService = NewUserService(env.userRepo, logger)
	env.hotService = NewHotArticleService(nil, env.listRepo, logger)
	return env
}

// createUser 落库一个激活用户
func (e *testEnv) createUser(t *testing.T, username string) *entities.User {
	t.Helper()
	user := &entities.User{Username: username, Password: "hashed", Active: true}
	require.NoError(t, e.db.Create(user).Error)
	return user
}

// createArticle 直接落库文章，绕过服务层的异步扇出
func (e *testEnv) createArticle(t *testing.T, article *entities.Article) *entities.Article {
	t.Helper()
	if article.Parent == 0 {
		article.Parent = entities.RootArticleParent
	}
	require.NoError(t, e.db.Create(article).Error)
	return article
}
