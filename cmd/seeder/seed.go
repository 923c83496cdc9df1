package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/Xushengqwer/go-common/core"
	"github.com/brianvoe/gofakeit/v6"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/middleware"
	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/models/entities"
	"github.com/BestJex/incubator-wikift/repo/mysql"
	"github.com/BestJex/incubator-wikift/service"
)

// seedDeps 聚合填充流程需要的依赖，避免 Seed 函数参数过长
type seedDeps struct {
	db             *gorm.DB
	userRepo       mysql.UserRepository
	tagRepo        mysql.TagRepository
	spaceService   service.SpaceService
	userService    service.UserService
	articleService service.ArticleService
	logger         *core.ZapLogger
}

var seedDevices = []string{"web", "ios", "android", "desktop"}

// Seed 按 用户 -> 标签 -> 空间 -> 关注 -> 文章 -> 互动 的顺序填充测试数据。
// 文章创建走服务层，保证提醒扇出等副作用与线上路径一致。
func Seed(ctx context.Context, deps *seedDeps, numUsers, numArticles int) {
	deps.logger.Info("开始填充测试数据 (通过服务层)...",
		zap.Int("用户数", numUsers), zap.Int("文章数", numArticles))

	// 1. 角色
	userRole := &entities.Role{Name: middleware.RoleUser, Description: "普通用户"}
	adminRole := &entities.Role{Name: middleware.RoleAdmin, Description: "管理员"}
	for _, role := range []*entities.Role{userRole, adminRole} {
		if err := deps.db.WithContext(ctx).
			Where("name = ?", role.Name).FirstOrCreate(role).Error; err != nil {
			deps.logger.Fatal("创建角色失败", zap.String("role", role.Name), zap.Error(err))
		}
	}

	// 2. 用户，第一个用户同时拥有 ADMIN 角色
	users := make([]*entities.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		roles := []*entities.Role{userRole}
		if i == 0 {
			roles = append(roles, adminRole)
		}
		user := &entities.User{
			Username:  fmt.Sprintf("%s_%d", gofakeit.Username(), i),
			Password:  gofakeit.Password(true, true, true, false, false, 32),
			Avatar:    gofakeit.ImageURL(100, 100),
			AliasName: gofakeit.Name(),
			Signature: gofakeit.Sentence(6),
			Email:     gofakeit.Email(),
			Active:    true,
			Roles:     roles,
		}
		if err := deps.userRepo.CreateUser(ctx, deps.db, user); err != nil {
			deps.logger.Error("创建用户失败", zap.String("username", user.Username), zap.Error(err))
			continue
		}
		users = append(users, user)
	}
	if len(users) == 0 {
		deps.logger.Fatal("没有任何用户创建成功，终止填充")
	}
	deps.logger.Info("用户填充完毕", zap.Int("数量", len(users)))

	// 3. 标签
	tagIDs := make([]uint64, 0, 10)
	for i := 0; i < 10; i++ {
		tag, err := deps.tagRepo.FirstOrCreateByTitle(ctx, deps.db, fmt.Sprintf("%s-%d", gofakeit.Word(), i))
		if err != nil {
			deps.logger.Error("创建标签失败", zap.Error(err))
			continue
		}
		tagIDs = append(tagIDs, tag.ID)
	}
	deps.logger.Info("标签填充完毕", zap.Int("数量", len(tagIDs)))

	// 4. 空间，每个用户一个公开空间，约三分之一用户追加一个私有空间
	type userSpace struct {
		userID  uint64
		spaceID uint64
	}
	spaces := make([]userSpace, 0, len(users)*2)
	for i, user := range users {
		specs := []*dto.CreateSpaceRequest{
			{
				Name:        gofakeit.Company(),
				Code:        fmt.Sprintf("space-%d-pub", i),
				Avatar:      gofakeit.ImageURL(64, 64),
				Description: gofakeit.Sentence(10),
				Private:     false,
			},
		}
		if i%3 == 0 {
			specs = append(specs, &dto.CreateSpaceRequest{
				Name:        gofakeit.Company(),
				Code:        fmt.Sprintf("space-%d-priv", i),
				Description: gofakeit.Sentence(10),
				Private:     true,
			})
		}
		for _, req := range specs {
			spaceVO, err := deps.spaceService.CreateSpace(ctx, user.ID, req)
			if err != nil {
				deps.logger.Error("创建空间失败", zap.String("code", req.Code), zap.Error(err))
				continue
			}
			spaces = append(spaces, userSpace{userID: user.ID, spaceID: spaceVO.ID})
		}
	}
	if len(spaces) == 0 {
		deps.logger.Fatal("没有任何空间创建成功，终止填充")
	}
	deps.logger.Info("空间填充完毕", zap.Int("数量", len(spaces)))

	// 5. 关注关系，在文章之前建立，让发布提醒有粉丝可扇出
	followCount := 0
	for _, follower := range users {
		for j := 0; j < 2; j++ {
			followee := users[gofakeit.Number(0, len(users)-1)]
			if followee.ID == follower.ID {
				continue
			}
			if err := deps.userService.Follow(ctx, follower.ID, followee.ID); err != nil {
				deps.logger.Error("创建关注关系失败", zap.Error(err))
				continue
			}
			followCount++
		}
	}
	deps.logger.Info("关注关系填充完毕", zap.Int("数量", followCount))

	// 6. 文章，并发走服务层
	var wg sync.WaitGroup
	concurrencyLimit := 10
	semaphore := make(chan struct{}, concurrencyLimit)
	var mu sync.Mutex
	articleIDs := make([]uint64, 0, numArticles)

	for i := 0; i < numArticles; i++ {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(itemIndex int) {
			defer wg.Done()
			defer func() { <-semaphore }()

			owner := spaces[gofakeit.Number(0, len(spaces)-1)]
			reqTags := pickTags(tagIDs)

			createReq := &dto.CreateArticleRequest{
				Title:   gofakeit.Sentence(gofakeit.Number(3, 8)),
				Content: gofakeit.Paragraph(3, 5, 20, "\n\n"),
				SpaceID: owner.spaceID,
				TagIDs:  reqTags,
			}

			resp, err := deps.articleService.CreateArticle(ctx, owner.userID, createReq)
			if err != nil {
				deps.logger.Error(fmt.Sprintf("创建文章 %d/%d 失败", itemIndex+1, numArticles),
					zap.Error(err), zap.String("title", createReq.Title))
				return
			}
			mu.Lock()
			articleIDs = append(articleIDs, resp.ID)
			mu.Unlock()
			deps.logger.Info(fmt.Sprintf("成功创建文章 %d/%d", itemIndex+1, numArticles),
				zap.Uint64("article_id", resp.ID), zap.String("title", resp.Title))
		}(i)
	}
	wg.Wait()
	deps.logger.Info("文章填充完毕", zap.Int("数量", len(articleIDs)))

	// 7. 互动，随机补一些浏览上报和点赞
	for _, articleID := range articleIDs {
		for j := 0; j < gofakeit.Number(1, 4); j++ {
			viewer := users[gofakeit.Number(0, len(users)-1)]
			viewParam := &dto.ArticleViewParam{
				UserID:    viewer.ID,
				ArticleID: articleID,
				ViewCount: int64(gofakeit.Number(1, 20)),
				Device:    seedDevices[gofakeit.Number(0, len(seedDevices)-1)],
			}
			if err := deps.articleService.ViewArticle(ctx, viewParam); err != nil {
				deps.logger.Error("上报浏览量失败", zap.Uint64("article_id", articleID), zap.Error(err))
			}
			if gofakeit.Bool() {
				fabParam := &dto.ArticleFabulousParam{UserID: viewer.ID, ArticleID: articleID}
				if err := deps.articleService.FabulousArticle(ctx, fabParam); err != nil {
					deps.logger.Error("点赞失败", zap.Uint64("article_id", articleID), zap.Error(err))
				}
			}
		}
	}

	deps.logger.Info("测试数据填充完毕 (通过服务层)。")
}

// pickTags 随机选取至多三个标签ID
func pickTags(tagIDs []uint64) []uint64 {
	if len(tagIDs) == 0 {
		return nil
	}
	count := gofakeit.Number(0, 3)
	picked := make([]uint64, 0, count)
	for i := 0; i < count; i++ {
		picked = append(picked, tagIDs[gofakeit.Number(0, len(tagIDs)-1)])
	}
	return picked
}
