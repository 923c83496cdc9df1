package service

import (
	"context"

	"github.com/Xushengqwer/go-common/core"

	"github.com/BestJex/incubator-wikift/models/dto"
	"github.com/BestJex/incubator-wikift/models/enums"
	"github.com/BestJex/incubator-wikift/models/vo"
	"github.com/BestJex/incubator-wikift/repo/mysql"
)

// ArticleListService 定义文章列表类查询的业务接口。
type ArticleListService interface {
	// FindAll 分页查询全部文章。
	// - orderBy 取值 NATIVE_CREATE_TIME / VIEW / FABULOU，未知值回落创建时间倒序。
	FindAll(ctx context.Context, req *dto.ListArticlesRequest) (*vo.ArticlePageVO, error)

	// FindAllByTagTitle 按标签标题查询文章。
	// - 先解析标签，标题不存在时返回 commonerrors.ErrRepoNotFound，
	//   上层映射为资源未找到响应而不是空列表。
	FindAllByTagTitle(ctx context.Context, tagTitle string, page, size int) (*vo.ArticlePageVO, error)

	// FindAllBySpace 分页查询指定空间下的文章。
	FindAllBySpace(ctx context.Context, spaceID uint64, page, size int) (*vo.ArticlePageVO, error)

	// FindMyArticles 分页查询某作者的文章。
	FindMyArticles(ctx context.Context, userID uint64, page, size int) (*vo.ArticlePageVO, error)

	// Search 按可选条件 AND 组合检索文章。
	Search(ctx context.Context, req *dto.SearchArticlesRequest) (*vo.ArticlePageVO, error)
}

type articleListService struct {
	listRepo mysql.ArticleListRepository
	tagRepo  mysql.TagRepository
	logger   *core.ZapLogger
}

// NewArticleListService 是 articleListService 的构造函数。
func NewArticleListService(listRepo mysql.ArticleListRepository, tagRepo mysql.TagRepository, logger *core.ZapLogger) ArticleListService {
	return &articleListService{
		listRepo: listRepo,
		tagRepo:  tagRepo,
		logger:   logger,
	}
}

func (s *articleListService) FindAll(ctx context.Context, req *dto.ListArticlesRequest) (*vo.ArticlePageVO, error) {
	orderBy := enums.ParseArticleOrder(req.OrderBy)

	articles, total, err := s.listRepo.ListArticles(ctx, orderBy, req.GetOffset(), req.GetLimit())
	if err != nil {
		return nil, err
	}
	return &vo.ArticlePageVO{Articles: vo.MapArticlesToVOs(articles), Total: total}, nil
}

func (s *articleListService) FindAllByTagTitle(ctx context.Context, tagTitle string, page, size int) (*vo.ArticlePageVO, error) {
	// 标签标题先解析为 ID，不存在即止步。
	tag, err := s.tagRepo.GetTagByTitle(ctx, tagTitle)
	if err != nil {
		return nil, err
	}

	offset, limit := normalizePage(page, size)
	articles, total, err := s.listRepo.ListArticlesByTagID(ctx, tag.ID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &vo.ArticlePageVO{Articles: vo.MapArticlesToVOs(articles), Total: total}, nil
}

func (s *articleListService) FindAllBySpace(ctx context.Context, spaceID uint64, page, size int) (*vo.ArticlePageVO, error) {
	offset, limit := normalizePage(page, size)
	articles, total, err := s.listRepo.ListArticlesBySpaceID(ctx, spaceID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &vo.ArticlePageVO{Articles: vo.MapArticlesToVOs(articles), Total: total}, nil
}

func (s *articleListService) FindMyArticles(ctx context.Context, userID uint64, page, size int) (*vo.ArticlePageVO, error) {
	offset, limit := normalizePage(page, size)
	articles, total, err := s.listRepo.ListArticlesByUserID(ctx, userID, offset, limit)
	if err != nil {
		return nil, err
	}
	return &vo.ArticlePageVO{Articles: vo.MapArticlesToVOs(articles), Total: total}, nil
}

func (s *articleListService) Search(ctx context.Context, req *dto.SearchArticlesRequest) (*vo.ArticlePageVO, error) {
	articles, total, err := s.listRepo.SearchArticles(ctx, req.TagID, req.Title, req.SpaceID, req.UserID, req.GetOffset(), req.GetLimit())
	if err != nil {
		return nil, err
	}
	return &vo.ArticlePageVO{Articles: vo.MapArticlesToVOs(articles), Total: total}, nil
}

// normalizePage 把页码分页参数规整为偏移量与每页数量。
func normalizePage(page, size int) (offset, limit int) {
	if size <= 0 {
		size = 10
	}
	if page <= 1 {
		return 0, size
	}
	return (page - 1) * size, size
}
