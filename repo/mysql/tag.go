package mysql

import (
	"context"
	"errors"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BestJex/incubator-wikift/models/entities"
)

// TagRepository 定义标签数据的持久化操作接口。
type TagRepository interface {
	// GetTagByTitle 按标题精确查询标签。
	// - 标题不存在时返回 commonerrors.ErrRepoNotFound，
	//   上层据此返回资源未找到而不是空列表。
	GetTagByTitle(ctx context.Context, title string) (*entities.Tag, error)

	// GetTagsByIDs 按 ID 列表批量查询标签，用于建立文章与标签的关联。
	GetTagsByIDs(ctx context.Context, ids []uint64) ([]*entities.Tag, error)

	// ListTags 返回全部标签。标签总量有限，不做分页。
	ListTags(ctx context.Context) ([]*entities.Tag, error)

	// FirstOrCreateByTitle 按标题取标签，不存在则创建。
	FirstOrCreateByTitle(ctx context.Context, db *gorm.DB, title string) (*entities.Tag, error)
}

type tagRepository struct {
	db     *gorm.DB
	logger *core.ZapLogger
}

// NewTagRepository 是 tagRepository 的构造函数。
func NewTagRepository(db *gorm.DB, logger *core.ZapLogger) TagRepository {
	return &tagRepository{
		db:     db,
		logger: logger,
	}
}

func (r *tagRepository) GetTagByTitle(ctx context.Context, title string) (*entities.Tag, error) {
	var tag entities.Tag

	err := r.db.WithContext(ctx).Where("title = ?", title).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.logger.Warn("按标题查询标签未找到", zap.String("title", title))
			return nil, commonerrors.ErrRepoNotFound
		}
		r.logger.Error("按标题查询标签失败", zap.String("title", title), zap.Error(err))
		return nil, err
	}

	return &tag, nil
}

func (r *tagRepository) GetTagsByIDs(ctx context.Context, ids []uint64) ([]*entities.Tag, error) {
	tags := make([]*entities.Tag, 0, len(ids))
	if len(ids) == 0 {
		return tags, nil
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		r.logger.Error("按 ID 列表查询标签失败", zap.Int("idCount", len(ids)), zap.Error(err))
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) ListTags(ctx context.Context) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tags).Error; err != nil {
		r.logger.Error("查询标签列表失败", zap.Error(err))
		return nil, err
	}
	return tags, nil
}

func (r *tagRepository) FirstOrCreateByTitle(ctx context.Context, db *gorm.DB, title string) (*entities.Tag, error) {
	var tag entities.Tag
	err := db.WithContext(ctx).
		Where(entities.Tag{Title: title}).
		FirstOrCreate(&tag).Error
	if err != nil {
		r.logger.Error("按标题取或建标签失败", zap.String("title", title), zap.Error(err))
		return nil, err
	}
	return &tag, nil
}
