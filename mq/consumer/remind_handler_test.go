package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/Xushengqwer/go-common/commonerrors"
	sharedConfig "github.com/Xushengqwer/go-common/config"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BestJex/incubator-wikift/models/events"
	"github.com/BestJex/incubator-wikift/models/vo"
)

// fakeRemindService 只记录扇出调用，其余方法在测试中不会被触达
type fakeRemindService struct {
	fanoutCalls []uint64
	fanoutErr   error
}

func (f *fakeRemindService) FindAll(ctx context.Context) ([]*vo.RemindVO, error) { return nil, nil }
func (f *fakeRemindService) GetByID(ctx context.Context, id uint64) (*vo.RemindVO, error) {
	return nil, nil
}
func (f *fakeRemindService) Read(ctx context.Context, id uint64) error { return nil }
func (f *fakeRemindService) ListByUser(ctx context.Context, userID uint64, queryType string) ([]*vo.RemindVO, error) {
	return nil, nil
}
func (f *fakeRemindService) FanoutArticleCreated(ctx context.Context, articleID uint64) error {
	f.fanoutCalls = append(f.fanoutCalls, articleID)
	return f.fanoutErr
}

func newHandlerTestLogger(t *testing.T) *core.ZapLogger {
	t.Helper()
	logger, err := core.NewZapLogger(sharedConfig.ZapConfig{})
	require.NoError(t, err)
	return logger
}

func TestRemindFanoutHandlerDispatches(t *testing.T) {
	svc := &fakeRemindService{}
	handler := NewRemindFanoutHandler(newHandlerTestLogger(t), svc)

	payload, err := json.Marshal(events.ArticleCreatedEvent{
		EventID:   "evt-1",
		ArticleID: 42,
		Title:     "新文章",
		AuthorID:  7,
	})
	require.NoError(t, err)

	err = handler.Handle(context.Background(), kafka.Message{Topic: "article_created", Value: payload})
	require.NoError(t, err)
	assert.Equal(t, []uint64{42}, svc.fanoutCalls)
}

func TestRemindFanoutHandlerSkipsMalformedPayload(t *testing.T) {
	svc := &fakeRemindService{}
	handler := NewRemindFanoutHandler(newHandlerTestLogger(t), svc)

	// 无法解析的消息不重试，也不触发扇出
	err := handler.Handle(context.Background(), kafka.Message{Value: []byte("not-json")})
	require.NoError(t, err)
	assert.Empty(t, svc.fanoutCalls)
}

func TestRemindFanoutHandlerTerminalOnMissingArticle(t *testing.T) {
	svc := &fakeRemindService{fanoutErr: commonerrors.ErrRepoNotFound}
	handler := NewRemindFanoutHandler(newHandlerTestLogger(t), svc)

	payload, err := json.Marshal(events.ArticleCreatedEvent{EventID: "evt-2", ArticleID: 9})
	require.NoError(t, err)

	// 文章已删除属于终态，返回 nil 以提交位点
	err = handler.Handle(context.Background(), kafka.Message{Value: payload})
	assert.NoError(t, err)
}

func TestRemindFanoutHandlerRetriesOnTransientError(t *testing.T) {
	svc := &fakeRemindService{fanoutErr: errors.New("db down")}
	handler := NewRemindFanoutHandler(newHandlerTestLogger(t), svc)

	payload, err := json.Marshal(events.ArticleCreatedEvent{EventID: "evt-3", ArticleID: 9})
	require.NoError(t, err)

	err = handler.Handle(context.Background(), kafka.Message{Value: payload})
	assert.Error(t, err, "瞬时失败向上返回错误以便重试")
}
