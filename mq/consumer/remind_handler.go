package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Xushengqwer/go-common/commonerrors"
	"github.com/Xushengqwer/go-common/core"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BestJex/incubator-wikift/models/events"
	"github.com/BestJex/incubator-wikift/service"
)

// MessageHandler 定义了处理 Kafka 消息的接口
type MessageHandler interface {
	Handle(ctx context.Context, msg kafka.Message) error
}

// RemindFanoutHandler 消费文章创建事件，为作者的每个粉丝生成一条未读提醒。
type RemindFanoutHandler struct {
	logger        *core.ZapLogger
	remindService service.RemindService
}

func NewRemindFanoutHandler(logger *core.ZapLogger, remindService service.RemindService) *RemindFanoutHandler {
	return &RemindFanoutHandler{
		logger:        logger,
		remindService: remindService,
	}
}

func (h *RemindFanoutHandler) Handle(ctx context.Context, msg kafka.Message) error {
	h.logger.Debug("RemindFanoutHandler: 开始处理 Kafka 消息", zap.String("topic", msg.Topic))

	var event events.ArticleCreatedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		h.logger.Error("RemindFanoutHandler: 反序列化 Kafka 消息失败", zap.Error(err), zap.ByteString("value", msg.Value))
		return nil // 不重试无法解析的消息
	}

	h.logger.Info("RemindFanoutHandler: 成功解析文章创建消息",
		zap.String("event_id", event.EventID),
		zap.Uint64("article_id", event.ArticleID),
		zap.Uint64("author_id", event.AuthorID))

	fanoutCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.remindService.FanoutArticleCreated(fanoutCtx, event.ArticleID); err != nil {
		if errors.Is(err, commonerrors.ErrRepoNotFound) {
			// 文章在事件到达前已被删除，重试没有意义。
			h.logger.Warn("RemindFanoutHandler: 文章已不存在，跳过提醒扇出", zap.Uint64("article_id", event.ArticleID))
			return nil
		}
		h.logger.Error("RemindFanoutHandler: 提醒扇出失败", zap.Error(err), zap.Uint64("article_id", event.ArticleID))
		return fmt.Errorf("RemindFanoutHandler: 调用 FanoutArticleCreated 失败: %w", err)
	}

	h.logger.Info("RemindFanoutHandler: 提醒扇出完成", zap.Uint64("article_id", event.ArticleID))
	return nil
}
