package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Xushengqwer/go-common/core"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BestJex/incubator-wikift/config"
	"github.com/BestJex/incubator-wikift/models/events"
)

// KafkaProducer Kafka 消息生产者
type KafkaProducer struct {
	writer *kafka.Writer
	logger *core.ZapLogger
	topics config.Topics
}

// NewKafkaProducer 创建一个新的 Kafka 生产者实例
func NewKafkaProducer(config config.KafkaConfig, logger *core.ZapLogger) *KafkaProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(config.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaProducer{
		writer: writer,
		logger: logger,
		topics: config.Topics,
	}
}

// SendEvent 发送事件到指定 Kafka 主题
func (p *KafkaProducer) SendEvent(ctx context.Context, topic string, event interface{}) error {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("Failed to marshal event", zap.Error(err), zap.String("topic", topic))
		return err
	}

	p.logger.Debug("Sending Kafka message",
		zap.String("topic", topic),
		zap.ByteString("payload", eventBytes))

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: eventBytes,
	})

	if err != nil {
		p.logger.Error("Failed to write Kafka message", zap.Error(err), zap.String("topic", topic))
	} else {
		p.logger.Info("Successfully sent Kafka message", zap.String("topic", topic))
	}
	return err
}

// SendArticleCreatedEvent 发送文章创建事件到 Kafka
// - 意图: 文章发布后通知消费端为作者的粉丝生成提醒
// - 输入: ctx context.Context 上下文, articleID / title / authorID 文章核心标识
// - 输出: error 错误信息
func (p *KafkaProducer) SendArticleCreatedEvent(ctx context.Context, articleID uint64, title string, authorID uint64) error {
	event := events.ArticleCreatedEvent{
		EventID:   uuid.New().String(), // 生成唯一的 EventID
		Timestamp: time.Now(),
		ArticleID: articleID,
		Title:     title,
		AuthorID:  authorID,
	}

	return p.SendEvent(ctx, p.topics.ArticleCreated, event)
}

// Close 关闭底层 Writer，释放连接。
func (p *KafkaProducer) Close() error {
	return p.writer.Close()
}
