package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"stroymarket/internal/cache"
	"stroymarket/internal/catalog"
	"stroymarket/internal/config"
	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
	"stroymarket/internal/validator"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Операции фида каталога.
const (
	OpUpsert = "upsert"
	OpDelete = "delete"
)

// FeedMessage — сообщение фида поставщика: обновление или удаление
// товара каталога.
type FeedMessage struct {
	Op        string         `json:"op" validate:"required,oneof=upsert delete"`
	Product   *model.Product `json:"product,omitempty"`
	ProductID int            `json:"productId,omitempty"`
}

// Consumer читает и обрабатывает сообщения фида каталога из Kafka.
type Consumer struct {
	reader    *kafka.Reader
	dlqWriter *kafka.Writer // Продюсер для отправки "битых" сообщений в DLQ
	catalog   *catalog.Catalog
	cache     cache.Cache
	tracer    trace.Tracer // Для трассировки
}

// NewConsumer создает новый экземпляр Consumer.
func NewConsumer(cfg config.KafkaConfig, cat *catalog.Catalog, cache cache.Cache) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.GroupID,
		Topic:    cfg.FeedTopic,
		MinBytes: 10e3, // 10KB
		MaxBytes: 10e6, // 10MB
		// Коммиты будут выполняться вручную после успешной обработки.
	})

	// Продюсер для DLQ
	dlqWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Topic:    cfg.DLQTopic,
		Balancer: &kafka.LeastBytes{},
	}

	return &Consumer{
		reader:    reader,
		dlqWriter: dlqWriter,
		catalog:   cat,
		cache:     cache,
		tracer:    otel.Tracer("kafka-consumer"),
	}
}

// Run запускает цикл чтения сообщений из Kafka.
func (c *Consumer) Run(ctx context.Context) {
	log.Println("Консюмер фида каталога запущен...")
	defer func() {
		if err := c.reader.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka-ридера: %v", err)
		}
		if err := c.dlqWriter.Close(); err != nil {
			log.Printf("Ошибка закрытия Kafka (DLQ) writer: %v", err)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Println("Консюмер фида каталога останавливается.")
			return
		default:
			// FetchMessage используется для ручного контроля коммитов
			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				log.Printf("Ошибка чтения сообщения из Kafka: %v", err)
				continue
			}

			c.processMessage(ctx, msg)

			// Применение к каталогу выполняется в памяти и не может
			// отказать временно, поэтому retry-цикла нет: после
			// обработки (включая уход в DLQ) сообщение коммитится.
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				log.Printf("Ошибка коммита сообщения: %v", err)
			}
		}
	}
}

// processMessage выполняет десериализацию, валидацию и применение
// обновления фида к каталогу. Невалидные сообщения уходят в DLQ.
func (c *Consumer) processMessage(ctx context.Context, msg kafka.Message) {
	ctx, span := c.tracer.Start(ctx, "Consumer.processMessage")
	defer span.End()

	var feed FeedMessage
	if err := json.Unmarshal(msg.Value, &feed); err != nil {
		log.Printf("Невалидное JSON-сообщение фида, отправка в DLQ: %v", err)
		c.sendToDLQ(ctx, msg, "json_unmarshal_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return
	}

	if err := c.validateFeed(&feed); err != nil {
		log.Printf("Ошибка валидации сообщения фида, отправка в DLQ: %v", err)
		c.sendToDLQ(ctx, msg, "validation_error", err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_validation").Inc()
		return
	}

	switch feed.Op {
	case OpUpsert:
		c.catalog.Upsert(*feed.Product)
		log.Printf("Фид: товар %d обновлен в каталоге.", feed.Product.ID)
	case OpDelete:
		if c.catalog.Delete(feed.ProductID) {
			log.Printf("Фид: товар %d удален из каталога.", feed.ProductID)
		} else {
			log.Printf("Фид: товар %d не найден, удаление пропущено.", feed.ProductID)
		}
	}

	// Любая мутация каталога делает закэшированные выборки неактуальными.
	c.cache.Purge(ctx)
	metrics.KafkaMessagesProcessed.WithLabelValues("success").Inc()
}

// validateFeed проверяет сообщение фида: общие теги плюс
// обязательность payload для конкретной операции.
func (c *Consumer) validateFeed(feed *FeedMessage) error {
	if err := validator.ValidateStruct(feed); err != nil {
		return err
	}
	switch feed.Op {
	case OpUpsert:
		if feed.Product == nil {
			return fmt.Errorf("операция upsert без товара")
		}
		if err := validator.ValidateStruct(feed.Product); err != nil {
			return err
		}
	case OpDelete:
		if feed.ProductID <= 0 {
			return fmt.Errorf("операция delete без productId")
		}
	}
	return nil
}

// sendToDLQ отправляет "битое" сообщение в DLQ топик.
func (c *Consumer) sendToDLQ(ctx context.Context, originalMsg kafka.Message, reason string, procErr error) {
	_, span := c.tracer.Start(ctx, "Consumer.sendToDLQ")
	defer span.End()

	// Отправляем сообщение в DLQ с доп. заголовками об ошибке
	err := c.dlqWriter.WriteMessages(ctx, kafka.Message{
		Key:   originalMsg.Key,
		Value: originalMsg.Value,
		Headers: []kafka.Header{
			{Key: "X-Original-Topic", Value: []byte(originalMsg.Topic)},
			{Key: "X-Error-Reason", Value: []byte(reason)},
			{Key: "X-Error-Details", Value: []byte(procErr.Error())},
		},
	})

	if err != nil {
		log.Printf("КРИТИЧНО: Не удалось отправить сообщение %s в DLQ: %v", string(originalMsg.Key), err)
		metrics.KafkaMessagesProcessed.WithLabelValues("dlq_failed_write").Inc()
	} else {
		log.Printf("Сообщение %s отправлено в DLQ (Причина: %s)", string(originalMsg.Key), reason)
	}
}
