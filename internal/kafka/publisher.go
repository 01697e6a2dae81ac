package kafka

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"stroymarket/internal/metrics"
	"stroymarket/internal/model"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderEvent — событие "заказ оформлен", публикуемое при чекауте
// для внешних потребителей (уведомления, аналитика).
type OrderEvent struct {
	EventID    string      `json:"eventId"`
	Type       string      `json:"type"`
	OccurredAt time.Time   `json:"occurredAt"`
	Order      model.Order `json:"order"`
}

// Publisher отправляет события заказов в Kafka. Публикация
// fire-and-forget: ошибка логируется и не влияет на оформление заказа.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher создает продюсер событий заказов.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishOrderPlaced публикует событие об оформленном заказе.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, order model.Order) {
	event := OrderEvent{
		EventID:    uuid.New().String(),
		Type:       "order_placed",
		OccurredAt: time.Now(),
		Order:      order,
	}

	value, err := json.Marshal(event)
	if err != nil {
		log.Printf("Ошибка сериализации события заказа %d: %v", order.ID, err)
		metrics.OrderEventsPublished.WithLabelValues("error").Inc()
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: value,
	})
	if err != nil {
		log.Printf("Ошибка публикации события заказа %d: %v", order.ID, err)
		metrics.OrderEventsPublished.WithLabelValues("error").Inc()
		return
	}

	metrics.OrderEventsPublished.WithLabelValues("ok").Inc()
}

// Close закрывает продюсер.
func (p *Publisher) Close() {
	if err := p.writer.Close(); err != nil {
		log.Printf("Ошибка закрытия Kafka writer: %v", err)
	}
}
