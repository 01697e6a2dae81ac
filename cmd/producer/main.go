package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"stroymarket/internal/generator"
	appkafka "stroymarket/internal/kafka"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Producer эмулирует фид поставщика: генерирует и отправляет
// обновления каталога в Kafka.
type Producer struct {
	writer *kafka.Writer
	nextID int
}

// NewProducer создает и настраивает новый экземпляр продюсера.
func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
		nextID: 1000, // id фида не пересекаются с начальным каталогом
	}
}

// generateMessage создает очередное сообщение фида. Изредка вместо
// обновления генерируется удаление ранее отправленного товара.
func (p *Producer) generateMessage() appkafka.FeedMessage {
	if p.nextID > 1001 && rand.Intn(10) == 0 {
		return appkafka.FeedMessage{
			Op:        appkafka.OpDelete,
			ProductID: 1000 + rand.Intn(p.nextID-1000),
		}
	}

	product := generator.NewProduct(p.nextID)
	p.nextID++
	return appkafka.FeedMessage{Op: appkafka.OpUpsert, Product: &product}
}

// Run запускает бесконечный цикл отправки сообщений.
func (p *Producer) Run(ctx context.Context, interval time.Duration) {
	log.Println("Продюсер фида запущен. Нажмите CTRL+C для остановки.")
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Продюсер останавливается.")
			return
		case <-ticker.C:
			msg := p.generateMessage()
			value, err := json.Marshal(msg)
			if err != nil {
				log.Printf("Ошибка сериализации сообщения фида: %v", err)
				continue
			}

			err = p.writer.WriteMessages(ctx, kafka.Message{
				Key:   []byte(uuid.New().String()),
				Value: value,
			})

			if err != nil {
				log.Printf("Ошибка отправки сообщения: %v", err)
			} else if msg.Op == appkafka.OpUpsert {
				fmt.Printf("Отправлено обновление товара %d\n", msg.Product.ID)
			} else {
				fmt.Printf("Отправлено удаление товара %d\n", msg.ProductID)
			}
		}
	}
}

func (p *Producer) Close() {
	if err := p.writer.Close(); err != nil {
		log.Printf("Ошибка закрытия Kafka writer: %v", err)
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	producer := NewProducer([]string{"localhost:9092"}, "catalog_updates")
	defer producer.Close()

	producer.Run(ctx, 2*time.Second)
}
