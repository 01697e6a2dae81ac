package kafka

import (
	"context"
	"encoding/json"
	"testing"

	cachemocks "stroymarket/internal/cache/mocks"
	"stroymarket/internal/catalog"
	"stroymarket/internal/model"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.uber.org/mock/gomock"
)

// setupConsumer собирает Consumer без реального Kafka: обработка
// сообщения не трогает reader, а пустой dlqWriter нужен, чтобы
// избежать nil panic при уходе сообщения в DLQ.
func setupConsumer(t *testing.T) (*Consumer, *catalog.Catalog, *cachemocks.MockCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cat := catalog.New(catalog.SeedProducts())
	mockCache := cachemocks.NewMockCache(ctrl)

	consumer := &Consumer{
		dlqWriter: &kafka.Writer{},
		catalog:   cat,
		cache:     mockCache,
		tracer:    otel.Tracer("kafka-consumer-test"),
	}
	return consumer, cat, mockCache
}

func helperFeedProduct(id int) model.Product {
	return model.Product{
		ID:       id,
		Name:     model.LocalizedString{RU: "Грунтовка", UZ: "Gruntovka"},
		Price:    85000,
		Category: "paints",
		Brand:    "Knauf",
		Rating:   4.3,
		InStock:  true,
	}
}

func TestConsumer_ProcessMessage_UpsertNew(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	mockCache.EXPECT().Purge(gomock.Any())

	product := helperFeedProduct(200)
	value, err := json.Marshal(FeedMessage{Op: OpUpsert, Product: &product})
	require.NoError(t, err)

	consumer.processMessage(context.Background(), kafka.Message{Value: value})

	got, found := cat.Get(200)
	require.True(t, found)
	assert.Equal(t, 85000, got.Price)
	assert.Equal(t, 11, cat.Len())
}

func TestConsumer_ProcessMessage_UpsertExisting(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	mockCache.EXPECT().Purge(gomock.Any())

	product := helperFeedProduct(1)
	product.Price = 3000000
	value, _ := json.Marshal(FeedMessage{Op: OpUpsert, Product: &product})

	consumer.processMessage(context.Background(), kafka.Message{Value: value})

	got, _ := cat.Get(1)
	assert.Equal(t, 3000000, got.Price)
	assert.Equal(t, 10, cat.Len())
}

func TestConsumer_ProcessMessage_Delete(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	mockCache.EXPECT().Purge(gomock.Any())

	value, _ := json.Marshal(FeedMessage{Op: OpDelete, ProductID: 1})
	consumer.processMessage(context.Background(), kafka.Message{Value: value})

	_, found := cat.Get(1)
	assert.False(t, found)
	assert.Equal(t, 9, cat.Len())
}

func TestConsumer_ProcessMessage_DeleteUnknownID(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	// Сообщение валидно и обработано, кэш очищается и здесь
	mockCache.EXPECT().Purge(gomock.Any())

	value, _ := json.Marshal(FeedMessage{Op: OpDelete, ProductID: 9999})
	consumer.processMessage(context.Background(), kafka.Message{Value: value})

	assert.Equal(t, 10, cat.Len())
}

func TestConsumer_ProcessMessage_InvalidJSON(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	// Битое сообщение уходит в DLQ, каталог и кэш не трогаются
	mockCache.EXPECT().Purge(gomock.Any()).Times(0)

	consumer.processMessage(context.Background(), kafka.Message{
		Key:   []byte("poison"),
		Value: []byte("это не json"),
	})

	assert.Equal(t, 10, cat.Len())
}

func TestConsumer_ProcessMessage_UnknownOp(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	mockCache.EXPECT().Purge(gomock.Any()).Times(0)

	value, _ := json.Marshal(map[string]interface{}{"op": "replace", "productId": 1})
	consumer.processMessage(context.Background(), kafka.Message{Value: value})

	assert.Equal(t, 10, cat.Len())
}

func TestConsumer_ProcessMessage_UpsertWithoutProduct(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	mockCache.EXPECT().Purge(gomock.Any()).Times(0)

	value, _ := json.Marshal(FeedMessage{Op: OpUpsert})
	consumer.processMessage(context.Background(), kafka.Message{Value: value})

	assert.Equal(t, 10, cat.Len())
}

func TestConsumer_ProcessMessage_UpsertInvalidProduct(t *testing.T) {
	consumer, cat, mockCache := setupConsumer(t)
	mockCache.EXPECT().Purge(gomock.Any()).Times(0)

	// Рейтинг за пределами шкалы
	product := helperFeedProduct(201)
	product.Rating = 9.5
	value, _ := json.Marshal(FeedMessage{Op: OpUpsert, Product: &product})
	consumer.processMessage(context.Background(), kafka.Message{Value: value})

	_, found := cat.Get(201)
	assert.False(t, found)
}

func TestValidateFeed(t *testing.T) {
	consumer, _, _ := setupConsumer(t)

	product := helperFeedProduct(1)
	assert.NoError(t, consumer.validateFeed(&FeedMessage{Op: OpUpsert, Product: &product}))
	assert.NoError(t, consumer.validateFeed(&FeedMessage{Op: OpDelete, ProductID: 5}))

	assert.Error(t, consumer.validateFeed(&FeedMessage{Op: ""}))
	assert.Error(t, consumer.validateFeed(&FeedMessage{Op: OpUpsert}))
	assert.Error(t, consumer.validateFeed(&FeedMessage{Op: OpDelete}))
	assert.Error(t, consumer.validateFeed(&FeedMessage{Op: OpDelete, ProductID: -1}))
}
