package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stroymarket/internal/api"
	"stroymarket/internal/cache"
	"stroymarket/internal/catalog"
	"stroymarket/internal/config"
	"stroymarket/internal/database"
	"stroymarket/internal/kafka"
	"stroymarket/internal/metrics"
	"stroymarket/internal/store"
	"stroymarket/internal/tracing"
)

func main() {
	cfg := config.Get()

	metrics.Init()
	shutdownTracing := tracing.InitTracerProvider("storefront")
	defer shutdownTracing()

	// Инициализация хранилища состояния
	storage, err := newStorage(cfg)
	if err != nil {
		log.Fatalf("Ошибка инициализации хранилища: %v", err)
	}
	defer storage.Close()

	// Store и регидрация состояния. Регидрация выполняется до запуска
	// HTTP-сервера: действия пользователя не могут перемешаться с загрузкой.
	appStore := store.New()
	adapter := database.NewAdapter(storage)
	adapter.Rehydrate(context.Background(), appStore)
	appStore.OnChange(adapter.Persist)

	// Каталог и кэш выборок
	cat := catalog.New(catalog.SeedProducts())
	catalogCache := cache.NewLRUCache(cfg.Cache.Size)

	// Kafka: консюмер фида каталога и продюсер событий заказов
	ctx, cancel := context.WithCancel(context.Background())
	consumer := kafka.NewConsumer(cfg.Kafka, cat, catalogCache)
	go consumer.Run(ctx)

	publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.OrdersTopic)
	defer publisher.Close()

	// Запуск HTTP-сервера
	server := api.NewServer(cfg.HTTP.Port, appStore, cat, catalogCache, publisher)
	go func() {
		if err := server.Run(); err != nil {
			log.Fatalf("Ошибка запуска HTTP-сервера: %v", err)
		}
	}()

	// Ожидание сигнала для корректного завершения работы
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)
	<-shutdown

	log.Println("Сервис останавливается...")
	cancel()
	log.Println("Сервис успешно остановлен.")
}

// newStorage выбирает реализацию durable-хранилища по конфигурации.
func newStorage(cfg *config.Config) (database.Storage, error) {
	switch cfg.Storage.Backend {
	case "redis":
		return database.NewRedis(cfg.Redis.Addr, cfg.Redis.DB)
	default:
		// Путь указывает на папку с миграциями
		return database.New(cfg.Postgres.URL, "./internal/database/migrations")
	}
}
