package metrics

import (
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal - Счетчик HTTP-запросов
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Количество HTTP запросов",
		},
		[]string{"handler", "status"}, // Метки: хэндлер и http-статус
	)

	// HttpRequestDuration - Гистограмма длительности HTTP-запросов
	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Длительность HTTP запросов",
		},
		[]string{"handler"}, // Метки: хэндлер
	)

	// StoreDispatches - Счетчик применённых действий store
	StoreDispatches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_dispatches_total",
			Help: "Количество применённых действий store",
		},
		[]string{"action"},
	)

	// SliceWrites - Счетчик записей слайсов состояния в хранилище
	SliceWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_slice_writes_total",
			Help: "Количество записей слайсов состояния",
		},
		[]string{"slice", "status"}, // Метки: "ok", "error"
	)

	// RehydrateErrors - Счетчик ошибок регидрации по слайсам
	RehydrateErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "state_rehydrate_errors_total",
			Help: "Количество ошибок регидрации состояния",
		},
		[]string{"slice"},
	)

	// CacheHits - Счетчик попаданий в кэш каталога
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Количество попаданий в кэш",
		},
	)

	// CacheMisses - Счетчик промахов кэша каталога
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Количество промахов кэша",
		},
	)

	// CacheSize - Датчик (Gauge) текущего размера кэша
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size_items",
			Help: "Текущий размер кэша в элементах",
		},
	)

	// CacheEvictions - Счетчик вытеснений из кэша (LRU)
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cache_evictions_total",
			Help: "Количество вытесненных из кэша элементов",
		},
	)

	// KafkaMessagesProcessed - Счетчик обработанных сообщений фида каталога
	KafkaMessagesProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Количество обработанных сообщений Kafka",
		},
		[]string{"status"}, // Метки: "success", "dlq_validation", "dlq_failed_write"
	)

	// OrderEventsPublished - Счетчик опубликованных событий заказов
	OrderEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Количество опубликованных событий заказов",
		},
		[]string{"status"}, // Метки: "ok", "error"
	)

	// StorageErrors - Счетчик ошибок хранилища
	StorageErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_errors_total",
			Help: "Количество ошибок при работе с хранилищем",
		},
		[]string{"operation"}, // Метки: "save_slice", "load_slice"
	)
)

// Init используется для регистрации метрик.
// promauto регистрирует их автоматически при создании.
func Init() {
	log.Println("Prometheus метрики инициализированы.")
}
