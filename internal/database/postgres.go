package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"stroymarket/internal/metrics"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// postgresStorage хранит слайсы состояния в таблице app_state.
// Это конкретная реализация интерфейса Storage.
type postgresStorage struct {
	db     *sqlx.DB
	tracer trace.Tracer // Для трассировки
}

// New создает подключение к БД, применяет миграции и возвращает
// экземпляр, реализующий интерфейс Storage.
func New(dbURL, migrationsPath string) (Storage, error) {
	db, err := sqlx.Connect("postgres", dbURL)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к БД: %w", err)
	}

	// Запуск миграций
	if err := runMigrations(dbURL, migrationsPath); err != nil {
		return nil, fmt.Errorf("ошибка применения миграций: %w", err)
	}

	return &postgresStorage{
		db:     db,
		tracer: otel.Tracer("postgres-storage"),
	}, nil
}

// runMigrations выполняет миграции БД до последней версии.
func runMigrations(dbURL, migrationsPath string) error {
	log.Println("Поиск и применение миграций...")

	// Важно: 'file://' префикс
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dbURL)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр миграции: %w", err)
	}

	// Применяем миграции "вверх"
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("не удалось выполнить миграции: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("не удалось получить версию миграции: %w", err)
	}

	if dirty {
		log.Printf("БД в 'грязном' состоянии (dirty). Версия: %d. Рекомендуется проверка.", version)
	}

	log.Printf("Миграции успешно применены. Текущая версия БД: %d", version)
	return nil
}

// SaveSlice пишет значение слайса, затирая предыдущее (last write wins).
func (s *postgresStorage) SaveSlice(ctx context.Context, key string, value []byte) error {
	ctx, span := s.tracer.Start(ctx, "DB.SaveSlice")
	defer span.End()

	query := `INSERT INTO app_state (key, value, updated_at)
	          VALUES ($1, $2, now())
	          ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = now()`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		metrics.StorageErrors.WithLabelValues("save_slice").Inc()
		return fmt.Errorf("ошибка сохранения слайса %q: %w", key, err)
	}
	return nil
}

// LoadSlice читает значение слайса по ключу.
func (s *postgresStorage) LoadSlice(ctx context.Context, key string) ([]byte, error) {
	ctx, span := s.tracer.Start(ctx, "DB.LoadSlice")
	defer span.End()

	var value []byte
	if err := s.db.GetContext(ctx, &value, `SELECT value FROM app_state WHERE key = $1`, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSliceNotFound
		}
		metrics.StorageErrors.WithLabelValues("load_slice").Inc()
		return nil, fmt.Errorf("ошибка чтения слайса %q: %w", key, err)
	}
	return value, nil
}

// Close закрывает соединение с БД.
func (s *postgresStorage) Close() error {
	return s.db.Close()
}
