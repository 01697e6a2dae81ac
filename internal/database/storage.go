package database

import (
	"context"
	"errors"
)

//go:generate mockgen -source=storage.go -destination=./mocks/storage_mock.go -package=mocks Storage

// ErrSliceNotFound возвращается, когда под ключом слайса ничего не сохранено.
var ErrSliceNotFound = errors.New("слайс не найден в хранилище")

// Storage определяет интерфейс durable key-value хранилища слайсов
// состояния. Каждый слайс пишется и читается независимо; значения —
// JSON-байты.
type Storage interface {
	SaveSlice(ctx context.Context, key string, value []byte) error
	LoadSlice(ctx context.Context, key string) ([]byte, error)
	Close() error
}
