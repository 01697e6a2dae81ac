package database

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
	"stroymarket/internal/store"
)

// Adapter связывает store с durable-хранилищем: пишет изменившиеся
// слайсы после каждого dispatch и один раз при старте восстанавливает
// состояние. Записи fire-and-forget: ошибка одного слайса логируется
// и не блокирует остальные.
type Adapter struct {
	storage Storage
}

// NewAdapter создает адаптер персистентности поверх хранилища.
func NewAdapter(storage Storage) *Adapter {
	return &Adapter{storage: storage}
}

// Persist сериализует и записывает каждый изменившийся слайс независимо.
// Сигнатура совместима со store.ChangeFunc.
func (a *Adapter) Persist(state model.AppState, changed []store.Slice) {
	ctx := context.Background()
	for _, sl := range changed {
		raw, err := json.Marshal(sliceValue(state, sl))
		if err != nil {
			log.Printf("Ошибка сериализации слайса %q: %v", sl, err)
			metrics.SliceWrites.WithLabelValues(string(sl), "error").Inc()
			continue
		}
		if err := a.storage.SaveSlice(ctx, string(sl), raw); err != nil {
			log.Printf("Ошибка записи слайса %q: %v", sl, err)
			metrics.SliceWrites.WithLabelValues(string(sl), "error").Inc()
			continue
		}
		metrics.SliceWrites.WithLabelValues(string(sl), "ok").Inc()
	}
}

// sliceValue выбирает из состояния значение одного сохраняемого слайса.
func sliceValue(state model.AppState, sl store.Slice) interface{} {
	switch sl {
	case store.SliceTheme:
		return state.Theme
	case store.SliceLanguage:
		return state.Language
	case store.SliceCart:
		return state.Cart
	case store.SliceOrders:
		return state.Orders
	case store.SliceUser:
		return state.User
	default:
		return nil
	}
}

// Rehydrate восстанавливает состояние из хранилища. Выполняется один
// раз при старте, до приема HTTP-трафика. Каждый ключ читается
// независимо: битый JSON логируется, слайс остается со значением
// по умолчанию, остальные ключи загружаются дальше.
func (a *Adapter) Rehydrate(ctx context.Context, s *store.Store) {
	if raw, ok := a.loadSlice(ctx, store.SliceTheme); ok {
		var theme string
		if err := json.Unmarshal(raw, &theme); err != nil {
			a.corrupted(store.SliceTheme, err)
		} else if model.ValidTheme(theme) {
			s.Dispatch(store.SetTheme{Theme: theme})
		}
	}

	if raw, ok := a.loadSlice(ctx, store.SliceLanguage); ok {
		var lang string
		if err := json.Unmarshal(raw, &lang); err != nil {
			a.corrupted(store.SliceLanguage, err)
		} else if model.ValidLanguage(lang) {
			s.Dispatch(store.SetLanguage{Language: lang})
		}
	}

	if raw, ok := a.loadSlice(ctx, store.SliceCart); ok {
		var items []model.CartItem
		if err := json.Unmarshal(raw, &items); err != nil {
			a.corrupted(store.SliceCart, err)
		} else {
			// Позиции восстанавливаются как есть: итоговое состояние
			// совпадает с поштучным повторением AddToCart.
			s.Dispatch(store.RestoreCart{Items: items})
		}
	}

	if raw, ok := a.loadSlice(ctx, store.SliceOrders); ok {
		var orders []model.Order
		if err := json.Unmarshal(raw, &orders); err != nil {
			a.corrupted(store.SliceOrders, err)
		} else {
			// Сохраненный порядок (новые первыми), id, суммы и статусы
			// переносятся дословно, суммы не пересчитываются.
			s.Dispatch(store.RestoreOrders{Orders: orders})
		}
	}

	if raw, ok := a.loadSlice(ctx, store.SliceUser); ok {
		var user *model.UserProfile
		if err := json.Unmarshal(raw, &user); err != nil {
			a.corrupted(store.SliceUser, err)
		} else if user != nil {
			s.Dispatch(store.SetUser{User: user})
		}
	}

	log.Println("Регидрация состояния завершена.")
}

// loadSlice читает один ключ. Отсутствие ключа — не ошибка.
func (a *Adapter) loadSlice(ctx context.Context, sl store.Slice) ([]byte, bool) {
	raw, err := a.storage.LoadSlice(ctx, string(sl))
	if err != nil {
		if !errors.Is(err, ErrSliceNotFound) {
			log.Printf("Ошибка чтения слайса %q: %v", sl, err)
			metrics.RehydrateErrors.WithLabelValues(string(sl)).Inc()
		}
		return nil, false
	}
	return raw, true
}

func (a *Adapter) corrupted(sl store.Slice, err error) {
	log.Printf("Слайс %q поврежден, используется значение по умолчанию: %v", sl, err)
	metrics.RehydrateErrors.WithLabelValues(string(sl)).Inc()
}
