package store

import (
	"log"
	"sync"

	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
)

// Slice — независимо сохраняемая часть состояния. Значения совпадают
// с ключами в durable-хранилище.
type Slice string

const (
	SliceTheme    Slice = "theme"
	SliceLanguage Slice = "language"
	SliceCart     Slice = "cart"
	SliceOrders   Slice = "orders"
	SliceUser     Slice = "user"
)

// ChangeFunc вызывается синхронно после каждого dispatch с копией
// нового состояния и списком изменившихся сохраняемых слайсов.
// Callback не должен вызывать Dispatch того же store.
type ChangeFunc func(state model.AppState, changed []Slice)

// Store владеет состоянием приложения. Вся мутация идет через
// Dispatch; каждый переход выполняется целиком под мьютексом,
// частично обновленное состояние снаружи не наблюдаемо.
type Store struct {
	mu       sync.Mutex
	state    model.AppState
	onChange ChangeFunc
}

// New создает store с состоянием по умолчанию.
func New() *Store {
	return &Store{
		state: model.AppState{
			Theme:    model.ThemeLight,
			Language: model.LangRU,
			Cart:     []model.CartItem{},
			Orders:   []model.Order{},
			SortBy:   model.SortPopular,
		},
	}
}

// OnChange регистрирует обработчик изменений (хук персистентности).
func (s *Store) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Dispatch применяет действие к состоянию. Переход никогда не
// завершается ошибкой: неизвестные действия и неизвестные id — no-op.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, changed := reduce(s.state, action)
	s.state = next

	if len(changed) > 0 {
		metrics.StoreDispatches.WithLabelValues(actionName(action)).Inc()
		if s.onChange != nil {
			s.onChange(cloneState(s.state), changed)
		}
	}
}

// Snapshot возвращает независимую копию текущего состояния.
func (s *Store) Snapshot() model.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state)
}

// reduce — чистая функция перехода: (состояние, действие) -> новое
// состояние плюс список изменившихся сохраняемых слайсов.
func reduce(st model.AppState, action Action) (model.AppState, []Slice) {
	switch a := action.(type) {
	case SetTheme:
		st.Theme = a.Theme
		return st, []Slice{SliceTheme}

	case SetLanguage:
		st.Language = a.Language
		return st, []Slice{SliceLanguage}

	case AddToCart:
		cart := make([]model.CartItem, len(st.Cart))
		copy(cart, st.Cart)
		for i := range cart {
			if cart[i].ID == a.Product.ID {
				cart[i].Quantity++
				st.Cart = cart
				return st, []Slice{SliceCart}
			}
		}
		st.Cart = append(cart, model.CartItem{Product: a.Product.Clone(), Quantity: 1})
		return st, []Slice{SliceCart}

	case UpdateCartItem:
		if a.Quantity <= 0 {
			return removeFromCart(st, a.ID)
		}
		cart := make([]model.CartItem, len(st.Cart))
		copy(cart, st.Cart)
		for i := range cart {
			if cart[i].ID == a.ID {
				cart[i].Quantity = a.Quantity
				st.Cart = cart
				return st, []Slice{SliceCart}
			}
		}
		// Неизвестный id — no-op.
		return st, nil

	case RemoveFromCart:
		return removeFromCart(st, a.ID)

	case ClearCart:
		st.Cart = []model.CartItem{}
		return st, []Slice{SliceCart}

	case AddOrder:
		orders := make([]model.Order, 0, len(st.Orders)+1)
		orders = append(orders, a.Order)
		orders = append(orders, st.Orders...)
		st.Orders = orders
		return st, []Slice{SliceOrders}

	case SetSearchQuery:
		st.SearchQuery = a.Query
		return st, nil

	case SetCategory:
		st.SelectedCategory = a.Category
		return st, nil

	case SetBrand:
		st.SelectedBrand = a.Brand
		return st, nil

	case SetSortBy:
		st.SortBy = a.SortBy
		return st, nil

	case SetUser:
		st.User = cloneProfile(a.User)
		return st, []Slice{SliceUser}

	case RestoreCart:
		cart := make([]model.CartItem, 0, len(a.Items))
		for _, item := range a.Items {
			if item.Quantity > 0 {
				cart = append(cart, model.CartItem{Product: item.Product.Clone(), Quantity: item.Quantity})
			}
		}
		st.Cart = cart
		return st, []Slice{SliceCart}

	case RestoreOrders:
		orders := make([]model.Order, len(a.Orders))
		copy(orders, a.Orders)
		st.Orders = orders
		return st, []Slice{SliceOrders}

	default:
		log.Printf("Store: неизвестное действие %T, состояние не изменено", action)
		return st, nil
	}
}

func removeFromCart(st model.AppState, id int) (model.AppState, []Slice) {
	cart := make([]model.CartItem, 0, len(st.Cart))
	found := false
	for _, item := range st.Cart {
		if item.ID == id {
			found = true
			continue
		}
		cart = append(cart, item)
	}
	if !found {
		return st, nil
	}
	st.Cart = cart
	return st, []Slice{SliceCart}
}

// CartCount — производное значение: суммарное количество товаров в корзине.
func CartCount(st model.AppState) int {
	count := 0
	for _, item := range st.Cart {
		count += item.Quantity
	}
	return count
}

// CartSubtotal — производное значение: сумма цена*количество по корзине.
// Сумма заказа считается один раз при оформлении и производным значением
// после этого не является.
func CartSubtotal(st model.AppState) int {
	sum := 0
	for _, item := range st.Cart {
		sum += item.Subtotal()
	}
	return sum
}

func cloneState(st model.AppState) model.AppState {
	cp := st
	cp.Cart = make([]model.CartItem, len(st.Cart))
	for i, item := range st.Cart {
		cp.Cart[i] = model.CartItem{Product: item.Product.Clone(), Quantity: item.Quantity}
	}
	cp.Orders = make([]model.Order, len(st.Orders))
	copy(cp.Orders, st.Orders)
	cp.User = cloneProfile(st.User)
	return cp
}

func cloneProfile(u *model.UserProfile) *model.UserProfile {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}
