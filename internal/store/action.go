package store

import "stroymarket/internal/model"

// Action — закрытый набор действий store. Каждое действие несет
// свой типизированный payload и обрабатывается единственной
// функцией перехода reduce.
type Action interface {
	isAction()
}

// SetTheme заменяет тему оформления (light|dark).
type SetTheme struct {
	Theme string
}

// SetLanguage заменяет язык интерфейса (ru|uz).
type SetLanguage struct {
	Language string
}

// AddToCart добавляет товар в корзину: существующая позиция
// увеличивается ровно на 1, иначе создается позиция с количеством 1.
type AddToCart struct {
	Product model.Product
}

// UpdateCartItem выставляет количество позиции абсолютно (не дельтой).
// Количество <= 0 удаляет позицию.
type UpdateCartItem struct {
	ID       int
	Quantity int
}

// RemoveFromCart удаляет позицию по id товара.
type RemoveFromCart struct {
	ID int
}

// ClearCart опустошает корзину.
type ClearCart struct{}

// AddOrder добавляет заказ в начало истории. Уникальность id
// гарантирует вызывающая сторона.
type AddOrder struct {
	Order model.Order
}

// SetSearchQuery заменяет поисковую строку; пустая строка снимает фильтр.
type SetSearchQuery struct {
	Query string
}

// SetCategory заменяет выбранную категорию.
type SetCategory struct {
	Category string
}

// SetBrand заменяет выбранный бренд.
type SetBrand struct {
	Brand string
}

// SetSortBy заменяет вариант сортировки каталога.
type SetSortBy struct {
	SortBy string
}

// SetUser заменяет профиль целиком; nil сбрасывает профиль.
type SetUser struct {
	User *model.UserProfile
}

// RestoreCart восстанавливает корзину при регидрации: позиции
// записываются как есть, без поштучного повторения AddToCart.
type RestoreCart struct {
	Items []model.CartItem
}

// RestoreOrders восстанавливает историю заказов при регидрации
// в сохраненном порядке, суммы не пересчитываются.
type RestoreOrders struct {
	Orders []model.Order
}

func (SetTheme) isAction()       {}
func (SetLanguage) isAction()    {}
func (AddToCart) isAction()      {}
func (UpdateCartItem) isAction() {}
func (RemoveFromCart) isAction() {}
func (ClearCart) isAction()      {}
func (AddOrder) isAction()       {}
func (SetSearchQuery) isAction() {}
func (SetCategory) isAction()    {}
func (SetBrand) isAction()       {}
func (SetSortBy) isAction()      {}
func (SetUser) isAction()        {}
func (RestoreCart) isAction()    {}
func (RestoreOrders) isAction()  {}

// actionName возвращает имя действия для метрик.
func actionName(a Action) string {
	switch a.(type) {
	case SetTheme:
		return "set_theme"
	case SetLanguage:
		return "set_language"
	case AddToCart:
		return "add_to_cart"
	case UpdateCartItem:
		return "update_cart_item"
	case RemoveFromCart:
		return "remove_from_cart"
	case ClearCart:
		return "clear_cart"
	case AddOrder:
		return "add_order"
	case SetUser:
		return "set_user"
	case RestoreCart:
		return "restore_cart"
	case RestoreOrders:
		return "restore_orders"
	default:
		return "other"
	}
}
