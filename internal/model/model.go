package model

// Theme и Language — допустимые значения настроек магазина.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	LangRU = "ru"
	LangUZ = "uz"
)

// Статусы заказа. Автоматических переходов между ними нет,
// статус меняется только вручную.
const (
	StatusProcessing = "processing"
	StatusConfirmed  = "confirmed"
	StatusShipping   = "shipping"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Варианты сортировки каталога. SortPopular — значение по умолчанию.
const (
	SortPopular   = "popular"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortNew       = "new"
)

// LocalizedString хранит строку на двух языках магазина.
type LocalizedString struct {
	RU string `json:"ru" validate:"required"`
	UZ string `json:"uz" validate:"required"`
}

// Get возвращает строку для указанного языка.
func (s LocalizedString) Get(lang string) string {
	if lang == LangUZ {
		return s.UZ
	}
	return s.RU
}

// Specification — одна характеристика товара. Порядок характеристик
// важен для отображения, поэтому это срез, а не map.
type Specification struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Product описывает товар каталога. Цена хранится в целых сумах.
type Product struct {
	ID             int             `json:"id" validate:"gt=0"`
	Name           LocalizedString `json:"name" validate:"required"`
	Price          int             `json:"price" validate:"gte=0"`
	Image          string          `json:"image,omitempty"`
	Category       string          `json:"category" validate:"required"`
	Brand          string          `json:"brand" validate:"required"`
	Rating         float64         `json:"rating" validate:"gte=0,lte=5"`
	InStock        bool            `json:"inStock"`
	IsNew          bool            `json:"isNew,omitempty"`
	Discount       int             `json:"discount,omitempty" validate:"gte=0,lt=100"`
	// Описание необязательно и не валидируется.
	Description    LocalizedString `json:"description" validate:"-"`
	Specifications []Specification `json:"specifications,omitempty"`
}

// Clone возвращает независимую копию товара. Товар каталога никогда
// не мутируется на месте — корзина и выдача работают с копиями.
func (p Product) Clone() Product {
	cp := p
	if p.Specifications != nil {
		cp.Specifications = make([]Specification, len(p.Specifications))
		copy(cp.Specifications, p.Specifications)
	}
	return cp
}

// CartItem — позиция корзины: товар плюс количество.
// Позиция с количеством <= 0 не существует, она удаляется.
type CartItem struct {
	Product
	Quantity int `json:"quantity" validate:"gt=0"`
}

// Subtotal возвращает стоимость позиции.
func (i CartItem) Subtotal() int {
	return i.Price * i.Quantity
}

// Order — оформленный заказ. После создания не изменяется:
// состав и сумма зафиксированы на момент оформления.
type Order struct {
	ID     int64      `json:"id" validate:"required"`
	Date   string     `json:"date" validate:"required"`
	Items  []CartItem `json:"items" validate:"required,min=1,dive"`
	Total  int        `json:"total" validate:"gte=0"`
	Status string     `json:"status" validate:"required,oneof=processing confirmed shipping delivered cancelled"`

	// Данные формы оформления (из страницы checkout).
	CustomerName   string `json:"customerName,omitempty"`
	CustomerPhone  string `json:"customerPhone,omitempty"`
	Address        string `json:"address,omitempty"`
	DeliveryMethod string `json:"deliveryMethod,omitempty"`
	PaymentMethod  string `json:"paymentMethod,omitempty"`
	Comment        string `json:"comment,omitempty"`
}

// UserProfile — профиль покупателя. Объект заменяется целиком:
// частичные обновления склеивает вызывающая сторона до dispatch.
type UserProfile struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone" validate:"required,e164"`
	Email string `json:"email" validate:"required,email"`
}

// AppState — корневой агрегат состояния магазина. Единственный
// экземпляр принадлежит store, снаружи доступны только копии.
type AppState struct {
	Theme            string       `json:"theme"`
	Language         string       `json:"language"`
	Cart             []CartItem   `json:"cart"`
	Orders           []Order      `json:"orders"`
	SearchQuery      string       `json:"searchQuery"`
	SelectedCategory string       `json:"selectedCategory"`
	SelectedBrand    string       `json:"selectedBrand"`
	SortBy           string       `json:"sortBy"`
	User             *UserProfile `json:"user"`
}

// ValidTheme сообщает, является ли значение допустимой темой.
func ValidTheme(v string) bool {
	return v == ThemeLight || v == ThemeDark
}

// ValidLanguage сообщает, является ли значение допустимым языком.
func ValidLanguage(v string) bool {
	return v == LangRU || v == LangUZ
}
