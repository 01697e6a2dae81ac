package i18n

import "stroymarket/internal/model"

// translations — статическая таблица локализации интерфейса.
var translations = map[string]map[string]string{
	model.LangRU: {
		"home":          "Главная",
		"catalog":       "Каталог",
		"cart":          "Корзина",
		"profile":       "Профиль",
		"aboutUs":       "О нас",
		"contacts":      "Контакты",
		"search":        "Поиск товаров...",
		"light":         "Светлая",
		"dark":          "Тёмная",
		"mainBanner":    "Всё для строительства",
		"categories":    "Категории",
		"addToCart":     "В корзину",
		"inStock":       "В наличии",
		"outOfStock":    "Нет в наличии",
		"brand":         "Бренд",
		"rating":        "Рейтинг",
		"cartEmpty":     "Ваша корзина пуста",
		"total":         "Итого",
		"promoCode":     "Промокод",
		"checkout":      "Оформить заказ",
		"orderForm":     "Данные для заказа",
		"fullName":      "ФИО",
		"phone":         "Телефон",
		"address":       "Адрес",
		"delivery":      "Доставка",
		"pickup":        "Самовывоз",
		"paymentMethod": "Способ оплаты",
		"confirmOrder":  "Подтвердить заказ",
		"orderHistory":  "История заказов",
		"price":         "Цена",
		"quantity":      "Количество",
		"sum":           "сум",
		"processing":    "Обрабатывается",
		"confirmed":     "Подтвержден",
		"shipping":      "Доставляется",
		"delivered":     "Доставлен",
		"cancelled":     "Отменен",
	},
	model.LangUZ: {
		"home":          "Bosh sahifa",
		"catalog":       "Katalog",
		"cart":          "Savat",
		"profile":       "Profil",
		"aboutUs":       "Biz haqimizda",
		"contacts":      "Kontaktlar",
		"search":        "Mahsulot qidirish...",
		"light":         "Yorug'",
		"dark":          "Qorong'u",
		"mainBanner":    "Qurilish uchun hamma narsa",
		"categories":    "Kategoriyalar",
		"addToCart":     "Savatga",
		"inStock":       "Mavjud",
		"outOfStock":    "Mavjud emas",
		"brand":         "Brend",
		"rating":        "Reyting",
		"cartEmpty":     "Savatingiz bo'sh",
		"total":         "Jami",
		"promoCode":     "Promokod",
		"checkout":      "Buyurtma berish",
		"orderForm":     "Buyurtma ma'lumotlari",
		"fullName":      "F.I.Sh.",
		"phone":         "Telefon",
		"address":       "Manzil",
		"delivery":      "Yetkazib berish",
		"pickup":        "Olib ketish",
		"paymentMethod": "To'lov usuli",
		"confirmOrder":  "Buyurtmani tasdiqlash",
		"orderHistory":  "Buyurtmalar tarixi",
		"price":         "Narx",
		"quantity":      "Miqdor",
		"sum":           "so'm",
		"processing":    "Qayta ishlanmoqda",
		"confirmed":     "Tasdiqlangan",
		"shipping":      "Yetkazilmoqda",
		"delivered":     "Yetkazildi",
		"cancelled":     "Bekor qilindi",
	},
}

// T возвращает строку интерфейса для языка и ключа.
// Отсутствующий ключ возвращается как есть.
func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[model.LangRU]
	}
	if s, ok := table[key]; ok {
		return s
	}
	return key
}
