package generator

import (
	"fmt"

	"stroymarket/internal/model"

	"github.com/brianvoe/gofakeit/v6"
)

// Шаблоны названий для генерации правдоподобных товаров фида.
var productNames = []struct {
	ru, uz   string
	category string
}{
	{"Дрель ударная", "Zarbli drel", "tools"},
	{"Уровень строительный", "Qurilish darajasi", "tools"},
	{"Труба полипропиленовая", "Polipropilen quvur", "plumbing"},
	{"Унитаз подвесной", "Osma unitaz", "plumbing"},
	{"Автомат защиты", "Himoya avtomati", "electrical"},
	{"Светильник потолочный", "Shift chirog'i", "electrical"},
	{"Грунтовка глубокого проникновения", "Chuqur singuvchi gruntovka", "paints"},
	{"Эмаль алкидная", "Alkid emal", "paints"},
	{"Цемент М400 (50 кг)", "Sement M400 (50 kg)", "building"},
	{"Утеплитель минеральный", "Mineral izolyatsiya", "building"},
	{"Шланг поливочный", "Sug'orish shlangi", "garden"},
	{"Газонокосилка электрическая", "Elektr maysa o'rgich", "garden"},
}

var brands = []string{"Bosch", "Makita", "DeWalt", "Knauf", "Grohe", "Tikkurila", "Karcher", "ABB"}

// NewProduct создает один случайный товар для фида поставщика.
// Эта функция инкапсулирует всю логику генерации тестовых данных.
func NewProduct(id int) model.Product {
	tmpl := productNames[gofakeit.Number(0, len(productNames)-1)]
	brand := brands[gofakeit.Number(0, len(brands)-1)]

	discount := 0
	if gofakeit.Bool() {
		discount = gofakeit.Number(5, 50)
	}

	return model.Product{
		ID:       id,
		Name:     model.LocalizedString{RU: fmt.Sprintf("%s %s", tmpl.ru, brand), UZ: fmt.Sprintf("%s %s", tmpl.uz, brand)},
		Price:    gofakeit.Number(30, 5000) * 1000, // Целые сумы, круглые цены
		Category: tmpl.category,
		Brand:    brand,
		Rating:   float64(gofakeit.Number(30, 50)) / 10,
		InStock:  gofakeit.Number(0, 9) > 1, // Примерно 80% в наличии
		IsNew:    gofakeit.Bool(),
		Discount: discount,
		Description: model.LocalizedString{
			RU: fmt.Sprintf("%s %s, поставка со склада в Ташкенте.", tmpl.ru, brand),
			UZ: fmt.Sprintf("%s %s, Toshkentdagi ombordan yetkaziladi.", tmpl.uz, brand),
		},
		Specifications: []model.Specification{
			{Label: "Артикул", Value: fmt.Sprintf("SM-%d", gofakeit.Number(100000, 999999))},
			{Label: "Гарантия", Value: fmt.Sprintf("%d мес.", gofakeit.Number(6, 36))},
		},
	}
}
