package catalog

import "stroymarket/internal/model"

// Category — категория каталога с локализованным названием.
type Category struct {
	ID     string `json:"id"`
	NameRU string `json:"nameRu"`
	NameUZ string `json:"nameUz"`
	Icon   string `json:"icon"`
}

// Categories — фиксированный список категорий магазина.
var Categories = []Category{
	{ID: "tools", NameRU: "Инструменты", NameUZ: "Asboblar", Icon: "🔧"},
	{ID: "plumbing", NameRU: "Сантехника", NameUZ: "Santexnika", Icon: "🚿"},
	{ID: "electrical", NameRU: "Электрика", NameUZ: "Elektr jihozlari", Icon: "💡"},
	{ID: "paints", NameRU: "Краски", NameUZ: "Bo'yoqlar", Icon: "🎨"},
	{ID: "building", NameRU: "Стройматериалы", NameUZ: "Qurilish materiallari", Icon: "🧱"},
	{ID: "garden", NameRU: "Сад и огород", NameUZ: "Bog' va tomorqa", Icon: "🌱"},
}

// Brands — фиксированный список брендов для фильтра.
var Brands = []string{
	"Bosch", "Makita", "DeWalt", "Knauf", "Grohe", "Tikkurila", "Karcher", "ABB",
}

// SeedProducts возвращает стартовый каталог стройматериалов.
func SeedProducts() []model.Product {
	return []model.Product{
		{
			ID:       1,
			Name:     model.LocalizedString{RU: "Перфоратор Bosch GBH 2-26", UZ: "Perforator Bosch GBH 2-26"},
			Price:    2450000,
			Category: "tools",
			Brand:    "Bosch",
			Rating:   4.8,
			InStock:  true,
			Discount: 10,
			Description: model.LocalizedString{
				RU: "Профессиональный перфоратор с патроном SDS-plus, 830 Вт.",
				UZ: "SDS-plus patronli professional perforator, 830 Vt.",
			},
			Specifications: []model.Specification{
				{Label: "Мощность", Value: "830 Вт"},
				{Label: "Энергия удара", Value: "2.7 Дж"},
				{Label: "Вес", Value: "2.7 кг"},
			},
		},
		{
			ID:       2,
			Name:     model.LocalizedString{RU: "Шуруповерт Makita DF333D", UZ: "Shurupovert Makita DF333D"},
			Price:    1180000,
			Category: "tools",
			Brand:    "Makita",
			Rating:   4.6,
			InStock:  true,
			IsNew:    true,
			Description: model.LocalizedString{
				RU: "Аккумуляторная дрель-шуруповерт 12В, два аккумулятора в комплекте.",
				UZ: "12V akkumulyatorli drel-shurupovert, ikkita akkumulyator bilan.",
			},
			Specifications: []model.Specification{
				{Label: "Напряжение", Value: "12 В"},
				{Label: "Крутящий момент", Value: "30 Нм"},
			},
		},
		{
			ID:       3,
			Name:     model.LocalizedString{RU: "Смеситель Grohe Eurosmart", UZ: "Smesitel Grohe Eurosmart"},
			Price:    950000,
			Category: "plumbing",
			Brand:    "Grohe",
			Rating:   4.7,
			InStock:  true,
			Description: model.LocalizedString{
				RU: "Однорычажный смеситель для умывальника, хром.",
				UZ: "Bir richagli yuvgich smesiteli, xrom.",
			},
			Specifications: []model.Specification{
				{Label: "Материал", Value: "Латунь"},
				{Label: "Покрытие", Value: "Хром"},
			},
		},
		{
			ID:       4,
			Name:     model.LocalizedString{RU: "Кабель ВВГнг 3x2.5 (100 м)", UZ: "Kabel VVGng 3x2.5 (100 m)"},
			Price:    780000,
			Category: "electrical",
			Brand:    "ABB",
			Rating:   4.5,
			InStock:  true,
			Description: model.LocalizedString{
				RU: "Силовой медный кабель, не распространяющий горение.",
				UZ: "Yonishni tarqatmaydigan mis quvvat kabeli.",
			},
			Specifications: []model.Specification{
				{Label: "Сечение", Value: "3x2.5 мм²"},
				{Label: "Длина", Value: "100 м"},
			},
		},
		{
			ID:       5,
			Name:     model.LocalizedString{RU: "Краска Tikkurila Euro Power 7 (9 л)", UZ: "Bo'yoq Tikkurila Euro Power 7 (9 l)"},
			Price:    620000,
			Category: "paints",
			Brand:    "Tikkurila",
			Rating:   4.9,
			InStock:  true,
			Discount: 15,
			Description: model.LocalizedString{
				RU: "Моющаяся интерьерная краска для стен и потолков, матовая.",
				UZ: "Devor va shiftlar uchun yuviladigan interyer bo'yog'i, mat.",
			},
			Specifications: []model.Specification{
				{Label: "Объем", Value: "9 л"},
				{Label: "Расход", Value: "7-9 м²/л"},
			},
		},
		{
			ID:       6,
			Name:     model.LocalizedString{RU: "Гипсокартон Knauf 12.5 мм", UZ: "Gipsokarton Knauf 12.5 mm"},
			Price:    85000,
			Category: "building",
			Brand:    "Knauf",
			Rating:   4.4,
			InStock:  true,
			Description: model.LocalizedString{
				RU: "Лист гипсокартонный стандартный, 2500x1200x12.5 мм.",
				UZ: "Standart gipsokarton list, 2500x1200x12.5 mm.",
			},
			Specifications: []model.Specification{
				{Label: "Размер", Value: "2500x1200 мм"},
				{Label: "Толщина", Value: "12.5 мм"},
			},
		},
		{
			ID:       7,
			Name:     model.LocalizedString{RU: "Мойка высокого давления Karcher K5", UZ: "Yuqori bosimli yuvish apparati Karcher K5"},
			Price:    3200000,
			Category: "garden",
			Brand:    "Karcher",
			Rating:   4.7,
			InStock:  false,
			Description: model.LocalizedString{
				RU: "Мойка высокого давления для дома и сада, 145 бар.",
				UZ: "Uy va bog' uchun yuqori bosimli yuvish apparati, 145 bar.",
			},
			Specifications: []model.Specification{
				{Label: "Давление", Value: "145 бар"},
				{Label: "Производительность", Value: "500 л/ч"},
			},
		},
		{
			ID:       8,
			Name:     model.LocalizedString{RU: "Угловая шлифмашина DeWalt DWE4157", UZ: "Burchak silliqlash mashinasi DeWalt DWE4157"},
			Price:    1450000,
			Category: "tools",
			Brand:    "DeWalt",
			Rating:   4.3,
			InStock:  false,
			Discount: 5,
			Description: model.LocalizedString{
				RU: "Болгарка 125 мм, 900 Вт, защита от повторного пуска.",
				UZ: "Bolgarka 125 mm, 900 Vt, qayta ishga tushishdan himoya.",
			},
			Specifications: []model.Specification{
				{Label: "Диск", Value: "125 мм"},
				{Label: "Мощность", Value: "900 Вт"},
			},
		},
		{
			ID:       9,
			Name:     model.LocalizedString{RU: "Шпатлевка Knauf Fugen (25 кг)", UZ: "Shpatlyovka Knauf Fugen (25 kg)"},
			Price:    95000,
			Category: "building",
			Brand:    "Knauf",
			Rating:   4.6,
			InStock:  true,
			IsNew:    true,
			Description: model.LocalizedString{
				RU: "Гипсовая шпатлевка для заделки швов гипсокартона.",
				UZ: "Gipsokarton choklarini to'ldirish uchun gips shpatlyovkasi.",
			},
			Specifications: []model.Specification{
				{Label: "Вес", Value: "25 кг"},
				{Label: "Расход", Value: "0.25 кг/м²"},
			},
		},
		{
			ID:       10,
			Name:     model.LocalizedString{RU: "Розетка ABB Basic 55", UZ: "Rozetka ABB Basic 55"},
			Price:    45000,
			Category: "electrical",
			Brand:    "ABB",
			Rating:   4.2,
			InStock:  true,
			Description: model.LocalizedString{
				RU: "Розетка с заземлением, скрытая установка, белая.",
				UZ: "Yerga ulangan rozetka, yashirin o'rnatish, oq.",
			},
			Specifications: []model.Specification{
				{Label: "Ток", Value: "16 А"},
				{Label: "Цвет", Value: "Белый"},
			},
		},
	}
}
