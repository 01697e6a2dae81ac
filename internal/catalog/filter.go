package catalog

import (
	"fmt"
	"sort"
	"strings"

	"stroymarket/internal/model"
)

// MaxPrice — верхняя граница ценового диапазона по умолчанию, сум.
const MaxPrice = 10000000

// Filter описывает активные фильтры каталога. Поисковые поля приходят
// из состояния store, ценовой диапазон и переключатели — параметры
// конкретного запроса и в состоянии не хранятся.
type Filter struct {
	Query        string
	Category     string
	Brand        string
	PriceMin     int
	PriceMax     int
	InStockOnly  bool
	WithDiscount bool
	SortBy       string
}

// DefaultFilter возвращает фильтр, пропускающий весь каталог.
func DefaultFilter() Filter {
	return Filter{PriceMax: MaxPrice, SortBy: model.SortPopular}
}

// Key возвращает каноническую сигнатуру фильтра для ключа кэша.
func (f Filter) Key() string {
	return fmt.Sprintf("q=%s|c=%s|b=%s|p=%d-%d|s=%t|d=%t|o=%s",
		strings.ToLower(f.Query), f.Category, f.Brand,
		f.PriceMin, f.PriceMax, f.InStockOnly, f.WithDiscount, f.SortBy)
}

// Apply строит видимый список товаров: фильтры соединяются по И,
// сортировка применяется последней. Функция чистая, products не меняется.
func Apply(products []model.Product, f Filter) []model.Product {
	query := strings.ToLower(f.Query)

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if query != "" &&
			!strings.Contains(strings.ToLower(p.Name.RU), query) &&
			!strings.Contains(strings.ToLower(p.Name.UZ), query) &&
			!strings.Contains(strings.ToLower(p.Brand), query) {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if p.Price < f.PriceMin || p.Price > f.PriceMax {
			continue
		}
		if f.InStockOnly && !p.InStock {
			continue
		}
		if f.WithDiscount && p.Discount <= 0 {
			continue
		}
		filtered = append(filtered, p)
	}

	switch f.SortBy {
	case model.SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case model.SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price > filtered[j].Price
		})
	case model.SortRating:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	case model.SortNew:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].IsNew && !filtered[j].IsNew
		})
	default:
		// popular: сначала в наличии, затем по убыванию рейтинга,
		// иначе исходный порядок каталога.
		sort.SliceStable(filtered, func(i, j int) bool {
			if filtered[i].InStock != filtered[j].InStock {
				return filtered[i].InStock
			}
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered
}
