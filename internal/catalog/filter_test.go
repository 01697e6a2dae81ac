package catalog

import (
	"testing"

	"stroymarket/internal/model"

	"github.com/stretchr/testify/assert"
)

func helperProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: model.LocalizedString{RU: "Перфоратор Bosch", UZ: "Perforator Bosch"}, Price: 450000, Category: "tools", Brand: "Bosch", Rating: 4.8, InStock: true, Discount: 10},
		{ID: 2, Name: model.LocalizedString{RU: "Кабель ВВГ", UZ: "VVG kabel"}, Price: 180000, Category: "electrical", Brand: "ABB", Rating: 4.2, InStock: true},
		{ID: 3, Name: model.LocalizedString{RU: "Смеситель Grohe", UZ: "Grohe smesitel"}, Price: 950000, Category: "plumbing", Brand: "Grohe", Rating: 4.9, InStock: false, IsNew: true},
		{ID: 4, Name: model.LocalizedString{RU: "Шуруповерт Makita", UZ: "Makita shurupovert"}, Price: 620000, Category: "tools", Brand: "Makita", Rating: 4.5, InStock: true, Discount: 5},
	}
}

func TestApply_NoFilterKeepsAll(t *testing.T) {
	products := helperProducts()
	result := Apply(products, DefaultFilter())
	assert.Len(t, result, len(products))
}

func TestApply_QueryMatchesNameAndBrand(t *testing.T) {
	products := helperProducts()

	f := DefaultFilter()
	f.Query = "перфоратор"
	result := Apply(products, f)
	assert.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)

	// Регистронезависимо и по бренду
	f.Query = "BOSCH"
	result = Apply(products, f)
	assert.Len(t, result, 1)
	assert.Equal(t, 1, result[0].ID)

	// И по узбекскому имени
	f.Query = "kabel"
	result = Apply(products, f)
	assert.Len(t, result, 1)
	assert.Equal(t, 2, result[0].ID)
}

func TestApply_FiltersComposeWithAND(t *testing.T) {
	products := helperProducts()

	f := DefaultFilter()
	f.Category = "tools"
	assert.Len(t, Apply(products, f), 2)

	f.Brand = "Makita"
	result := Apply(products, f)
	assert.Len(t, result, 1)
	assert.Equal(t, 4, result[0].ID)

	// Добавление ценовой границы сужает дальше
	f.PriceMax = 500000
	assert.Empty(t, Apply(products, f))
}

func TestApply_PriceRangeInclusive(t *testing.T) {
	products := helperProducts()

	f := DefaultFilter()
	f.PriceMin = 180000
	f.PriceMax = 450000
	result := Apply(products, f)
	assert.Len(t, result, 2)
}

func TestApply_Toggles(t *testing.T) {
	products := helperProducts()

	f := DefaultFilter()
	f.InStockOnly = true
	result := Apply(products, f)
	for _, p := range result {
		assert.True(t, p.InStock)
	}
	assert.Len(t, result, 3)

	f = DefaultFilter()
	f.WithDiscount = true
	result = Apply(products, f)
	for _, p := range result {
		assert.Greater(t, p.Discount, 0)
	}
	assert.Len(t, result, 2)
}

func TestApply_SortPriceAsc(t *testing.T) {
	products := []model.Product{
		{ID: 1, Price: 450000, InStock: true},
		{ID: 2, Price: 180000, InStock: true},
	}
	f := DefaultFilter()
	f.SortBy = model.SortPriceAsc
	result := Apply(products, f)
	assert.Equal(t, []int{180000, 450000}, []int{result[0].Price, result[1].Price})

	f.SortBy = model.SortPriceDesc
	result = Apply(products, f)
	assert.Equal(t, []int{450000, 180000}, []int{result[0].Price, result[1].Price})
}

func TestApply_SortPopular(t *testing.T) {
	products := helperProducts()
	result := Apply(products, DefaultFilter())

	// Сначала товары в наличии (по убыванию рейтинга), отсутствующие в конце
	assert.Equal(t, []int{1, 4, 2, 3}, []int{result[0].ID, result[1].ID, result[2].ID, result[3].ID})
}

func TestApply_SortRatingAndNew(t *testing.T) {
	products := helperProducts()

	f := DefaultFilter()
	f.SortBy = model.SortRating
	result := Apply(products, f)
	assert.Equal(t, 3, result[0].ID)

	f.SortBy = model.SortNew
	result = Apply(products, f)
	assert.True(t, result[0].IsNew)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := helperProducts()
	f := DefaultFilter()
	f.SortBy = model.SortPriceAsc
	Apply(products, f)

	// Исходный срез остается в порядке каталога
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, 2, products[1].ID)
}

func TestFilterKey_DistinguishesFilters(t *testing.T) {
	a := DefaultFilter()
	b := DefaultFilter()
	assert.Equal(t, a.Key(), b.Key())

	b.Category = "tools"
	assert.NotEqual(t, a.Key(), b.Key())

	// Регистр запроса не меняет ключ
	a.Query = "Bosch"
	c := a
	c.Query = "bosch"
	assert.Equal(t, a.Key(), c.Key())
}
