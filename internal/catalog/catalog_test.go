package catalog

import (
	"testing"

	"stroymarket/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_SeedProducts(t *testing.T) {
	c := New(SeedProducts())
	assert.Equal(t, 10, c.Len())

	p, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "Перфоратор Bosch GBH 2-26", p.Name.RU)
	assert.NotEmpty(t, p.Name.UZ)
}

func TestCatalog_Get_Unknown(t *testing.T) {
	c := New(SeedProducts())
	_, ok := c.Get(999)
	assert.False(t, ok)
}

func TestCatalog_Add_AssignsNextID(t *testing.T) {
	c := New(SeedProducts())

	added := c.Add(model.Product{
		Name:     model.LocalizedString{RU: "Новый", UZ: "Yangi"},
		Price:    100000,
		Category: "tools",
		Brand:    "Bosch",
	})

	// id назначается каталогом поверх максимального из seed
	assert.Equal(t, 11, added.ID)
	assert.Equal(t, 11, c.Len())

	second := c.Add(model.Product{Name: model.LocalizedString{RU: "Еще", UZ: "Yana"}, Price: 1, Category: "tools", Brand: "ABB"})
	assert.Equal(t, 12, second.ID)
}

func TestCatalog_Upsert(t *testing.T) {
	c := New(SeedProducts())

	// Замена существующего
	p, _ := c.Get(1)
	p.Price = 999999
	c.Upsert(p)
	got, _ := c.Get(1)
	assert.Equal(t, 999999, got.Price)
	assert.Equal(t, 10, c.Len())

	// Вставка нового с внешним id
	c.Upsert(model.Product{ID: 500, Name: model.LocalizedString{RU: "Фид", UZ: "Feed"}, Price: 1, Category: "tools", Brand: "ABB"})
	assert.Equal(t, 11, c.Len())

	// nextID учитывает внешние id
	added := c.Add(model.Product{Name: model.LocalizedString{RU: "После", UZ: "Keyin"}, Price: 1, Category: "tools", Brand: "ABB"})
	assert.Equal(t, 501, added.ID)
}

func TestCatalog_UpdateDelete(t *testing.T) {
	c := New(SeedProducts())

	p, _ := c.Get(2)
	p.InStock = false
	assert.True(t, c.Update(p))
	got, _ := c.Get(2)
	assert.False(t, got.InStock)

	assert.False(t, c.Update(model.Product{ID: 999}))

	assert.True(t, c.Delete(2))
	assert.Equal(t, 9, c.Len())
	_, ok := c.Get(2)
	assert.False(t, ok)

	assert.False(t, c.Delete(2))
}

func TestCatalog_ListReturnsCopies(t *testing.T) {
	c := New(SeedProducts())

	list := c.List()
	list[0].Price = -1

	fresh, _ := c.Get(list[0].ID)
	assert.NotEqual(t, -1, fresh.Price)
}
