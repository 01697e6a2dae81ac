package catalog

import (
	"sync"

	"stroymarket/internal/model"
)

// Catalog хранит список товаров магазина. Список правится админ-панелью
// и фидом поставщика, поэтому доступ защищен RWMutex. Наружу всегда
// отдаются копии, товар каталога не мутируется на месте.
type Catalog struct {
	mu       sync.RWMutex
	products []model.Product
	nextID   int
}

// New создает каталог из начального списка товаров.
func New(products []model.Product) *Catalog {
	c := &Catalog{
		products: make([]model.Product, 0, len(products)),
		nextID:   1,
	}
	for _, p := range products {
		c.products = append(c.products, p.Clone())
		if p.ID >= c.nextID {
			c.nextID = p.ID + 1
		}
	}
	return c
}

// List возвращает копию всего каталога в исходном порядке.
func (c *Catalog) List() []model.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]model.Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Clone())
	}
	return out
}

// Get возвращает товар по id.
func (c *Catalog) Get(id int) (model.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return model.Product{}, false
}

// Add добавляет товар, назначая ему новый уникальный id,
// и возвращает добавленную копию.
func (c *Catalog) Add(p model.Product) model.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	p = p.Clone()
	p.ID = c.nextID
	c.nextID++
	c.products = append(c.products, p)
	return p.Clone()
}

// Upsert вставляет товар с заданным id или заменяет существующий.
// Используется фидом поставщика, где id приходят извне.
func (c *Catalog) Upsert(p model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p = p.Clone()
	if p.ID >= c.nextID {
		c.nextID = p.ID + 1
	}
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return
		}
	}
	c.products = append(c.products, p)
}

// Update заменяет товар с совпадающим id. Неизвестный id — false.
func (c *Catalog) Update(p model.Product) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p.Clone()
			return true
		}
	}
	return false
}

// Delete удаляет товар по id. Неизвестный id — false.
func (c *Catalog) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true
		}
	}
	return false
}

// Len возвращает количество товаров в каталоге.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
