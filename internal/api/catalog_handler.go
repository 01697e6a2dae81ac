package api

import (
	"log"
	"net/http"
	"strconv"

	"stroymarket/internal/cache"
	"stroymarket/internal/catalog"
	"stroymarket/internal/metrics"
	"stroymarket/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// CatalogHandler обрабатывает запросы к каталогу товаров.
type CatalogHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
	cache   cache.Cache
}

// NewCatalogHandler создает новый экземпляр CatalogHandler.
func NewCatalogHandler(st *store.Store, cat *catalog.Catalog, cache cache.Cache) *CatalogHandler {
	return &CatalogHandler{store: st, catalog: cat, cache: cache}
}

// List возвращает видимый список товаров. Поисковые параметры запроса
// записываются в store (пустое значение снимает фильтр), ценовой
// диапазон и переключатели остаются локальными для запроса.
// Результаты выборки кэшируются по сигнатуре фильтра.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	handlerName := "CatalogList"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	query := r.URL.Query()
	if query.Has("q") {
		h.store.Dispatch(store.SetSearchQuery{Query: query.Get("q")})
	}
	if query.Has("category") {
		h.store.Dispatch(store.SetCategory{Category: query.Get("category")})
	}
	if query.Has("brand") {
		h.store.Dispatch(store.SetBrand{Brand: query.Get("brand")})
	}
	if query.Has("sort") {
		h.store.Dispatch(store.SetSortBy{SortBy: query.Get("sort")})
	}

	state := h.store.Snapshot()
	filter := catalog.Filter{
		Query:        state.SearchQuery,
		Category:     state.SelectedCategory,
		Brand:        state.SelectedBrand,
		PriceMin:     intParam(query.Get("priceMin"), 0),
		PriceMax:     intParam(query.Get("priceMax"), catalog.MaxPrice),
		InStockOnly:  query.Get("inStock") == "true",
		WithDiscount: query.Get("withDiscount") == "true",
		SortBy:       state.SortBy,
	}

	key := filter.Key()
	if cached, found := h.cache.Get(r.Context(), key); found {
		log.Printf("КЭШ ХИТ: выборка каталога %s", key)
		metrics.CacheHits.Inc()
		respondOK(w, cached, handlerName)
		return
	}

	metrics.CacheMisses.Inc()
	products := catalog.Apply(h.catalog.List(), filter)
	response := map[string]interface{}{
		"products": products,
		"total":    len(products),
	}
	h.cache.Set(r.Context(), key, response)

	respondOK(w, response, handlerName)
}

// GetByID возвращает товар по id.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	handlerName := "CatalogGetByID"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный id товара", handlerName)
		return
	}

	product, found := h.catalog.Get(id)
	if !found {
		respondWithError(w, http.StatusNotFound, "товар не найден", handlerName)
		return
	}

	respondOK(w, product, handlerName)
}

// Categories возвращает справочники категорий и брендов.
func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {
	handlerName := "Categories"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	respondOK(w, map[string]interface{}{
		"categories": catalog.Categories,
		"brands":     catalog.Brands,
	}, handlerName)
}

// intParam разбирает числовой параметр запроса с значением по умолчанию.
func intParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
