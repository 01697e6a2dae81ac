package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stroymarket/internal/catalog"
	"stroymarket/internal/metrics"
	"stroymarket/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// CartHandler обрабатывает запросы к корзине.
type CartHandler struct {
	store   *store.Store
	catalog *catalog.Catalog
}

// NewCartHandler создает новый экземпляр CartHandler.
func NewCartHandler(st *store.Store, cat *catalog.Catalog) *CartHandler {
	return &CartHandler{store: st, catalog: cat}
}

// cartResponse собирает корзину с производными значениями.
func (h *CartHandler) cartResponse() map[string]interface{} {
	state := h.store.Snapshot()
	return map[string]interface{}{
		"items":    state.Cart,
		"count":    store.CartCount(state),
		"subtotal": store.CartSubtotal(state),
	}
}

// Get возвращает текущее содержимое корзины.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	handlerName := "CartGet"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	respondOK(w, h.cartResponse(), handlerName)
}

// Add кладет товар в корзину: существующая позиция увеличивается
// ровно на 1 за вызов, без дебаунса.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	handlerName := "CartAdd"
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

	h.store.Dispatch(store.AddToCart{Product: product})
	respondOK(w, h.cartResponse(), handlerName)
}

// UpdateQuantity выставляет количество позиции абсолютным значением.
// Количество <= 0 удаляет позицию; неизвестный id — no-op.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	handlerName := "CartUpdate"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный id товара", handlerName)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", handlerName)
		return
	}

	h.store.Dispatch(store.UpdateCartItem{ID: id, Quantity: body.Quantity})
	respondOK(w, h.cartResponse(), handlerName)
}

// Remove удаляет позицию из корзины; неизвестный id — no-op.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	handlerName := "CartRemove"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный id товара", handlerName)
		return
	}

	h.store.Dispatch(store.RemoveFromCart{ID: id})
	respondOK(w, h.cartResponse(), handlerName)
}

// Clear опустошает корзину.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	handlerName := "CartClear"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	h.store.Dispatch(store.ClearCart{})
	respondOK(w, h.cartResponse(), handlerName)
}
