package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"stroymarket/internal/cache"
	"stroymarket/internal/catalog"
	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
	"stroymarket/internal/validator"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

// AdminHandler — CRUD админ-панели над списком товаров.
type AdminHandler struct {
	catalog *catalog.Catalog
	cache   cache.Cache
}

// NewAdminHandler создает новый экземпляр AdminHandler.
func NewAdminHandler(cat *catalog.Catalog, cache cache.Cache) *AdminHandler {
	return &AdminHandler{catalog: cat, cache: cache}
}

// List возвращает полный каталог для админ-панели.
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	handlerName := "AdminList"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	products := h.catalog.List()
	respondOK(w, map[string]interface{}{
		"products": products,
		"total":    len(products),
	}, handlerName)
}

// Create добавляет новый товар; id назначает каталог.
func (h *AdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	handlerName := "AdminCreate"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", handlerName)
		return
	}
	product.ID = 0
	if err := validateAdminProduct(&product); err != nil {
		respondWithError(w, http.StatusBadRequest, "товар не прошел валидацию: "+err.Error(), handlerName)
		return
	}

	created := h.catalog.Add(product)
	h.cache.Purge(r.Context())
	log.Printf("Админ: товар %d добавлен в каталог.", created.ID)

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, created)
}

// Update заменяет товар с указанным id.
func (h *AdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	handlerName := "AdminUpdate"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный id товара", handlerName)
		return
	}

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", handlerName)
		return
	}
	product.ID = id
	if err := validator.ValidateStruct(&product); err != nil {
		respondWithError(w, http.StatusBadRequest, "товар не прошел валидацию: "+err.Error(), handlerName)
		return
	}

	if !h.catalog.Update(product) {
		respondWithError(w, http.StatusNotFound, "товар не найден", handlerName)
		return
	}
	h.cache.Purge(r.Context())
	log.Printf("Админ: товар %d обновлен.", id)

	respondOK(w, product, handlerName)
}

// Delete удаляет товар из каталога.
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handlerName := "AdminDelete"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	id, err := strconv.Atoi(chi.URLParam(r, "productID"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректный id товара", handlerName)
		return
	}

	if !h.catalog.Delete(id) {
		respondWithError(w, http.StatusNotFound, "товар не найден", handlerName)
		return
	}
	h.cache.Purge(r.Context())
	log.Printf("Админ: товар %d удален.", id)

	respondOK(w, map[string]bool{"deleted": true}, handlerName)
}

// validateAdminProduct проверяет создаваемый товар: id еще не назначен,
// поэтому тег gt=0 для него не применяется.
func validateAdminProduct(p *model.Product) error {
	tmp := *p
	tmp.ID = 1
	return validator.ValidateStruct(&tmp)
}
