package api

import (
	"encoding/json"
	"net/http"

	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
	"stroymarket/internal/store"
	"stroymarket/internal/validator"

	"github.com/prometheus/client_golang/prometheus"
)

// ProfileHandler обрабатывает запросы к профилю покупателя.
type ProfileHandler struct {
	store *store.Store
}

// NewProfileHandler создает новый экземпляр ProfileHandler.
func NewProfileHandler(st *store.Store) *ProfileHandler {
	return &ProfileHandler{store: st}
}

// Get возвращает профиль; null, если профиль не задан.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	handlerName := "ProfileGet"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	respondOK(w, map[string]interface{}{"user": h.store.Snapshot().User}, handlerName)
}

// Update заменяет профиль целиком. Частичные обновления склеивает
// клиент до запроса, store их не домысливает.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	handlerName := "ProfileUpdate"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var profile model.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", handlerName)
		return
	}
	if err := validator.ValidateStruct(&profile); err != nil {
		respondWithError(w, http.StatusBadRequest, "профиль не прошел валидацию: "+err.Error(), handlerName)
		return
	}

	h.store.Dispatch(store.SetUser{User: &profile})
	respondOK(w, map[string]interface{}{"user": &profile}, handlerName)
}

// Reset сбрасывает профиль.
func (h *ProfileHandler) Reset(w http.ResponseWriter, r *http.Request) {
	handlerName := "ProfileReset"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	h.store.Dispatch(store.SetUser{User: nil})
	respondOK(w, map[string]interface{}{"user": nil}, handlerName)
}
