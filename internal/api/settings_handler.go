package api

import (
	"encoding/json"
	"net/http"

	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
	"stroymarket/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

// SettingsHandler обрабатывает настройки темы и языка.
type SettingsHandler struct {
	store *store.Store
}

// NewSettingsHandler создает новый экземпляр SettingsHandler.
func NewSettingsHandler(st *store.Store) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// Get возвращает текущие настройки.
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	handlerName := "SettingsGet"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	state := h.store.Snapshot()
	respondOK(w, map[string]string{
		"theme":    state.Theme,
		"language": state.Language,
	}, handlerName)
}

// SetTheme заменяет тему оформления.
func (h *SettingsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	handlerName := "SetTheme"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !model.ValidTheme(body.Theme) {
		respondWithError(w, http.StatusBadRequest, "допустимые темы: light, dark", handlerName)
		return
	}

	h.store.Dispatch(store.SetTheme{Theme: body.Theme})
	respondOK(w, map[string]string{"theme": body.Theme}, handlerName)
}

// SetLanguage заменяет язык интерфейса.
func (h *SettingsHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	handlerName := "SetLanguage"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var body struct {
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || !model.ValidLanguage(body.Language) {
		respondWithError(w, http.StatusBadRequest, "допустимые языки: ru, uz", handlerName)
		return
	}

	h.store.Dispatch(store.SetLanguage{Language: body.Language})
	respondOK(w, map[string]string{"language": body.Language}, handlerName)
}
