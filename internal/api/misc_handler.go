package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"stroymarket/internal/geo"
	"stroymarket/internal/i18n"
	"stroymarket/internal/metrics"
	"stroymarket/internal/promo"
	"stroymarket/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

// PromoHandler проверяет промокод. Нераспознанный код — отказ
// пользователю, а не сбой системы.
func PromoHandler(w http.ResponseWriter, r *http.Request) {
	handlerName := "Promo"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", handlerName)
		return
	}

	discount, err := promo.Lookup(body.Code)
	if err != nil {
		if errors.Is(err, promo.ErrNotFound) {
			respondWithError(w, http.StatusUnprocessableEntity, "промокод не найден", handlerName)
			return
		}
		respondWithError(w, http.StatusInternalServerError, "ошибка проверки промокода", handlerName)
		return
	}

	respondOK(w, map[string]int{"discountPercent": discount}, handlerName)
}

// ContactsHandler возвращает контакты магазина и ссылки на карту.
// Карта чисто презентационная и данных store не использует, язык
// берется только для подписей.
func ContactsHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		handlerName := "Contacts"
		timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
		defer timer.ObserveDuration()

		lang := st.Snapshot().Language
		loc := geo.StoreLocation
		respondOK(w, map[string]interface{}{
			"title":   i18n.T(lang, "contacts"),
			"address": loc.Address,
			"phones":  []string{"+998 71 200-00-15", "+998 90 123-45-67"},
			"email":   "info@stroymarket.uz",
			"map": map[string]string{
				"embedUrl":    loc.EmbedURL(),
				"externalUrl": loc.ExternalURL(),
				"geoUri":      loc.GeoURI(),
			},
		}, handlerName)
	}
}
