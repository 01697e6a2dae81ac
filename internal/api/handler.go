package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
)

// OrderPublisher публикует событие об оформленном заказе.
// Реализуется kafka.Publisher; nil отключает публикацию.
type OrderPublisher interface {
	PublishOrderPlaced(ctx context.Context, order model.Order)
}

// respondWithJSON вспомогательная функция для отправки JSON-ответов.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

func respondWithError(w http.ResponseWriter, code int, message string, handlerName string) {
	metrics.HttpRequestsTotal.WithLabelValues(handlerName, strconv.Itoa(code)).Inc()
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondOK(w http.ResponseWriter, payload interface{}, handlerName string) {
	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "200").Inc()
	respondWithJSON(w, http.StatusOK, payload)
}
