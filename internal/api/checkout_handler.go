package api

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"stroymarket/internal/i18n"
	"stroymarket/internal/metrics"
	"stroymarket/internal/model"
	"stroymarket/internal/store"
	"stroymarket/internal/validator"

	"github.com/prometheus/client_golang/prometheus"
)

// checkoutRequest — форма оформления заказа.
type checkoutRequest struct {
	FullName       string `json:"fullName" validate:"required"`
	Phone          string `json:"phone" validate:"required,e164"`
	Address        string `json:"address" validate:"required_if=DeliveryMethod delivery"`
	DeliveryMethod string `json:"deliveryMethod" validate:"required,oneof=delivery pickup"`
	PaymentMethod  string `json:"paymentMethod" validate:"required,oneof=uzcard humo visa cash"`
	Comment        string `json:"comment"`
}

// CheckoutHandler оформляет заказы и отдает их историю.
type CheckoutHandler struct {
	store     *store.Store
	publisher OrderPublisher

	mu     sync.Mutex
	lastID int64
}

// NewCheckoutHandler создает новый экземпляр CheckoutHandler.
func NewCheckoutHandler(st *store.Store, publisher OrderPublisher) *CheckoutHandler {
	return &CheckoutHandler{store: st, publisher: publisher}
}

// nextOrderID выдает уникальный id, производный от времени.
// При нескольких заказах в одну миллисекунду id монотонно сдвигается.
func (h *CheckoutHandler) nextOrderID() int64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= h.lastID {
		id = h.lastID + 1
	}
	h.lastID = id
	return id
}

// Submit оформляет заказ: отвергает пустую корзину, фиксирует состав
// и сумму на момент оформления, очищает корзину и публикует событие.
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	handlerName := "CheckoutSubmit"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	var form checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		respondWithError(w, http.StatusBadRequest, "некорректное тело запроса", handlerName)
		return
	}
	if err := validator.ValidateStruct(&form); err != nil {
		respondWithError(w, http.StatusBadRequest, "форма заказа не прошла валидацию: "+err.Error(), handlerName)
		return
	}

	state := h.store.Snapshot()
	if len(state.Cart) == 0 {
		// Заказ с пустым составом не создается никогда.
		respondWithError(w, http.StatusUnprocessableEntity, "корзина пуста", handlerName)
		return
	}

	order := model.Order{
		ID:             h.nextOrderID(),
		Date:           time.Now().Format(time.RFC3339),
		Items:          state.Cart,
		Total:          store.CartSubtotal(state),
		Status:         model.StatusProcessing,
		CustomerName:   form.FullName,
		CustomerPhone:  form.Phone,
		Address:        form.Address,
		DeliveryMethod: form.DeliveryMethod,
		PaymentMethod:  form.PaymentMethod,
		Comment:        form.Comment,
	}

	h.store.Dispatch(store.AddOrder{Order: order})
	h.store.Dispatch(store.ClearCart{})
	log.Printf("Заказ %d оформлен на сумму %d сум.", order.ID, order.Total)

	if h.publisher != nil {
		h.publisher.PublishOrderPlaced(r.Context(), order)
	}

	metrics.HttpRequestsTotal.WithLabelValues(handlerName, "201").Inc()
	respondWithJSON(w, http.StatusCreated, order)
}

// orderView — заказ с локализованной подписью статуса.
type orderView struct {
	model.Order
	StatusLabel string `json:"statusLabel"`
}

// Orders возвращает историю заказов, новые первыми.
func (h *CheckoutHandler) Orders(w http.ResponseWriter, r *http.Request) {
	handlerName := "Orders"
	timer := prometheus.NewTimer(metrics.HttpRequestDuration.WithLabelValues(handlerName))
	defer timer.ObserveDuration()

	state := h.store.Snapshot()
	views := make([]orderView, 0, len(state.Orders))
	for _, order := range state.Orders {
		views = append(views, orderView{
			Order:       order,
			StatusLabel: i18n.T(state.Language, order.Status),
		})
	}

	respondOK(w, map[string]interface{}{"orders": views}, handlerName)
}
