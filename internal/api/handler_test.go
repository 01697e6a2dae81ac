package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"stroymarket/internal/cache/mocks"
	"stroymarket/internal/catalog"
	"stroymarket/internal/model"
	"stroymarket/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newRequestWithParam создает запрос с параметром маршрута chi,
// чтобы вызывать обработчики без полного роутера.
func newRequestWithParam(method, target, param, value string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	return payload
}

// fakePublisher записывает опубликованные заказы.
type fakePublisher struct {
	published []model.Order
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, order model.Order) {
	f.published = append(f.published, order)
}

func TestCartHandler_AddAndGet(t *testing.T) {
	st := store.New()
	cat := catalog.New(catalog.SeedProducts())
	h := NewCartHandler(st, cat)

	// Два добавления одного товара — одна позиция с количеством 2
	for i := 0; i < 2; i++ {
		rr := httptest.NewRecorder()
		req := newRequestWithParam(http.MethodPost, "/api/cart/1", "productID", "1", nil)
		h.Add(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	rr := httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	payload := decodeBody(t, rr)

	assert.Equal(t, float64(2), payload["count"])
	items := payload["items"].([]interface{})
	assert.Len(t, items, 1)

	state := st.Snapshot()
	assert.Equal(t, 2, state.Cart[0].Quantity)
	assert.Equal(t, float64(store.CartSubtotal(state)), payload["subtotal"])
}

func TestCartHandler_Add_UnknownProduct(t *testing.T) {
	st := store.New()
	cat := catalog.New(catalog.SeedProducts())
	h := NewCartHandler(st, cat)

	rr := httptest.NewRecorder()
	req := newRequestWithParam(http.MethodPost, "/api/cart/999", "productID", "999", nil)
	h.Add(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Empty(t, st.Snapshot().Cart)
}

func TestCartHandler_Add_BadID(t *testing.T) {
	h := NewCartHandler(store.New(), catalog.New(nil))

	rr := httptest.NewRecorder()
	req := newRequestWithParam(http.MethodPost, "/api/cart/abc", "productID", "abc", nil)
	h.Add(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	st := store.New()
	cat := catalog.New(catalog.SeedProducts())
	h := NewCartHandler(st, cat)

	h.Add(httptest.NewRecorder(), newRequestWithParam(http.MethodPost, "/api/cart/1", "productID", "1", nil))

	rr := httptest.NewRecorder()
	req := newRequestWithParam(http.MethodPut, "/api/cart/1", "productID", "1",
		bytes.NewBufferString(`{"quantity":5}`))
	h.UpdateQuantity(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, st.Snapshot().Cart[0].Quantity)

	// Нулевое количество удаляет позицию
	rr = httptest.NewRecorder()
	req = newRequestWithParam(http.MethodPut, "/api/cart/1", "productID", "1",
		bytes.NewBufferString(`{"quantity":0}`))
	h.UpdateQuantity(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, st.Snapshot().Cart)
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	st := store.New()
	cat := catalog.New(catalog.SeedProducts())
	h := NewCartHandler(st, cat)

	h.Add(httptest.NewRecorder(), newRequestWithParam(http.MethodPost, "/api/cart/1", "productID", "1", nil))
	h.Add(httptest.NewRecorder(), newRequestWithParam(http.MethodPost, "/api/cart/2", "productID", "2", nil))

	rr := httptest.NewRecorder()
	h.Remove(rr, newRequestWithParam(http.MethodDelete, "/api/cart/1", "productID", "1", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, st.Snapshot().Cart, 1)

	rr = httptest.NewRecorder()
	h.Clear(rr, httptest.NewRequest(http.MethodDelete, "/api/cart", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, st.Snapshot().Cart)
}

func TestCheckoutHandler_EmptyCartRejected(t *testing.T) {
	st := store.New()
	h := NewCheckoutHandler(st, nil)

	body := `{"fullName":"Алексей","phone":"+998901234567","deliveryMethod":"pickup","paymentMethod":"cash"}`
	rr := httptest.NewRecorder()
	h.Submit(rr, httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body)))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Empty(t, st.Snapshot().Orders)
}

func TestCheckoutHandler_InvalidForm(t *testing.T) {
	st := store.New()
	st.Dispatch(store.AddToCart{Product: model.Product{ID: 1, Price: 100}})
	h := NewCheckoutHandler(st, nil)

	// Телефон не в формате E.164
	body := `{"fullName":"Алексей","phone":"12345","deliveryMethod":"pickup","paymentMethod":"cash"}`
	rr := httptest.NewRecorder()
	h.Submit(rr, httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	// Доставка без адреса
	body = `{"fullName":"Алексей","phone":"+998901234567","deliveryMethod":"delivery","paymentMethod":"cash"}`
	rr = httptest.NewRecorder()
	h.Submit(rr, httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	assert.Empty(t, st.Snapshot().Orders)
	assert.NotEmpty(t, st.Snapshot().Cart)
}

func TestCheckoutHandler_Submit(t *testing.T) {
	st := store.New()
	st.Dispatch(store.AddToCart{Product: model.Product{ID: 1, Price: 450000}})
	st.Dispatch(store.AddToCart{Product: model.Product{ID: 1, Price: 450000}})
	st.Dispatch(store.AddToCart{Product: model.Product{ID: 2, Price: 180000}})

	publisher := &fakePublisher{}
	h := NewCheckoutHandler(st, publisher)

	body := `{"fullName":"Алексей","phone":"+998901234567","address":"Ташкент, Чиланзар 5","deliveryMethod":"delivery","paymentMethod":"uzcard","comment":"после 18:00"}`
	rr := httptest.NewRecorder()
	h.Submit(rr, httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusCreated, rr.Code)

	var order model.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &order))
	assert.NotZero(t, order.ID)
	assert.Equal(t, 1080000, order.Total)
	assert.Equal(t, model.StatusProcessing, order.Status)
	assert.Len(t, order.Items, 2)

	// Заказ попал в историю, корзина очищена
	state := st.Snapshot()
	require.Len(t, state.Orders, 1)
	assert.Equal(t, order.ID, state.Orders[0].ID)
	assert.Empty(t, state.Cart)

	// Событие опубликовано
	require.Len(t, publisher.published, 1)
	assert.Equal(t, order.ID, publisher.published[0].ID)
}

func TestCheckoutHandler_OrderIDsUnique(t *testing.T) {
	st := store.New()
	h := NewCheckoutHandler(st, nil)

	body := `{"fullName":"Алексей","phone":"+998901234567","deliveryMethod":"pickup","paymentMethod":"cash"}`
	seen := make(map[int64]bool)
	for i := 0; i < 5; i++ {
		st.Dispatch(store.AddToCart{Product: model.Product{ID: 1, Price: 100}})
		rr := httptest.NewRecorder()
		h.Submit(rr, httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewBufferString(body)))
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	state := st.Snapshot()
	require.Len(t, state.Orders, 5)
	for _, order := range state.Orders {
		assert.False(t, seen[order.ID])
		seen[order.ID] = true
	}
	// Новые заказы первыми
	assert.Greater(t, state.Orders[0].ID, state.Orders[4].ID)
}

func TestCheckoutHandler_Orders_LocalizedStatus(t *testing.T) {
	st := store.New()
	st.Dispatch(store.AddOrder{Order: model.Order{ID: 1, Status: model.StatusProcessing}})
	h := NewCheckoutHandler(st, nil)

	rr := httptest.NewRecorder()
	h.Orders(rr, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	payload := decodeBody(t, rr)

	orders := payload["orders"].([]interface{})
	require.Len(t, orders, 1)
	view := orders[0].(map[string]interface{})
	assert.Equal(t, "Обрабатывается", view["statusLabel"])

	// После смены языка подпись статуса на узбекском
	st.Dispatch(store.SetLanguage{Language: model.LangUZ})
	rr = httptest.NewRecorder()
	h.Orders(rr, httptest.NewRequest(http.MethodGet, "/api/orders", nil))
	payload = decodeBody(t, rr)
	view = payload["orders"].([]interface{})[0].(map[string]interface{})
	assert.NotEqual(t, "Обрабатывается", view["statusLabel"])
}

func TestSettingsHandler(t *testing.T) {
	st := store.New()
	h := NewSettingsHandler(st)

	rr := httptest.NewRecorder()
	h.SetTheme(rr, httptest.NewRequest(http.MethodPut, "/api/settings/theme", bytes.NewBufferString(`{"theme":"dark"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.ThemeDark, st.Snapshot().Theme)

	// Недопустимая тема отклоняется, состояние не меняется
	rr = httptest.NewRecorder()
	h.SetTheme(rr, httptest.NewRequest(http.MethodPut, "/api/settings/theme", bytes.NewBufferString(`{"theme":"neon"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, model.ThemeDark, st.Snapshot().Theme)

	rr = httptest.NewRecorder()
	h.SetLanguage(rr, httptest.NewRequest(http.MethodPut, "/api/settings/language", bytes.NewBufferString(`{"language":"uz"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, model.LangUZ, st.Snapshot().Language)

	rr = httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/api/settings", nil))
	payload := decodeBody(t, rr)
	assert.Equal(t, "dark", payload["theme"])
	assert.Equal(t, "uz", payload["language"])
}

func TestProfileHandler(t *testing.T) {
	st := store.New()
	h := NewProfileHandler(st)

	// Профиль не задан
	rr := httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/api/profile", nil))
	payload := decodeBody(t, rr)
	assert.Nil(t, payload["user"])

	body := `{"name":"Алексей","phone":"+998901234567","email":"a@mail.uz"}`
	rr = httptest.NewRecorder()
	h.Update(rr, httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString(body)))
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, st.Snapshot().User)
	assert.Equal(t, "Алексей", st.Snapshot().User.Name)

	// Некорректный email отклоняется
	rr = httptest.NewRecorder()
	h.Update(rr, httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString(`{"name":"X","phone":"+998901234567","email":"нет"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Алексей", st.Snapshot().User.Name)

	rr = httptest.NewRecorder()
	h.Reset(rr, httptest.NewRequest(http.MethodDelete, "/api/profile", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, st.Snapshot().User)
}

func TestPromoHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	PromoHandler(rr, httptest.NewRequest(http.MethodPost, "/api/promo", bytes.NewBufferString(`{"code":"SAVE10"}`)))
	assert.Equal(t, http.StatusOK, rr.Code)
	payload := decodeBody(t, rr)
	assert.Equal(t, float64(10), payload["discountPercent"])

	// Нераспознанный код — отказ, не сбой
	rr = httptest.NewRecorder()
	PromoHandler(rr, httptest.NewRequest(http.MethodPost, "/api/promo", bytes.NewBufferString(`{"code":"expired"}`)))
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
}

func TestContactsHandler(t *testing.T) {
	st := store.New()
	rr := httptest.NewRecorder()
	ContactsHandler(st)(rr, httptest.NewRequest(http.MethodGet, "/api/contacts", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	payload := decodeBody(t, rr)
	assert.NotEmpty(t, payload["address"])
	m := payload["map"].(map[string]interface{})
	assert.Contains(t, m["embedUrl"], "openstreetmap.org")
	assert.Contains(t, m["geoUri"], "geo:")
}

func TestCatalogHandler_List_CacheMissThenHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mocks.NewMockCache(ctrl)

	st := store.New()
	cat := catalog.New(catalog.SeedProducts())
	h := NewCatalogHandler(st, cat, mockCache)

	// Первый запрос: промах и запись в кэш
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false)
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any())

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	first := decodeBody(t, rr)
	assert.Equal(t, float64(10), first["total"])

	// Второй запрос с тем же фильтром отдается из кэша без Set
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(first, true)

	rr = httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/catalog", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(10), decodeBody(t, rr)["total"])
}

func TestCatalogHandler_List_ParamsUpdateStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false).AnyTimes()
	mockCache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	st := store.New()
	cat := catalog.New(catalog.SeedProducts())
	h := NewCatalogHandler(st, cat, mockCache)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/catalog?category=tools&sort=price-asc", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	state := st.Snapshot()
	assert.Equal(t, "tools", state.SelectedCategory)
	assert.Equal(t, model.SortPriceAsc, state.SortBy)

	// Пустой параметр снимает фильтр
	rr = httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/catalog?category=", nil))
	assert.Equal(t, "", st.Snapshot().SelectedCategory)

	// Отсутствующий параметр оставляет фильтр как есть
	rr = httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/api/catalog?q=bosch", nil))
	assert.Equal(t, "bosch", st.Snapshot().SearchQuery)
	assert.Equal(t, model.SortPriceAsc, st.Snapshot().SortBy)
}

func TestCatalogHandler_GetByID(t *testing.T) {
	st := store.New()
	cat := catalog.New(catalog.SeedProducts())
	h := NewCatalogHandler(st, cat, nil)

	rr := httptest.NewRecorder()
	h.GetByID(rr, newRequestWithParam(http.MethodGet, "/api/catalog/1", "productID", "1", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var product model.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &product))
	assert.Equal(t, 1, product.ID)

	rr = httptest.NewRecorder()
	h.GetByID(rr, newRequestWithParam(http.MethodGet, "/api/catalog/999", "productID", "999", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAdminHandler_CreateValidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mocks.NewMockCache(ctrl)

	cat := catalog.New(catalog.SeedProducts())
	h := NewAdminHandler(cat, mockCache)

	// Товар без названия не проходит валидацию, кэш не трогается
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/admin/products/",
		bytes.NewBufferString(`{"price":350000,"category":"tools","brand":"Bosch"}`)))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, 10, cat.Len())
}

func TestAdminHandler_CreateAssignsIDAndPurges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Purge(gomock.Any())

	cat := catalog.New(catalog.SeedProducts())
	h := NewAdminHandler(cat, mockCache)

	body := `{"id":777,"name":{"ru":"Дрель","uz":"Drel"},"price":350000,"category":"tools","brand":"Makita","rating":4.1,"inStock":true}`
	rr := httptest.NewRecorder()
	h.Create(rr, httptest.NewRequest(http.MethodPost, "/api/admin/products/", bytes.NewBufferString(body)))

	require.Equal(t, http.StatusCreated, rr.Code)

	var created model.Product
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	// id из тела игнорируется, каталог назначает свой
	assert.Equal(t, 11, created.ID)
	assert.Equal(t, 11, cat.Len())
}

func TestAdminHandler_UpdateDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockCache := mocks.NewMockCache(ctrl)
	// Purge после успешных обновления и удаления
	mockCache.EXPECT().Purge(gomock.Any()).Times(2)

	cat := catalog.New(catalog.SeedProducts())
	h := NewAdminHandler(cat, mockCache)

	body := `{"name":{"ru":"Перфоратор","uz":"Perforator"},"price":999000,"category":"tools","brand":"Bosch","rating":4.8,"inStock":true}`
	rr := httptest.NewRecorder()
	h.Update(rr, newRequestWithParam(http.MethodPut, "/api/admin/products/1", "productID", "1", bytes.NewBufferString(body)))
	require.Equal(t, http.StatusOK, rr.Code)

	updated, _ := cat.Get(1)
	assert.Equal(t, 999000, updated.Price)

	rr = httptest.NewRecorder()
	h.Delete(rr, newRequestWithParam(http.MethodDelete, "/api/admin/products/1", "productID", "1", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 9, cat.Len())

	// Неизвестный id — 404 без Purge
	rr = httptest.NewRecorder()
	h.Delete(rr, newRequestWithParam(http.MethodDelete, "/api/admin/products/1", "productID", "1", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
