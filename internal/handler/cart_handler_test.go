package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/storage"
	"app/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *store.Store {
	s := store.New(storage.NewMemoryStorage())
	s.Seed(store.DemoCatalog())
	return s
}

func doJSON(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newCartEcho(s *store.Store) *echo.Echo {
	e := echo.New()
	NewCartHandler(s).RegisterRoutes(e)
	return e
}

func TestCartHandler_AddAndGet(t *testing.T) {
	s := seededStore()
	e := newCartEcho(s)

	rec := doJSON(t, e, http.MethodPost, "/cart", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, int64(1), resp.Items[0].Product.ID)
	assert.True(t, resp.Total.Equal(decimal.RequireFromString("89.99")))
}

func TestCartHandler_AddUnknownProduct(t *testing.T) {
	e := newCartEcho(seededStore())

	rec := doJSON(t, e, http.MethodPost, "/cart", `{"product_id":999}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartHandler_PatchQuantity(t *testing.T) {
	s := seededStore()
	e := newCartEcho(s)

	doJSON(t, e, http.MethodPost, "/cart", `{"product_id":1}`)
	rec := doJSON(t, e, http.MethodPatch, "/cart/1", `{"quantity":4}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(4), s.GetCartItemQuantity(1))
}

func TestCartHandler_PatchZeroRemoves(t *testing.T) {
	s := seededStore()
	e := newCartEcho(s)

	doJSON(t, e, http.MethodPost, "/cart", `{"product_id":1}`)
	rec := doJSON(t, e, http.MethodPatch, "/cart/1", `{"quantity":0}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, s.CartItems())
}

func TestCartHandler_Clear(t *testing.T) {
	s := seededStore()
	e := newCartEcho(s)

	doJSON(t, e, http.MethodPost, "/cart", `{"product_id":1}`)
	doJSON(t, e, http.MethodPost, "/cart", `{"product_id":2}`)
	rec := doJSON(t, e, http.MethodDelete, "/cart", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, s.CartItems())
}

func TestCheckoutHandler_FullFlow(t *testing.T) {
	s := seededStore()
	e := echo.New()
	NewCartHandler(s).RegisterRoutes(e)
	NewCheckoutHandler(s).RegisterRoutes(e)

	// カートが空なら開始できない
	rec := doJSON(t, e, http.MethodPost, "/checkout", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	doJSON(t, e, http.MethodPost, "/cart", `{"product_id":5}`) // 45.99

	rec = doJSON(t, e, http.MethodPost, "/checkout", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// zip無しは400で配送段階に留まる
	rec = doJSON(t, e, http.MethodPost, "/checkout/shipping",
		`{"first_name":"Taro","last_name":"Yamada","email":"taro@example.com","address":"1-2-3","city":"Osaka","state":"Osaka"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/checkout/shipping",
		`{"first_name":"Taro","last_name":"Yamada","email":"taro@example.com","address":"1-2-3","city":"Osaka","state":"Osaka","zip_code":"530-0001"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/checkout/payment", `{"method":"card"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var state CheckoutStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	require.NotNil(t, state.Quote)

	rec = doJSON(t, e, http.MethodPost, "/checkout/order", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, s.CartItems())

	// フローは終わっている
	rec = doJSON(t, e, http.MethodGet, "/checkout", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}
