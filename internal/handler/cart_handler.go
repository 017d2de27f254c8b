package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /cartのHTTP
type CartHandler struct {
	store *store.Store
}

// DI
func NewCartHandler(st *store.Store) *CartHandler {
	return &CartHandler{store: st}
}

type AddCartRequest struct {
	ProductID int64 `json:"product_id"`
}

type UpdateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Total decimal.Decimal  `json:"total"`
}

// /cart, /cart/{productId} を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/cart")

	g.GET("", h.getCart)
	g.POST("", h.addToCart)
	g.PATCH("/:productId", h.patchItem)
	g.DELETE("/:productId", h.deleteItem)
	g.DELETE("", h.clearCart)
}

func (h *CartHandler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, h.cartResponse())
}

// 追加（同一商品は数量+1）
func (h *CartHandler) addToCart(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, ok := h.store.FindProduct(req.ProductID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	h.store.AddToCart(p)
	return c.JSON(http.StatusOK, h.cartResponse())
}

// 数量の上書き。0以下は削除扱い。明細が無ければ何も起きない。
func (h *CartHandler) patchItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	h.store.SetCartItemQuantity(productID, req.Quantity)
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) deleteItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	h.store.RemoveFromCart(productID)
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) clearCart(c echo.Context) error {
	h.store.ClearCart()
	return c.JSON(http.StatusOK, h.cartResponse())
}

func (h *CartHandler) cartResponse() CartResponse {
	items := h.store.CartItems()
	if items == nil {
		items = []model.CartItem{}
	}
	return CartResponse{Items: items, Total: h.store.CartTotal()}
}
