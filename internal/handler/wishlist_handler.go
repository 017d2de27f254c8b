package handler

import (
	"net/http"
	"strconv"

	"app/internal/domain/model"
	"app/internal/store"

	"github.com/labstack/echo/v4"
)

// /wishlistのHTTP
type WishlistHandler struct {
	store *store.Store
}

// DI
func NewWishlistHandler(st *store.Store) *WishlistHandler {
	return &WishlistHandler{store: st}
}

type AddWishlistRequest struct {
	ProductID int64 `json:"product_id"`
}

// /wishlist, /wishlist/{productId} を登録
func (h *WishlistHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/wishlist")

	g.GET("", h.getWishlist)
	g.POST("", h.addToWishlist)
	g.DELETE("/:productId", h.deleteItem)
	g.POST("/:productId/move-to-cart", h.moveToCart)
}

func (h *WishlistHandler) getWishlist(c echo.Context) error {
	list := h.store.Wishlist()
	if list == nil {
		list = []model.Product{}
	}
	return c.JSON(http.StatusOK, list)
}

// 追加は冪等（既にあっても200）
func (h *WishlistHandler) addToWishlist(c echo.Context) error {
	var req AddWishlistRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, ok := h.store.FindProduct(req.ProductID)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	h.store.AddToWishlist(p)
	return c.JSON(http.StatusOK, h.store.Wishlist())
}

func (h *WishlistHandler) deleteItem(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	h.store.RemoveFromWishlist(productID)
	return c.JSON(http.StatusOK, h.store.Wishlist())
}

// ウィッシュリスト→カートへ移動（1操作で両方更新）
func (h *WishlistHandler) moveToCart(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("productId"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if !h.store.MoveToCart(productID) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "moved to cart"})
}
