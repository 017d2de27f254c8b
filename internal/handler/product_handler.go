package handler

import (
	"net/http"
	"strconv"
	"strings"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/middleware"
	"app/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /productsのHTTP
type ProductHandler struct {
	store *store.Store
}

// DI
func NewProductHandler(st *store.Store) *ProductHandler {
	return &ProductHandler{store: st}
}

type AddProductRequest struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Features    []string        `json:"features"`
	InStock     bool            `json:"in_stock"`
}

// /products, /products/{id} を登録。出品はセラーのみ。
func (h *ProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/products", h.listProducts)
	e.GET("/products/:id", h.getProduct)
	e.POST("/products", h.addProduct, middleware.SessionJWT(cfg), middleware.SellerGuard())
}

// 一覧（?category= で絞り込み）
func (h *ProductHandler) listProducts(c echo.Context) error {
	products := h.store.Products()

	if category := c.QueryParam("category"); category != "" {
		filtered := make([]model.Product, 0, len(products))
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) getProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, ok := h.store.FindProduct(id)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}

	return c.JSON(http.StatusOK, p)
}

// 出品。name/price/category/description は必須。
func (h *ProductHandler) addProduct(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Category) == "" ||
		strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid input"})
	}
	if req.Price.IsNegative() || req.Price.IsZero() {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid price"})
	}

	//空の特徴は落とす
	features := make([]string, 0, len(req.Features))
	for _, f := range req.Features {
		if strings.TrimSpace(f) != "" {
			features = append(features, f)
		}
	}

	created := h.store.AddProduct(model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Description: req.Description,
		Features:    features,
		InStock:     req.InStock,
	})

	return c.JSON(http.StatusCreated, created)
}
