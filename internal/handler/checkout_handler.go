package handler

import (
	"net/http"
	"sync"

	"app/internal/checkout"
	"app/internal/domain/model"
	"app/internal/store"

	"github.com/labstack/echo/v4"
)

// /checkoutのHTTP。進行中のフローは1つだけ持つ（1クライアントのデモ）。
type CheckoutHandler struct {
	mu    sync.Mutex
	store *store.Store
	flow  *checkout.Flow
}

// DI
func NewCheckoutHandler(st *store.Store) *CheckoutHandler {
	return &CheckoutHandler{store: st}
}

type ShippingRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
	Phone     string `json:"phone"`
}

type CheckoutStateResponse struct {
	Stage    checkout.Stage        `json:"stage"`
	Shipping model.ShippingAddress `json:"shipping"`
	Payment  checkout.PaymentForm  `json:"payment"`
	Quote    *checkout.Quote       `json:"quote,omitempty"`
}

// /checkout/* を登録
func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/checkout")

	g.POST("", h.begin)
	g.GET("", h.state)
	g.POST("/shipping", h.submitShipping)
	g.POST("/payment", h.submitPayment)
	g.POST("/back", h.back)
	g.POST("/order", h.placeOrder)
}

// 開始。カートが空なら409でフローに入らない。
func (h *CheckoutHandler) begin(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	flow, err := checkout.Begin(h.store)
	if err != nil {
		return writeError(c, err)
	}

	h.flow = flow
	return c.JSON(http.StatusOK, h.stateResponse())
}

func (h *CheckoutHandler) state(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.flow == nil {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "checkout not started"})
	}
	return c.JSON(http.StatusOK, h.stateResponse())
}

func (h *CheckoutHandler) submitShipping(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.flow == nil {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "checkout not started"})
	}

	var req ShippingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.flow.SubmitShipping(model.ShippingAddress{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		ZipCode:   req.ZipCode,
		Phone:     req.Phone,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.stateResponse())
}

func (h *CheckoutHandler) submitPayment(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.flow == nil {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "checkout not started"})
	}

	var req checkout.PaymentForm
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.flow.SubmitPayment(req); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.stateResponse())
}

func (h *CheckoutHandler) back(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.flow == nil {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "checkout not started"})
	}

	if err := h.flow.Back(); err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, h.stateResponse())
}

// 確定。カートは空になり、フローは終わる。
func (h *CheckoutHandler) placeOrder(c echo.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.flow == nil {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "checkout not started"})
	}

	order, err := h.flow.PlaceOrder()
	if err != nil {
		return writeError(c, err)
	}

	h.flow = nil
	return c.JSON(http.StatusOK, order)
}

func (h *CheckoutHandler) stateResponse() CheckoutStateResponse {
	resp := CheckoutStateResponse{
		Stage:    h.flow.Stage(),
		Shipping: h.flow.ShippingDraft(),
		Payment:  h.flow.PaymentDraft(),
	}
	if q, ok := h.flow.Quote(); ok {
		resp.Quote = &q
	}
	return resp
}
