package handler

import (
	"net/http"
	"time"

	"app/internal/auth"
	"app/internal/domain/model"
	"app/internal/store"

	"github.com/labstack/echo/v4"
)

// /authのHTTP
type AuthHandler struct {
	authSvc *auth.Service
	store   *store.Store
}

// DI
func NewAuthHandler(authSvc *auth.Service, st *store.Store) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, store: st}
}

// /auth/signup のリクエストボディ。
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Avatar   string `json:"avatar"`
	IsSeller bool   `json:"is_seller"`
}

// /auth/login のリクエストボディ。
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

type LoginResponse struct {
	User  model.User   `json:"user"`
	Token SessionToken `json:"token"`
}

// /auth/* を登録
func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/auth")

	g.POST("/signup", h.signup)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
	g.GET("/me", h.me)
}

func (h *AuthHandler) signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	u, err := h.authSvc.Signup(auth.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
		IsSeller: req.IsSeller,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, u)
}

// 照合に成功したらセッションを丸ごと入れ替える。
func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.authSvc.Login(auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.store.Login(out.User)

	return c.JSON(http.StatusOK, LoginResponse{
		User: out.User,
		Token: SessionToken{
			AccessToken: out.Token,
			ExpiresIn:   int64(time.Until(out.ExpiresAt).Seconds()),
		},
	})
}

// セッションを消す。ストレージのuserキーも消える。
func (h *AuthHandler) logout(c echo.Context) error {
	h.store.Logout()
	return c.JSON(http.StatusOK, SuccessResponse{Message: "logged out"})
}

func (h *AuthHandler) me(c echo.Context) error {
	u := h.store.User()
	if u == nil {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "not logged in"})
	}
	return c.JSON(http.StatusOK, u)
}
