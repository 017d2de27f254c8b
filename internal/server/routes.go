package server

import (
	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	wishH *handler.WishlistHandler,
	authH *handler.AuthHandler,
	checkoutH *handler.CheckoutHandler,
) {
	productH.RegisterRoutes(e, cfg)
	cartH.RegisterRoutes(e)
	wishH.RegisterRoutes(e)
	authH.RegisterRoutes(e)
	checkoutH.RegisterRoutes(e)
}
