package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

//contextに入っているis_sellerを確認します。出品系APIはセラーのみ。

func SellerGuard() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Get(CtxIsSellerKey)
			isSeller, ok := raw.(bool)
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			//一般ユーザーは拒否、セラーだけ許可
			if !isSeller {
				return c.JSON(http.StatusForbidden, errorJSON("seller only"))
			}

			return next(c)
		}
	}
}
