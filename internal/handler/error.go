package handler

import (
	"errors"
	"net/http"

	"app/internal/auth"
	"app/internal/checkout"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string `json:"message"`
}

// 各コンポーネントのエラーをHTTPステータスへ写す。
func writeError(c echo.Context, err error) error {
	var missing *checkout.MissingFieldsError
	if errors.As(err, &missing) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: missing.Error()})
	}

	switch {
	case errors.Is(err, checkout.ErrEmptyCart),
		errors.Is(err, checkout.ErrWrongStage),
		errors.Is(err, checkout.ErrOrderPlaced):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, checkout.ErrUnknownPaymentMethod),
		errors.Is(err, auth.ErrInvalidEmailFormat),
		errors.Is(err, auth.ErrPasswordTooShort),
		errors.Is(err, auth.ErrNameRequired):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})

	case errors.Is(err, auth.ErrEmailAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})

	case errors.Is(err, auth.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
