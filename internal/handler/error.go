package handler

import (
	"errors"
	"net/http"

	"pincart/internal/middleware"
	"pincart/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// ピンコード不一致は呼び出し側がカートクリアを案内できるように
// 現在のカートのピンコードを返す
type PincodeConflictResponse struct {
	Error       string `json:"error"`
	CartPincode int    `json:"cart_pincode"`
}

// usecaseの型付きエラーをHTTPステータスへ変換する
func writeError(c echo.Context, err error) error {
	var pincode *usecase.PincodeConflictError
	if errors.As(err, &pincode) {
		return c.JSON(http.StatusPreconditionFailed, PincodeConflictResponse{
			Error:       "cart pincode conflict",
			CartPincode: pincode.CartPincode,
		})
	}

	switch {
	case errors.Is(err, usecase.ErrValidation):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation error"})
	case errors.Is(err, usecase.ErrAlreadyExists):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "already exists"})
	case errors.Is(err, usecase.ErrAuthenticationFailed):
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	case errors.Is(err, usecase.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	default:
		//ストレージ障害など。リクエストは落とすがプロセスは続行
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func getUserIDFromContext(c echo.Context) (int, bool) {
	v, ok := c.Get(middleware.CtxUserIDKey).(int)
	return v, ok
}

func getSessionTokenFromContext(c echo.Context) (string, bool) {
	v, ok := c.Get(middleware.CtxSessionTokenKey).(string)
	return v, ok
}
