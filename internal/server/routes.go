package server

import (
	"pincart/internal/handler"

	"github.com/labstack/echo/v4"
)

func registerRoutes(
	e *echo.Echo,
	authMW echo.MiddlewareFunc,
	authH *handler.AuthHandler,
	shopH *handler.ShopHandler,
	orderH *handler.OrderHandler,
	addressH *handler.AddressHandler,
) {
	authH.RegisterRoutes(e, authMW)
	shopH.RegisterRoutes(e)
	orderH.RegisterRoutes(e, authMW)
	addressH.RegisterRoutes(e, authMW)
}
