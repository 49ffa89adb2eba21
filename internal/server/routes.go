package server

import (
	"grocery/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, cartH *handler.CartHandler, customerH *handler.CustomerHandler, productH *handler.ProductHandler) {
	cartH.RegisterRoutes(e)
	customerH.RegisterRoutes(e)
	productH.RegisterRoutes(e)
}
