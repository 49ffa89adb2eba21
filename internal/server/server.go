package server

import (
	"grocery/internal/handler"
	"grocery/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// New はミドルウェアとルートを組んだechoを返す
func New(log *zap.Logger, cartH *handler.CartHandler, customerH *handler.CustomerHandler, productH *handler.ProductHandler) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomw.Recover())

	RegisterRoutes(e, cartH, customerH, productH)

	return e
}
