package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"grocery/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartsのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type CartRequest struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CartResponse は一覧用。cart_customerは"Fname Lname"
type CartResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	CartCustomer string    `json:"cart_customer"`
	ProductNames []string  `json:"product_names"`
}

// CartDetailResponse は詳細用
type CartDetailResponse struct {
	ID           int64                     `json:"id"`
	Name         string                    `json:"name"`
	CreatedAt    time.Time                 `json:"created_at"`
	CartCustomer string                    `json:"cart_customer"`
	Products     []usecase.ProductResponse `json:"products"`
}

// /carts配下を登録
func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/carts", h.list)
	e.GET("/carts/:id", h.detail)
	e.POST("/carts", h.create)
	e.PUT("/carts/:id", h.update)
	e.DELETE("/carts/:id", h.remove)

	e.GET("/carts/:id/products", h.listProducts)
	e.POST("/carts/:id/products/:productId", h.addProduct)
	e.DELETE("/carts/:id/products/:productId", h.removeProduct)
}

func (h *CartHandler) list(c echo.Context) error {
	out, err := h.uc.ListCarts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]CartResponse, 0, len(out))
	for _, s := range out {
		resp = append(resp, CartResponse{
			ID:           s.ID,
			Name:         s.Name,
			CreatedAt:    s.CreatedAt,
			CartCustomer: ownerDisplay(s.Owner),
			ProductNames: s.ProductNames,
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.FindCart(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CartDetailResponse{
		ID:           out.ID,
		Name:         out.Name,
		CreatedAt:    out.CreatedAt,
		CartCustomer: ownerDisplay(out.Owner),
		Products:     out.Products,
	})
}

func (h *CartHandler) create(c echo.Context) error {
	var req CartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res := h.uc.AddCart(c.Request().Context(), usecase.AddCartInput{
		Name:      req.Name,
		CreatedAt: req.CreatedAt,
	})

	return writeServiceResponse(c, res, func(id int64) string {
		return fmt.Sprintf("/carts/%d", id)
	})
}

func (h *CartHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res := h.uc.UpdateCart(c.Request().Context(), id, usecase.UpdateCartInput{
		Name: req.Name,
	})

	return writeServiceResponse(c, res, nil)
}

func (h *CartHandler) remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	res := h.uc.DeleteCart(c.Request().Context(), id)
	return writeServiceResponse(c, res, nil)
}

func (h *CartHandler) listProducts(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListCartProducts(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) addProduct(c echo.Context) error {
	cartID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	res := h.uc.AddProductToCart(c.Request().Context(), cartID, productID)
	return writeServiceResponse(c, res, nil)
}

func (h *CartHandler) removeProduct(c echo.Context) error {
	cartID, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}
	productID, err := parseID(c, "productId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product id"})
	}

	res := h.uc.RemoveProductFromCart(c.Request().Context(), cartID, productID)
	return writeServiceResponse(c, res, nil)
}

// "Fname Lname"。無所有なら空文字
func ownerDisplay(o *usecase.CartOwner) string {
	if o == nil {
		return ""
	}
	return o.FirstName + " " + o.LastName
}

func parseID(c echo.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
