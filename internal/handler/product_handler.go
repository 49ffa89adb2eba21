package handler

import (
	"fmt"
	"net/http"
	"strings"

	"grocery/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /productsのHTTP
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

// priceは数値でも文字列でも受ける（decimalが両方読む）
type ProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// ProductSearchResponse は検索結果。cartはカート名を", "連結
type ProductSearchResponse struct {
	usecase.ProductResponse
	Cart string `json:"cart"`
}

// /products配下を登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/products", h.list)
	e.GET("/products/search", h.search)
	e.GET("/products/:id", h.detail)
	e.POST("/products", h.create)
	e.PUT("/products/:id", h.update)
	e.DELETE("/products/:id", h.remove)
}

// ?category= があればカテゴリ絞り込み、無ければ全件
func (h *ProductHandler) list(c echo.Context) error {
	if c.QueryParams().Has("category") {
		out, err := h.uc.GetProductsByCategory(c.Request().Context(), c.QueryParam("category"))
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}

	out, err := h.uc.ListProducts(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) search(c echo.Context) error {
	out, err := h.uc.SearchProducts(c.Request().Context(), c.QueryParam("query"))
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]ProductSearchResponse, 0, len(out))
	for _, r := range out {
		resp = append(resp, ProductSearchResponse{
			ProductResponse: r.ProductResponse,
			Cart:            strings.Join(r.CartNames, ", "),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.FindProduct(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res := h.uc.AddProduct(c.Request().Context(), toProductInput(req))
	return writeServiceResponse(c, res, func(id int64) string {
		return fmt.Sprintf("/products/%d", id)
	})
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res := h.uc.UpdateProduct(c.Request().Context(), id, toProductInput(req))
	return writeServiceResponse(c, res, nil)
}

func (h *ProductHandler) remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	res := h.uc.DeleteProduct(c.Request().Context(), id)
	return writeServiceResponse(c, res, nil)
}

func toProductInput(req ProductRequest) usecase.ProductInput {
	return usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
	}
}
