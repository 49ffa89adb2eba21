package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"grocery/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /customersのHTTP
type CustomerHandler struct {
	uc *usecase.CustomerUsecase
}

// DI
func NewCustomerHandler(uc *usecase.CustomerUsecase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

type CustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// CustomerListItem は一覧用。addressは出さない
type CustomerListItem struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CustomerNum string `json:"customer_num"`
}

// CustomerResponse は詳細用
type CustomerResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Address     string `json:"address"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	CustomerNum string `json:"customer_num"`
}

// /customers配下を登録
func (h *CustomerHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/customers", h.list)
	e.GET("/customers/:id", h.detail)
	e.POST("/customers", h.create)
	e.PUT("/customers/:id", h.update)
	e.DELETE("/customers/:id", h.remove)

	e.GET("/customers/:id/carts", h.listCarts)
	e.POST("/customers/link", h.link)
	e.DELETE("/customers/unlink", h.unlink)
}

func (h *CustomerHandler) list(c echo.Context) error {
	out, err := h.uc.ListCustomers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}

	resp := make([]CustomerListItem, 0, len(out))
	for _, s := range out {
		resp = append(resp, CustomerListItem{
			ID:          s.ID,
			FirstName:   s.FirstName,
			LastName:    s.LastName,
			Email:       s.Email,
			Phone:       s.Phone,
			CustomerNum: cartCountDisplay(s.CartCount),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CustomerHandler) detail(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.FindCustomer(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, CustomerResponse{
		ID:          out.ID,
		FirstName:   out.FirstName,
		LastName:    out.LastName,
		Address:     out.Address,
		Email:       out.Email,
		Phone:       out.Phone,
		CustomerNum: cartCountDisplay(out.CartCount),
	})
}

func (h *CustomerHandler) create(c echo.Context) error {
	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res := h.uc.AddCustomer(c.Request().Context(), toCustomerInput(req))
	return writeServiceResponse(c, res, func(id int64) string {
		return fmt.Sprintf("/customers/%d", id)
	})
}

func (h *CustomerHandler) update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req CustomerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	res := h.uc.UpdateCustomer(c.Request().Context(), id, toCustomerInput(req))
	return writeServiceResponse(c, res, nil)
}

func (h *CustomerHandler) remove(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	res := h.uc.DeleteCustomer(c.Request().Context(), id)
	return writeServiceResponse(c, res, nil)
}

func (h *CustomerHandler) listCarts(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.ListCustomerCarts(c.Request().Context(), id)
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

func (h *CustomerHandler) link(c echo.Context) error {
	customerID, cartID, err := parseLinkParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	res := h.uc.LinkCartToCustomer(c.Request().Context(), customerID, cartID)
	return writeServiceResponse(c, res, nil)
}

func (h *CustomerHandler) unlink(c echo.Context) error {
	customerID, cartID, err := parseLinkParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	res := h.uc.UnlinkCartFromCustomer(c.Request().Context(), customerID, cartID)
	return writeServiceResponse(c, res, nil)
}

// ?customerId=&cartId= を読む
func parseLinkParams(c echo.Context) (int64, int64, error) {
	customerID, err := strconv.ParseInt(c.QueryParam("customerId"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid customerId")
	}
	cartID, err := strconv.ParseInt(c.QueryParam("cartId"), 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cartId")
	}
	return customerID, cartID, nil
}

// "Customer has N cart(s)"
func cartCountDisplay(n int) string {
	return fmt.Sprintf("Customer has %d cart(s)", n)
}

func toCustomerInput(req CustomerRequest) usecase.CustomerInput {
	return usecase.CustomerInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
		Email:     req.Email,
		Phone:     req.Phone,
	}
}
