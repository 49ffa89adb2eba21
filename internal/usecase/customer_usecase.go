package usecase

import (
	"context"
	"net/http"

	"grocery/internal/domain/model"
	repo "grocery/internal/repository"

	"go.uber.org/zap"
)

// CustomerUsecase は /customers の業務ロジック。
// 顧客のCRUDと、カート⇄顧客のリンク/アンリンクを受け持つ
type CustomerUsecase struct {
	customerRepo repo.CustomerRepository
	cartRepo     repo.CartRepository
	log          *zap.Logger
}

func NewCustomerUsecase(
	customerRepo repo.CustomerRepository,
	cartRepo repo.CartRepository,
	log *zap.Logger,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		cartRepo:     cartRepo,
		log:          log,
	}
}

// CustomerSummary は一覧用。Addressは出さない
// （"Customer has N cart(s)"の表示文字列はhandler側で組み立てる）
type CustomerSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CartCount int    `json:"cart_count"`
}

// CustomerDetail は詳細用。Address込み
type CustomerDetail struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CartCount int    `json:"cart_count"`
}

type CustomerInput struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Address   string
	Email     string `validate:"omitempty,email"`
	Phone     string
}

// ListCustomers は全顧客を返す
func (u *CustomerUsecase) ListCustomers(ctx context.Context) ([]CustomerSummary, error) {
	customers, err := u.customerRepo.List(ctx)
	if err != nil {
		u.log.Error("list customers failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]CustomerSummary, 0, len(customers))
	for _, c := range customers {
		out = append(out, CustomerSummary{
			ID:        c.ID,
			FirstName: c.FirstName,
			LastName:  c.LastName,
			Email:     c.Email,
			Phone:     c.Phone,
			CartCount: len(c.Carts),
		})
	}
	return out, nil
}

// FindCustomer はIDで1件返す
func (u *CustomerUsecase) FindCustomer(ctx context.Context, id int64) (CustomerDetail, error) {
	c, err := u.customerRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return CustomerDetail{}, NewHTTPError(http.StatusNotFound, "customer not found")
	}
	if err != nil {
		u.log.Error("find customer failed", zap.Error(err))
		return CustomerDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return CustomerDetail{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Address:   c.Address,
		Email:     c.Email,
		Phone:     c.Phone,
		CartCount: len(c.Carts),
	}, nil
}

// AddCustomer は顧客を追加する
func (u *CustomerUsecase) AddCustomer(ctx context.Context, in CustomerInput) ServiceResponse {
	if err := validate.Struct(in); err != nil {
		return invalid("First name and last name are required.")
	}

	c := model.Customer{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
	}

	createdCustomer, err := u.customerRepo.Create(ctx, c)
	if err != nil {
		u.log.Error("customer create failed", zap.Error(err))
		return failure("Error adding the customer.")
	}

	return created(createdCustomer.ID)
}

// UpdateCustomer は可変フィールドを全上書きする
func (u *CustomerUsecase) UpdateCustomer(ctx context.Context, id int64, in CustomerInput) ServiceResponse {
	if err := validate.Struct(in); err != nil {
		return invalid("First name and last name are required.")
	}

	c := model.Customer{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Address:   in.Address,
		Email:     in.Email,
		Phone:     in.Phone,
	}

	err := u.customerRepo.Update(ctx, c)
	if err == repo.ErrNotFound {
		return notFound("Customer not found.")
	}
	if err != nil {
		u.log.Error("customer update failed", zap.Error(err))
		return failure("Error updating the customer.")
	}

	return updated()
}

// DeleteCustomer は顧客を削除する。所有カートは残して所有解除
func (u *CustomerUsecase) DeleteCustomer(ctx context.Context, id int64) ServiceResponse {
	err := u.customerRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return notFound("Customer not found.")
	}
	if err != nil {
		u.log.Error("customer delete failed", zap.Error(err))
		return failure("Error deleting the customer.")
	}

	return deleted()
}

// ListCustomerCarts は顧客が所有するカートを商品込みで返す
func (u *CustomerUsecase) ListCustomerCarts(ctx context.Context, customerID int64) ([]CartSummary, error) {
	if _, err := u.customerRepo.FindByID(ctx, customerID); err != nil {
		if err == repo.ErrNotFound {
			return nil, NewHTTPError(http.StatusNotFound, "customer not found")
		}
		u.log.Error("find customer failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	carts, err := u.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		u.log.Error("list customer carts failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]CartSummary, 0, len(carts))
	for _, c := range carts {
		out = append(out, toCartSummary(c))
	}
	return out, nil
}

// LinkCartToCustomer はカートの所有者をこの顧客にする。
// 別の顧客が持っているカートは付け替えになる
func (u *CustomerUsecase) LinkCartToCustomer(ctx context.Context, customerID int64, cartID int64) ServiceResponse {
	res, _, ok := u.checkCustomerAndCart(ctx, customerID, cartID)
	if !ok {
		return res
	}

	if err := u.cartRepo.SetOwner(ctx, cartID, &customerID); err != nil {
		if err == repo.ErrNotFound {
			return notFound("Cart not found.")
		}
		u.log.Error("link cart to customer failed", zap.Error(err))
		return failure("Error linking the cart to the customer.")
	}

	return updated()
}

// UnlinkCartFromCustomer は所有を解除する。
// この顧客のカートでなければnot found
func (u *CustomerUsecase) UnlinkCartFromCustomer(ctx context.Context, customerID int64, cartID int64) ServiceResponse {
	res, cart, ok := u.checkCustomerAndCart(ctx, customerID, cartID)
	if !ok {
		return res
	}

	if cart.CustomerID == nil || *cart.CustomerID != customerID {
		return notFound("Cart does not belong to this customer.")
	}

	if err := u.cartRepo.SetOwner(ctx, cartID, nil); err != nil {
		if err == repo.ErrNotFound {
			return notFound("Cart not found.")
		}
		u.log.Error("unlink cart from customer failed", zap.Error(err))
		return failure("Error unlinking the cart from the customer.")
	}

	return deleted()
}

// 欠けている側ごとにメッセージを積む
func (u *CustomerUsecase) checkCustomerAndCart(ctx context.Context, customerID int64, cartID int64) (ServiceResponse, model.Cart, bool) {
	var messages []string

	if _, err := u.customerRepo.FindByID(ctx, customerID); err == repo.ErrNotFound {
		messages = append(messages, "Customer not found.")
	} else if err != nil {
		u.log.Error("find customer failed", zap.Error(err))
		return failure("db error"), model.Cart{}, false
	}

	cart, err := u.cartRepo.FindByID(ctx, cartID)
	if err == repo.ErrNotFound {
		messages = append(messages, "Cart not found.")
	} else if err != nil {
		u.log.Error("find cart failed", zap.Error(err))
		return failure("db error"), model.Cart{}, false
	}

	if len(messages) > 0 {
		return notFound(messages...), model.Cart{}, false
	}
	return ServiceResponse{}, cart, true
}
