package usecase

import (
	"context"
	"net/http"
	"time"

	"grocery/internal/domain/model"
	repo "grocery/internal/repository"

	"go.uber.org/zap"
)

// CartUsecase は /carts の業務ロジック。
// カート本体のCRUDと、カート⇄商品の付け外しを受け持つ
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
	log         *zap.Logger
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
	log *zap.Logger,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		log:         log,
	}
}

// CartOwner は所有者のスナップショット
// （"Fname Lname"の表示文字列はhandler側で組み立てる）
type CartOwner struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// CartSummary は一覧用
type CartSummary struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	CreatedAt    time.Time  `json:"created_at"`
	Owner        *CartOwner `json:"owner,omitempty"`
	ProductNames []string   `json:"product_names"`
}

// CartDetail は詳細用
type CartDetail struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	CreatedAt time.Time         `json:"created_at"`
	Owner     *CartOwner        `json:"owner,omitempty"`
	Products  []ProductResponse `json:"products"`
}

type AddCartInput struct {
	Name string `validate:"required"`

	// ゼロ値なら現在時刻を入れる
	CreatedAt time.Time
}

type UpdateCartInput struct {
	Name string `validate:"required"`
}

// ListCarts は全カートを返す
func (u *CartUsecase) ListCarts(ctx context.Context) ([]CartSummary, error) {
	carts, err := u.cartRepo.List(ctx)
	if err != nil {
		u.log.Error("list carts failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]CartSummary, 0, len(carts))
	for _, c := range carts {
		out = append(out, toCartSummary(c))
	}
	return out, nil
}

// FindCart はIDで1件、所有者と商品込みで返す
func (u *CartUsecase) FindCart(ctx context.Context, id int64) (CartDetail, error) {
	c, err := u.cartRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return CartDetail{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		u.log.Error("find cart failed", zap.Error(err))
		return CartDetail{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	detail := CartDetail{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
		Owner:     toCartOwner(c.Customer),
		Products:  make([]ProductResponse, 0, len(c.Products)),
	}
	for _, p := range c.Products {
		detail.Products = append(detail.Products, toProductResponse(p))
	}

	return detail, nil
}

// AddCart はカートを作成する。作成時刻が無ければ現在時刻
func (u *CartUsecase) AddCart(ctx context.Context, in AddCartInput) ServiceResponse {
	if err := validate.Struct(in); err != nil {
		return invalid("Cart name is required.")
	}

	c := model.Cart{
		Name:      in.Name,
		CreatedAt: in.CreatedAt,
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	createdCart, err := u.cartRepo.Create(ctx, c)
	if err != nil {
		u.log.Error("cart create failed", zap.Error(err))
		return failure("Error adding the cart.")
	}

	return created(createdCart.ID)
}

// UpdateCart はカート名を上書きする
func (u *CartUsecase) UpdateCart(ctx context.Context, id int64, in UpdateCartInput) ServiceResponse {
	if err := validate.Struct(in); err != nil {
		return invalid("Cart name is required.")
	}

	err := u.cartRepo.UpdateName(ctx, id, in.Name)
	if err == repo.ErrNotFound {
		return notFound("Cart not found.")
	}
	if err != nil {
		u.log.Error("cart update failed", zap.Error(err))
		return failure("Error updating the cart.")
	}

	return updated()
}

// DeleteCart はカートと結合テーブルの行を削除する
func (u *CartUsecase) DeleteCart(ctx context.Context, id int64) ServiceResponse {
	err := u.cartRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return notFound("Cart not found.")
	}
	if err != nil {
		u.log.Error("cart delete failed", zap.Error(err))
		return failure("Error deleting the cart.")
	}

	return deleted()
}

// ListCartProducts はカート内の商品を返す
func (u *CartUsecase) ListCartProducts(ctx context.Context, cartID int64) ([]ProductResponse, error) {
	products, err := u.cartRepo.ListProducts(ctx, cartID)
	if err == repo.ErrNotFound {
		return nil, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		u.log.Error("list cart products failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// AddProductToCart はカートに商品を入れる。
// 既に入っている商品の再追加は成功扱い（冪等）
func (u *CartUsecase) AddProductToCart(ctx context.Context, cartID int64, productID int64) ServiceResponse {
	res, ok := u.checkCartAndProduct(ctx, cartID, productID)
	if !ok {
		return res
	}

	if err := u.cartRepo.AddProduct(ctx, cartID, productID); err != nil {
		if err == repo.ErrNotFound {
			return notFound("Cart not found.", "Product not found.")
		}
		u.log.Error("add product to cart failed", zap.Error(err))
		return failure("Error adding product to the cart.")
	}

	return updated()
}

// RemoveProductFromCart はカートから商品を外す。
// 入っていない商品は成功扱い
func (u *CartUsecase) RemoveProductFromCart(ctx context.Context, cartID int64, productID int64) ServiceResponse {
	res, ok := u.checkCartAndProduct(ctx, cartID, productID)
	if !ok {
		return res
	}

	if err := u.cartRepo.RemoveProduct(ctx, cartID, productID); err != nil {
		if err == repo.ErrNotFound {
			return notFound("Cart not found.", "Product not found.")
		}
		u.log.Error("remove product from cart failed", zap.Error(err))
		return failure("Error removing product from the cart.")
	}

	return deleted()
}

// 欠けている側ごとにメッセージを積む
func (u *CartUsecase) checkCartAndProduct(ctx context.Context, cartID int64, productID int64) (ServiceResponse, bool) {
	var messages []string

	if _, err := u.cartRepo.FindByID(ctx, cartID); err == repo.ErrNotFound {
		messages = append(messages, "Cart not found.")
	} else if err != nil {
		u.log.Error("find cart failed", zap.Error(err))
		return failure("db error"), false
	}

	if _, err := u.productRepo.FindByID(ctx, productID); err == repo.ErrNotFound {
		messages = append(messages, "Product not found.")
	} else if err != nil {
		u.log.Error("find product failed", zap.Error(err))
		return failure("db error"), false
	}

	if len(messages) > 0 {
		return notFound(messages...), false
	}
	return ServiceResponse{}, true
}

func toCartSummary(c model.Cart) CartSummary {
	s := CartSummary{
		ID:           c.ID,
		Name:         c.Name,
		CreatedAt:    c.CreatedAt,
		Owner:        toCartOwner(c.Customer),
		ProductNames: make([]string, 0, len(c.Products)),
	}
	for _, p := range c.Products {
		s.ProductNames = append(s.ProductNames, p.Name)
	}
	return s
}

func toCartOwner(c *model.Customer) *CartOwner {
	if c == nil {
		return nil
	}
	return &CartOwner{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}
