package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"grocery/internal/domain/model"
	repo "grocery/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ProductUsecase は /products の業務ロジック
type ProductUsecase struct {
	productRepo repo.ProductRepository
	log         *zap.Logger
}

func NewProductUsecase(productRepo repo.ProductRepository, log *zap.Logger) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		log:         log,
	}
}

// ProductResponse は商品の正準形（全エンドポイント共通）
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
}

// ProductSearchResult は検索結果。入っているカート名も持つ
// （連結した表示文字列はhandler側で作る）
type ProductSearchResult struct {
	ProductResponse
	CartNames []string `json:"cart_names"`
}

type ProductInput struct {
	Name        string `validate:"required"`
	Description string
	Category    string
	Price       decimal.Decimal
}

// ListProducts は全商品を返す
func (u *ProductUsecase) ListProducts(ctx context.Context) ([]ProductResponse, error) {
	products, err := u.productRepo.List(ctx)
	if err != nil {
		u.log.Error("list products failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// FindProduct はIDで1件返す
func (u *ProductUsecase) FindProduct(ctx context.Context, id int64) (ProductResponse, error) {
	p, err := u.productRepo.FindByID(ctx, id)
	if err == repo.ErrNotFound {
		return ProductResponse{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		u.log.Error("find product failed", zap.Error(err))
		return ProductResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return toProductResponse(p), nil
}

// AddProduct は商品を追加する
func (u *ProductUsecase) AddProduct(ctx context.Context, in ProductInput) ServiceResponse {
	if err := validate.Struct(in); err != nil {
		return invalid("Product name is required.")
	}
	if in.Price.IsNegative() {
		return invalid("Price must not be negative.")
	}

	p := model.Product{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
	}

	createdProduct, err := u.productRepo.Create(ctx, p)
	if err != nil {
		u.log.Error("product create failed", zap.Error(err))
		return failure("There was an error adding the Product.")
	}

	return created(createdProduct.ID)
}

// UpdateProduct は可変フィールドを全上書きする
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id int64, in ProductInput) ServiceResponse {
	if err := validate.Struct(in); err != nil {
		return invalid("Product name is required.")
	}
	if in.Price.IsNegative() {
		return invalid("Price must not be negative.")
	}

	p := model.Product{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
	}

	err := u.productRepo.Update(ctx, p)
	if err == repo.ErrNotFound {
		return notFound("Product not found.")
	}
	if err != nil {
		u.log.Error("product update failed", zap.Error(err))
		return failure("Error updating the product.")
	}

	return updated()
}

// DeleteProduct は商品を削除する。カート側は残る
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id int64) ServiceResponse {
	err := u.productRepo.Delete(ctx, id)
	if err == repo.ErrNotFound {
		return notFound("Product not found.")
	}
	if err != nil {
		u.log.Error("product delete failed", zap.Error(err))
		return failure("Error deleting the product.")
	}

	return deleted()
}

// GetProductsByCategory はカテゴリ完全一致（大文字小文字を無視）。
// 空カテゴリはDBに行く前に弾く
func (u *ProductUsecase) GetProductsByCategory(ctx context.Context, category string) ([]ProductResponse, error) {
	if strings.TrimSpace(category) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "category must not be empty")
	}

	products, err := u.productRepo.ListByCategory(ctx, category)
	if err != nil {
		u.log.Error("list products by category failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out, nil
}

// SearchProducts はname/descriptionの部分一致。
// 空クエリはDBに行く前に弾く
func (u *ProductUsecase) SearchProducts(ctx context.Context, query string) ([]ProductSearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "query must not be empty")
	}

	products, err := u.productRepo.Search(ctx, query)
	if err != nil {
		u.log.Error("search products failed", zap.Error(err))
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out := make([]ProductSearchResult, 0, len(products))
	for _, p := range products {
		cartNames := make([]string, 0, len(p.Carts))
		for _, c := range p.Carts {
			cartNames = append(cartNames, c.Name)
		}

		out = append(out, ProductSearchResult{
			ProductResponse: toProductResponse(p),
			CartNames:       cartNames,
		})
	}
	return out, nil
}

func toProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		Price:       p.Price,
	}
}
