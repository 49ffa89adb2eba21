package repository

import (
	"context"

	"grocery/internal/domain/model"
)

// カートと、カート⇄商品の結合テーブルの永続化を約束。
type CartRepository interface {
	// Customer/Productsは読み込み済みで返す
	List(ctx context.Context) ([]model.Cart, error)
	FindByID(ctx context.Context, id int64) (model.Cart, error)

	Create(ctx context.Context, c model.Cart) (model.Cart, error)
	UpdateName(ctx context.Context, id int64, name string) error

	// カート本体と結合テーブルの行を削除
	Delete(ctx context.Context, id int64) error

	// カートが無ければErrNotFound
	ListProducts(ctx context.Context, cartID int64) ([]model.Product, error)

	// 既に入っている商品の追加は何もしない（冪等）
	AddProduct(ctx context.Context, cartID int64, productID int64) error

	// 入っていない商品の削除は何もしない
	RemoveProduct(ctx context.Context, cartID int64, productID int64) error

	ListByCustomer(ctx context.Context, customerID int64) ([]model.Cart, error)

	// customerID=nil で所有解除
	SetOwner(ctx context.Context, cartID int64, customerID *int64) error
}
