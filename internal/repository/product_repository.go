package repository

import (
	"context"
	"errors"

	"grocery/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品の永続化（保存・取得）だけを約束。
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, id int64) error

	// カテゴリ完全一致（大文字小文字を無視）
	ListByCategory(ctx context.Context, category string) ([]model.Product, error)

	// name/descriptionの部分一致。結果のCartsは読み込み済み
	Search(ctx context.Context, query string) ([]model.Product, error)
}
