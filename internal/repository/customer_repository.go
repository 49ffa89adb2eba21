package repository

import (
	"context"

	"grocery/internal/domain/model"
)

// 顧客の永続化だけを約束。
type CustomerRepository interface {
	// Cartsは読み込み済みで返す（件数表示用）
	List(ctx context.Context) ([]model.Customer, error)
	FindByID(ctx context.Context, id int64) (model.Customer, error)

	Create(ctx context.Context, c model.Customer) (model.Customer, error)
	Update(ctx context.Context, c model.Customer) error

	// 所有カートは削除せず所有解除してから顧客を消す
	Delete(ctx context.Context, id int64) error
}
