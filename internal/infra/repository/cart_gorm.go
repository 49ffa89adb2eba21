package repository

import (
	"context"
	"errors"

	"grocery/internal/domain/model"
	repo "grocery/internal/repository"

	"gorm.io/gorm"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// カートを一覧取得（所有者・商品も読む）
func (r *CartGormRepository) List(ctx context.Context) ([]model.Cart, error) {
	var carts []model.Cart

	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		Order("id asc").
		Find(&carts).Error; err != nil {
		return []model.Cart{}, err
	}

	return carts, nil
}

// IDでカートを取得
func (r *CartGormRepository) FindByID(ctx context.Context, id int64) (model.Cart, error) {
	var c model.Cart

	err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products").
		First(&c, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cart{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cart{}, err
	}
	return c, nil
}

// カートの作成
func (r *CartGormRepository) Create(ctx context.Context, c model.Cart) (model.Cart, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Cart{}, err
	}
	return c, nil
}

// カート名を更新
func (r *CartGormRepository) UpdateName(ctx context.Context, id int64, name string) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", id).
		Update("name", name)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カートを削除。結合テーブルの行も消す
func (r *CartGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Cart
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		//cart_productsを全削除
		if err := tx.Model(&c).Association("Products").Clear(); err != nil {
			return err
		}

		return tx.Delete(&model.Cart{}, id).Error
	})
}

// カート内の商品を一覧取得
func (r *CartGormRepository) ListProducts(ctx context.Context, cartID int64) ([]model.Product, error) {
	var c model.Cart

	err := r.db.WithContext(ctx).
		Preload("Products").
		First(&c, cartID).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repo.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if c.Products == nil {
		return []model.Product{}, nil
	}
	return c.Products, nil
}

// カートに商品を追加。既に入っていれば何もしない
func (r *CartGormRepository) AddProduct(ctx context.Context, cartID int64, productID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Cart
		if err := tx.First(&c, cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		var p model.Product
		if err := tx.First(&p, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		var count int64
		if err := tx.Table("cart_products").
			Where("cart_id = ? AND product_id = ?", cartID, productID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		return tx.Model(&c).Association("Products").Append(&p)
	})
}

// カートから商品を外す。入っていなければ何もしない
func (r *CartGormRepository) RemoveProduct(ctx context.Context, cartID int64, productID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Cart
		if err := tx.First(&c, cartID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		var p model.Product
		if err := tx.First(&p, productID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		return tx.Model(&c).Association("Products").Delete(&p)
	})
}

// 顧客が所有するカートを一覧取得（商品も読む）
func (r *CartGormRepository) ListByCustomer(ctx context.Context, customerID int64) ([]model.Cart, error) {
	var carts []model.Cart

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Preload("Products").
		Order("id asc").
		Find(&carts).Error; err != nil {
		return []model.Cart{}, err
	}

	return carts, nil
}

// 所有者を付け替える。nilで所有解除
func (r *CartGormRepository) SetOwner(ctx context.Context, cartID int64, customerID *int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Cart{}).
		Where("id = ?", cartID).
		Update("customer_id", customerID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
