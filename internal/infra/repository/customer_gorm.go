package repository

import (
	"context"
	"errors"

	"grocery/internal/domain/model"
	repo "grocery/internal/repository"

	"gorm.io/gorm"
)

type CustomerGormRepository struct {
	db *gorm.DB
}

// DI
func NewCustomerGormRepository(db *gorm.DB) *CustomerGormRepository {
	return &CustomerGormRepository{db: db}
}

// 顧客を一覧取得（カート件数表示用にCartsも読む）
func (r *CustomerGormRepository) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer

	if err := r.db.WithContext(ctx).
		Preload("Carts").
		Order("id asc").
		Find(&customers).Error; err != nil {
		return []model.Customer{}, err
	}

	return customers, nil
}

// IDで顧客を取得
func (r *CustomerGormRepository) FindByID(ctx context.Context, id int64) (model.Customer, error) {
	var c model.Customer

	err := r.db.WithContext(ctx).
		Preload("Carts").
		First(&c, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Customer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// 顧客の作成
func (r *CustomerGormRepository) Create(ctx context.Context, c model.Customer) (model.Customer, error) {
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Customer{}, err
	}
	return c, nil
}

// 顧客の更新（可変フィールドの全上書き）
func (r *CustomerGormRepository) Update(ctx context.Context, c model.Customer) error {
	res := r.db.WithContext(ctx).Model(&model.Customer{}).Where("id = ?", c.ID).Updates(map[string]interface{}{
		"first_name": c.FirstName,
		"last_name":  c.LastName,
		"address":    c.Address,
		"email":      c.Email,
		"phone":      c.Phone,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 顧客の削除。所有カートは削除せず所有解除する
func (r *CustomerGormRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Customer
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return repo.ErrNotFound
			}
			return err
		}

		//カートの所有を外す
		if err := tx.Model(&model.Cart{}).
			Where("customer_id = ?", id).
			Update("customer_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Customer{}, id).Error
	})
}
