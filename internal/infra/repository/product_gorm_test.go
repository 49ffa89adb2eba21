package repository

import (
	"context"
	"testing"

	"grocery/internal/domain/model"
	repo "grocery/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGormRepository_ListByCategory_IgnoresCase(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGormRepository(db)

	require.NoError(t, db.Create(&model.Product{Name: "Apple", Category: "Fruits"}).Error)
	require.NoError(t, db.Create(&model.Product{Name: "Banana", Category: "fruits"}).Error)
	require.NoError(t, db.Create(&model.Product{Name: "Milk", Category: "Dairy"}).Error)

	for _, category := range []string{"fruits", "FRUITS", "Fruits"} {
		products, err := r.ListByCategory(context.Background(), category)
		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, "Apple", products[0].Name)
		assert.Equal(t, "Banana", products[1].Name)
	}

	products, err := r.ListByCategory(context.Background(), "meat")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductGormRepository_Search_MatchesNameAndDescription(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGormRepository(db)
	cartRepo := NewCartGormRepository(db)

	milk := model.Product{Name: "Milk", Description: "Whole milk 1L", Price: decimal.NewFromFloat(2.50)}
	bread := model.Product{Name: "Bread", Description: "Made with oat milk"}
	apple := model.Product{Name: "Apple", Description: "Crisp and sweet"}
	require.NoError(t, db.Create(&milk).Error)
	require.NoError(t, db.Create(&bread).Error)
	require.NoError(t, db.Create(&apple).Error)

	c := model.Cart{Name: "Weekly"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, cartRepo.AddProduct(context.Background(), c.ID, milk.ID))

	products, err := r.Search(context.Background(), "milk")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Milk", products[0].Name)
	assert.Equal(t, "Bread", products[1].Name)

	//入っているカートも読まれている
	require.Len(t, products[0].Carts, 1)
	assert.Equal(t, "Weekly", products[0].Carts[0].Name)
	assert.Empty(t, products[1].Carts)
}

func TestProductGormRepository_Update(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGormRepository(db)

	p := model.Product{Name: "Milk", Category: "Dairy", Price: decimal.NewFromFloat(2.50)}
	require.NoError(t, db.Create(&p).Error)

	p.Name = "Oat Milk"
	p.Price = decimal.NewFromFloat(3.25)
	require.NoError(t, r.Update(context.Background(), p))

	got, err := r.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Oat Milk", got.Name)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(3.25)))

	assert.Equal(t, repo.ErrNotFound, r.Update(context.Background(), model.Product{ID: 999, Name: "x"}))
}

func TestProductGormRepository_Delete_LeavesCartIntact(t *testing.T) {
	db := newTestDB(t)
	r := NewProductGormRepository(db)
	cartRepo := NewCartGormRepository(db)

	p := model.Product{Name: "Milk"}
	require.NoError(t, db.Create(&p).Error)
	c := model.Cart{Name: "Weekly"}
	require.NoError(t, db.Create(&c).Error)
	require.NoError(t, cartRepo.AddProduct(context.Background(), c.ID, p.ID))

	require.NoError(t, r.Delete(context.Background(), p.ID))

	assert.Equal(t, int64(0), countJoinRows(t, db, c.ID, p.ID))

	//カート本体は残る
	got, err := cartRepo.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Products)

	assert.Equal(t, repo.ErrNotFound, r.Delete(context.Background(), p.ID))
}
