package repository

import (
	"context"
	"testing"

	"grocery/internal/domain/model"
	repo "grocery/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCartAndProduct(t *testing.T, db *gorm.DB) (model.Cart, model.Product) {
	t.Helper()

	c := model.Cart{Name: "Weekly"}
	require.NoError(t, db.Create(&c).Error)

	p := model.Product{Name: "Milk", Category: "Dairy", Price: decimal.NewFromFloat(2.50)}
	require.NoError(t, db.Create(&p).Error)

	return c, p
}

func TestCartGormRepository_AddProduct_Idempotent(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	c, p := seedCartAndProduct(t, db)

	require.NoError(t, r.AddProduct(context.Background(), c.ID, p.ID))
	//2回目は何もしない
	require.NoError(t, r.AddProduct(context.Background(), c.ID, p.ID))

	assert.Equal(t, int64(1), countJoinRows(t, db, c.ID, p.ID))
}

func TestCartGormRepository_AddProduct_CartMissing(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	_, p := seedCartAndProduct(t, db)

	err := r.AddProduct(context.Background(), 999, p.ID)

	assert.Equal(t, repo.ErrNotFound, err)
}

func TestCartGormRepository_RemoveProduct(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	c, p := seedCartAndProduct(t, db)

	require.NoError(t, r.AddProduct(context.Background(), c.ID, p.ID))
	require.NoError(t, r.RemoveProduct(context.Background(), c.ID, p.ID))
	assert.Equal(t, int64(0), countJoinRows(t, db, c.ID, p.ID))

	//入っていない商品を外してもエラーにはしない
	require.NoError(t, r.RemoveProduct(context.Background(), c.ID, p.ID))

	//商品本体は残る
	var got model.Product
	require.NoError(t, db.First(&got, p.ID).Error)
}

func TestCartGormRepository_ListProducts(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	c, p := seedCartAndProduct(t, db)

	products, err := r.ListProducts(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Empty(t, products)

	require.NoError(t, r.AddProduct(context.Background(), c.ID, p.ID))

	products, err = r.ListProducts(context.Background(), c.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Milk", products[0].Name)
	assert.True(t, products[0].Price.Equal(decimal.NewFromFloat(2.50)))

	_, err = r.ListProducts(context.Background(), 999)
	assert.Equal(t, repo.ErrNotFound, err)
}

func TestCartGormRepository_UpdateName(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	c, _ := seedCartAndProduct(t, db)

	require.NoError(t, r.UpdateName(context.Background(), c.ID, "Party"))

	got, err := r.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Party", got.Name)

	assert.Equal(t, repo.ErrNotFound, r.UpdateName(context.Background(), 999, "x"))
}

func TestCartGormRepository_Delete_ClearsJoinRows(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	c, p := seedCartAndProduct(t, db)
	require.NoError(t, r.AddProduct(context.Background(), c.ID, p.ID))

	require.NoError(t, r.Delete(context.Background(), c.ID))

	assert.Equal(t, int64(0), countJoinRows(t, db, c.ID, p.ID))

	//商品は消えない
	var got model.Product
	require.NoError(t, db.First(&got, p.ID).Error)

	_, err := r.FindByID(context.Background(), c.ID)
	assert.Equal(t, repo.ErrNotFound, err)
}

func TestCartGormRepository_SetOwner_Reassign(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	c, _ := seedCartAndProduct(t, db)

	ana := model.Customer{FirstName: "Ana", LastName: "Lopez"}
	bo := model.Customer{FirstName: "Bo", LastName: "Chan"}
	require.NoError(t, db.Create(&ana).Error)
	require.NoError(t, db.Create(&bo).Error)

	require.NoError(t, r.SetOwner(context.Background(), c.ID, &ana.ID))

	carts, err := r.ListByCustomer(context.Background(), ana.ID)
	require.NoError(t, err)
	require.Len(t, carts, 1)

	//付け替え
	require.NoError(t, r.SetOwner(context.Background(), c.ID, &bo.ID))

	carts, err = r.ListByCustomer(context.Background(), ana.ID)
	require.NoError(t, err)
	assert.Empty(t, carts)

	carts, err = r.ListByCustomer(context.Background(), bo.ID)
	require.NoError(t, err)
	require.Len(t, carts, 1)

	//所有解除
	require.NoError(t, r.SetOwner(context.Background(), c.ID, nil))

	got, err := r.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CustomerID)

	assert.Equal(t, repo.ErrNotFound, r.SetOwner(context.Background(), 999, nil))
}

func TestCartGormRepository_List_PreloadsOwnerAndProducts(t *testing.T) {
	db := newTestDB(t)
	r := NewCartGormRepository(db)
	c, p := seedCartAndProduct(t, db)

	ana := model.Customer{FirstName: "Ana", LastName: "Lopez"}
	require.NoError(t, db.Create(&ana).Error)
	require.NoError(t, r.SetOwner(context.Background(), c.ID, &ana.ID))
	require.NoError(t, r.AddProduct(context.Background(), c.ID, p.ID))

	carts, err := r.List(context.Background())
	require.NoError(t, err)
	require.Len(t, carts, 1)
	require.NotNil(t, carts[0].Customer)
	assert.Equal(t, "Ana", carts[0].Customer.FirstName)
	require.Len(t, carts[0].Products, 1)
	assert.Equal(t, "Milk", carts[0].Products[0].Name)
}
