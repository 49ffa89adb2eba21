package repository

import (
	"testing"

	"grocery/internal/domain/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// テスト用のインメモリDBを用意する
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	//:memory:はコネクション毎に別DBになるので1本に固定する
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.Customer{},
		&model.Product{},
		&model.Cart{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func countJoinRows(t *testing.T, db *gorm.DB, cartID, productID int64) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Table("cart_products").
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		Count(&n).Error)
	return n
}
