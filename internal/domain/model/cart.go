package model

import "time"

// カート（名前付きの買い物リスト）
// 所有者は高々1人。作成〜リンクの間とアンリンク後は無所有
type Cart struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	CustomerID *int64    `gorm:"index" json:"customer_id"`
	Customer   *Customer `gorm:"foreignKey:CustomerID" json:"-"`

	// 多対多（cart_products）
	Products []Product `gorm:"many2many:cart_products" json:"-"`
}
