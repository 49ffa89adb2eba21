package model

// 顧客。1人の顧客は複数のカートを持てる
type Customer struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName  string `gorm:"type:varchar(100);not null" json:"last_name"`
	Address   string `gorm:"type:varchar(255)" json:"address"`
	Email     string `gorm:"type:varchar(255)" json:"email"`
	Phone     string `gorm:"type:varchar(50)" json:"phone"`

	Carts []Cart `gorm:"foreignKey:CustomerID" json:"-"`
}
