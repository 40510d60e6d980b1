package schema

import (
	"time"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// UserLoyaltyPoint represents the user_loyalty_point table - points credited per wallet per sale side
type UserLoyaltyPoint struct {
	ID            int64                   `gorm:"column:id;primaryKey;autoIncrement"`
	WalletAddress string                  `gorm:"column:wallet_address;not null;type:text;index"`
	Point         int64                   `gorm:"column:point;not null"`
	Kind          domain.LoyaltyPointKind `gorm:"column:kind;not null;type:text"`
	Date          time.Time               `gorm:"column:date;not null"`
}

// TableName specifies the table name for the UserLoyaltyPoint model
func (UserLoyaltyPoint) TableName() string {
	return "user_loyalty_point"
}
