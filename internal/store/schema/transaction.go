package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// SaleTransaction represents the transaction table - append-only ledger of completed sales
type SaleTransaction struct {
	ID                int64              `gorm:"column:id;primaryKey;autoIncrement"`
	TxnHash           string             `gorm:"column:txn_hash;not null;type:text;index"`
	BuyerAddress      string             `gorm:"column:buyer_address;not null;type:text;index"`
	SellerAddress     string             `gorm:"column:seller_address;not null;type:text;index"`
	CollectionAddress string             `gorm:"column:collection_address;not null;type:text;index"`
	Volume            decimal.Decimal    `gorm:"column:volume;not null;type:numeric(90,2)"`
	Market            domain.Marketplace `gorm:"column:market;not null;type:text"`
	Date              time.Time          `gorm:"column:date;not null"`
}

// TableName specifies the table name for the SaleTransaction model
func (SaleTransaction) TableName() string {
	return "transaction"
}
