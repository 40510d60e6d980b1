package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// NFTActivity represents the nft_activity table - append-only log of list, delist and sale events
type NFTActivity struct {
	ID            int64               `gorm:"column:id;primaryKey;autoIncrement"`
	NFTID         int64               `gorm:"column:nft_id;not null;index"`
	TxHash        string              `gorm:"column:tx_hash;not null;type:text;index"`
	SellerAddress *string             `gorm:"column:seller_address;type:text"`
	BuyerAddress  *string             `gorm:"column:buyer_address;type:text"`
	Price         decimal.Decimal     `gorm:"column:price;not null;type:numeric(90,2)"`
	Denom         string              `gorm:"column:denom;not null;type:text"`
	EventKind     domain.ActivityKind `gorm:"column:event_kind;not null;type:text"`
	Market        domain.Marketplace  `gorm:"column:market;not null;type:text"`
	Metadata      datatypes.JSON      `gorm:"column:metadata;not null;type:jsonb"`
	Date          time.Time           `gorm:"column:date;not null"`

	NFT NFT `gorm:"foreignKey:NFTID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the table name for the NFTActivity model
func (NFTActivity) TableName() string {
	return "nft_activity"
}
