package schema

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// ListingNFT represents the listing_nft table - the live listing of an NFT, at most one per NFT
type ListingNFT struct {
	ID                int64              `gorm:"column:id;primaryKey;autoIncrement"`
	NFTID             int64              `gorm:"column:nft_id;not null;uniqueIndex"`
	CollectionAddress string             `gorm:"column:collection_address;not null;type:text;index"`
	TxHash            string             `gorm:"column:tx_hash;not null;type:text"`
	SellerAddress     string             `gorm:"column:seller_address;not null;type:text"`
	Price             decimal.Decimal    `gorm:"column:price;not null;type:numeric(90,2)"`
	Denom             string             `gorm:"column:denom;not null;type:text"`
	Market            domain.Marketplace `gorm:"column:market;not null;type:text"`
	SaleType          domain.SaleType    `gorm:"column:sale_type;not null;type:text"`
	// ExpirationTime is the auction expiration as reported by the marketplace contract
	ExpirationTime *int64    `gorm:"column:expiration_time"`
	CreatedDate    time.Time `gorm:"column:created_date;not null"`

	NFT NFT `gorm:"foreignKey:NFTID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the ListingNFT model
func (ListingNFT) TableName() string {
	return "listing_nft"
}
