package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Collection represents the collection table - one row per cw721 contract
type Collection struct {
	// Address is the cw721 contract address
	Address string `gorm:"column:address;primaryKey;type:text"`
	// Name and Symbol come from the contract_info query
	Name   string `gorm:"column:name;not null;type:text"`
	Symbol string `gorm:"column:symbol;not null;type:text"`
	// Supply is the num_tokens count at the time the collection was first seen
	Supply int64 `gorm:"column:supply;not null;default:0"`
	// Royalty is the royalty percentage of the first token seen, when the contract reports one
	Royalty *decimal.Decimal `gorm:"column:royalty;type:numeric(10,4)"`
	// Off-chain marketplace metadata
	Slug        *string        `gorm:"column:slug;type:text"`
	Description *string        `gorm:"column:description;type:text"`
	Banner      *string        `gorm:"column:banner;type:text"`
	Image       *string        `gorm:"column:image;type:text"`
	Socials     datatypes.JSON `gorm:"column:socials;type:jsonb"`
	CreatedAt   time.Time      `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for the Collection model
func (Collection) TableName() string {
	return "collection"
}
