package schema

import "time"

// NFT represents the nft table - one row per (token_address, token_id) seen on chain
type NFT struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TokenAddress is the cw721 contract address
	TokenAddress string `gorm:"column:token_address;not null;type:text;uniqueIndex:idx_nft_token_address_token_id,priority:1"`
	// TokenID is the token id within the contract
	TokenID string `gorm:"column:token_id;not null;type:text;uniqueIndex:idx_nft_token_address_token_id,priority:2"`
	// TokenURI is the metadata uri reported by nft_info
	TokenURI string `gorm:"column:token_uri;not null;type:text"`
	// Name, Image and Description come from the off-chain metadata
	Name        *string `gorm:"column:name;type:text"`
	Image       *string `gorm:"column:image;type:text"`
	Description *string `gorm:"column:description;type:text"`
	// OwnerAddress is the last owner observed through cw721 events (nil if never observed)
	OwnerAddress *string   `gorm:"column:owner_address;type:text;index"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`

	// Associations
	Collection Collection `gorm:"foreignKey:TokenAddress;references:Address;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Traits     []NFTTrait `gorm:"foreignKey:NFTID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the NFT model
func (NFT) TableName() string {
	return "nft"
}

// NFTTrait represents the nft_trait table - one metadata attribute of an NFT
type NFTTrait struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	NFTID       int64   `gorm:"column:nft_id;not null;index"`
	Attribute   string  `gorm:"column:attribute;not null;type:text"`
	Value       string  `gorm:"column:value;not null;type:text"`
	DisplayType *string `gorm:"column:display_type;type:text"`
}

// TableName specifies the table name for the NFTTrait model
func (NFTTrait) TableName() string {
	return "nft_trait"
}
