package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/store/schema"
)

// CreateNFTTraitInput represents one trait of a new NFT
type CreateNFTTraitInput struct {
	Attribute   string
	Value       string
	DisplayType *string
}

// CreateNFTInput represents the input for creating an NFT with its traits
type CreateNFTInput struct {
	TokenAddress string
	TokenID      string
	TokenURI     string
	Name         *string
	Image        *string
	Description  *string
	OwnerAddress *string
	Traits       []CreateNFTTraitInput
}

// CreateCollectionInput represents the input for creating a collection
type CreateCollectionInput struct {
	Address     string
	Name        string
	Symbol      string
	Supply      int64
	Royalty     *decimal.Decimal
	Slug        *string
	Description *string
	Banner      *string
	Image       *string
	Socials     datatypes.JSON
}

// CreateListingInput represents a new listing and its "list" activity
type CreateListingInput struct {
	NFTID             int64
	CollectionAddress string
	TxHash            string
	SellerAddress     string
	Price             decimal.Decimal
	Denom             string
	Market            domain.Marketplace
	SaleType          domain.SaleType
	ExpirationTime    *int64
	CreatedDate       time.Time
}

// CompleteSaleInput represents a completed sale of a listed NFT
type CompleteSaleInput struct {
	NFTID             int64
	TxHash            string
	BuyerAddress      string
	SellerAddress     string
	CollectionAddress string
	Price             decimal.Decimal
	Denom             string
	Market            domain.Marketplace
	Points            int64
	Date              time.Time
}

// CancelListingInput represents a cancelled listing
type CancelListingInput struct {
	NFTID         int64
	TxHash        string
	SellerAddress string
	Price         decimal.Decimal
	Denom         string
	Market        domain.Marketplace
	Date          time.Time
}

// CreateStreamTxInput represents one tracing record
type CreateStreamTxInput struct {
	TxHash    string
	Action    string
	Context   domain.Protocol
	Event     datatypes.JSON
	IsFailure bool
	Message   *string
	Date      time.Time
}

// StreamTxQueryFilter filters tracing records
type StreamTxQueryFilter struct {
	Context   *domain.Protocol
	IsFailure *bool
	TxHash    *string
	Limit     int
	Offset    uint64
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetNFT retrieves an NFT by its natural key, nil if absent
	GetNFT(ctx context.Context, tokenAddress, tokenID string) (*schema.NFT, error)
	// UpdateNFTOwner sets the owner of an NFT
	UpdateNFTOwner(ctx context.Context, nftID int64, ownerAddress string) error
	// CreateNFT creates an NFT with its traits, or returns the existing row on a natural key conflict
	CreateNFT(ctx context.Context, input CreateNFTInput) (*schema.NFT, error)
	// GetNFTTraits retrieves the traits of an NFT
	GetNFTTraits(ctx context.Context, nftID int64) ([]schema.NFTTrait, error)

	// GetCollection retrieves a collection by address, nil if absent
	GetCollection(ctx context.Context, address string) (*schema.Collection, error)
	// CreateCollection inserts a collection, ignoring an existing row with the same address
	CreateCollection(ctx context.Context, input CreateCollectionInput) error

	// GetListingByNFTID retrieves the live listing of an NFT, nil if absent
	GetListingByNFTID(ctx context.Context, nftID int64) (*schema.ListingNFT, error)
	// CreateListing inserts a listing and its "list" activity in one transaction
	CreateListing(ctx context.Context, input CreateListingInput) error
	// CompleteSale deletes the listing and records the sale activity, ledger row and both loyalty points in one transaction
	CompleteSale(ctx context.Context, input CompleteSaleInput) error
	// CancelListing deletes the listing and records a "delist" activity in one transaction
	CancelListing(ctx context.Context, input CancelListingInput) error

	// GetActivitiesByNFTID retrieves the activity log of an NFT, newest first
	GetActivitiesByNFTID(ctx context.Context, nftID int64) ([]schema.NFTActivity, error)
	// GetSaleTransactionsByTxHash retrieves ledger rows written for a transaction
	GetSaleTransactionsByTxHash(ctx context.Context, txHash string) ([]schema.SaleTransaction, error)
	// GetLoyaltyPointsByWallet retrieves loyalty points credited to a wallet, newest first
	GetLoyaltyPointsByWallet(ctx context.Context, walletAddress string) ([]schema.UserLoyaltyPoint, error)

	// CreateStreamTx appends a tracing record
	CreateStreamTx(ctx context.Context, input CreateStreamTxInput) error
	// GetStreamTxs retrieves tracing records matching the filter, newest first, with the total count
	GetStreamTxs(ctx context.Context, filter StreamTxQueryFilter) ([]schema.StreamTx, uint64, error)
}
