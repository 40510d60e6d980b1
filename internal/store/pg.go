package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/store/schema"
)

const (
	defaultStreamTxLimit = 50
	maxStreamTxLimit     = 500
)

var emptyJSONObject = datatypes.JSON(`{}`)

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// UseReadReplica routes read queries to the replica at readDSN.
// Writes and transactions keep using the primary connection.
func UseReadReplica(db *gorm.DB, readDSN string) error {
	return db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: []gorm.Dialector{postgres.Open(readDSN)},
		Policy:   dbresolver.RandomPolicy{},
	}))
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that stays below
// PostgreSQL's 65535 parameters per statement limit
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// primary returns a session pinned to the primary database.
// Reconciliation reads must observe the writes that preceded them.
func (s *pgStore) primary(ctx context.Context) *gorm.DB {
	db := s.db.WithContext(ctx)
	if hasDBResolver(s.db) {
		db = db.Clauses(dbresolver.Write)
	}
	return db
}

func persistenceError(op string, err error) error {
	return fmt.Errorf("%w: failed to %s: %w", domain.ErrPersistence, op, err)
}

// GetNFT retrieves an NFT by token address and token id
func (s *pgStore) GetNFT(ctx context.Context, tokenAddress, tokenID string) (*schema.NFT, error) {
	var nft schema.NFT
	err := s.primary(ctx).
		Where("token_address = ? AND token_id = ?", tokenAddress, tokenID).
		First(&nft).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, persistenceError("get nft", err)
	}

	return &nft, nil
}

// UpdateNFTOwner sets the owner of an NFT
func (s *pgStore) UpdateNFTOwner(ctx context.Context, nftID int64, ownerAddress string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.NFT{}).
		Where("id = ?", nftID).
		Update("owner_address", ownerAddress).Error
	if err != nil {
		return persistenceError("update nft owner", err)
	}

	return nil
}

// CreateNFT creates an NFT and its traits in one transaction.
// If the natural key already exists the stored row is returned and no trait is written.
func (s *pgStore) CreateNFT(ctx context.Context, input CreateNFTInput) (*schema.NFT, error) {
	nft := schema.NFT{
		TokenAddress: input.TokenAddress,
		TokenID:      input.TokenID,
		TokenURI:     input.TokenURI,
		Name:         input.Name,
		Image:        input.Image,
		Description:  input.Description,
		OwnerAddress: input.OwnerAddress,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "token_address"}, {Name: "token_id"}},
				DoNothing: true,
			}).
			Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&nft).Error; err != nil {
			return fmt.Errorf("failed to create nft: %w", err)
		}

		// Lost a race against another writer, keep its row
		if nft.ID == 0 {
			if err := tx.Where("token_address = ? AND token_id = ?", input.TokenAddress, input.TokenID).
				First(&nft).Error; err != nil {
				return fmt.Errorf("failed to get existing nft: %w", err)
			}
			return nil
		}

		if len(input.Traits) == 0 {
			return nil
		}

		traits := make([]schema.NFTTrait, 0, len(input.Traits))
		for _, t := range input.Traits {
			traits = append(traits, schema.NFTTrait{
				NFTID:       nft.ID,
				Attribute:   t.Attribute,
				Value:       t.Value,
				DisplayType: t.DisplayType,
			})
		}

		batchSize := calculateSafeBatchSize(len(traits), 4)
		if err := tx.CreateInBatches(&traits, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create nft traits: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	return &nft, nil
}

// GetNFTTraits retrieves the traits of an NFT
func (s *pgStore) GetNFTTraits(ctx context.Context, nftID int64) ([]schema.NFTTrait, error) {
	var traits []schema.NFTTrait
	err := s.db.WithContext(ctx).
		Where("nft_id = ?", nftID).
		Order("id ASC").
		Find(&traits).Error
	if err != nil {
		return nil, persistenceError("get nft traits", err)
	}

	return traits, nil
}

// GetCollection retrieves a collection by address
func (s *pgStore) GetCollection(ctx context.Context, address string) (*schema.Collection, error) {
	var collection schema.Collection
	err := s.primary(ctx).Where("address = ?", address).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, persistenceError("get collection", err)
	}

	return &collection, nil
}

// CreateCollection inserts a collection, ignoring an existing row with the same address
func (s *pgStore) CreateCollection(ctx context.Context, input CreateCollectionInput) error {
	socials := input.Socials
	if len(socials) == 0 {
		socials = emptyJSONObject
	}

	collection := schema.Collection{
		Address:     input.Address,
		Name:        input.Name,
		Symbol:      input.Symbol,
		Supply:      input.Supply,
		Royalty:     input.Royalty,
		Slug:        input.Slug,
		Description: input.Description,
		Banner:      input.Banner,
		Image:       input.Image,
		Socials:     socials,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "address"}},
			DoNothing: true,
		}).
		Create(&collection).Error
	if err != nil {
		return persistenceError("create collection", err)
	}

	return nil
}

// GetListingByNFTID retrieves the live listing of an NFT
func (s *pgStore) GetListingByNFTID(ctx context.Context, nftID int64) (*schema.ListingNFT, error) {
	var listing schema.ListingNFT
	err := s.primary(ctx).Where("nft_id = ?", nftID).First(&listing).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, persistenceError("get listing", err)
	}

	return &listing, nil
}

// CreateListing inserts a listing and its "list" activity in one transaction.
// A listing that already exists for the NFT is left untouched and no activity is written.
func (s *pgStore) CreateListing(ctx context.Context, input CreateListingInput) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		listing := schema.ListingNFT{
			NFTID:             input.NFTID,
			CollectionAddress: input.CollectionAddress,
			TxHash:            input.TxHash,
			SellerAddress:     input.SellerAddress,
			Price:             input.Price,
			Denom:             input.Denom,
			Market:            input.Market,
			SaleType:          input.SaleType,
			ExpirationTime:    input.ExpirationTime,
			CreatedDate:       input.CreatedDate,
		}

		if err := tx.Omit(clause.Associations).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "nft_id"}},
				DoNothing: true,
			}).
			Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&listing).Error; err != nil {
			return fmt.Errorf("failed to create listing: %w", err)
		}

		if listing.ID == 0 {
			logger.WarnCtx(ctx, "Listing already exists, skipping list activity",
				zap.Int64("nft_id", input.NFTID),
				zap.String("tx_hash", input.TxHash))
			return nil
		}

		seller := input.SellerAddress
		activity := schema.NFTActivity{
			NFTID:         input.NFTID,
			TxHash:        input.TxHash,
			SellerAddress: &seller,
			Price:         input.Price,
			Denom:         input.Denom,
			EventKind:     domain.ActivityKindList,
			Market:        input.Market,
			Metadata:      emptyJSONObject,
			Date:          input.CreatedDate,
		}
		if err := tx.Omit(clause.Associations).Create(&activity).Error; err != nil {
			return fmt.Errorf("failed to create list activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	return nil
}

// CompleteSale deletes the listing and writes the sale activity, the ledger row and
// the buyer and seller loyalty points. Every write commits together or none does.
func (s *pgStore) CompleteSale(ctx context.Context, input CompleteSaleInput) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("nft_id = ?", input.NFTID).Delete(&schema.ListingNFT{}).Error; err != nil {
			return fmt.Errorf("failed to delete listing: %w", err)
		}

		buyer := input.BuyerAddress
		seller := input.SellerAddress
		activity := schema.NFTActivity{
			NFTID:         input.NFTID,
			TxHash:        input.TxHash,
			SellerAddress: &seller,
			BuyerAddress:  &buyer,
			Price:         input.Price,
			Denom:         input.Denom,
			EventKind:     domain.ActivityKindSale,
			Market:        input.Market,
			Metadata:      emptyJSONObject,
			Date:          input.Date,
		}
		if err := tx.Omit(clause.Associations).Create(&activity).Error; err != nil {
			return fmt.Errorf("failed to create sale activity: %w", err)
		}

		sale := schema.SaleTransaction{
			TxnHash:           input.TxHash,
			BuyerAddress:      input.BuyerAddress,
			SellerAddress:     input.SellerAddress,
			CollectionAddress: input.CollectionAddress,
			Volume:            input.Price,
			Market:            input.Market,
			Date:              input.Date,
		}
		if err := tx.Create(&sale).Error; err != nil {
			return fmt.Errorf("failed to create sale transaction: %w", err)
		}

		buyerPoint := schema.UserLoyaltyPoint{
			WalletAddress: input.BuyerAddress,
			Point:         input.Points,
			Kind:          domain.LoyaltyPointKindBuy,
			Date:          input.Date,
		}
		if err := tx.Create(&buyerPoint).Error; err != nil {
			return fmt.Errorf("failed to create buyer loyalty point: %w", err)
		}

		sellerPoint := schema.UserLoyaltyPoint{
			WalletAddress: input.SellerAddress,
			Point:         input.Points,
			Kind:          domain.LoyaltyPointKindSell,
			Date:          input.Date,
		}
		if err := tx.Create(&sellerPoint).Error; err != nil {
			return fmt.Errorf("failed to create seller loyalty point: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	return nil
}

// CancelListing deletes the listing and writes a "delist" activity in one transaction
func (s *pgStore) CancelListing(ctx context.Context, input CancelListingInput) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("nft_id = ?", input.NFTID).Delete(&schema.ListingNFT{}).Error; err != nil {
			return fmt.Errorf("failed to delete listing: %w", err)
		}

		seller := input.SellerAddress
		activity := schema.NFTActivity{
			NFTID:         input.NFTID,
			TxHash:        input.TxHash,
			SellerAddress: &seller,
			Price:         input.Price,
			Denom:         input.Denom,
			EventKind:     domain.ActivityKindDelist,
			Market:        input.Market,
			Metadata:      emptyJSONObject,
			Date:          input.Date,
		}
		if err := tx.Omit(clause.Associations).Create(&activity).Error; err != nil {
			return fmt.Errorf("failed to create delist activity: %w", err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	return nil
}

// GetActivitiesByNFTID retrieves the activity log of an NFT, newest first
func (s *pgStore) GetActivitiesByNFTID(ctx context.Context, nftID int64) ([]schema.NFTActivity, error) {
	var activities []schema.NFTActivity
	err := s.db.WithContext(ctx).
		Where("nft_id = ?", nftID).
		Order("date DESC, id DESC").
		Find(&activities).Error
	if err != nil {
		return nil, persistenceError("get nft activities", err)
	}

	return activities, nil
}

// GetSaleTransactionsByTxHash retrieves ledger rows written for a transaction
func (s *pgStore) GetSaleTransactionsByTxHash(ctx context.Context, txHash string) ([]schema.SaleTransaction, error) {
	var sales []schema.SaleTransaction
	err := s.db.WithContext(ctx).
		Where("txn_hash = ?", txHash).
		Order("id ASC").
		Find(&sales).Error
	if err != nil {
		return nil, persistenceError("get sale transactions", err)
	}

	return sales, nil
}

// GetLoyaltyPointsByWallet retrieves loyalty points credited to a wallet, newest first
func (s *pgStore) GetLoyaltyPointsByWallet(ctx context.Context, walletAddress string) ([]schema.UserLoyaltyPoint, error) {
	var points []schema.UserLoyaltyPoint
	err := s.db.WithContext(ctx).
		Where("wallet_address = ?", walletAddress).
		Order("date DESC, id DESC").
		Find(&points).Error
	if err != nil {
		return nil, persistenceError("get loyalty points", err)
	}

	return points, nil
}

// CreateStreamTx appends a tracing record
func (s *pgStore) CreateStreamTx(ctx context.Context, input CreateStreamTxInput) error {
	event := input.Event
	if len(event) == 0 {
		event = emptyJSONObject
	}

	record := schema.StreamTx{
		TxHash:    input.TxHash,
		Action:    input.Action,
		Context:   input.Context,
		Event:     event,
		IsFailure: input.IsFailure,
		Message:   input.Message,
		Date:      input.Date,
	}

	if err := s.db.WithContext(ctx).Create(&record).Error; err != nil {
		return persistenceError("create stream tx", err)
	}

	return nil
}

// GetStreamTxs retrieves tracing records matching the filter, newest first
func (s *pgStore) GetStreamTxs(ctx context.Context, filter StreamTxQueryFilter) ([]schema.StreamTx, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.StreamTx{})

	if filter.Context != nil {
		query = query.Where("context = ?", *filter.Context)
	}
	if filter.IsFailure != nil {
		query = query.Where("is_failure = ?", *filter.IsFailure)
	}
	if filter.TxHash != nil {
		query = query.Where("tx_hash = ?", *filter.TxHash)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, persistenceError("count stream txs", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultStreamTxLimit
	}
	if limit > maxStreamTxLimit {
		limit = maxStreamTxLimit
	}

	var records []schema.StreamTx
	err := query.
		Order("date DESC, id DESC").
		Limit(limit).
		Offset(int(filter.Offset)). //nolint:gosec,G115
		Find(&records).Error
	if err != nil {
		return nil, 0, persistenceError("get stream txs", err)
	}

	return records, uint64(total), nil //nolint:gosec,G115
}
