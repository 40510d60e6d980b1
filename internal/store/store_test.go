package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

func stringPtr(s string) *string {
	return &s
}

// buildTestCollection creates a test collection input
func buildTestCollection(address string) CreateCollectionInput {
	royalty := decimal.RequireFromString("5.5")
	return CreateCollectionInput{
		Address: address,
		Name:    "Seiyans",
		Symbol:  "SEIYAN",
		Supply:  1000,
		Royalty: &royalty,
		Slug:    stringPtr("seiyans"),
		Socials: datatypes.JSON(`{"twitter":"https://x.com/seiyans"}`),
	}
}

// buildTestNFT creates a test NFT input with two traits
func buildTestNFT(tokenAddress, tokenID string, owner *string) CreateNFTInput {
	return CreateNFTInput{
		TokenAddress: tokenAddress,
		TokenID:      tokenID,
		TokenURI:     "ipfs://bafy/" + tokenID + ".json",
		Name:         stringPtr("Seiyan #" + tokenID),
		Image:        stringPtr("ipfs://bafy/" + tokenID + ".png"),
		OwnerAddress: owner,
		Traits: []CreateNFTTraitInput{
			{Attribute: "background", Value: "blue"},
			{Attribute: "level", Value: "7", DisplayType: stringPtr("number")},
		},
	}
}

// buildTestListing creates a test listing input
func buildTestListing(nftID int64, collection, seller, txHash string, price int64) CreateListingInput {
	expiration := int64(1_900_000_000)
	return CreateListingInput{
		NFTID:             nftID,
		CollectionAddress: collection,
		TxHash:            txHash,
		SellerAddress:     seller,
		Price:             decimal.NewFromInt(price),
		Denom:             domain.DENOM_USEI,
		Market:            domain.MarketplacePallet,
		SaleType:          domain.SaleTypeFixed,
		ExpirationTime:    &expiration,
		CreatedDate:       time.Now().UTC(),
	}
}

// seedListedNFT creates a collection, an NFT and a live listing, returning the NFT id
func seedListedNFT(t *testing.T, store Store, collection, tokenID, seller string) int64 {
	ctx := context.Background()

	require.NoError(t, store.CreateCollection(ctx, buildTestCollection(collection)))

	nft, err := store.CreateNFT(ctx, buildTestNFT(collection, tokenID, nil))
	require.NoError(t, err)
	require.NotNil(t, nft)

	require.NoError(t, store.CreateListing(ctx, buildTestListing(nft.ID, collection, seller, "LIST"+tokenID, 5_000_000)))

	return nft.ID
}

// =============================================================================
// NFT
// =============================================================================

func testCreateNFT(t *testing.T, store Store) {
	ctx := context.Background()
	collection := "sei1nftcollection"
	require.NoError(t, store.CreateCollection(ctx, buildTestCollection(collection)))

	t.Run("creates nft with traits", func(t *testing.T) {
		input := buildTestNFT(collection, "1", stringPtr("sei1owner"))

		nft, err := store.CreateNFT(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, nft)
		assert.NotZero(t, nft.ID)
		assert.Equal(t, collection, nft.TokenAddress)
		assert.Equal(t, "1", nft.TokenID)
		assert.Equal(t, input.TokenURI, nft.TokenURI)
		require.NotNil(t, nft.OwnerAddress)
		assert.Equal(t, "sei1owner", *nft.OwnerAddress)

		traits, err := store.GetNFTTraits(ctx, nft.ID)
		require.NoError(t, err)
		require.Len(t, traits, 2)
		assert.Equal(t, "background", traits[0].Attribute)
		assert.Equal(t, "blue", traits[0].Value)
		assert.Nil(t, traits[0].DisplayType)
		require.NotNil(t, traits[1].DisplayType)
		assert.Equal(t, "number", *traits[1].DisplayType)
	})

	t.Run("duplicate natural key returns the existing row", func(t *testing.T) {
		first, err := store.CreateNFT(ctx, buildTestNFT(collection, "2", stringPtr("sei1first")))
		require.NoError(t, err)

		second, err := store.CreateNFT(ctx, buildTestNFT(collection, "2", stringPtr("sei1second")))
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		require.NotNil(t, second.OwnerAddress)
		assert.Equal(t, "sei1first", *second.OwnerAddress)

		traits, err := store.GetNFTTraits(ctx, first.ID)
		require.NoError(t, err)
		assert.Len(t, traits, 2)
	})

	t.Run("nft without owner or traits", func(t *testing.T) {
		input := buildTestNFT(collection, "3", nil)
		input.Traits = nil

		nft, err := store.CreateNFT(ctx, input)
		require.NoError(t, err)
		assert.Nil(t, nft.OwnerAddress)

		traits, err := store.GetNFTTraits(ctx, nft.ID)
		require.NoError(t, err)
		assert.Empty(t, traits)
	})

	t.Run("unknown collection is rejected", func(t *testing.T) {
		_, err := store.CreateNFT(ctx, buildTestNFT("sei1missingcollection", "1", nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}

func testGetNFT(t *testing.T, store Store) {
	ctx := context.Background()
	collection := "sei1getnftcollection"
	require.NoError(t, store.CreateCollection(ctx, buildTestCollection(collection)))

	created, err := store.CreateNFT(ctx, buildTestNFT(collection, "10", nil))
	require.NoError(t, err)

	t.Run("existing nft", func(t *testing.T) {
		nft, err := store.GetNFT(ctx, collection, "10")
		require.NoError(t, err)
		require.NotNil(t, nft)
		assert.Equal(t, created.ID, nft.ID)
	})

	t.Run("missing nft returns nil", func(t *testing.T) {
		nft, err := store.GetNFT(ctx, collection, "11")
		require.NoError(t, err)
		assert.Nil(t, nft)
	})
}

func testUpdateNFTOwner(t *testing.T, store Store) {
	ctx := context.Background()
	collection := "sei1ownercollection"
	require.NoError(t, store.CreateCollection(ctx, buildTestCollection(collection)))

	nft, err := store.CreateNFT(ctx, buildTestNFT(collection, "42", stringPtr("sei1alice")))
	require.NoError(t, err)

	require.NoError(t, store.UpdateNFTOwner(ctx, nft.ID, "sei1bob"))

	updated, err := store.GetNFT(ctx, collection, "42")
	require.NoError(t, err)
	require.NotNil(t, updated.OwnerAddress)
	assert.Equal(t, "sei1bob", *updated.OwnerAddress)

	// Setting the same owner twice is a no-op
	require.NoError(t, store.UpdateNFTOwner(ctx, nft.ID, "sei1bob"))
	again, err := store.GetNFT(ctx, collection, "42")
	require.NoError(t, err)
	assert.Equal(t, "sei1bob", *again.OwnerAddress)
}

// =============================================================================
// Collection
// =============================================================================

func testCreateCollection(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates collection", func(t *testing.T) {
		input := buildTestCollection("sei1collectiona")
		require.NoError(t, store.CreateCollection(ctx, input))

		collection, err := store.GetCollection(ctx, "sei1collectiona")
		require.NoError(t, err)
		require.NotNil(t, collection)
		assert.Equal(t, "Seiyans", collection.Name)
		assert.Equal(t, "SEIYAN", collection.Symbol)
		assert.Equal(t, int64(1000), collection.Supply)
		require.NotNil(t, collection.Royalty)
		assert.True(t, collection.Royalty.Equal(decimal.RequireFromString("5.5")))
		require.NotNil(t, collection.Slug)
		assert.Equal(t, "seiyans", *collection.Slug)
	})

	t.Run("existing address is left untouched", func(t *testing.T) {
		input := buildTestCollection("sei1collectionb")
		require.NoError(t, store.CreateCollection(ctx, input))

		input.Name = "Renamed"
		input.Supply = 1
		require.NoError(t, store.CreateCollection(ctx, input))

		collection, err := store.GetCollection(ctx, "sei1collectionb")
		require.NoError(t, err)
		assert.Equal(t, "Seiyans", collection.Name)
		assert.Equal(t, int64(1000), collection.Supply)
	})

	t.Run("collection without royalty or socials", func(t *testing.T) {
		input := buildTestCollection("sei1collectionc")
		input.Royalty = nil
		input.Socials = nil
		require.NoError(t, store.CreateCollection(ctx, input))

		collection, err := store.GetCollection(ctx, "sei1collectionc")
		require.NoError(t, err)
		assert.Nil(t, collection.Royalty)
	})

	t.Run("missing collection returns nil", func(t *testing.T) {
		collection, err := store.GetCollection(ctx, "sei1nothing")
		require.NoError(t, err)
		assert.Nil(t, collection)
	})
}

// =============================================================================
// Listings and sales
// =============================================================================

func testCreateListing(t *testing.T, store Store) {
	ctx := context.Background()
	collection := "sei1listingcollection"

	t.Run("creates listing and list activity", func(t *testing.T) {
		nftID := seedListedNFT(t, store, collection, "1", "sei1seller")

		listing, err := store.GetListingByNFTID(ctx, nftID)
		require.NoError(t, err)
		require.NotNil(t, listing)
		assert.Equal(t, "sei1seller", listing.SellerAddress)
		assert.Equal(t, collection, listing.CollectionAddress)
		assert.True(t, listing.Price.Equal(decimal.NewFromInt(5_000_000)))
		assert.Equal(t, domain.SaleTypeFixed, listing.SaleType)
		require.NotNil(t, listing.ExpirationTime)
		assert.Equal(t, int64(1_900_000_000), *listing.ExpirationTime)

		activities, err := store.GetActivitiesByNFTID(ctx, nftID)
		require.NoError(t, err)
		require.Len(t, activities, 1)
		assert.Equal(t, domain.ActivityKindList, activities[0].EventKind)
		assert.Equal(t, domain.MarketplacePallet, activities[0].Market)
		require.NotNil(t, activities[0].SellerAddress)
		assert.Equal(t, "sei1seller", *activities[0].SellerAddress)
		assert.Nil(t, activities[0].BuyerAddress)
	})

	t.Run("second listing for the same nft is ignored", func(t *testing.T) {
		nft, err := store.CreateNFT(ctx, buildTestNFT(collection, "2", nil))
		require.NoError(t, err)

		require.NoError(t, store.CreateListing(ctx, buildTestListing(nft.ID, collection, "sei1first", "LISTA", 1_000_000)))
		require.NoError(t, store.CreateListing(ctx, buildTestListing(nft.ID, collection, "sei1second", "LISTB", 2_000_000)))

		listing, err := store.GetListingByNFTID(ctx, nft.ID)
		require.NoError(t, err)
		assert.Equal(t, "sei1first", listing.SellerAddress)
		assert.Equal(t, "LISTA", listing.TxHash)

		activities, err := store.GetActivitiesByNFTID(ctx, nft.ID)
		require.NoError(t, err)
		assert.Len(t, activities, 1)
	})

	t.Run("missing listing returns nil", func(t *testing.T) {
		listing, err := store.GetListingByNFTID(ctx, 999_999)
		require.NoError(t, err)
		assert.Nil(t, listing)
	})
}

func testCompleteSale(t *testing.T, store Store) {
	ctx := context.Background()
	collection := "sei1salecollection"
	nftID := seedListedNFT(t, store, collection, "7", "sei1seller")

	saleDate := time.Now().UTC().Add(time.Minute)
	err := store.CompleteSale(ctx, CompleteSaleInput{
		NFTID:             nftID,
		TxHash:            "SALE7",
		BuyerAddress:      "sei1buyer",
		SellerAddress:     "sei1seller",
		CollectionAddress: collection,
		Price:             decimal.NewFromInt(5_000_000),
		Denom:             domain.DENOM_USEI,
		Market:            domain.MarketplacePallet,
		Points:            5,
		Date:              saleDate,
	})
	require.NoError(t, err)

	listing, err := store.GetListingByNFTID(ctx, nftID)
	require.NoError(t, err)
	assert.Nil(t, listing)

	activities, err := store.GetActivitiesByNFTID(ctx, nftID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, domain.ActivityKindSale, activities[0].EventKind)
	require.NotNil(t, activities[0].BuyerAddress)
	assert.Equal(t, "sei1buyer", *activities[0].BuyerAddress)
	assert.Equal(t, domain.ActivityKindList, activities[1].EventKind)

	sales, err := store.GetSaleTransactionsByTxHash(ctx, "SALE7")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, "sei1buyer", sales[0].BuyerAddress)
	assert.Equal(t, "sei1seller", sales[0].SellerAddress)
	assert.Equal(t, collection, sales[0].CollectionAddress)
	assert.True(t, sales[0].Volume.Equal(decimal.NewFromInt(5_000_000)))

	buyerPoints, err := store.GetLoyaltyPointsByWallet(ctx, "sei1buyer")
	require.NoError(t, err)
	require.Len(t, buyerPoints, 1)
	assert.Equal(t, int64(5), buyerPoints[0].Point)
	assert.Equal(t, domain.LoyaltyPointKindBuy, buyerPoints[0].Kind)

	sellerPoints, err := store.GetLoyaltyPointsByWallet(ctx, "sei1seller")
	require.NoError(t, err)
	require.Len(t, sellerPoints, 1)
	assert.Equal(t, int64(5), sellerPoints[0].Point)
	assert.Equal(t, domain.LoyaltyPointKindSell, sellerPoints[0].Kind)
}

func testCancelListing(t *testing.T, store Store) {
	ctx := context.Background()
	collection := "sei1cancelcollection"
	nftID := seedListedNFT(t, store, collection, "3", "sei1seller")

	err := store.CancelListing(ctx, CancelListingInput{
		NFTID:         nftID,
		TxHash:        "CANCEL3",
		SellerAddress: "sei1seller",
		Price:         decimal.NewFromInt(5_000_000),
		Denom:         domain.DENOM_USEI,
		Market:        domain.MarketplacePallet,
		Date:          time.Now().UTC().Add(time.Minute),
	})
	require.NoError(t, err)

	listing, err := store.GetListingByNFTID(ctx, nftID)
	require.NoError(t, err)
	assert.Nil(t, listing)

	activities, err := store.GetActivitiesByNFTID(ctx, nftID)
	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, domain.ActivityKindDelist, activities[0].EventKind)
	assert.Equal(t, "CANCEL3", activities[0].TxHash)
	assert.Nil(t, activities[0].BuyerAddress)

	sales, err := store.GetSaleTransactionsByTxHash(ctx, "CANCEL3")
	require.NoError(t, err)
	assert.Empty(t, sales)
}

// =============================================================================
// Stream tracing
// =============================================================================

func testStreamTxs(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC()

	records := []CreateStreamTxInput{
		{TxHash: "A", Action: "mint", Context: domain.ProtocolCw721, Event: datatypes.JSON(`{"type":"wasm"}`), Date: now},
		{TxHash: "B", Action: "transfer_nft", Context: domain.ProtocolCw721, IsFailure: true, Message: stringPtr("query error"), Date: now.Add(time.Second)},
		{TxHash: "C", Action: "wasm-buy_now", Context: domain.ProtocolPallet, Date: now.Add(2 * time.Second)},
		{TxHash: "C", Action: "wasm-cancel_auction", Context: domain.ProtocolPallet, IsFailure: true, Message: stringPtr("persistence error"), Date: now.Add(3 * time.Second)},
	}
	for _, r := range records {
		require.NoError(t, store.CreateStreamTx(ctx, r))
	}

	cw721 := domain.ProtocolCw721
	pallet := domain.ProtocolPallet
	failed := true
	hash := "C"

	tests := []struct {
		name          string
		filter        StreamTxQueryFilter
		expectedTotal uint64
		expectedFirst string
	}{
		{name: "all", filter: StreamTxQueryFilter{}, expectedTotal: 4, expectedFirst: "wasm-cancel_auction"},
		{name: "by context", filter: StreamTxQueryFilter{Context: &cw721}, expectedTotal: 2, expectedFirst: "transfer_nft"},
		{name: "failures only", filter: StreamTxQueryFilter{IsFailure: &failed}, expectedTotal: 2, expectedFirst: "wasm-cancel_auction"},
		{name: "failures of a context", filter: StreamTxQueryFilter{Context: &pallet, IsFailure: &failed}, expectedTotal: 1, expectedFirst: "wasm-cancel_auction"},
		{name: "by tx hash", filter: StreamTxQueryFilter{TxHash: &hash}, expectedTotal: 2, expectedFirst: "wasm-cancel_auction"},
		{name: "paginated", filter: StreamTxQueryFilter{Limit: 1, Offset: 1}, expectedTotal: 4, expectedFirst: "wasm-buy_now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, total, err := store.GetStreamTxs(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, total)
			require.NotEmpty(t, got)
			assert.Equal(t, tt.expectedFirst, got[0].Action)
			if tt.filter.Limit > 0 {
				assert.LessOrEqual(t, len(got), tt.filter.Limit)
			}
		})
	}

	t.Run("failure message and payload are stored", func(t *testing.T) {
		got, _, err := store.GetStreamTxs(ctx, StreamTxQueryFilter{Context: &cw721, IsFailure: &failed})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Message)
		assert.Equal(t, "query error", *got[0].Message)
		assert.JSONEq(t, `{}`, string(got[0].Event))
	})
}

// =============================================================================
// Test Runner - runs all tests against a given store implementation
// =============================================================================

func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreateNFT", testCreateNFT},
		{"GetNFT", testGetNFT},
		{"UpdateNFTOwner", testUpdateNFTOwner},
		{"CreateCollection", testCreateCollection},
		{"CreateListing", testCreateListing},
		{"CompleteSale", testCompleteSale},
		{"CancelListing", testCancelListing},
		{"StreamTxs", testStreamTxs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
