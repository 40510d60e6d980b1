package reconciler_test

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/metadata"
	"github.com/theanh098/sei-market-oxide/internal/mocks"
	"github.com/theanh098/sei-market-oxide/internal/providers/cosmos"
	"github.com/theanh098/sei-market-oxide/internal/reconciler"
	"github.com/theanh098/sei-market-oxide/internal/store"
	"github.com/theanh098/sei-market-oxide/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

type testReconcilerMocks struct {
	ctrl       *gomock.Controller
	store      *mocks.MockStore
	chain      *mocks.MockChainClient
	fetcher    *mocks.MockMetadataFetcher
	reconciler reconciler.Reconciler
}

func setupTestReconciler(t *testing.T) *testReconcilerMocks {
	ctrl := gomock.NewController(t)

	tm := &testReconcilerMocks{
		ctrl:    ctrl,
		store:   mocks.NewMockStore(ctrl),
		chain:   mocks.NewMockChainClient(ctrl),
		fetcher: mocks.NewMockMetadataFetcher(ctrl),
	}
	tm.reconciler = reconciler.New(tm.store, tm.chain, tm.fetcher)

	return tm
}

func strPtr(s string) *string {
	return &s
}

func TestLoyaltyPoints(t *testing.T) {
	tests := []struct {
		price    string
		expected int64
	}{
		{"5000000", 5},
		{"5999999", 5},
		{"999999", 0},
		{"0", 0},
		{"123456789000", 123456},
		{"2500000.50", 2},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			assert.Equal(t, tt.expected, reconciler.LoyaltyPoints(decimal.RequireFromString(tt.price)))
		})
	}
}

func TestFindOrCreateWithOwner_ExistingNFT(t *testing.T) {
	ctx := context.Background()

	t.Run("new owner is written", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "42").
			Return(&schema.NFT{ID: 7, TokenAddress: "addrX", TokenID: "42", OwnerAddress: strPtr("addrA")}, nil)
		tm.store.EXPECT().UpdateNFTOwner(ctx, int64(7), "addrY").Return(nil)

		id, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "42", strPtr("addrY"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("nil owner leaves the row untouched", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "42").
			Return(&schema.NFT{ID: 7, OwnerAddress: strPtr("addrA")}, nil)

		id, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "42", nil)
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("same owner is not rewritten", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "42").
			Return(&schema.NFT{ID: 7, OwnerAddress: strPtr("addrY")}, nil)

		id, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "42", strPtr("addrY"))
		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("owner set on an nft that had none", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "42").Return(&schema.NFT{ID: 7}, nil)
		tm.store.EXPECT().UpdateNFTOwner(ctx, int64(7), "addrY").Return(nil)

		_, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "42", strPtr("addrY"))
		require.NoError(t, err)
	})

	t.Run("update failure is returned", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "42").Return(&schema.NFT{ID: 7}, nil)
		tm.store.EXPECT().UpdateNFTOwner(ctx, int64(7), "addrY").Return(domain.ErrPersistence)

		_, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "42", strPtr("addrY"))
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}

func TestFindOrCreateWithOwner_NewNFT(t *testing.T) {
	ctx := context.Background()
	tm := setupTestReconciler(t)

	royalty := decimal.RequireFromString("5")
	tm.store.EXPECT().GetNFT(ctx, "addrX", "42").Return(nil, nil)
	tm.chain.EXPECT().GetNFTInfo(ctx, "addrX", "42").Return(&cosmos.NFTInfo{
		TokenURI:  "ipfs://bafy/42.json",
		Extension: &cosmos.NFTExtension{RoyaltyPercentage: &royalty},
	}, nil)
	tm.fetcher.EXPECT().GetNFTMetadata(ctx, "ipfs://bafy/42.json").Return(&metadata.NFTMetadata{
		Name:  strPtr("Seiyan #42"),
		Image: strPtr("ipfs://bafy/42.png"),
		Attributes: []metadata.NFTAttribute{
			{TraitType: strPtr("background"), Value: json.RawMessage(`"blue"`)},
			{Type: strPtr("level"), Value: json.RawMessage(`7`), DisplayType: json.RawMessage(`"number"`)},
			{},
		},
	}, nil)

	// Collection is already indexed
	tm.store.EXPECT().GetCollection(ctx, "addrX").Return(&schema.Collection{Address: "addrX"}, nil)

	tm.store.EXPECT().CreateNFT(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, input store.CreateNFTInput) (*schema.NFT, error) {
			assert.Equal(t, "addrX", input.TokenAddress)
			assert.Equal(t, "42", input.TokenID)
			assert.Equal(t, "ipfs://bafy/42.json", input.TokenURI)
			require.NotNil(t, input.OwnerAddress)
			assert.Equal(t, "addrY", *input.OwnerAddress)
			require.NotNil(t, input.Name)
			assert.Equal(t, "Seiyan #42", *input.Name)
			require.Len(t, input.Traits, 3)
			assert.Equal(t, store.CreateNFTTraitInput{Attribute: "background", Value: "blue"}, input.Traits[0])
			assert.Equal(t, "level", input.Traits[1].Attribute)
			assert.Equal(t, "7", input.Traits[1].Value)
			require.NotNil(t, input.Traits[1].DisplayType)
			assert.Equal(t, "number", *input.Traits[1].DisplayType)
			assert.Equal(t, store.CreateNFTTraitInput{Attribute: "unknown", Value: "unknown"}, input.Traits[2])
			return &schema.NFT{ID: 99}, nil
		})

	id, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "42", strPtr("addrY"))
	require.NoError(t, err)
	assert.Equal(t, int64(99), id)
}

func TestFindOrCreateWithOwner_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("chain query failure", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "1").Return(nil, nil)
		tm.chain.EXPECT().GetNFTInfo(ctx, "addrX", "1").Return(nil, cosmos.ErrRPC)

		_, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "1", nil)
		assert.ErrorIs(t, err, domain.ErrQuery)
	})

	t.Run("metadata failure", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "1").Return(nil, nil)
		tm.chain.EXPECT().GetNFTInfo(ctx, "addrX", "1").Return(&cosmos.NFTInfo{TokenURI: "https://meta/1"}, nil)
		tm.fetcher.EXPECT().GetNFTMetadata(ctx, "https://meta/1").Return(nil, domain.ErrQuery)

		_, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "1", nil)
		assert.ErrorIs(t, err, domain.ErrQuery)
	})

	t.Run("lookup failure", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetNFT(ctx, "addrX", "1").Return(nil, domain.ErrPersistence)

		_, err := tm.reconciler.FindOrCreateWithOwner(ctx, "addrX", "1", nil)
		assert.ErrorIs(t, err, domain.ErrPersistence)
	})
}

func TestCreateCollectionIfNotExist(t *testing.T) {
	ctx := context.Background()

	t.Run("existing collection is a no-op", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetCollection(ctx, "addrX").Return(&schema.Collection{Address: "addrX"}, nil)

		require.NoError(t, tm.reconciler.CreateCollectionIfNotExist(ctx, "addrX", nil))
	})

	t.Run("new collection gathers chain and marketplace data", func(t *testing.T) {
		tm := setupTestReconciler(t)

		royalty := decimal.RequireFromString("2.5")
		tm.store.EXPECT().GetCollection(ctx, "addrX").Return(nil, nil)
		tm.fetcher.EXPECT().GetCollectionMetadata(gomock.Any(), "addrX").Return(&metadata.CollectionMetadata{
			PFP:     strPtr("https://img/pfp.png"),
			Slug:    strPtr("seiyans"),
			Socials: json.RawMessage(`{"twitter":"seiyans"}`),
		}, nil)
		tm.chain.EXPECT().GetContractSupply(gomock.Any(), "addrX").Return(uint64(3000), nil)
		tm.chain.EXPECT().GetContractInfo(gomock.Any(), "addrX").Return(&cosmos.ContractInfo{Name: "Seiyans", Symbol: "SEIYAN"}, nil)
		tm.store.EXPECT().CreateCollection(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, input store.CreateCollectionInput) error {
				assert.Equal(t, "addrX", input.Address)
				assert.Equal(t, "Seiyans", input.Name)
				assert.Equal(t, "SEIYAN", input.Symbol)
				assert.Equal(t, int64(3000), input.Supply)
				require.NotNil(t, input.Royalty)
				assert.True(t, input.Royalty.Equal(royalty))
				require.NotNil(t, input.Image)
				assert.Equal(t, "https://img/pfp.png", *input.Image)
				assert.JSONEq(t, `{"twitter":"seiyans"}`, string(input.Socials))
				return nil
			})

		require.NoError(t, tm.reconciler.CreateCollectionIfNotExist(ctx, "addrX", &royalty))
	})

	t.Run("any failing lookup aborts the insert", func(t *testing.T) {
		tm := setupTestReconciler(t)

		tm.store.EXPECT().GetCollection(ctx, "addrX").Return(nil, nil)
		tm.fetcher.EXPECT().GetCollectionMetadata(gomock.Any(), "addrX").Return(&metadata.CollectionMetadata{}, nil).AnyTimes()
		tm.chain.EXPECT().GetContractSupply(gomock.Any(), "addrX").Return(uint64(0), errors.New("node down")).AnyTimes()
		tm.chain.EXPECT().GetContractInfo(gomock.Any(), "addrX").Return(&cosmos.ContractInfo{}, nil).AnyTimes()

		err := tm.reconciler.CreateCollectionIfNotExist(ctx, "addrX", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "node down")
	})

	t.Run("a failing lookup cancels the ones still running", func(t *testing.T) {
		tm := setupTestReconciler(t)

		started := make(chan struct{})
		observed := make(chan error, 1)

		tm.store.EXPECT().GetCollection(ctx, "addrX").Return(nil, nil)
		tm.fetcher.EXPECT().GetCollectionMetadata(gomock.Any(), "addrX").Return(&metadata.CollectionMetadata{}, nil).AnyTimes()
		tm.chain.EXPECT().GetContractSupply(gomock.Any(), "addrX").DoAndReturn(
			func(lookupCtx context.Context, _ string) (uint64, error) {
				close(started)
				select {
				case <-lookupCtx.Done():
					observed <- lookupCtx.Err()
					return 0, lookupCtx.Err()
				case <-time.After(5 * time.Second):
					observed <- nil
					return 100, nil
				}
			})
		tm.chain.EXPECT().GetContractInfo(gomock.Any(), "addrX").DoAndReturn(
			func(context.Context, string) (*cosmos.ContractInfo, error) {
				<-started
				return nil, errors.New("contract not found")
			})

		start := time.Now()
		err := tm.reconciler.CreateCollectionIfNotExist(ctx, "addrX", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "contract not found")

		// The slow lookup has already returned once the call is done
		select {
		case lookupErr := <-observed:
			assert.ErrorIs(t, lookupErr, context.Canceled)
		default:
			t.Fatal("supply lookup still running after the call returned")
		}
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}
