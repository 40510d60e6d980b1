package reconciler

import (
	"context"
	"fmt"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/metadata"
	"github.com/theanh098/sei-market-oxide/internal/providers/cosmos"
	"github.com/theanh098/sei-market-oxide/internal/store"
)

// collectionLookups is the number of independent lookups run when a collection is first seen
const collectionLookups = 3

var loyaltyPointDivisor = decimal.NewFromInt(domain.LOYALTY_POINT_DIVISOR)

// LoyaltyPoints converts a sale price in the base denom into loyalty points, truncating the remainder
func LoyaltyPoints(price decimal.Decimal) int64 {
	return price.Div(loyaltyPointDivisor).IntPart()
}

// Reconciler derives NFT and collection rows from chain state
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// FindOrCreateWithOwner returns the id of the NFT with the given natural key, creating it
	// (and its collection) from chain and off-chain metadata when it is not indexed yet.
	// A non-nil owner is written to the NFT; a nil owner leaves the stored owner unchanged.
	FindOrCreateWithOwner(ctx context.Context, tokenAddress, tokenID string, owner *string) (int64, error)

	// CreateCollectionIfNotExist indexes the collection at address unless it already exists
	CreateCollectionIfNotExist(ctx context.Context, address string, royalty *decimal.Decimal) error
}

type reconciler struct {
	store   store.Store
	chain   cosmos.Client
	fetcher metadata.Fetcher
}

// New creates a reconciler
func New(store store.Store, chain cosmos.Client, fetcher metadata.Fetcher) Reconciler {
	return &reconciler{
		store:   store,
		chain:   chain,
		fetcher: fetcher,
	}
}

func (r *reconciler) FindOrCreateWithOwner(ctx context.Context, tokenAddress, tokenID string, owner *string) (int64, error) {
	nft, err := r.store.GetNFT(ctx, tokenAddress, tokenID)
	if err != nil {
		return 0, fmt.Errorf("failed to get nft: %w", err)
	}

	if nft != nil {
		if owner != nil && (nft.OwnerAddress == nil || *nft.OwnerAddress != *owner) {
			if err := r.store.UpdateNFTOwner(ctx, nft.ID, *owner); err != nil {
				return 0, fmt.Errorf("failed to update nft owner: %w", err)
			}
		}
		return nft.ID, nil
	}

	info, err := r.chain.GetNFTInfo(ctx, tokenAddress, tokenID)
	if err != nil {
		return 0, fmt.Errorf("failed to get nft info: %w", err)
	}

	meta, err := r.fetcher.GetNFTMetadata(ctx, info.TokenURI)
	if err != nil {
		return 0, fmt.Errorf("failed to get nft metadata: %w", err)
	}

	if err := r.CreateCollectionIfNotExist(ctx, tokenAddress, info.Royalty()); err != nil {
		return 0, err
	}

	input := store.CreateNFTInput{
		TokenAddress: tokenAddress,
		TokenID:      tokenID,
		TokenURI:     info.TokenURI,
		Name:         meta.Name,
		Image:        meta.Image,
		Description:  meta.Description,
		OwnerAddress: owner,
		Traits:       make([]store.CreateNFTTraitInput, 0, len(meta.Attributes)),
	}
	for _, attr := range meta.Attributes {
		input.Traits = append(input.Traits, store.CreateNFTTraitInput{
			Attribute:   attr.Name(),
			Value:       attr.ValueString(),
			DisplayType: attr.DisplayTypeString(),
		})
	}

	created, err := r.store.CreateNFT(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("failed to create nft: %w", err)
	}

	logger.InfoCtx(ctx, "Indexed new NFT",
		zap.String("token_address", tokenAddress),
		zap.String("token_id", tokenID),
		zap.Int64("nft_id", created.ID))

	return created.ID, nil
}

func (r *reconciler) CreateCollectionIfNotExist(ctx context.Context, address string, royalty *decimal.Decimal) error {
	collection, err := r.store.GetCollection(ctx, address)
	if err != nil {
		return fmt.Errorf("failed to get collection: %w", err)
	}
	if collection != nil {
		return nil
	}

	var (
		meta   *metadata.CollectionMetadata
		supply uint64
		info   *cosmos.ContractInfo
	)

	pool := pond.NewPool(collectionLookups)
	defer pool.StopAndWait()

	// A failed lookup cancels gctx so the others stop early
	group := pool.NewGroupContext(ctx)
	gctx := group.Context()
	group.SubmitErr(
		func() error {
			var err error
			meta, err = r.fetcher.GetCollectionMetadata(gctx, address)
			if err != nil {
				return fmt.Errorf("failed to get collection metadata: %w", err)
			}
			return nil
		},
		func() error {
			var err error
			supply, err = r.chain.GetContractSupply(gctx, address)
			if err != nil {
				return fmt.Errorf("failed to get contract supply: %w", err)
			}
			return nil
		},
		func() error {
			var err error
			info, err = r.chain.GetContractInfo(gctx, address)
			if err != nil {
				return fmt.Errorf("failed to get contract info: %w", err)
			}
			return nil
		},
	)
	if err := group.Wait(); err != nil {
		return err
	}

	input := store.CreateCollectionInput{
		Address:     address,
		Name:        info.Name,
		Symbol:      info.Symbol,
		Supply:      int64(supply), //nolint:gosec,G115
		Royalty:     royalty,
		Slug:        meta.Slug,
		Description: meta.Description,
		Banner:      meta.Banner,
		Image:       meta.PFP,
	}
	if len(meta.Socials) > 0 && string(meta.Socials) != "null" {
		input.Socials = datatypes.JSON(meta.Socials)
	}

	if err := r.store.CreateCollection(ctx, input); err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	logger.InfoCtx(ctx, "Indexed new collection", zap.String("address", address))

	return nil
}
