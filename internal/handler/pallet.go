package handler

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/providers/cosmos"
	"github.com/theanh098/sei-market-oxide/internal/reconciler"
	"github.com/theanh098/sei-market-oxide/internal/store"
)

// PalletConfig holds the Pallet handler settings
type PalletConfig struct {
	// Denom is recorded on listings, activities and sales
	Denom string
}

type palletHandler struct {
	reconciler reconciler.Reconciler
	chain      cosmos.Client
	store      store.Store
	clock      adapter.Clock
	config     PalletConfig
	tracer     *tracer
}

// NewPalletHandler creates the handler for Pallet auction events
func NewPalletHandler(
	rec reconciler.Reconciler,
	chain cosmos.Client,
	st store.Store,
	clock adapter.Clock,
	json adapter.JSON,
	cfg PalletConfig,
) ProtocolHandler {
	if cfg.Denom == "" {
		cfg.Denom = domain.DENOM_USEI
	}

	return &palletHandler{
		reconciler: rec,
		chain:      chain,
		store:      st,
		clock:      clock,
		config:     cfg,
		tracer: &tracer{
			protocol: domain.ProtocolPallet,
			store:    st,
			clock:    clock,
			json:     json,
		},
	}
}

func (h *palletHandler) Protocol() domain.Protocol {
	return domain.ProtocolPallet
}

func (h *palletHandler) HandleTransaction(ctx context.Context, tx *domain.Transaction) error {
	var errs []error
	for _, event := range tx.Events {
		action, err := domain.ParsePalletAction(event.Type)
		if err != nil {
			continue
		}

		if err := h.tracer.dispatch(ctx, tx.TxHash, string(action), event, func(ctx context.Context) error {
			return h.handleEvent(ctx, tx.TxHash, action, event)
		}); err != nil {
			errs = append(errs, err)
		}
	}

	return joinEventErrors(errs)
}

func (h *palletHandler) handleEvent(ctx context.Context, txHash string, action domain.PalletAction, event domain.Event) error {
	tokenAddress, err := event.RequireAttribute(domain.AttributeCollectionAddress)
	if err != nil {
		return err
	}
	tokenID, err := event.RequireAttribute(domain.AttributeTokenID)
	if err != nil {
		return err
	}

	nftID, err := h.reconciler.FindOrCreateWithOwner(ctx, tokenAddress, tokenID, nil)
	if err != nil {
		return err
	}

	switch action {
	case domain.PalletActionCreateAuction:
		return h.handleCreateAuction(ctx, txHash, nftID, tokenAddress, tokenID)
	case domain.PalletActionBuyNow:
		return h.handleBuyNow(ctx, txHash, nftID, tokenAddress)
	case domain.PalletActionCancelAuction:
		return h.handleCancelAuction(ctx, txHash, nftID)
	default:
		return fmt.Errorf("%w: pallet %q", domain.ErrUnknownAction, action)
	}
}

func (h *palletHandler) handleCreateAuction(ctx context.Context, txHash string, nftID int64, tokenAddress, tokenID string) error {
	listing, err := h.chain.GetPalletListing(ctx, tokenAddress, tokenID)
	if err != nil {
		return fmt.Errorf("failed to get pallet listing: %w", err)
	}

	if listing.Auction == nil {
		logger.InfoCtx(ctx, "No active auction, skipping listing",
			zap.String("token_address", tokenAddress),
			zap.String("token_id", tokenID))
		return nil
	}

	if len(listing.Auction.Prices) == 0 {
		return fmt.Errorf("%w: pallet listing of %s/%s has no price", domain.ErrQuery, tokenAddress, tokenID)
	}

	price, err := decimal.NewFromString(listing.Auction.Prices[0].Amount)
	if err != nil {
		return fmt.Errorf("%w: invalid pallet listing price %q: %v", domain.ErrQuery, listing.Auction.Prices[0].Amount, err)
	}

	expiration := int64(listing.Auction.ExpirationTime)

	return h.store.CreateListing(ctx, store.CreateListingInput{
		NFTID:             nftID,
		CollectionAddress: tokenAddress,
		TxHash:            txHash,
		SellerAddress:     listing.Owner,
		Price:             price,
		Denom:             h.config.Denom,
		Market:            domain.MarketplacePallet,
		SaleType:          domain.SaleTypeFixed,
		ExpirationTime:    &expiration,
		CreatedDate:       h.clock.Unix(int64(listing.Auction.CreatedAt), 0).UTC(),
	})
}

func (h *palletHandler) handleBuyNow(ctx context.Context, txHash string, nftID int64, tokenAddress string) error {
	listing, err := h.store.GetListingByNFTID(ctx, nftID)
	if err != nil {
		return err
	}
	if listing == nil {
		logger.InfoCtx(ctx, "No listing to complete", zap.Int64("nft_id", nftID), zap.String("tx_hash", txHash))
		return nil
	}

	tx, err := h.chain.GetTx(ctx, txHash)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	buyer, ok := findBuyer(tx)
	if !ok {
		return fmt.Errorf("%w: %s in transaction %s", domain.ErrMissingAttribute, domain.AttributeBuyer, txHash)
	}

	return h.store.CompleteSale(ctx, store.CompleteSaleInput{
		NFTID:             nftID,
		TxHash:            txHash,
		BuyerAddress:      buyer,
		SellerAddress:     listing.SellerAddress,
		CollectionAddress: tokenAddress,
		Price:             listing.Price,
		Denom:             h.config.Denom,
		Market:            domain.MarketplacePallet,
		Points:            reconciler.LoyaltyPoints(listing.Price),
		Date:              h.clock.Now().UTC(),
	})
}

func (h *palletHandler) handleCancelAuction(ctx context.Context, txHash string, nftID int64) error {
	listing, err := h.store.GetListingByNFTID(ctx, nftID)
	if err != nil {
		return err
	}
	if listing == nil {
		logger.InfoCtx(ctx, "No listing to cancel", zap.Int64("nft_id", nftID), zap.String("tx_hash", txHash))
		return nil
	}

	return h.store.CancelListing(ctx, store.CancelListingInput{
		NFTID:         nftID,
		TxHash:        txHash,
		SellerAddress: listing.SellerAddress,
		Price:         listing.Price,
		Denom:         h.config.Denom,
		Market:        domain.MarketplacePallet,
		Date:          h.clock.Now().UTC(),
	})
}

// findBuyer returns the buyer attribute of the first wasm event that carries one
func findBuyer(tx *domain.Transaction) (string, bool) {
	for _, event := range tx.Events {
		if event.Type != domain.EventTypeWasm {
			continue
		}
		for _, attr := range event.Attributes {
			if buyer, ok := cosmos.MatchAttribute(attr, domain.AttributeBuyer); ok {
				return buyer, true
			}
		}
	}
	return "", false
}
