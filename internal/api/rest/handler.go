package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/store"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// ListStreamTxs lists tracing records, newest first
	// GET /v1/stream-txs?context=<cw721|pallet>&is_failure=<bool>&tx_hash=<hash>&limit=<limit>&offset=<offset>
	ListStreamTxs(c *gin.Context)

	// GetNFT returns an indexed NFT with its traits
	// GET /v1/nfts/:token_address/:token_id
	GetNFT(c *gin.Context)

	// ListNFTActivities lists the activity log of an NFT, newest first
	// GET /v1/nfts/:token_address/:token_id/activities
	ListNFTActivities(c *gin.Context)

	// ListSales lists the ledger rows written by a transaction
	// GET /v1/sales/:tx_hash
	ListSales(c *gin.Context)

	// GetLoyaltyPoints lists the loyalty points credited to a wallet
	// GET /v1/wallets/:address/loyalty-points
	GetLoyaltyPoints(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

type handler struct {
	store store.Store
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store) Handler {
	return &handler{store: st}
}

func (h *handler) ListStreamTxs(c *gin.Context) {
	filter, err := ParseListStreamTxsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	txs, total, err := h.store.GetStreamTxs(c.Request.Context(), *filter)
	if err != nil {
		respondInternalError(c, err, "Failed to list stream transactions")
		return
	}

	items := make([]StreamTxResponse, 0, len(txs))
	for _, tx := range txs {
		items = append(items, toStreamTxResponse(tx))
	}

	c.JSON(http.StatusOK, StreamTxListResponse{Items: items, Total: total})
}

func (h *handler) GetNFT(c *gin.Context) {
	tokenAddress := c.Param("token_address")
	tokenID := c.Param("token_id")
	if tokenAddress == "" || tokenID == "" {
		respondBadRequest(c, "Token address and token id are required")
		return
	}

	ctx := c.Request.Context()
	nft, err := h.store.GetNFT(ctx, tokenAddress, tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get NFT",
			zap.String("token_address", tokenAddress),
			zap.String("token_id", tokenID))
		return
	}
	if nft == nil {
		respondNotFound(c, "NFT not found")
		return
	}

	traits, err := h.store.GetNFTTraits(ctx, nft.ID)
	if err != nil {
		respondInternalError(c, err, "Failed to get NFT traits", zap.Int64("nft_id", nft.ID))
		return
	}

	c.JSON(http.StatusOK, toNFTResponse(*nft, traits))
}

func (h *handler) ListNFTActivities(c *gin.Context) {
	tokenAddress := c.Param("token_address")
	tokenID := c.Param("token_id")
	if tokenAddress == "" || tokenID == "" {
		respondBadRequest(c, "Token address and token id are required")
		return
	}

	ctx := c.Request.Context()
	nft, err := h.store.GetNFT(ctx, tokenAddress, tokenID)
	if err != nil {
		respondInternalError(c, err, "Failed to get NFT",
			zap.String("token_address", tokenAddress),
			zap.String("token_id", tokenID))
		return
	}
	if nft == nil {
		respondNotFound(c, "NFT not found")
		return
	}

	activities, err := h.store.GetActivitiesByNFTID(ctx, nft.ID)
	if err != nil {
		respondInternalError(c, err, "Failed to list activities", zap.Int64("nft_id", nft.ID))
		return
	}

	items := make([]ActivityResponse, 0, len(activities))
	for _, a := range activities {
		items = append(items, toActivityResponse(a))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *handler) ListSales(c *gin.Context) {
	txHash := c.Param("tx_hash")

	sales, err := h.store.GetSaleTransactionsByTxHash(c.Request.Context(), txHash)
	if err != nil {
		respondInternalError(c, err, "Failed to list sales", zap.String("tx_hash", txHash))
		return
	}

	items := make([]SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, toSaleResponse(s))
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *handler) GetLoyaltyPoints(c *gin.Context) {
	address := c.Param("address")

	points, err := h.store.GetLoyaltyPointsByWallet(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to list loyalty points", zap.String("wallet_address", address))
		return
	}

	response := LoyaltyPointsResponse{
		WalletAddress: address,
		Items:         make([]LoyaltyPointResponse, 0, len(points)),
	}
	for _, p := range points {
		response.Total += p.Point
		response.Items = append(response.Items, LoyaltyPointResponse{Point: p.Point, Kind: p.Kind, Date: p.Date})
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
