package cosmos

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	abci "github.com/cometbft/cometbft/abci/types"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
)

var (
	// ErrRPC is returned when the node rejects a query or cannot be reached
	ErrRPC = fmt.Errorf("rpc error: %w", domain.ErrQuery)
	// ErrJSON is returned when a query message or its response cannot be (un)marshalled
	ErrJSON = fmt.Errorf("json error: %w", domain.ErrQuery)
	// ErrProtobufDecode is returned when a binary response envelope is malformed
	ErrProtobufDecode = fmt.Errorf("protobuf decode error: %w", domain.ErrDecode)
	// ErrHash is returned when a transaction hash is not a valid hex sha256
	ErrHash = fmt.Errorf("hash error: %w", domain.ErrDecode)
)

const txHashLength = 32

// ContractInfo is the cw721 contract_info response
type ContractInfo struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// NFTInfo is the cw721 nft_info response
type NFTInfo struct {
	TokenURI  string        `json:"token_uri"`
	Extension *NFTExtension `json:"extension,omitempty"`
}

// NFTExtension holds the optional nft_info extension fields
type NFTExtension struct {
	RoyaltyPercentage *decimal.Decimal `json:"royalty_percentage,omitempty"`
}

// Royalty returns the royalty percentage when the contract reports an extension.
// An extension without a percentage yields zero, no extension yields nil.
func (i *NFTInfo) Royalty() *decimal.Decimal {
	if i == nil || i.Extension == nil {
		return nil
	}
	if i.Extension.RoyaltyPercentage == nil {
		zero := decimal.Zero
		return &zero
	}
	royalty := *i.Extension.RoyaltyPercentage
	return &royalty
}

// Coin is an amount of a denom
type Coin struct {
	Amount string `json:"amount"`
	Denom  string `json:"denom"`
}

// PalletAuction is a live auction record on the Pallet contract
type PalletAuction struct {
	CreatedAt      uint32 `json:"created_at"`
	ExpirationTime uint32 `json:"expiration_time"`
	Prices         []Coin `json:"prices"`
}

// PalletListing is the Pallet contract nft query response
type PalletListing struct {
	Owner   string         `json:"owner"`
	Auction *PalletAuction `json:"auction,omitempty"`
}

type numTokensResponse struct {
	Count uint64 `json:"count"`
}

type ownerOfResponse struct {
	Owner string `json:"owner"`
}

// Client performs smart-contract queries and transaction lookups against a node
//
//go:generate mockgen -source=client.go -destination=../../mocks/cosmos_client.go -package=mocks -mock_names=Client=MockChainClient
type Client interface {
	// QueryContract runs a JSON smart query against address and decodes the JSON answer into result
	QueryContract(ctx context.Context, address string, query interface{}, result interface{}) error

	// GetContractInfo returns the cw721 name and symbol
	GetContractInfo(ctx context.Context, address string) (*ContractInfo, error)

	// GetContractSupply returns the cw721 num_tokens count
	GetContractSupply(ctx context.Context, address string) (uint64, error)

	// GetNFTInfo returns the token uri and extension of a token
	GetNFTInfo(ctx context.Context, address, tokenID string) (*NFTInfo, error)

	// GetNFTOwner returns the current owner of a token
	GetNFTOwner(ctx context.Context, address, tokenID string) (string, error)

	// GetPalletListing returns the Pallet listing terms of a token
	GetPalletListing(ctx context.Context, tokenAddress, tokenID string) (*PalletListing, error)

	// GetTx returns a committed transaction by its hex hash
	GetTx(ctx context.Context, txHash string) (*domain.Transaction, error)

	// SearchTxs searches committed transactions in ascending height order
	SearchTxs(ctx context.Context, query string, page, perPage int) ([]domain.Transaction, int, error)
}

type client struct {
	rpc                   adapter.CometClient
	json                  adapter.JSON
	palletContractAddress string
}

// NewClient creates a chain query client over a CometBFT RPC connection
func NewClient(rpc adapter.CometClient, json adapter.JSON, palletContractAddress string) Client {
	if palletContractAddress == "" {
		palletContractAddress = domain.PALLET_CONTRACT_ADDRESS
	}
	return &client{rpc: rpc, json: json, palletContractAddress: palletContractAddress}
}

func (c *client) QueryContract(ctx context.Context, address string, query interface{}, result interface{}) error {
	queryData, err := c.json.Marshal(query)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal query: %v", ErrJSON, err)
	}

	res, err := c.rpc.ABCIQueryWithOptions(
		ctx,
		SMART_CONTRACT_STATE_PATH,
		encodeSmartQueryRequest(address, queryData),
		rpcclient.ABCIQueryOptions{Prove: false},
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRPC, err)
	}

	if res.Response.IsErr() {
		return fmt.Errorf("%w: code %d: %s", ErrRPC, res.Response.Code, res.Response.Log)
	}

	data, err := decodeSmartQueryResponse(res.Response.Value)
	if err != nil {
		return err
	}

	if err := c.json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("%w: failed to unmarshal response of %s: %v", ErrJSON, address, err)
	}

	return nil
}

func (c *client) GetContractInfo(ctx context.Context, address string) (*ContractInfo, error) {
	var info ContractInfo
	query := map[string]interface{}{"contract_info": struct{}{}}
	if err := c.QueryContract(ctx, address, query, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *client) GetContractSupply(ctx context.Context, address string) (uint64, error) {
	var supply numTokensResponse
	query := map[string]interface{}{"num_tokens": struct{}{}}
	if err := c.QueryContract(ctx, address, query, &supply); err != nil {
		return 0, err
	}
	return supply.Count, nil
}

func (c *client) GetNFTInfo(ctx context.Context, address, tokenID string) (*NFTInfo, error) {
	var info NFTInfo
	query := map[string]interface{}{
		"nft_info": map[string]string{"token_id": tokenID},
	}
	if err := c.QueryContract(ctx, address, query, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *client) GetNFTOwner(ctx context.Context, address, tokenID string) (string, error) {
	var owner ownerOfResponse
	query := map[string]interface{}{
		"owner_of": map[string]string{"token_id": tokenID},
	}
	if err := c.QueryContract(ctx, address, query, &owner); err != nil {
		return "", err
	}
	return owner.Owner, nil
}

func (c *client) GetPalletListing(ctx context.Context, tokenAddress, tokenID string) (*PalletListing, error) {
	var listing PalletListing
	query := map[string]interface{}{
		"nft": map[string]string{
			"address":  tokenAddress,
			"token_id": tokenID,
		},
	}
	if err := c.QueryContract(ctx, c.palletContractAddress, query, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *client) GetTx(ctx context.Context, txHash string) (*domain.Transaction, error) {
	hash, err := decodeTxHash(txHash)
	if err != nil {
		return nil, err
	}

	res, err := c.rpc.Tx(ctx, hash, false)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get tx %s: %v", ErrRPC, txHash, err)
	}

	return toTransaction(res), nil
}

func (c *client) SearchTxs(ctx context.Context, query string, page, perPage int) ([]domain.Transaction, int, error) {
	res, err := c.rpc.TxSearch(ctx, query, false, &page, &perPage, "asc")
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to search txs: %v", ErrRPC, err)
	}

	txs := make([]domain.Transaction, 0, len(res.Txs))
	for _, tx := range res.Txs {
		if tx == nil {
			continue
		}
		txs = append(txs, *toTransaction(tx))
	}

	logger.DebugCtx(ctx, "Searched transactions",
		zap.String("query", query),
		zap.Int("page", page),
		zap.Int("count", len(txs)),
		zap.Int("total", res.TotalCount))

	return txs, res.TotalCount, nil
}

func decodeTxHash(txHash string) ([]byte, error) {
	hash, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(txHash, "0x"), "0X"))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrHash, txHash, err)
	}
	if len(hash) != txHashLength {
		return nil, fmt.Errorf("%w: %s: expected %d bytes, got %d", ErrHash, txHash, txHashLength, len(hash))
	}
	return hash, nil
}

func toTransaction(res *coretypes.ResultTx) *domain.Transaction {
	return &domain.Transaction{
		TxHash: strings.ToUpper(hex.EncodeToString(res.Hash)),
		Height: res.Height,
		Events: toEvents(res.TxResult.Events),
	}
}

func toEvents(events []abci.Event) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		attrs := make([]domain.Attribute, 0, len(e.Attributes))
		for _, a := range e.Attributes {
			attrs = append(attrs, NormalizeAttribute(a.Key, a.Value))
		}
		out = append(out, domain.Event{Type: e.Type, Attributes: attrs})
	}
	return out
}

