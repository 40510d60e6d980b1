package adapter

import (
	"context"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	rpcclient "github.com/cometbft/cometbft/rpc/client"
	rpchttp "github.com/cometbft/cometbft/rpc/client/http"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
)

// CometClient defines the subset of the CometBFT RPC client the indexer uses, to enable mocking
//
//go:generate mockgen -source=cometbft.go -destination=../mocks/cometbft.go -package=mocks -mock_names=CometClient=MockCometClient
type CometClient interface {
	// ABCIQueryWithOptions performs an ABCI query against the node
	ABCIQueryWithOptions(ctx context.Context, path string, data cmtbytes.HexBytes, opts rpcclient.ABCIQueryOptions) (*coretypes.ResultABCIQuery, error)

	// Tx returns a committed transaction by hash
	Tx(ctx context.Context, hash []byte, prove bool) (*coretypes.ResultTx, error)

	// TxSearch searches committed transactions by event query
	TxSearch(ctx context.Context, query string, prove bool, page, perPage *int, orderBy string) (*coretypes.ResultTxSearch, error)
}

// NewCometClient creates an HTTP JSON-RPC client for the node at remote
func NewCometClient(remote string) (CometClient, error) {
	return rpchttp.New(remote, "/websocket")
}
