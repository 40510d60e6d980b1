package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/store"
)

const MAX_PAGE_SIZE = 500

// ListStreamTxsQueryParams holds query parameters for GET /v1/stream-txs
type ListStreamTxsQueryParams struct {
	Context   string `form:"context"`
	IsFailure *bool  `form:"is_failure"`
	TxHash    string `form:"tx_hash"`

	// Pagination
	Limit  int    `form:"limit,default=50"`
	Offset uint64 `form:"offset,default=0"`
}

// ParseListStreamTxsQuery parses and validates the tracing query into a store filter
func ParseListStreamTxsQuery(c *gin.Context) (*store.StreamTxQueryFilter, error) {
	var params ListStreamTxsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit < 1 || params.Limit > MAX_PAGE_SIZE {
		return nil, fmt.Errorf("limit must be between 1 and %d", MAX_PAGE_SIZE)
	}

	filter := &store.StreamTxQueryFilter{
		IsFailure: params.IsFailure,
		Limit:     params.Limit,
		Offset:    params.Offset,
	}

	if params.Context != "" {
		protocol, err := domain.ParseProtocol(params.Context)
		if err != nil {
			return nil, err
		}
		filter.Context = &protocol
	}

	if params.TxHash != "" {
		filter.TxHash = &params.TxHash
	}

	return filter, nil
}
