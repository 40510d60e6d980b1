package replay

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/messaging"
	"github.com/theanh098/sei-market-oxide/internal/providers/cosmos"
	"github.com/theanh098/sei-market-oxide/internal/store"
)

const (
	DEFAULT_PAGE_SIZE = 50
	// MAX_PAGE_SIZE is the largest per_page the node accepts for tx_search
	MAX_PAGE_SIZE = 100
)

// Config holds the range of a replay
type Config struct {
	Protocol   domain.Protocol
	Query      string // subscription query of the protocol
	FromHeight int64  // inclusive, 0 for genesis
	ToHeight   int64  // inclusive, 0 for the latest block
	PageSize   int
	// MaxRetries bounds the retries of one page fetch
	MaxRetries uint64
	// Resume starts from the recorded cursor when it is past FromHeight
	Resume bool
}

// Stats summarizes a finished replay
type Stats struct {
	Pages        int
	Transactions int
	Failures     int
}

// Replayer feeds committed transactions matching a protocol query through its handler,
// in ascending height order, the same way the live stream does
type Replayer struct {
	config  Config
	chain   cosmos.Client
	cursor  store.CursorStore
	handler messaging.TransactionHandler
	running atomic.Bool
}

// NewReplayer creates a replayer for one protocol. cursor may be nil.
func NewReplayer(cfg Config, chain cosmos.Client, cursor store.CursorStore, handler messaging.TransactionHandler) *Replayer {
	if cfg.PageSize <= 0 {
		cfg.PageSize = DEFAULT_PAGE_SIZE
	}
	if cfg.PageSize > MAX_PAGE_SIZE {
		cfg.PageSize = MAX_PAGE_SIZE
	}

	return &Replayer{
		config:  cfg,
		chain:   chain,
		cursor:  cursor,
		handler: handler,
	}
}

// SearchQuery returns the tx_search query covering heights from..ToHeight
func (r *Replayer) SearchQuery(from int64) string {
	query := r.config.Query
	if from > 0 {
		query = fmt.Sprintf("%s AND tx.height >= %d", query, from)
	}
	if r.config.ToHeight > 0 {
		query = fmt.Sprintf("%s AND tx.height <= %d", query, r.config.ToHeight)
	}
	return query
}

// startHeight resolves where the replay begins. The cursor block is replayed again
// since a page may have ended in the middle of it.
func (r *Replayer) startHeight(ctx context.Context) (int64, error) {
	from := r.config.FromHeight
	if !r.config.Resume || r.cursor == nil {
		return from, nil
	}

	height, err := r.cursor.GetReplayCursor(ctx, r.config.Protocol)
	if err != nil {
		return 0, err
	}
	if height > from {
		logger.InfoCtx(ctx, "Resuming replay from cursor",
			zap.String("protocol", string(r.config.Protocol)),
			zap.Int64("height", height))
		return height, nil
	}
	return from, nil
}

// Run replays every matching transaction. Handler failures are counted and logged;
// a page that cannot be fetched after retries ends the replay.
func (r *Replayer) Run(ctx context.Context) (*Stats, error) {
	if !r.running.CompareAndSwap(false, true) {
		return nil, errors.New("replay already running")
	}
	defer r.running.Store(false)

	protocol := string(r.config.Protocol)
	stats := &Stats{}

	from, err := r.startHeight(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to load replay cursor: %w", err)
	}
	query := r.SearchQuery(from)

	logger.InfoCtx(ctx, "Starting replay",
		zap.String("protocol", protocol),
		zap.String("query", query),
		zap.Int("page_size", r.config.PageSize))

	seen := 0
	for page := 1; ; page++ {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		txs, total, err := r.fetchPage(ctx, query, page)
		if err != nil {
			return stats, fmt.Errorf("failed to fetch page %d: %w", page, err)
		}
		stats.Pages++

		for i := range txs {
			if err := r.handler(ctx, &txs[i]); err != nil {
				stats.Failures++
				logger.WarnCtx(ctx, "Replayed transaction failed",
					zap.Error(err),
					zap.String("protocol", protocol),
					zap.String("tx_hash", txs[i].TxHash))
			}
			stats.Transactions++
		}

		r.saveCursor(ctx, txs)

		seen += len(txs)
		if len(txs) == 0 || seen >= total {
			break
		}
	}

	logger.InfoCtx(ctx, "Replay finished",
		zap.String("protocol", protocol),
		zap.Int("pages", stats.Pages),
		zap.Int("transactions", stats.Transactions),
		zap.Int("failures", stats.Failures))

	return stats, nil
}

func (r *Replayer) saveCursor(ctx context.Context, txs []domain.Transaction) {
	if r.cursor == nil || len(txs) == 0 {
		return
	}

	height := txs[len(txs)-1].Height
	if height == 0 {
		return
	}

	if err := r.cursor.SetReplayCursor(context.WithoutCancel(ctx), r.config.Protocol, height); err != nil {
		logger.WarnCtx(ctx, "Failed to save replay cursor",
			zap.Error(err),
			zap.String("protocol", string(r.config.Protocol)),
			zap.Int64("height", height))
	}
}

func (r *Replayer) fetchPage(ctx context.Context, query string, page int) ([]domain.Transaction, int, error) {
	var (
		txs   []domain.Transaction
		total int
	)

	operation := func() error {
		var err error
		txs, total, err = r.chain.SearchTxs(ctx, query, page, r.config.PageSize)
		if errors.Is(err, domain.ErrDecode) {
			return backoff.Permanent(err)
		}
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 0

	notify := func(err error, wait time.Duration) {
		logger.WarnCtx(ctx, "Retrying tx search page",
			zap.Error(err),
			zap.Int("page", page),
			zap.Duration("retry_in", wait))
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(backoff.WithMaxRetries(b, r.config.MaxRetries), ctx), notify)
	if err != nil {
		return nil, 0, err
	}

	return txs, total, nil
}
