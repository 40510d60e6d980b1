package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/metrics"
	"github.com/theanh098/sei-market-oxide/internal/store"
)

const traceWriteTimeout = 10 * time.Second

// ProtocolHandler applies the events of one marketplace protocol to the index
//
//go:generate mockgen -source=handler.go -destination=../mocks/handler.go -package=mocks -mock_names=ProtocolHandler=MockProtocolHandler
type ProtocolHandler interface {
	// Protocol returns the protocol this handler indexes
	Protocol() domain.Protocol

	// HandleTransaction dispatches every relevant event of tx in order.
	// A failing event is traced and does not stop the remaining events;
	// the returned error joins all event failures.
	HandleTransaction(ctx context.Context, tx *domain.Transaction) error
}

// tracer records one stream_tx row per dispatched event
type tracer struct {
	protocol domain.Protocol
	store    store.Store
	clock    adapter.Clock
	json     adapter.JSON
}

// dispatch runs fn for one event and records its outcome
func (t *tracer) dispatch(ctx context.Context, txHash string, action string, event domain.Event, fn func(context.Context) error) error {
	err := fn(ctx)

	metrics.EventsHandled.WithLabelValues(string(t.protocol), actionLabel(t.protocol, action), metrics.Outcome(err)).Inc()

	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to handle %s event: %w", t.protocol, err),
			zap.String("tx_hash", txHash),
			zap.String("action", action))
	} else {
		logger.InfoCtx(ctx, "Handled event",
			zap.String("protocol", string(t.protocol)),
			zap.String("tx_hash", txHash),
			zap.String("action", action))
	}

	t.record(ctx, txHash, action, event, err)

	if err != nil {
		return fmt.Errorf("%s %s: %w", action, txHash, err)
	}
	return nil
}

// actionLabel keeps the action label of handler metrics within the protocol's actions
func actionLabel(protocol domain.Protocol, action string) string {
	var err error
	switch protocol {
	case domain.ProtocolCw721:
		_, err = domain.ParseCw721Action(action)
	case domain.ProtocolPallet:
		_, err = domain.ParsePalletAction(action)
	default:
		err = domain.ErrUnknownAction
	}
	if err != nil {
		return metrics.UnrecognizedAction
	}
	return action
}

// record writes the tracing row on a context detached from ctx cancellation,
// so an outcome is kept even while the stream is shutting down
func (t *tracer) record(ctx context.Context, txHash string, action string, event domain.Event, handleErr error) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), traceWriteTimeout)
	defer cancel()

	raw, err := t.json.Marshal(event)
	if err != nil {
		logger.WarnCtx(ctx, "Failed to marshal traced event", zap.Error(err), zap.String("tx_hash", txHash))
		raw = []byte(`{}`)
	}

	input := store.CreateStreamTxInput{
		TxHash:    txHash,
		Action:    action,
		Context:   t.protocol,
		Event:     datatypes.JSON(raw),
		IsFailure: handleErr != nil,
		Date:      t.clock.Now().UTC(),
	}
	if handleErr != nil {
		message := handleErr.Error()
		input.Message = &message
	}

	if err := t.store.CreateStreamTx(writeCtx, input); err != nil {
		metrics.TraceWriteFailures.WithLabelValues(string(t.protocol)).Inc()
		logger.ErrorCtx(ctx, fmt.Errorf("failed to write stream tx: %w", err),
			zap.String("tx_hash", txHash),
			zap.String("action", action))
	}
}

func joinEventErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
