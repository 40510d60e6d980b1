package handler

import (
	"context"

	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/metrics"
	"github.com/theanh098/sei-market-oxide/internal/reconciler"
	"github.com/theanh098/sei-market-oxide/internal/store"
)

type cw721Handler struct {
	reconciler reconciler.Reconciler
	tracer     *tracer
}

// NewCw721Handler creates the handler for mint, transfer_nft and send_nft events
func NewCw721Handler(rec reconciler.Reconciler, st store.Store, clock adapter.Clock, json adapter.JSON) ProtocolHandler {
	return &cw721Handler{
		reconciler: rec,
		tracer: &tracer{
			protocol: domain.ProtocolCw721,
			store:    st,
			clock:    clock,
			json:     json,
		},
	}
}

func (h *cw721Handler) Protocol() domain.Protocol {
	return domain.ProtocolCw721
}

func (h *cw721Handler) HandleTransaction(ctx context.Context, tx *domain.Transaction) error {
	var errs []error
	for _, event := range tx.Events {
		if !isCw721Event(event) {
			continue
		}

		action, _ := event.Attribute(domain.AttributeAction)
		if err := h.tracer.dispatch(ctx, tx.TxHash, action, event, func(ctx context.Context) error {
			return h.handleEvent(ctx, action, event)
		}); err != nil {
			errs = append(errs, err)
		}
	}

	return joinEventErrors(errs)
}

func (h *cw721Handler) handleEvent(ctx context.Context, rawAction string, event domain.Event) error {
	action, err := domain.ParseCw721Action(rawAction)
	if err != nil {
		metrics.UnknownActions.WithLabelValues(string(domain.ProtocolCw721)).Inc()
		logger.WarnCtx(ctx, "Ignoring unknown cw721 action", zap.String("action", rawAction))
		return nil
	}

	var ownerKey string
	switch action {
	case domain.Cw721ActionMint:
		ownerKey = domain.AttributeOwner
	case domain.Cw721ActionTransfer, domain.Cw721ActionSend:
		ownerKey = domain.AttributeRecipient
	}

	tokenAddress, err := event.RequireAttribute(domain.AttributeContractAddress)
	if err != nil {
		return err
	}
	tokenID, err := event.RequireAttribute(domain.AttributeTokenID)
	if err != nil {
		return err
	}
	owner, err := event.RequireAttribute(ownerKey)
	if err != nil {
		return err
	}

	_, err = h.reconciler.FindOrCreateWithOwner(ctx, tokenAddress, tokenID, &owner)
	return err
}

// isCw721Event reports whether event is a wasm event carrying one of the indexed cw721 actions
func isCw721Event(event domain.Event) bool {
	if event.Type != domain.EventTypeWasm {
		return false
	}
	for _, attr := range event.Attributes {
		if attr.Key != domain.AttributeAction {
			continue
		}
		if _, err := domain.ParseCw721Action(attr.Value); err == nil {
			return true
		}
	}
	return false
}
