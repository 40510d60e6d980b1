package cosmos

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cometbft/cometbft/libs/pubsub/query"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/messaging"
	"github.com/theanh098/sei-market-oxide/internal/metrics"
)

// Cw721Query selects transactions carrying a cw721 action on a token
const Cw721Query = "tm.event='Tx' AND wasm.action EXISTS AND wasm._contract_address EXISTS AND wasm.token_id EXISTS"

// PalletQuery returns the filter selecting executions of the Pallet contract
func PalletQuery(contractAddress string) string {
	return fmt.Sprintf("tm.event='Tx' AND execute._contract_address='%s'", contractAddress)
}

// SubscriptionQuery returns the event filter for a protocol stream
func SubscriptionQuery(protocol domain.Protocol, palletContractAddress string) (string, error) {
	switch protocol {
	case domain.ProtocolCw721:
		return Cw721Query, nil
	case domain.ProtocolPallet:
		if palletContractAddress == "" {
			palletContractAddress = domain.PALLET_CONTRACT_ADDRESS
		}
		return PalletQuery(palletContractAddress), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownProtocol, protocol)
	}
}

// SubscriberConfig holds the configuration of one subscription stream
type SubscriberConfig struct {
	WebSocketURL string          // e.g. wss://rpc.sei-apis.com/websocket
	Query        string          // CometBFT event query
	Protocol     domain.Protocol // used for logs and metrics
}

type subscribeParams struct {
	Query string `json:"query"`
}

type subscribeRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	ID      string          `json:"id"`
	Params  subscribeParams `json:"params"`
}

type wsSubscriber struct {
	config SubscriberConfig
	dialer adapter.WebSocketDialer
	json   adapter.JSON

	mu   sync.Mutex
	conn adapter.WebSocketConn
}

// NewSubscriber creates a CometBFT websocket subscriber for a single event query
func NewSubscriber(cfg SubscriberConfig, dialer adapter.WebSocketDialer, json adapter.JSON) (messaging.Subscriber, error) {
	if cfg.WebSocketURL == "" {
		return nil, errors.New("websocket url is required")
	}
	if _, err := query.New(cfg.Query); err != nil {
		return nil, fmt.Errorf("invalid subscription query %q: %w", cfg.Query, err)
	}

	return &wsSubscriber{
		config: cfg,
		dialer: dialer,
		json:   json,
	}, nil
}

// Subscribe runs one subscription session. Messages are handled one at a time
// in arrival order; the session ends on the first transport or parse error.
func (s *wsSubscriber) Subscribe(ctx context.Context, handler messaging.TransactionHandler) error {
	session := uuid.NewString()
	protocol := string(s.config.Protocol)

	conn, err := s.dialer.Dial(ctx, s.config.WebSocketURL)
	if err != nil {
		return fmt.Errorf("%w: failed to connect to %s: %v", domain.ErrTransport, s.config.WebSocketURL, err)
	}
	s.setConn(conn)
	defer s.Close()

	// Unblock ReadMessage when the context is cancelled
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	req, err := s.json.Marshal(subscribeRequest{
		JSONRPC: "2.0",
		Method:  "subscribe",
		ID:      "0",
		Params:  subscribeParams{Query: s.config.Query},
	})
	if err != nil {
		return fmt.Errorf("failed to marshal subscribe request: %w", err)
	}

	if err := conn.WriteMessage(websocket.TextMessage, req); err != nil {
		return fmt.Errorf("%w: failed to send subscribe request: %v", domain.ErrTransport, err)
	}

	logger.InfoCtx(ctx, "Subscribed to chain events",
		zap.String("protocol", protocol),
		zap.String("session", session),
		zap.String("query", s.config.Query))

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w: failed to read message: %v", domain.ErrTransport, err)
		}

		metrics.MessagesReceived.WithLabelValues(protocol).Inc()

		if IsSubscribeAck(msg) {
			logger.DebugCtx(ctx, "Received subscription acknowledgement",
				zap.String("protocol", protocol),
				zap.String("session", session))
			continue
		}

		tx, err := ParseTransaction(msg)
		if err != nil {
			return fmt.Errorf("failed to parse message: %w", err)
		}

		if err := handler(ctx, tx); err != nil {
			// Handlers trace their own failures
			logger.ErrorCtx(ctx, errors.New("error handling transaction"),
				zap.Error(err),
				zap.String("protocol", protocol),
				zap.String("session", session),
				zap.String("tx_hash", tx.TxHash))
		}
	}
}

func (s *wsSubscriber) setConn(conn adapter.WebSocketConn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn = conn
}

// Close closes the current websocket connection
func (s *wsSubscriber) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return
	}
	_ = s.conn.Close()
	s.conn = nil
}
