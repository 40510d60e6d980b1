package cosmos_test

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/mocks"
	"github.com/theanh098/sei-market-oxide/internal/providers/cosmos"
)

const ackMessage = `{"jsonrpc":"2.0","id":"0","result":{}}`

func encoded(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// txNotification builds a node notification carrying one wasm event
func txNotification(txHash string, attrs ...string) []byte {
	pairs := make([]string, 0, len(attrs)/2)
	for i := 0; i+1 < len(attrs); i += 2 {
		pairs = append(pairs, fmt.Sprintf(`{"key":%q,"value":%q,"index":true}`, encoded(attrs[i]), encoded(attrs[i+1])))
	}

	return []byte(fmt.Sprintf(`{
  "jsonrpc": "2.0",
  "id": "0",
  "result": {
    "query": "tm.event='Tx'",
    "data": {
      "type": "tendermint/event/Tx",
      "value": {"TxResult": {"height": "1", "result": {"events": [{"type": "wasm", "attributes": [%s]}]}}}
    },
    "events": {"tx.hash": [%q]}
  }
}`, strings.Join(pairs, ","), txHash))
}

func testSubscriberConfig(url string) cosmos.SubscriberConfig {
	return cosmos.SubscriberConfig{
		WebSocketURL: url,
		Query:        cosmos.Cw721Query,
		Protocol:     domain.ProtocolCw721,
	}
}

func TestNewSubscriber_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialer := mocks.NewMockWebSocketDialer(ctrl)

	_, err := cosmos.NewSubscriber(cosmos.SubscriberConfig{Query: cosmos.Cw721Query}, dialer, adapter.NewJSON())
	assert.Error(t, err)

	_, err = cosmos.NewSubscriber(cosmos.SubscriberConfig{WebSocketURL: "ws://node", Query: "tm.event = "}, dialer, adapter.NewJSON())
	assert.Error(t, err)

	sub, err := cosmos.NewSubscriber(testSubscriberConfig("ws://node"), dialer, adapter.NewJSON())
	require.NoError(t, err)
	assert.NotNil(t, sub)
}

func TestSubscriptionQuery(t *testing.T) {
	q, err := cosmos.SubscriptionQuery(domain.ProtocolCw721, "")
	require.NoError(t, err)
	assert.Equal(t, cosmos.Cw721Query, q)

	q, err = cosmos.SubscriptionQuery(domain.ProtocolPallet, "sei1pallet")
	require.NoError(t, err)
	assert.Equal(t, "tm.event='Tx' AND execute._contract_address='sei1pallet'", q)

	_, err = cosmos.SubscriptionQuery(domain.Protocol("opensea"), "")
	assert.ErrorIs(t, err, domain.ErrUnknownProtocol)
}

// testSubscriberMocks contains all the mocks needed for testing the subscriber
type testSubscriberMocks struct {
	ctrl   *gomock.Controller
	dialer *mocks.MockWebSocketDialer
	conn   *mocks.MockWebSocketConn
}

func setupTestSubscriber(t *testing.T) *testSubscriberMocks {
	ctrl := gomock.NewController(t)
	tm := &testSubscriberMocks{
		ctrl:   ctrl,
		dialer: mocks.NewMockWebSocketDialer(ctrl),
		conn:   mocks.NewMockWebSocketConn(ctrl),
	}
	tm.conn.EXPECT().Close().Return(nil).AnyTimes()
	return tm
}

func (tm *testSubscriberMocks) expectHandshake() {
	tm.dialer.EXPECT().Dial(gomock.Any(), "ws://node").Return(tm.conn, nil)
	tm.conn.EXPECT().WriteMessage(websocket.TextMessage, gomock.Any()).DoAndReturn(
		func(_ int, data []byte) error {
			expected := fmt.Sprintf(`{"jsonrpc":"2.0","method":"subscribe","id":"0","params":{"query":%q}}`, cosmos.Cw721Query)
			if string(data) != expected {
				return fmt.Errorf("unexpected subscribe request %s", data)
			}
			return nil
		})
}

func TestSubscriber_HandlesTransactionsInOrder(t *testing.T) {
	tm := setupTestSubscriber(t)
	tm.expectHandshake()

	gomock.InOrder(
		tm.conn.EXPECT().ReadMessage().Return(websocket.TextMessage, []byte(ackMessage), nil),
		tm.conn.EXPECT().ReadMessage().Return(websocket.TextMessage,
			txNotification("AAA", "action", "mint", "token_id", "1"), nil),
		tm.conn.EXPECT().ReadMessage().Return(websocket.TextMessage,
			txNotification("BBB", "action", "transfer_nft", "token_id", "2"), nil),
		tm.conn.EXPECT().ReadMessage().Return(0, nil, errors.New("connection reset")),
	)

	sub, err := cosmos.NewSubscriber(testSubscriberConfig("ws://node"), tm.dialer, adapter.NewJSON())
	require.NoError(t, err)

	var handled []*domain.Transaction
	err = sub.Subscribe(context.Background(), func(_ context.Context, tx *domain.Transaction) error {
		handled = append(handled, tx)
		// A handler error does not end the session
		return errors.New("handler failed")
	})

	assert.ErrorIs(t, err, domain.ErrTransport)
	require.Len(t, handled, 2)
	assert.Equal(t, "AAA", handled[0].TxHash)
	assert.Equal(t, "BBB", handled[1].TxHash)
	assert.Equal(t, []domain.Attribute{
		{Key: "action", Value: "transfer_nft"},
		{Key: "token_id", Value: "2"},
	}, handled[1].Events[0].Attributes)
}

func TestSubscriber_ParseErrorEndsSession(t *testing.T) {
	tm := setupTestSubscriber(t)
	tm.expectHandshake()

	tm.conn.EXPECT().ReadMessage().Return(websocket.TextMessage, []byte(`{"jsonrpc":"2.0","result":{"events":{}}}`), nil)

	sub, err := cosmos.NewSubscriber(testSubscriberConfig("ws://node"), tm.dialer, adapter.NewJSON())
	require.NoError(t, err)

	err = sub.Subscribe(context.Background(), func(context.Context, *domain.Transaction) error {
		t.Fatal("handler must not be called")
		return nil
	})
	assert.ErrorIs(t, err, domain.ErrProtocolParse)
}

func TestSubscriber_NodeErrorEndsSession(t *testing.T) {
	tm := setupTestSubscriber(t)
	tm.expectHandshake()

	tm.conn.EXPECT().ReadMessage().Return(websocket.TextMessage,
		[]byte(`{"jsonrpc":"2.0","id":"0","error":{"code":-32603,"message":"Internal error","data":"subscription was cancelled"}}`), nil)

	sub, err := cosmos.NewSubscriber(testSubscriberConfig("ws://node"), tm.dialer, adapter.NewJSON())
	require.NoError(t, err)

	err = sub.Subscribe(context.Background(), func(context.Context, *domain.Transaction) error { return nil })
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), "subscription was cancelled")
}

func TestSubscriber_DialFailure(t *testing.T) {
	tm := setupTestSubscriber(t)
	tm.dialer.EXPECT().Dial(gomock.Any(), "ws://node").Return(nil, errors.New("no route to host"))

	sub, err := cosmos.NewSubscriber(testSubscriberConfig("ws://node"), tm.dialer, adapter.NewJSON())
	require.NoError(t, err)

	err = sub.Subscribe(context.Background(), func(context.Context, *domain.Transaction) error { return nil })
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestSubscriber_SubscribeWriteFailure(t *testing.T) {
	tm := setupTestSubscriber(t)
	tm.dialer.EXPECT().Dial(gomock.Any(), "ws://node").Return(tm.conn, nil)
	tm.conn.EXPECT().WriteMessage(websocket.TextMessage, gomock.Any()).Return(errors.New("broken pipe"))

	sub, err := cosmos.NewSubscriber(testSubscriberConfig("ws://node"), tm.dialer, adapter.NewJSON())
	require.NoError(t, err)

	err = sub.Subscribe(context.Background(), func(context.Context, *domain.Transaction) error { return nil })
	assert.ErrorIs(t, err, domain.ErrTransport)
}

func TestSubscriber_WebSocketServer(t *testing.T) {
	upgrader := websocket.Upgrader{}
	received := make(chan string, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close() }()

		_, req, err := conn.ReadMessage()
		if err != nil {
			return
		}
		received <- string(req)

		_ = conn.WriteMessage(websocket.TextMessage, []byte(ackMessage))
		_ = conn.WriteMessage(websocket.TextMessage, txNotification("CCC", "action", "mint"))

		// Hold the connection open until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/websocket"
	sub, err := cosmos.NewSubscriber(testSubscriberConfig(wsURL), adapter.NewWebSocketDialer(5*time.Second), adapter.NewJSON())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var handled []string
	err = sub.Subscribe(ctx, func(_ context.Context, tx *domain.Transaction) error {
		handled = append(handled, tx.TxHash)
		cancel()
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"CCC"}, handled)
	assert.Contains(t, <-received, `"method":"subscribe"`)
}
