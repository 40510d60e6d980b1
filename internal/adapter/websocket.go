package adapter

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketConn defines the websocket connection operations used by subscribers
//
//go:generate mockgen -source=websocket.go -destination=../mocks/websocket.go -package=mocks -mock_names=WebSocketConn=MockWebSocketConn,WebSocketDialer=MockWebSocketDialer
type WebSocketConn interface {
	// WriteMessage writes a single message of the given type
	WriteMessage(messageType int, data []byte) error
	// ReadMessage blocks until the next message arrives
	ReadMessage() (messageType int, p []byte, err error)
	// Close closes the underlying network connection
	Close() error
}

// WebSocketDialer defines an interface for opening websocket connections
type WebSocketDialer interface {
	Dial(ctx context.Context, url string) (WebSocketConn, error)
}

// GorillaDialer implements WebSocketDialer using gorilla/websocket
type GorillaDialer struct {
	dialer *websocket.Dialer
}

// NewWebSocketDialer creates a dialer with the given handshake timeout
func NewWebSocketDialer(handshakeTimeout time.Duration) WebSocketDialer {
	return &GorillaDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

func (d *GorillaDialer) Dial(ctx context.Context, url string) (WebSocketConn, error) {
	conn, resp, err := d.dialer.DialContext(ctx, url, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}
