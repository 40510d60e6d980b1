package messaging

import (
	"context"

	"github.com/theanh098/sei-market-oxide/internal/domain"
)

// TransactionHandler is called for every transaction received on a subscription
type TransactionHandler func(ctx context.Context, tx *domain.Transaction) error

// Subscriber defines the interface for one chain event subscription session
//
//go:generate mockgen -source=subscriber.go -destination=../mocks/subscriber.go -package=mocks -mock_names=Subscriber=MockSubscriber
type Subscriber interface {
	// Subscribe opens a connection, subscribes and feeds every transaction to handler.
	// It blocks until the session ends and always returns a non-nil error.
	Subscribe(ctx context.Context, handler TransactionHandler) error

	// Close closes the current connection, if any
	Close()
}
