package stream

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/messaging"
	"github.com/theanh098/sei-market-oxide/internal/metrics"
)

// Config holds the reconnect policy of a stream
type Config struct {
	Protocol        domain.Protocol
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// ResetAfter is how long a session must stay up before the backoff starts over
	ResetAfter time.Duration
}

// Stream defines the interface for a long-running protocol stream
//
//go:generate mockgen -source=stream.go -destination=../mocks/stream.go -package=mocks -mock_names=Stream=MockStream
type Stream interface {
	// Run subscribes and feeds transactions to the handler until ctx is cancelled,
	// resubscribing with exponential backoff whenever a session ends
	Run(ctx context.Context) error
	// Close closes the current session
	Close()
}

type stream struct {
	subscriber messaging.Subscriber
	handler    messaging.TransactionHandler
	config     Config
	clock      adapter.Clock
}

// NewStream creates a new protocol stream
func NewStream(
	sub messaging.Subscriber,
	handler messaging.TransactionHandler,
	cfg Config,
	clock adapter.Clock,
) Stream {
	return &stream{
		subscriber: sub,
		handler:    handler,
		config:     cfg,
		clock:      clock,
	}
}

func (s *stream) newBackOff() *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	if s.config.InitialInterval > 0 {
		b.InitialInterval = s.config.InitialInterval
	}
	if s.config.MaxInterval > 0 {
		b.MaxInterval = s.config.MaxInterval
	}
	if s.config.Multiplier > 0 {
		b.Multiplier = s.config.Multiplier
	}
	b.MaxElapsedTime = 0 // retry forever
	b.Reset()
	return b
}

// Run starts the stream
func (s *stream) Run(ctx context.Context) error {
	protocol := string(s.config.Protocol)
	b := s.newBackOff()

	logger.InfoCtx(ctx, "Starting stream", zap.String("protocol", protocol))

	for {
		startedAt := s.clock.Now()
		err := s.subscriber.Subscribe(ctx, s.handler)
		if ctx.Err() != nil {
			logger.InfoCtx(ctx, "Stream stopped", zap.String("protocol", protocol))
			return ctx.Err()
		}
		if err == nil {
			err = fmt.Errorf("%w: session closed by peer", domain.ErrTransport)
		}

		if s.config.ResetAfter > 0 && s.clock.Since(startedAt) >= s.config.ResetAfter {
			b.Reset()
		}
		wait := b.NextBackOff()

		metrics.Reconnects.WithLabelValues(protocol).Inc()
		logger.ErrorCtx(ctx, fmt.Errorf("stream session ended: %w", err),
			zap.String("protocol", protocol),
			zap.Duration("retry_in", wait))

		select {
		case <-ctx.Done():
			logger.InfoCtx(ctx, "Stream stopped", zap.String("protocol", protocol))
			return ctx.Err()
		case <-s.clock.After(wait):
		}
	}
}

// Close closes the current session
func (s *stream) Close() {
	s.subscriber.Close()
}

// RunAll runs the streams side by side until ctx is cancelled or one of them fails.
// A shutdown through ctx cancellation is not reported as an error.
func RunAll(ctx context.Context, streams ...Stream) error {
	if len(streams) == 0 {
		return errors.New("no streams to run")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pool := pond.NewPool(len(streams))
	defer pool.StopAndWait()

	var (
		once     sync.Once
		firstErr error
	)

	// Plain tasks, not a group: a group skips tasks that start after another failed
	tasks := make([]pond.Task, 0, len(streams))
	for _, st := range streams {
		tasks = append(tasks, pool.Submit(func() {
			err := st.Run(ctx)
			if err != nil && !errors.Is(err, context.Canceled) {
				once.Do(func() {
					firstErr = err
				})
			}
			// One stream stopping takes the others down with it
			cancel()
		}))
	}

	for _, task := range tasks {
		_ = task.Wait()
	}

	for _, st := range streams {
		st.Close()
	}

	return firstErr
}
