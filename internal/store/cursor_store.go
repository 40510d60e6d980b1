package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/store/schema"
)

// CursorStore persists how far a replay of each protocol has progressed
//
//go:generate mockgen -source=cursor_store.go -destination=../mocks/cursor_store.go -package=mocks -mock_names=CursorStore=MockCursorStore
type CursorStore interface {
	// GetReplayCursor returns the last replayed block height of a protocol, 0 when none is recorded
	GetReplayCursor(ctx context.Context, protocol domain.Protocol) (int64, error)
	// SetReplayCursor records the last replayed block height of a protocol
	SetReplayCursor(ctx context.Context, protocol domain.Protocol, height int64) error
}

type cursorStore struct {
	db *gorm.DB
}

// NewCursorStore creates a new cursor store
func NewCursorStore(db *gorm.DB) CursorStore {
	return &cursorStore{db: db}
}

func replayCursorKey(protocol domain.Protocol) string {
	return fmt.Sprintf("replay_cursor:%s", protocol)
}

func (s *cursorStore) GetReplayCursor(ctx context.Context, protocol domain.Protocol) (int64, error) {
	var kv schema.KeyValueStore
	err := s.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("key = ?", replayCursorKey(protocol)).
		First(&kv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get replay cursor: %w", err)
	}

	height, err := strconv.ParseInt(kv.Value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse replay cursor %q: %w", kv.Value, err)
	}

	return height, nil
}

func (s *cursorStore) SetReplayCursor(ctx context.Context, protocol domain.Protocol, height int64) error {
	kv := schema.KeyValueStore{
		Key:   replayCursorKey(protocol),
		Value: strconv.FormatInt(height, 10),
	}

	if err := s.db.WithContext(ctx).Save(&kv).Error; err != nil {
		return fmt.Errorf("failed to set replay cursor: %w", err)
	}

	return nil
}
