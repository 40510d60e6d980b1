package registry

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/messaging"
)

// BlacklistRegistry defines the interface for blacklist operations
type BlacklistRegistry interface {
	// IsBlacklisted checks if a contract address is blacklisted on a chain
	IsBlacklisted(chainID string, contractAddress string) bool
}

// BlacklistData represents the structure of the blacklist file
// Key format: "chain_id" -> list of contract addresses
type BlacklistData map[string][]string

type blacklistRegistry struct {
	// Fast lookup map: "chain:contract" -> true
	contracts map[string]bool
}

// LoadBlacklist loads the blacklist registry from a JSON file
func LoadBlacklist(fs adapter.FileSystem, json adapter.JSON, filePath string) (BlacklistRegistry, error) {
	data, err := fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file: %w", err)
	}

	var blacklistData BlacklistData
	if err := json.Unmarshal(data, &blacklistData); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist JSON: %w", err)
	}

	bl := &blacklistRegistry{
		contracts: make(map[string]bool),
	}
	for chainID, addresses := range blacklistData {
		for _, addr := range addresses {
			bl.contracts[blacklistKey(chainID, addr)] = true
		}
	}

	return bl, nil
}

func (b *blacklistRegistry) IsBlacklisted(chainID string, contractAddress string) bool {
	if b == nil {
		return false
	}
	return b.contracts[blacklistKey(chainID, contractAddress)]
}

func blacklistKey(chainID, contractAddress string) string {
	return fmt.Sprintf("%s:%s", strings.ToLower(chainID), strings.ToLower(contractAddress))
}

// Filter drops transactions touching a blacklisted contract before they reach next.
// Every wasm event is checked, so a marketplace sale of a blacklisted collection is dropped as well.
func Filter(registry BlacklistRegistry, chainID string, next messaging.TransactionHandler) messaging.TransactionHandler {
	if registry == nil {
		return next
	}

	return func(ctx context.Context, tx *domain.Transaction) error {
		for _, event := range tx.Events {
			if event.Type != domain.EventTypeWasm {
				continue
			}
			for _, attr := range event.Attributes {
				if attr.Key == domain.AttributeContractAddress && registry.IsBlacklisted(chainID, attr.Value) {
					logger.DebugCtx(ctx, "Skipping transaction of blacklisted contract",
						zap.String("tx_hash", tx.TxHash),
						zap.String("contract_address", attr.Value))
					return nil
				}
			}
		}

		return next(ctx, tx)
	}
}
