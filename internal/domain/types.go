package domain

import (
	"fmt"
	"strings"
)

// Protocol identifies the marketplace protocol a stream indexes
type Protocol string

const (
	// ProtocolCw721 is the generic NFT transfer protocol (mint, transfer_nft, send_nft)
	ProtocolCw721 Protocol = "cw721"
	// ProtocolPallet is the Pallet auction marketplace protocol
	ProtocolPallet Protocol = "pallet"
)

// ParseProtocol converts a configured protocol name into a Protocol
func ParseProtocol(s string) (Protocol, error) {
	switch p := Protocol(strings.ToLower(strings.TrimSpace(s))); p {
	case ProtocolCw721, ProtocolPallet:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownProtocol, s)
	}
}

// Marketplace represents the marketplace a listing or sale happened on
type Marketplace string

const (
	MarketplacePallet Marketplace = "pallet"
)

// Cw721Action is an action emitted by a cw721 contract
type Cw721Action string

const (
	Cw721ActionMint     Cw721Action = "mint"
	Cw721ActionTransfer Cw721Action = "transfer_nft"
	Cw721ActionSend     Cw721Action = "send_nft"
)

// ParseCw721Action validates a wire action string
func ParseCw721Action(s string) (Cw721Action, error) {
	switch a := Cw721Action(s); a {
	case Cw721ActionMint, Cw721ActionTransfer, Cw721ActionSend:
		return a, nil
	default:
		return "", fmt.Errorf("%w: cw721 %q", ErrUnknownAction, s)
	}
}

// PalletAction is a Pallet marketplace event type
type PalletAction string

const (
	PalletActionCreateAuction PalletAction = "wasm-create_auction"
	PalletActionBuyNow        PalletAction = "wasm-buy_now"
	PalletActionCancelAuction PalletAction = "wasm-cancel_auction"
)

// ParsePalletAction validates a wire event type
func ParsePalletAction(s string) (PalletAction, error) {
	switch a := PalletAction(s); a {
	case PalletActionCreateAuction, PalletActionBuyNow, PalletActionCancelAuction:
		return a, nil
	default:
		return "", fmt.Errorf("%w: pallet %q", ErrUnknownAction, s)
	}
}

// ActivityKind is the kind of an NFT activity row
type ActivityKind string

const (
	ActivityKindList   ActivityKind = "list"
	ActivityKindDelist ActivityKind = "delist"
	ActivityKindSale   ActivityKind = "sale"
)

// LoyaltyPointKind is the side of a sale a loyalty point was credited for
type LoyaltyPointKind string

const (
	LoyaltyPointKindBuy  LoyaltyPointKind = "buy"
	LoyaltyPointKindSell LoyaltyPointKind = "sell"
)

// SaleType is the kind of a listing
type SaleType string

const (
	SaleTypeFixed SaleType = "fixed"
)

// Event attribute keys and event types as emitted on chain
const (
	EventTypeWasm = "wasm"

	AttributeAction            = "action"
	AttributeContractAddress   = "_contract_address"
	AttributeTokenID           = "token_id"
	AttributeOwner             = "owner"
	AttributeRecipient         = "recipient"
	AttributeCollectionAddress = "collection_address"

	// AttributeBuyer is the key the Pallet contract emits the buyer under.
	// The spelling matches the contract output and must not be corrected.
	AttributeBuyer = "recipent"
)

// Transaction is a decoded transaction notification from the subscription stream
type Transaction struct {
	TxHash string  `json:"tx_hash"`
	Height int64   `json:"height,omitempty"` // 0 when the source does not carry it
	Events []Event `json:"events"`
}

// Event is a single ABCI event with decoded attributes
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// Attribute is a decoded key/value event attribute
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Attribute returns the value of the first attribute with the given key
func (e Event) Attribute(key string) (string, bool) {
	for _, attr := range e.Attributes {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// RequireAttribute returns the value of the given attribute or ErrMissingAttribute
func (e Event) RequireAttribute(key string) (string, error) {
	value, ok := e.Attribute(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMissingAttribute, key)
	}
	return value, nil
}
