package rest

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/store/schema"
)

// StreamTxResponse is one tracing record
type StreamTxResponse struct {
	ID        int64           `json:"id"`
	TxHash    string          `json:"tx_hash"`
	Action    string          `json:"action"`
	Context   domain.Protocol `json:"context"`
	Event     json.RawMessage `json:"event"`
	IsFailure bool            `json:"is_failure"`
	Message   *string         `json:"message,omitempty"`
	Date      time.Time       `json:"date"`
}

// StreamTxListResponse is a page of tracing records
type StreamTxListResponse struct {
	Items []StreamTxResponse `json:"items"`
	Total uint64             `json:"total"`
}

// TraitResponse is one metadata attribute of an NFT
type TraitResponse struct {
	Attribute   string  `json:"attribute"`
	Value       string  `json:"value"`
	DisplayType *string `json:"display_type,omitempty"`
}

// NFTResponse is an indexed NFT
type NFTResponse struct {
	TokenAddress string          `json:"token_address"`
	TokenID      string          `json:"token_id"`
	TokenURI     string          `json:"token_uri"`
	Name         *string         `json:"name,omitempty"`
	Image        *string         `json:"image,omitempty"`
	Description  *string         `json:"description,omitempty"`
	OwnerAddress *string         `json:"owner_address,omitempty"`
	Traits       []TraitResponse `json:"traits"`
}

// ActivityResponse is one entry of an NFT activity log
type ActivityResponse struct {
	TxHash        string              `json:"tx_hash"`
	EventKind     domain.ActivityKind `json:"event_kind"`
	SellerAddress *string             `json:"seller_address,omitempty"`
	BuyerAddress  *string             `json:"buyer_address,omitempty"`
	Price         decimal.Decimal     `json:"price"`
	Denom         string              `json:"denom"`
	Market        domain.Marketplace  `json:"market"`
	Date          time.Time           `json:"date"`
}

// SaleResponse is one ledger row of a completed sale
type SaleResponse struct {
	TxHash            string             `json:"tx_hash"`
	BuyerAddress      string             `json:"buyer_address"`
	SellerAddress     string             `json:"seller_address"`
	CollectionAddress string             `json:"collection_address"`
	Volume            decimal.Decimal    `json:"volume"`
	Market            domain.Marketplace `json:"market"`
	Date              time.Time          `json:"date"`
}

// LoyaltyPointResponse is one credited loyalty point entry
type LoyaltyPointResponse struct {
	Point int64                   `json:"point"`
	Kind  domain.LoyaltyPointKind `json:"kind"`
	Date  time.Time               `json:"date"`
}

// LoyaltyPointsResponse lists the entries of a wallet with their sum
type LoyaltyPointsResponse struct {
	WalletAddress string                 `json:"wallet_address"`
	Total         int64                  `json:"total"`
	Items         []LoyaltyPointResponse `json:"items"`
}

func toStreamTxResponse(tx schema.StreamTx) StreamTxResponse {
	event := json.RawMessage(tx.Event)
	if len(event) == 0 {
		event = json.RawMessage("null")
	}

	return StreamTxResponse{
		ID:        tx.ID,
		TxHash:    tx.TxHash,
		Action:    tx.Action,
		Context:   tx.Context,
		Event:     event,
		IsFailure: tx.IsFailure,
		Message:   tx.Message,
		Date:      tx.Date,
	}
}

func toNFTResponse(nft schema.NFT, traits []schema.NFTTrait) NFTResponse {
	response := NFTResponse{
		TokenAddress: nft.TokenAddress,
		TokenID:      nft.TokenID,
		TokenURI:     nft.TokenURI,
		Name:         nft.Name,
		Image:        nft.Image,
		Description:  nft.Description,
		OwnerAddress: nft.OwnerAddress,
		Traits:       make([]TraitResponse, 0, len(traits)),
	}
	for _, t := range traits {
		response.Traits = append(response.Traits, TraitResponse{
			Attribute:   t.Attribute,
			Value:       t.Value,
			DisplayType: t.DisplayType,
		})
	}
	return response
}

func toActivityResponse(a schema.NFTActivity) ActivityResponse {
	return ActivityResponse{
		TxHash:        a.TxHash,
		EventKind:     a.EventKind,
		SellerAddress: a.SellerAddress,
		BuyerAddress:  a.BuyerAddress,
		Price:         a.Price,
		Denom:         a.Denom,
		Market:        a.Market,
		Date:          a.Date,
	}
}

func toSaleResponse(s schema.SaleTransaction) SaleResponse {
	return SaleResponse{
		TxHash:            s.TxnHash,
		BuyerAddress:      s.BuyerAddress,
		SellerAddress:     s.SellerAddress,
		CollectionAddress: s.CollectionAddress,
		Volume:            s.Volume,
		Market:            s.Market,
		Date:              s.Date,
	}
}
