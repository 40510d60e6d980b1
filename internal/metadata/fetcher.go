package metadata

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/uri"
)

const unknownTrait = "unknown"

// CollectionMetadata is the off-chain collection profile served by the marketplace API
type CollectionMetadata struct {
	PFP         *string         `json:"pfp"`
	Slug        *string         `json:"slug"`
	Description *string         `json:"description"`
	Banner      *string         `json:"banner"`
	Socials     json.RawMessage `json:"socials"`
}

// NFTMetadata is the off-chain token metadata document referenced by token_uri
type NFTMetadata struct {
	Name        *string        `json:"name"`
	Description *string        `json:"description"`
	Image       *string        `json:"image"`
	Attributes  []NFTAttribute `json:"attributes"`
}

// NFTAttribute is one entry of the metadata attributes list
type NFTAttribute struct {
	TraitType   *string         `json:"trait_type"`
	Type        *string         `json:"type"`
	Value       json.RawMessage `json:"value"`
	DisplayType json.RawMessage `json:"display_type"`
}

// Name returns trait_type, falling back to type and then "unknown"
func (a NFTAttribute) Name() string {
	if a.TraitType != nil {
		return *a.TraitType
	}
	if a.Type != nil {
		return *a.Type
	}
	return unknownTrait
}

// ValueString returns the value as text, or "unknown" when it is absent
func (a NFTAttribute) ValueString() string {
	if s := jsonText(a.Value); s != nil {
		return *s
	}
	return unknownTrait
}

// DisplayTypeString returns the display type as text, nil when absent
func (a NFTAttribute) DisplayTypeString() *string {
	return jsonText(a.DisplayType)
}

// jsonText renders a raw JSON value as text: strings are unquoted, other values keep their JSON form
func jsonText(raw json.RawMessage) *string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	return &trimmed
}

// Fetcher fetches off-chain collection and token metadata
//
//go:generate mockgen -source=fetcher.go -destination=../mocks/metadata_fetcher.go -package=mocks -mock_names=Fetcher=MockMetadataFetcher
type Fetcher interface {
	// GetCollectionMetadata fetches the marketplace profile of a collection
	GetCollectionMetadata(ctx context.Context, address string) (*CollectionMetadata, error)
	// GetNFTMetadata fetches the metadata document a token_uri points to
	GetNFTMetadata(ctx context.Context, tokenURI string) (*NFTMetadata, error)
}

type fetcher struct {
	httpClient   adapter.HTTPClient
	uriResolver  uri.Resolver
	json         adapter.JSON
	palletAPIURL string
}

// NewFetcher creates a metadata fetcher using the given marketplace API base URL
func NewFetcher(httpClient adapter.HTTPClient, uriResolver uri.Resolver, json adapter.JSON, palletAPIURL string) Fetcher {
	if palletAPIURL == "" {
		palletAPIURL = domain.PALLET_API_URL
	}

	return &fetcher{
		httpClient:   httpClient,
		uriResolver:  uriResolver,
		json:         json,
		palletAPIURL: strings.TrimRight(palletAPIURL, "/"),
	}
}

func (f *fetcher) GetCollectionMetadata(ctx context.Context, address string) (*CollectionMetadata, error) {
	endpoint := fmt.Sprintf("%s/v2/nfts/%s/details", f.palletAPIURL, url.PathEscape(address))

	var metadata CollectionMetadata
	if err := f.httpClient.Get(ctx, endpoint, &metadata); err != nil {
		return nil, fmt.Errorf("%w: failed to fetch collection metadata for %s: %w", domain.ErrQuery, address, err)
	}

	return &metadata, nil
}

func (f *fetcher) GetNFTMetadata(ctx context.Context, tokenURI string) (*NFTMetadata, error) {
	if strings.HasPrefix(tokenURI, "data:") {
		return f.parseDataURI(tokenURI)
	}

	resolved, err := f.uriResolver.Resolve(ctx, tokenURI)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve token uri %s: %w", domain.ErrQuery, tokenURI, err)
	}

	logger.DebugCtx(ctx, "Fetching NFT metadata", zap.String("token_uri", tokenURI), zap.String("url", resolved))

	var metadata NFTMetadata
	if err := f.httpClient.Get(ctx, resolved, &metadata); err != nil {
		return nil, fmt.Errorf("%w: failed to fetch nft metadata from %s: %w", domain.ErrQuery, resolved, err)
	}

	return &metadata, nil
}

// parseDataURI parses an inline metadata document
// data:application/json;base64,<encoded data>
// or data:application/json,<json data>
func (f *fetcher) parseDataURI(tokenURI string) (*NFTMetadata, error) {
	mediaType, data, ok := strings.Cut(strings.TrimPrefix(tokenURI, "data:"), ",")
	if !ok {
		return nil, fmt.Errorf("%w: invalid data URI format", domain.ErrQuery)
	}

	if strings.HasSuffix(mediaType, ";base64") {
		decoded, err := base64.StdEncoding.DecodeString(data)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to decode base64 data URI: %w", domain.ErrQuery, err)
		}
		data = string(decoded)
	} else if unescaped, err := url.PathUnescape(data); err == nil {
		data = unescaped
	}

	var metadata NFTMetadata
	if err := f.json.Unmarshal([]byte(data), &metadata); err != nil {
		return nil, fmt.Errorf("%w: failed to parse data URI metadata: %w", domain.ErrQuery, err)
	}

	return &metadata, nil
}
