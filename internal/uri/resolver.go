package uri

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/logger"
)

// Config holds configuration for the URI resolver
type Config struct {
	// IPFSGateways is the list of IPFS gateways to try, in order
	IPFSGateways []string
	// ArweaveGateways is the list of Arweave gateways to try, in order
	ArweaveGateways []string
}

// Resolver defines the interface for resolving token URIs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks -mock_names=Resolver=MockURIResolver
type Resolver interface {
	// Resolve resolves the URI to a fetchable URL.
	// ipfs:// and ar:// URIs, and IPFS gateway URLs, are mapped onto the first
	// configured gateway that answers a HEAD request with 200.
	// Any other URI is returned unchanged.
	Resolve(ctx context.Context, uri string) (string, error)
}

type resolver struct {
	httpClient adapter.HTTPClient
	config     *Config
}

func NewResolver(httpClient adapter.HTTPClient, config *Config) Resolver {
	return &resolver{
		httpClient: httpClient,
		config:     config,
	}
}

func (r *resolver) Resolve(ctx context.Context, uri string) (string, error) {
	// Handle IPFS URLs
	if cid, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		cid = strings.TrimPrefix(cid, "ipfs/")
		return r.resolveGateway(ctx, "IPFS", r.config.IPFSGateways, "ipfs/"+cid)
	}

	// Handle Arweave URLs
	if txID, ok := strings.CutPrefix(uri, "ar://"); ok {
		return r.resolveGateway(ctx, "Arweave", r.config.ArweaveGateways, txID)
	}

	// Already a gateway URL on one of ours
	if _, path, ok := strings.Cut(uri, "/ipfs/"); ok {
		for _, gw := range r.config.IPFSGateways {
			if strings.HasPrefix(uri, strings.TrimRight(gw, "/")+"/ipfs/") {
				return uri, nil
			}
		}
		return r.resolveGateway(ctx, "IPFS", r.config.IPFSGateways, "ipfs/"+path)
	}

	// Regular HTTP(S) URL
	return uri, nil
}

// resolveGateway returns the first gateway URL for path that responds with 200
func (r *resolver) resolveGateway(ctx context.Context, kind string, gateways []string, path string) (string, error) {
	if len(gateways) == 0 {
		return "", fmt.Errorf("no %s gateways configured", kind)
	}

	logger.DebugCtx(ctx, "Resolving gateway URI", zap.String("kind", kind), zap.String("path", path), zap.Int("gateways", len(gateways)))

	for _, gw := range gateways {
		url := fmt.Sprintf("%s/%s", strings.TrimRight(gw, "/"), path)

		resp, err := r.httpClient.Head(ctx, url)
		if err != nil {
			logger.WarnCtx(ctx, "Gateway unreachable", zap.Error(err), zap.String("url", url))
			continue
		}
		if err := resp.Body.Close(); err != nil {
			logger.WarnCtx(ctx, "failed to close response body", zap.Error(err), zap.String("url", url))
		}

		if resp.StatusCode == http.StatusOK {
			return url, nil
		}
	}

	return "", fmt.Errorf("no working %s gateway found for: %s", kind, path)
}
