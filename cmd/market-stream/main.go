package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/theanh098/sei-market-oxide/internal/adapter"
	"github.com/theanh098/sei-market-oxide/internal/api/middleware"
	"github.com/theanh098/sei-market-oxide/internal/api/server"
	"github.com/theanh098/sei-market-oxide/internal/config"
	"github.com/theanh098/sei-market-oxide/internal/domain"
	"github.com/theanh098/sei-market-oxide/internal/handler"
	"github.com/theanh098/sei-market-oxide/internal/logger"
	"github.com/theanh098/sei-market-oxide/internal/metadata"
	"github.com/theanh098/sei-market-oxide/internal/providers/cosmos"
	"github.com/theanh098/sei-market-oxide/internal/ratelimit"
	"github.com/theanh098/sei-market-oxide/internal/reconciler"
	"github.com/theanh098/sei-market-oxide/internal/registry"
	"github.com/theanh098/sei-market-oxide/internal/replay"
	"github.com/theanh098/sei-market-oxide/internal/store"
	"github.com/theanh098/sei-market-oxide/internal/store/schema"
	"github.com/theanh098/sei-market-oxide/internal/stream"
	"github.com/theanh098/sei-market-oxide/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	migrate    = flag.Bool("migrate", false, "Create or update the database tables before starting")
	replayFrom = flag.Int64("replay-from", -1, "Replay committed transactions from this height and exit instead of subscribing")
	replayTo   = flag.Int64("replay-to", 0, "Last height to replay, 0 for the latest block")
	resume     = flag.Bool("replay-resume", false, "Continue a replay from its recorded cursor")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadStreamConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	protocols, err := cfg.Protocols()
	if err != nil {
		panic(fmt.Sprintf("Invalid streams: %v", err))
	}

	// Cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service":  "market-stream",
			"chain_id": cfg.Chain.ChainID,
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting market stream", zap.Any("streams", protocols))

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}
	if cfg.Database.ReadHost != "" {
		if err := store.UseReadReplica(db, cfg.Database.ReadDSN()); err != nil {
			logger.FatalCtx(ctx, "Failed to register read replica", zap.Error(err), zap.String("read_host", cfg.Database.ReadHost))
		}
		logger.InfoCtx(ctx, "Registered read replica", zap.String("read_host", cfg.Database.ReadHost))
	}
	if err := store.ConfigureConnectionPool(db,
		cfg.Database.MaxOpenConns,
		cfg.Database.MaxIdleConns,
		cfg.Database.ConnMaxLifetime,
		cfg.Database.ConnMaxIdleTime,
	); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database")

	if *migrate {
		if err := db.AutoMigrate(schema.Models()...); err != nil {
			logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
		}
		logger.InfoCtx(ctx, "Database migrated")
	}

	// Initialize store
	dataStore := store.NewPGStore(db)
	cursorStore := store.NewCursorStore(db)

	// Initialize adapters
	clockAdapter := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	httpClient := ratelimit.NewHTTPClient(adapter.NewHTTPClient(cfg.HTTP.Timeout), ratelimit.Config{
		RequestsPerSecond: cfg.HTTP.RequestsPerSecond,
		Burst:             cfg.HTTP.Burst,
	})
	wsDialer := adapter.NewWebSocketDialer(10 * time.Second)

	cometClient, err := adapter.NewCometClient(cfg.Chain.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create RPC client", zap.Error(err), zap.String("rpc_url", cfg.Chain.RPCURL))
	}

	// Initialize chain, metadata and reconciliation services
	chainClient := cosmos.NewClient(cometClient, jsonAdapter, cfg.Marketplace.PalletContractAddress)
	uriResolver := uri.NewResolver(httpClient, &uri.Config{
		IPFSGateways:    cfg.URI.IPFSGateways,
		ArweaveGateways: cfg.URI.ArweaveGateways,
	})
	metadataFetcher := metadata.NewFetcher(httpClient, uriResolver, jsonAdapter, cfg.Marketplace.PalletAPIURL)
	stateReconciler := reconciler.New(dataStore, chainClient, metadataFetcher)

	var blacklist registry.BlacklistRegistry
	if cfg.Marketplace.BlacklistPath != "" {
		blacklist, err = registry.LoadBlacklist(adapter.NewFileSystem(), jsonAdapter, cfg.Marketplace.BlacklistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load blacklist", zap.Error(err), zap.String("path", cfg.Marketplace.BlacklistPath))
		}
	}

	// One subscription stream per protocol
	streams := make([]stream.Stream, 0, len(protocols))
	for _, protocol := range protocols {
		var protocolHandler handler.ProtocolHandler
		switch protocol {
		case domain.ProtocolCw721:
			protocolHandler = handler.NewCw721Handler(stateReconciler, dataStore, clockAdapter, jsonAdapter)
		case domain.ProtocolPallet:
			protocolHandler = handler.NewPalletHandler(stateReconciler, chainClient, dataStore, clockAdapter, jsonAdapter,
				handler.PalletConfig{Denom: cfg.Marketplace.Denom})
		}

		handleTx := registry.Filter(blacklist, cfg.Chain.ChainID, protocolHandler.HandleTransaction)

		query, err := cosmos.SubscriptionQuery(protocol, cfg.Marketplace.PalletContractAddress)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to build subscription query", zap.Error(err), zap.String("protocol", string(protocol)))
		}

		if *replayFrom >= 0 {
			replayer := replay.NewReplayer(replay.Config{
				Protocol:   protocol,
				Query:      query,
				FromHeight: *replayFrom,
				ToHeight:   *replayTo,
				MaxRetries: 5,
				Resume:     *resume,
			}, chainClient, cursorStore, handleTx)
			if _, err := replayer.Run(ctx); err != nil {
				logger.FatalCtx(ctx, "Replay failed", zap.Error(err), zap.String("protocol", string(protocol)))
			}
			continue
		}

		subscriber, err := cosmos.NewSubscriber(cosmos.SubscriberConfig{
			WebSocketURL: cfg.Chain.WebSocketURL,
			Query:        query,
			Protocol:     protocol,
		}, wsDialer, jsonAdapter)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create subscriber", zap.Error(err), zap.String("protocol", string(protocol)))
		}

		streams = append(streams, stream.NewStream(subscriber, handleTx, stream.Config{
			Protocol:        protocol,
			InitialInterval: cfg.Retry.InitialInterval,
			MaxInterval:     cfg.Retry.MaxInterval,
			Multiplier:      cfg.Retry.Multiplier,
			ResetAfter:      cfg.Retry.ResetAfter,
		}, clockAdapter))
	}

	if *replayFrom >= 0 {
		logger.InfoCtx(ctx, "Replay complete")
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		return
	}

	// Start the ops API server
	var apiServer *server.Server
	if cfg.Server.Enabled {
		apiServer = server.New(server.Config{
			Debug:        cfg.Debug,
			Host:         cfg.Server.Host,
			Port:         cfg.Server.Port,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
			IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
			Auth: middleware.AuthConfig{
				APIKeys:      cfg.Server.APIKeys,
				JWTPublicKey: cfg.Server.JWTPublicKey,
			},
		}, dataStore)

		go func() {
			if err := apiServer.Start(); err != nil {
				logger.ErrorCtx(ctx, err, zap.String("component", "api"))
				stop()
			}
		}()
	}

	// Run every stream until shutdown or the first fatal error
	runErr := stream.RunAll(ctx, streams...)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		logger.ErrorCtx(ctx, runErr, zap.String("component", "stream"))
	}
	logger.Info("Shutting down market stream")

	if apiServer != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := apiServer.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, zap.String("component", "api"))
		}
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Market stream stopped")

	if runErr != nil {
		logger.Flush(2 * time.Second)
		os.Exit(1)
	}
}
