package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/rustaceans/internal/adapter"
	"github.com/feral-file/rustaceans/internal/api/middleware"
	"github.com/feral-file/rustaceans/internal/api/server"
	"github.com/feral-file/rustaceans/internal/config"
	"github.com/feral-file/rustaceans/internal/cranes"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/issuance"
	"github.com/feral-file/rustaceans/internal/logger"
	"github.com/feral-file/rustaceans/internal/media/rasterizer"
	"github.com/feral-file/rustaceans/internal/messaging"
	"github.com/feral-file/rustaceans/internal/metrics"
	"github.com/feral-file/rustaceans/internal/palette"
	"github.com/feral-file/rustaceans/internal/providers/ethereum"
	"github.com/feral-file/rustaceans/internal/providers/jetstream"
	"github.com/feral-file/rustaceans/internal/render"
	"github.com/feral-file/rustaceans/internal/store"
	"github.com/feral-file/rustaceans/internal/uri"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "rustaceans-api",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"service": "rustaceans-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Rustaceans API")

	contractAddr, owner, cranesAddr, err := cfg.Contract.Addresses()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid contract configuration", zap.Error(err))
	}
	pricing, err := cfg.Contract.Pricing()
	if err != nil {
		logger.FatalCtx(ctx, "Invalid pricing configuration", zap.Error(err))
	}

	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()
	initial := domain.NewContractState(owner, cranesAddr, pricing, clock.Now())

	// Store
	dataStore := openStore(ctx, cfg)
	state, err := dataStore.EnsureState(ctx, initial)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to initialize contract state", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Contract state loaded",
		logger.Address("owner", state.Owner),
		logger.Address("cranes", state.Cranes),
		zap.Uint64("total_supply", state.Supply.TotalIssued),
	)

	// Companion collection
	resolver, closeResolver := openResolver(ctx, cfg, state.Cranes)
	defer closeResolver()

	// Events
	publisher := openPublisher(ctx, cfg, jsonAdapter)
	defer publisher.Close()

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	renderer := render.NewRenderer(
		palette.NewKeccak(),
		adapter.NewCanonicalJSON(jsonAdapter),
		uri.NewCodec(adapter.NewBase64()),
	)
	controller := issuance.NewController(
		dataStore,
		cranes.NewGate(resolver),
		renderer,
		publisher,
		clock,
		m,
		contractAddr,
	)
	m.TotalSupply.Set(float64(state.Supply.TotalIssued))

	rast := rasterizer.NewRasterizer(adapter.NewResvgClient(), adapter.NewImageEncoder(), &rasterizer.Config{
		Width: cfg.Rasterizer.Width,
	})

	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}
	srv := server.New(serverConfig, controller, rast, m, reg)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.FatalCtx(shutdownCtx, "Server forced to shutdown", zap.Error(err))
	}

	logger.Info("API server stopped")
}

// openStore connects to postgres when a database host is configured and
// falls back to an in-process store otherwise
func openStore(ctx context.Context, cfg *config.APIConfig) store.Store {
	if cfg.Database.Host == "" {
		logger.WarnCtx(ctx, "Database not configured, state is kept in memory and lost on restart")
		return store.NewMemoryStore(nil)
	}

	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.Migrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	return store.NewPGStore(db)
}

// openResolver reads Crane balances over RPC when configured. Without an
// endpoint a local collection is deployed at the stored companion address
// and seeded from contract.local_cranes.
func openResolver(ctx context.Context, cfg *config.APIConfig, cranesAddr common.Address) (cranes.Resolver, func()) {
	if cfg.Ethereum.RPCURL == "" {
		holders, err := cfg.Contract.LocalCraneHolders()
		if err != nil {
			logger.FatalCtx(ctx, "Invalid local companion collection", zap.Error(err))
		}
		logger.WarnCtx(ctx, "Ethereum RPC not configured, using a local companion collection",
			logger.Address("cranes", cranesAddr),
			zap.Int("local_cranes", len(holders)),
		)
		return cranes.NewLocalRegistry(cranesAddr, holders), func() {}
	}

	dialCtx, cancel := context.WithTimeout(ctx, cfg.Ethereum.DialTimeout)
	defer cancel()

	client, err := adapter.NewEthClientDialer().Dial(dialCtx, cfg.Ethereum.RPCURL)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Ethereum RPC", zap.Error(err))
	}

	resolver, err := ethereum.NewResolver(client)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create companion resolver", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to Ethereum RPC")

	return resolver, client.Close
}

func openPublisher(ctx context.Context, cfg *config.APIConfig, jsonAdapter adapter.JSON) messaging.Publisher {
	if cfg.NATS.URL == "" {
		logger.WarnCtx(ctx, "NATS not configured, issuance events are not published")
		return messaging.NewNopPublisher()
	}

	publisher, err := jetstream.NewPublisher(jetstream.Config{
		URL:            cfg.NATS.URL,
		SubjectPrefix:  cfg.NATS.SubjectPrefix,
		MaxReconnects:  cfg.NATS.MaxReconnects,
		ReconnectWait:  cfg.NATS.ReconnectWait,
		ConnectionName: cfg.NATS.ConnectionName,
		PublishTimeout: cfg.NATS.PublishTimeout,
	}, adapter.NewNatsJetStream(), jsonAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to NATS", zap.String("url", cfg.NATS.URL))

	return publisher
}
