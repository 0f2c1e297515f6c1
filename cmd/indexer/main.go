package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"erc20_indexer/internal/app/port"
	"erc20_indexer/internal/app/provider"
	"erc20_indexer/internal/app/service"
	"erc20_indexer/internal/app/session"
	"erc20_indexer/internal/client"
	"erc20_indexer/internal/infrastructure/configloader"
	clientprovider "erc20_indexer/internal/infrastructure/network/client"
	networkdefinition "erc20_indexer/internal/infrastructure/network/definition"
	"erc20_indexer/internal/infrastructure/restapi"
	"erc20_indexer/internal/pkg/logger"
	"erc20_indexer/internal/pkg/metrics"
	"erc20_indexer/internal/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const defaultConfigPath = "config/config.yml"

func main() {
	// Загрузка конфигурации
	cfgPath := utils.GetEnv("CONFIG_PATH", defaultConfigPath)
	cfg, err := configloader.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to load configuration from %s: %v\n", cfgPath, err)
		os.Exit(1)
	}

	// zap пишет все логи, slog по умолчанию идет в тот же core
	zapLogger, err := logger.InitZap(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "CRITICAL: failed to initialize zap logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync() //nolint:errcheck

	logger.Info("ERC-20 indexer starting", "config", cfgPath, "log_level", cfg.Logging.Level)
	appLogger := logger.NewSlogAdapter()

	if cfg.Logging.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics.MustRegisterMetrics()

	networkProvider, err := networkdefinition.NewNetworkDefinitionProvider(appLogger, cfg.Network.Identifier, cfg.Indexer.BaseURL)
	if err != nil {
		zapLogger.Fatal("Failed to initialize network definitions", zap.Error(err))
	}
	network := networkProvider.Active()

	// Indexing API
	alchemyClient := client.NewAlchemyClient(
		network.IndexerBaseURL,
		cfg.Indexer.APIKey,
		time.Duration(cfg.Indexer.RequestTimeoutMillis)*time.Millisecond,
		zapLogger,
		cfg.Indexer.MaxBalancePages,
	)
	metadataProvider := provider.NewTokenMetadataProvider(
		alchemyClient,
		time.Duration(cfg.Indexer.MetadataCacheTTLMinutes)*time.Minute,
		appLogger,
	)
	zapLogger.Info("Indexing API client initialized", zap.String("network", network.Identifier))

	// ENS resolution through a JSON-RPC node, if one is configured
	var nameBackends port.NameBackendProvider
	if cfg.Ethereum.RPCURL != "" {
		nameBackends = clientprovider.NewEVMClientProvider(cfg, appLogger.Info, appLogger.Error)
	}

	walletProvider := provider.NewWalletProvider(
		cfg.Wallet.RPCURL,
		time.Duration(cfg.Wallet.RequestTimeoutMs)*time.Millisecond,
		appLogger,
	)

	// Сервисы
	resolver := service.NewNameResolver(nameBackends, network, appLogger)
	validator := service.NewAddressValidator(resolver, appLogger)
	fetcher := service.NewBalanceFetcher(alchemyClient, metadataProvider, cfg, appLogger)
	connector := service.NewWalletConnector(walletProvider, appLogger)
	queries := service.NewQueryService(validator, fetcher, time.Duration(cfg.Query.TimeoutSeconds)*time.Second, appLogger)

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	router := restapi.SetupRouter(
		cfg,
		zapLogger,
		restapi.NewBalanceHandler(queries, resolver, connector, zapLogger),
		restapi.NewPageHandler(session.NewStore(sessionTTL), queries, connector, cfg.Session.CookieName, sessionTTL, zapLogger),
		restapi.NewNetworkHandler(networkProvider, network),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		zapLogger.Info(fmt.Sprintf("Server starting on port %s", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("Server exiting")
}
