package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/landsight/prospect-api/config"
	redisadapter "github.com/landsight/prospect-api/internal/adapters/redis"
	"github.com/landsight/prospect-api/internal/data"
	"github.com/landsight/prospect-api/internal/devseed"
	"github.com/landsight/prospect-api/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Assets     *service.AssetService
	Submarkets *service.SubmarketService
	MapView    *service.MapViewService
	MapPrefs   *service.MapPrefsService
	Demo       *service.DemoService
	Auth       *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// serviceRepositories groups data adapters backing service ports.
type serviceRepositories struct {
	DB            *sql.DB
	Redis         redis.UniversalClient
	AssetRepo     *data.AssetRepo
	SubmarketRepo *data.SubmarketRepo
	DemoRepo      *data.DemoRepo
	FlagStore     *redisadapter.FlagStore
	PrefsStore    *redisadapter.PrefsStore
}

// buildRepositories builds repositories backing service ports; no business rules here.
func buildRepositories(db *sql.DB, rc redis.UniversalClient) *serviceRepositories {
	repos := &serviceRepositories{
		DB:            db,
		Redis:         rc,
		AssetRepo:     data.NewAssetRepo(db),
		SubmarketRepo: data.NewSubmarketRepo(db),
		DemoRepo:      data.NewDemoRepo(db),
	}
	if rc != nil {
		repos.FlagStore = redisadapter.NewFlagStore(rc)
		repos.PrefsStore = redisadapter.NewPrefsStore(rc)
	}
	return repos
}

// NewServices wires business services from repositories and configuration.
func NewServices(deps *ServiceDeps) ServiceContainer {
	if deps == nil {
		return ServiceContainer{}
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := deps.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	repos := buildRepositories(deps.DB, deps.RedisClient)

	demoOpts := service.DemoServiceOptions{
		ResetRepo:    repos.DemoRepo,
		FlagKey:      appCfg.Demo.FlagKey,
		ResetTimeout: appCfg.Demo.ResetTimeout,
		Logger:       logger,
	}
	if repos.FlagStore != nil {
		demoOpts.Flags = repos.FlagStore
	}

	return ServiceContainer{
		Assets:     service.NewAssetService(service.AssetServiceOptions{AssetRepo: repos.AssetRepo}),
		Submarkets: service.NewSubmarketService(service.SubmarketServiceOptions{SubmarketRepo: repos.SubmarketRepo}),
		MapView: service.NewMapViewService(service.MapViewServiceOptions{
			AssetRepo:     repos.AssetRepo,
			SubmarketRepo: repos.SubmarketRepo,
		}),
		MapPrefs: newMapPrefsService(repos),
		Demo:     service.NewDemoService(demoOpts),
		Auth: BuildAuthService(AuthConfig{
			Auth:        appCfg.Auth,
			RedisClient: deps.RedisClient,
			Logger:      logger,
		}),
	}
}

func newMapPrefsService(repos *serviceRepositories) *service.MapPrefsService {
	if repos.PrefsStore == nil {
		return nil
	}
	return service.NewMapPrefsService(service.MapPrefsServiceOptions{Store: repos.PrefsStore})
}

// SeedDemoData reseeds the demo dataset on startup when demo mode is
// enabled by configuration. Seeding failures are fatal only for the seed,
// not the server: a broken dataset is recoverable through the reset endpoint.
func SeedDemoData(ctx context.Context, services ServiceContainer, logger *slog.Logger) {
	if services.Demo == nil {
		return
	}
	if err := services.Demo.Reset(ctx); err != nil {
		if logger != nil {
			logger.WarnContext(ctx, "demo seed failed", "error", err)
		}
		return
	}
	services.Demo.Rearm()
	if logger != nil {
		logger.InfoContext(ctx, "demo dataset seeded",
			"submarkets", len(devseed.SubmarketNames()),
			"assets", len(devseed.Assets()),
		)
	}
}

// ServiceOrchestrationConfig contains configuration for running the server.
type ServiceOrchestrationConfig struct {
	Config      *config.AppConfig
	Services    ServiceContainer
	DB          *sql.DB
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

const (
	// shutdownWaitTimeout is the maximum time to wait for services to stop gracefully.
	shutdownWaitTimeout = 15 * time.Second
)

// RunServicesWithShutdown starts the HTTP server and manages its lifecycle.
// This function blocks until a shutdown signal is received.
func RunServicesWithShutdown(cfg *ServiceOrchestrationConfig) error {
	if cfg == nil {
		return errors.New("service orchestration config is required")
	}
	if cfg.Config == nil {
		return errors.New("service orchestration config missing AppConfig")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	server := StartHTTPServer(&HTTPServerConfig{
		Config:   cfg.Config,
		Services: cfg.Services,
		Logger:   logger,
	})

	return waitForShutdown(shutdownConfig{
		ctx:        ctx,
		cancel:     cancel,
		httpServer: server,
		logger:     logger,
	})
}

// shutdownConfig contains dependencies for graceful shutdown.
type shutdownConfig struct {
	ctx        context.Context
	cancel     context.CancelFunc
	httpServer *http.Server
	logger     *slog.Logger
}

// waitForShutdown waits for a shutdown signal.
func waitForShutdown(cfg shutdownConfig) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	<-quit
	cfg.logger.Info("shutting down services...")
	cfg.cancel()

	if cfg.httpServer == nil {
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWaitTimeout)
	defer cancel()

	return ShutdownHTTPServer(ShutdownConfig{
		Context: shutdownCtx,
		Server:  cfg.httpServer,
		Logger:  cfg.logger,
	})
}
