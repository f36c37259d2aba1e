package main

//	@title						Inkwell API
//	@version					0.1.0
//	@description				Multi-tenant blog theming and rendering platform API.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: "Bearer {token}"

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/InkwellLabs/inkwell/api/swagger"
	"github.com/InkwellLabs/inkwell/internal/auth"
	"github.com/InkwellLabs/inkwell/internal/config"
	"github.com/InkwellLabs/inkwell/internal/content"
	"github.com/InkwellLabs/inkwell/internal/event"
	"github.com/InkwellLabs/inkwell/internal/registry"
	"github.com/InkwellLabs/inkwell/internal/renderer"
	"github.com/InkwellLabs/inkwell/internal/seed"
	"github.com/InkwellLabs/inkwell/internal/server"
	"github.com/InkwellLabs/inkwell/internal/store"
	"github.com/InkwellLabs/inkwell/internal/tenant"
	"github.com/InkwellLabs/inkwell/internal/themes"
	"github.com/InkwellLabs/inkwell/internal/version"
	"github.com/InkwellLabs/inkwell/internal/ws"
	"go.uber.org/zap"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Println(version.Info())
		return
	}

	configPath := flag.String("config", "", "path to configuration file")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	// Load configuration (before logger, so log level/format can be configured).
	viperCfg, err := server.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger from configuration.
	logger, err := config.NewLogger(viperCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Inkwell server starting", zap.String("version", version.Short()))

	if f := viperCfg.ConfigFileUsed(); f != "" {
		logger.Info("configuration loaded",
			zap.String("component", "config"),
			zap.String("source", f),
		)
	} else {
		logger.Warn("no configuration file found, using defaults",
			zap.String("component", "config"),
		)
	}

	// Open database
	dbPath := viperCfg.GetString("database.path")
	if dbPath == "" {
		dbPath = "inkwell.db"
	}
	db, err := store.New(dbPath)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := db.CheckVersion(ctx, version.Short()); err != nil {
		logger.Fatal("schema version check failed", zap.Error(err))
	}

	logger.Info("database initialized",
		zap.String("component", "database"),
		zap.String("path", dbPath),
	)

	// Shared services.
	bus := event.NewBus(logger.Named("event"))

	// Theme registry with the built-in themes.
	reg := registry.New(logger.Named("registry"))
	if err := themes.RegisterAll(reg); err != nil {
		logger.Fatal("failed to register built-in themes", zap.Error(err))
	}
	logger.Info("theme registry created",
		zap.String("component", "registry"),
		zap.Int("themes", len(reg.All())),
	)

	// Stores.
	tenantStore, err := tenant.NewStore(ctx, db)
	if err != nil {
		logger.Fatal("failed to initialize tenant store", zap.Error(err))
	}
	contentStore, err := content.NewStore(ctx, db)
	if err != nil {
		logger.Fatal("failed to initialize content store", zap.Error(err))
	}

	// Demo content for fresh installs.
	if viperCfg.GetBool("seed.demo") {
		slug := viperCfg.GetString("seed.tenant_slug")
		if err := seed.DemoTenant(ctx, tenantStore, contentStore, slug, logger.Named("seed")); err != nil {
			logger.Error("failed to seed demo tenant", zap.Error(err))
		}
	}

	// Auth.
	jwtSecret := viperCfg.GetString("auth.jwt_secret")
	if jwtSecret == "" {
		// Generate an ephemeral secret -- tokens won't survive restarts.
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			logger.Fatal("failed to generate JWT secret", zap.Error(err))
		}
		jwtSecret = hex.EncodeToString(b)
		logger.Info("using auto-generated JWT secret (set auth.jwt_secret in config to persist sessions across restarts)",
			zap.String("component", "auth"),
		)
	}
	accessTTL := viperCfg.GetDuration("auth.access_token_ttl")
	if accessTTL == 0 {
		accessTTL = time.Hour
	}
	tokens := auth.NewTokenService([]byte(jwtSecret), accessTTL)
	authHandler := auth.NewHandler(tokens, viperCfg.GetString("auth.admin_password_hash"), logger.Named("auth"))
	logger.Info("auth service initialized",
		zap.String("component", "auth"),
		zap.Duration("access_token_ttl", accessTTL),
	)

	// Handlers.
	themeHandler := registry.NewHandler(reg, logger.Named("themes"))
	tenantHandler := tenant.NewHandler(tenantStore, reg, bus, logger.Named("tenant"))
	wsHandler := ws.NewHandler(bus, logger.Named("ws"))
	pageHandler := renderer.NewHandler(
		renderer.New(reg, logger.Named("renderer")),
		reg, tenantStore, contentStore, bus,
		logger.Named("renderer"),
	)

	// HTTP server.
	addr := viperCfg.GetString("server.host") + ":" + viperCfg.GetString("server.port")
	if addr == ":" {
		addr = "0.0.0.0:8080"
	}
	devMode := viperCfg.GetBool("server.dev_mode")
	readyCheck := server.ReadinessChecker(func(ctx context.Context) error {
		return db.DB().PingContext(ctx)
	})
	srv := server.New(addr, logger.Named("server"), readyCheck, authHandler, devMode,
		themeHandler, tenantHandler, wsHandler, pageHandler)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	logger.Info("Inkwell server ready", zap.String("addr", addr))

	// Print human-readable banner for users watching docker logs.
	port := viperCfg.GetString("server.port")
	if port == "" {
		port = "8080"
	}
	fmt.Fprintf(os.Stderr, "\n  Inkwell %s is ready!\n  Open http://localhost:%s/sites/demo in your browser.\n\n", version.Short(), port)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh

	logger.Info("received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("Inkwell server stopped")
}
