// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/careercanvas/internal/api"
	"github.com/tomtom215/careercanvas/internal/auth"
	"github.com/tomtom215/careercanvas/internal/authz"
	"github.com/tomtom215/careercanvas/internal/cache"
	"github.com/tomtom215/careercanvas/internal/catalog"
	"github.com/tomtom215/careercanvas/internal/chat"
	"github.com/tomtom215/careercanvas/internal/config"
	"github.com/tomtom215/careercanvas/internal/logging"
	"github.com/tomtom215/careercanvas/internal/metrics"
	"github.com/tomtom215/careercanvas/internal/recommend"
	"github.com/tomtom215/careercanvas/internal/store"
	"github.com/tomtom215/careercanvas/internal/supervisor"
	"github.com/tomtom215/careercanvas/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Sequential setup steps
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(cfg.Logging.ToLogging())

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("storage", cfg.Storage.Backend).
		Str("cache", cfg.Cache.Backend).
		Str("auth_mode", cfg.Security.AuthMode).
		Msg("Starting CareerCanvas")
	metrics.SetAppInfo(version)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := store.Open(ctx, cfg.Storage)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing store")
		}
	}()

	cat, err := catalog.Build(cfg.Catalog)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build career catalog")
	}
	logging.Info().Int("careers", cat.Len()).Uint64("seed", cfg.Catalog.Seed).Msg("Career catalog loaded")

	snapshots, err := cache.Open(ctx, cfg.Cache)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open snapshot cache")
	}

	assembler, err := recommend.NewAssembler(cfg.Recommend, cat, st, snapshots, logging.WithComponent("recommend"))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation assembler")
	}

	authSetup, err := auth.New(cfg.Security.AuthConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authentication")
	}
	defer func() {
		if err := authSetup.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	accounts, err := auth.NewService(st)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create account service")
	}
	if err := bootstrapAdmin(ctx, st, cfg.Security.AdminUsername, cfg.Security.AdminPassword); err != nil {
		logging.Fatal().Err(err).Msg("Failed to create admin account")
	}

	enforcer, err := authz.NewEnforcer(cfg.Authz)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize authorization")
	}

	chatService := chat.NewService(cfg.Chat, chat.NewCompleter(cfg.Chat), st, st, logging.WithComponent("chat"))
	if !chatService.LLMActive() {
		logging.Info().Msg("No LLM configured, chat uses canned career guidance")
	}

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*). Set explicit origins outside development.")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled (DISABLE_RATE_LIMIT=true)")
	}
	if cfg.Security.AuthMode == auth.ModeSession && cfg.Security.SessionStore == auth.SessionStoreMemory && !cfg.IsDevelopment() {
		logging.Warn().Msg("Sessions are kept in memory and are lost on restart. Consider SESSION_STORE=badger.")
	}

	handler := api.NewHandler(api.Dependencies{
		Catalog:   cat,
		Assembler: assembler,
		Store:     st,
		Accounts:  accounts,
		Authn:     authSetup.Authenticator,
		Enforcer:  enforcer,
		Chat:      chatService,
		Version:   version,
	})
	sec := cfg.Security
	router := api.NewRouter(
		handler,
		auth.NewMiddleware(authSetup.Authenticator),
		authz.NewMiddleware(enforcer, api.WriteError),
		api.NewChiMiddlewareFromSecurity(sec.CORSOrigins, sec.RateLimitReqs, sec.AuthRateLimitReqs,
			sec.WriteRateLimitReqs, sec.RateLimitWindow, sec.RateLimitDisabled),
	)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	if authSetup.Sessions != nil {
		tree.AddMaintenanceService(auth.NewSessionCleanupService(authSetup.Sessions, 0))
	}
	if janitor, ok := snapshots.(suture.Service); ok {
		tree.AddMaintenanceService(janitor)
	}
	tree.AddMaintenanceService(chatService.LimiterJanitor())
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Waiting for services to stop")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}
	if closer, ok := snapshots.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing snapshot cache")
		}
	}
	logging.Info().Msg("CareerCanvas stopped")
}
