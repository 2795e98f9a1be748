// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/config"
	"github.com/RelayDigital/vrem-sub006/internal/db"
	"github.com/RelayDigital/vrem-sub006/internal/identity"
	"github.com/RelayDigital/vrem-sub006/internal/kratos"
	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring/prometheus"
	"github.com/RelayDigital/vrem-sub006/internal/storage"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/pkg/authentication"
	"github.com/RelayDigital/vrem-sub006/pkg/crm"
	"github.com/RelayDigital/vrem-sub006/pkg/dispatch"
	"github.com/RelayDigital/vrem-sub006/pkg/project"
	"github.com/RelayDigital/vrem-sub006/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("marketplace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	authz := authorization.NewEngine(tracer, monitor, logger)

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewJWTAuthenticator(
			context.Background(),
			specs.OIDCIssuer,
			specs.JWKSURL,
			specs.AllowedSubjects,
			specs.RequiredScope,
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up JWT authentication: %v", err)
		}
	} else {
		verifier = authentication.NewNoopVerifier()
		logger.Info("Authentication is disabled, using noop verifier")
	}

	projectService := project.NewService(s, authz, tracer, monitor, logger)
	dispatchService := dispatch.NewService(s, authz, tracer, monitor, logger)
	crmService := crm.NewService(s, authz, kratosClient, tracer, monitor, logger)

	router := web.NewRouter(
		project.NewAPI(projectService, logger),
		dispatch.NewAPI(dispatchService, logger),
		crm.NewAPI(crmService, logger),
		identity.NewMiddleware(tracer, monitor, logger),
		authentication.NewMiddleware(verifier, tracer, monitor, logger),
		dbClient,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
