// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/RelayDigital/vrem-sub006/internal/db"
	"github.com/RelayDigital/vrem-sub006/internal/identity"
	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/pkg/authentication"
	"github.com/RelayDigital/vrem-sub006/pkg/crm"
	"github.com/RelayDigital/vrem-sub006/pkg/dispatch"
	"github.com/RelayDigital/vrem-sub006/pkg/metrics"
	"github.com/RelayDigital/vrem-sub006/pkg/project"
	"github.com/RelayDigital/vrem-sub006/pkg/status"
)

func NewRouter(
	projectAPI *project.API,
	dispatchAPI *dispatch.API,
	crmAPI *crm.API,
	identityMiddleware *identity.Middleware,
	authMiddleware *authentication.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identityMiddleware.HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	projectAPI.RegisterEndpoints(router)
	dispatchAPI.RegisterEndpoints(router)
	crmAPI.RegisterEndpoints(router)

	// Roster administration is a machine surface, it authenticates with
	// bearer tokens instead of the identity headers set by the auth proxy.
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate())
		dispatchAPI.RegisterRosterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
