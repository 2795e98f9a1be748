// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

const (
	// IdentityHeader carries the authenticated identity ID, set by the
	// auth proxy in front of the service.
	IdentityHeader = "X-Kratos-Authenticated-Identity-Id"
	// AccountTypeHeader carries the account side (AGENT or PROVIDER) from
	// the identity traits.
	AccountTypeHeader = "X-Account-Type"
)

type userContextKeyType struct{}

var userContextKey userContextKeyType

// UserFromContext returns the authenticated user for the request, or the
// zero user when the request was anonymous.
func UserFromContext(ctx context.Context) types.AuthenticatedUser {
	if u, ok := ctx.Value(userContextKey).(types.AuthenticatedUser); ok {
		return u
	}
	return types.AuthenticatedUser{}
}

// ContextWithUser is exposed for tests and internal callers that need to
// impersonate a user outside the HTTP path.
func ContextWithUser(ctx context.Context, u types.AuthenticatedUser) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware resolves the forwarded identity headers into an
// AuthenticatedUser on the request context. Account types other than AGENT
// default to PROVIDER, matching how the identity schema treats the trait.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		user := types.AuthenticatedUser{
			ID:          r.Header.Get(IdentityHeader),
			AccountType: types.AccountTypeProvider,
		}
		if r.Header.Get(AccountTypeHeader) == string(types.AccountTypeAgent) {
			user.AccountType = types.AccountTypeAgent
		}

		ctx = ContextWithUser(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
