// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

var _ EngineInterface = (*Engine)(nil)

// Engine is the instrumented front of the rule set for service call sites.
// The rules themselves are package-level pure functions; Engine only adds
// spans and security audit logging around denials.
type Engine struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (e *Engine) deny(user types.AuthenticatedUser, operation string, allowed bool) bool {
	if !allowed {
		e.logger.Security().AuthzFailure(user.ID, operation)
	}
	return allowed
}

func (e *Engine) CanViewProject(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanViewProject")
	defer span.End()

	return e.deny(u, "project_view", CanViewProject(oc, p, u))
}

func (e *Engine) CanEditProject(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanEditProject")
	defer span.End()

	return e.deny(u, "project_edit", CanEditProject(oc, p, u))
}

func (e *Engine) CanDeleteProject(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanDeleteProject")
	defer span.End()

	return e.deny(u, "project_delete", CanDeleteProject(oc, p, u))
}

func (e *Engine) CanChangeProjectCustomer(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanChangeProjectCustomer")
	defer span.End()

	return e.deny(u, "project_change_customer", CanChangeProjectCustomer(oc, p, u))
}

func (e *Engine) CanManageProject(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanManageProject")
	defer span.End()

	return e.deny(u, "project_manage_legacy", CanManageProject(oc, p, u))
}

func (e *Engine) CanUploadMedia(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanUploadMedia")
	defer span.End()

	return e.deny(u, "media_upload", CanUploadMedia(oc, p, u))
}

func (e *Engine) CanReadTeamChat(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanReadTeamChat")
	defer span.End()

	return e.deny(u, "team_chat_read", CanReadTeamChat(oc, p, u))
}

func (e *Engine) CanReadCustomerChat(ctx context.Context, oc OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanReadCustomerChat")
	defer span.End()

	return e.deny(u, "customer_chat_read", CanReadCustomerChat(oc, p, u))
}

func (e *Engine) CanPostMessage(ctx context.Context, oc OrgContext, p *types.Project, channel Channel, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanPostMessage")
	defer span.End()

	return e.deny(u, "message_post", CanPostMessage(oc, p, channel, u))
}

func (e *Engine) CanManageCustomers(ctx context.Context, oc OrgContext, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanManageCustomers")
	defer span.End()

	return e.deny(u, "customers_manage", CanManageCustomers(oc))
}

func (e *Engine) CanViewCustomers(ctx context.Context, oc OrgContext, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanViewCustomers")
	defer span.End()

	return e.deny(u, "customers_view", CanViewCustomers(oc))
}

func (e *Engine) CanViewInquiries(ctx context.Context, oc OrgContext, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanViewInquiries")
	defer span.End()

	return e.deny(u, "inquiries_view", CanViewInquiries(oc))
}

func (e *Engine) CanConvertInquiry(ctx context.Context, oc OrgContext, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanConvertInquiry")
	defer span.End()

	return e.deny(u, "inquiry_convert", CanConvertInquiry(oc))
}

func (e *Engine) CanCreateOrder(ctx context.Context, oc OrgContext, u types.AuthenticatedUser) bool {
	_, span := e.tracer.Start(ctx, "authorization.Engine.CanCreateOrder")
	defer span.End()

	return e.deny(u, "order_create", CanCreateOrder(oc))
}

func NewEngine(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Engine {
	e := new(Engine)

	e.tracer = tracer
	e.monitor = monitor
	e.logger = logger

	return e
}
