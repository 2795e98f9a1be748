// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

type EngineInterface interface {
	CanViewProject(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanEditProject(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanDeleteProject(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanChangeProjectCustomer(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	// CanManageProject is the legacy admin-only project gate.
	// Deprecated: use CanEditProject for new call sites.
	CanManageProject(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanUploadMedia(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanReadTeamChat(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanReadCustomerChat(context.Context, OrgContext, *types.Project, types.AuthenticatedUser) bool
	CanPostMessage(context.Context, OrgContext, *types.Project, Channel, types.AuthenticatedUser) bool

	CanManageCustomers(context.Context, OrgContext, types.AuthenticatedUser) bool
	CanViewCustomers(context.Context, OrgContext, types.AuthenticatedUser) bool
	CanViewInquiries(context.Context, OrgContext, types.AuthenticatedUser) bool
	CanConvertInquiry(context.Context, OrgContext, types.AuthenticatedUser) bool
	CanCreateOrder(context.Context, OrgContext, types.AuthenticatedUser) bool
}
