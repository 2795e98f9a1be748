// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package authorization holds the server-authoritative permission rules for
// projects, chat channels and CRM records. Every operation is a pure, total
// function: absence of permission is false, never an error. Call sites decide
// whether false becomes a 403 or a hidden UI element.
package authorization

import (
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// Channel is a project chat channel.
type Channel string

const (
	ChannelTeam     Channel = "team"
	ChannelCustomer Channel = "customer"
)

// isLinkedCustomer reports whether the user is the AGENT account linked as
// the project's customer. This is the only sanctioned bypass of the
// org-scoping rule and must be evaluated before the org-match check in
// every operation that honors it.
func isLinkedCustomer(p *types.Project, u types.AuthenticatedUser) bool {
	return u.AccountType == types.AccountTypeAgent &&
		u.ID != "" &&
		p != nil &&
		p.Customer != nil &&
		p.Customer.UserID == u.ID
}

func assignedTo(assignee *string, userID string) bool {
	return assignee != nil && userID != "" && *assignee == userID
}

// projectGate applies the two checks shared by every org-scoped project
// operation: the org-scope invariant and the personal-org collapse. When
// decided is true the verdict is final and tier logic must not run.
func projectGate(ctx OrgContext, p *types.Project) (verdict, decided bool) {
	if p == nil || p.OrgID != ctx.Org.ID {
		return false, true
	}
	if ctx.IsPersonalOrg {
		return ctx.EffectiveRole == RolePersonalOwner, true
	}
	return false, false
}

// orgGate is projectGate for operations that take no project input.
func orgGate(ctx OrgContext) (verdict, decided bool) {
	if ctx.IsPersonalOrg {
		return ctx.EffectiveRole == RolePersonalOwner, true
	}
	return false, false
}

func CanViewProject(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if isLinkedCustomer(p, u) {
		return true
	}
	if v, done := projectGate(ctx, p); done {
		return v
	}

	switch ctx.EffectiveRole {
	case RolePersonalOwner, RoleOwner, RoleAdmin, RoleProjectManager:
		return true
	case RoleTechnician:
		return assignedTo(p.TechnicianID, u.ID)
	case RoleEditor:
		return assignedTo(p.EditorID, u.ID)
	default:
		return false
	}
}

// CanEditProject covers reassigning, rescheduling, status changes and notes.
// Project managers may only edit projects they manage.
func CanEditProject(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if v, done := projectGate(ctx, p); done {
		return v
	}

	if isAdminTier(ctx.EffectiveRole) {
		return true
	}
	if ctx.EffectiveRole == RoleProjectManager {
		return assignedTo(p.ProjectManagerID, u.ID)
	}
	return false
}

func CanDeleteProject(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if v, done := projectGate(ctx, p); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole)
}

func CanChangeProjectCustomer(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if v, done := projectGate(ctx, p); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole)
}

// CanManageProject is the legacy admin-only gate that predates per-project
// manager assignments. It deliberately ignores RoleProjectManager even
// though CanEditProject grants PMs conditional edit rights; remaining call
// sites depend on that difference, so the two must not be merged without
// auditing every caller.
//
// Deprecated: new call sites should use CanEditProject.
func CanManageProject(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if v, done := projectGate(ctx, p); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole)
}

// CanUploadMedia is CanEditProject plus assignee self-upload: an assigned
// technician or editor may always deliver media to their own project.
func CanUploadMedia(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if v, done := projectGate(ctx, p); done {
		return v
	}

	if isAdminTier(ctx.EffectiveRole) {
		return true
	}
	switch ctx.EffectiveRole {
	case RoleProjectManager:
		return assignedTo(p.ProjectManagerID, u.ID)
	case RoleTechnician:
		return assignedTo(p.TechnicianID, u.ID)
	case RoleEditor:
		return assignedTo(p.EditorID, u.ID)
	default:
		return false
	}
}

// Team chat is internal to the org: the linked customer never sees it.
func CanReadTeamChat(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if v, done := projectGate(ctx, p); done {
		return v
	}

	switch ctx.EffectiveRole {
	case RolePersonalOwner, RoleOwner, RoleAdmin, RoleProjectManager:
		return true
	case RoleTechnician:
		return assignedTo(p.TechnicianID, u.ID)
	case RoleEditor:
		return assignedTo(p.EditorID, u.ID)
	default:
		return false
	}
}

func CanWriteTeamChat(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	return CanReadTeamChat(ctx, p, u)
}

func CanReadCustomerChat(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if isLinkedCustomer(p, u) {
		return true
	}
	if v, done := projectGate(ctx, p); done {
		return v
	}

	switch ctx.EffectiveRole {
	case RolePersonalOwner, RoleOwner, RoleAdmin, RoleProjectManager:
		return true
	default:
		return false
	}
}

func CanWriteCustomerChat(ctx OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	if isLinkedCustomer(p, u) {
		return true
	}
	if v, done := projectGate(ctx, p); done {
		return v
	}

	if isAdminTier(ctx.EffectiveRole) {
		return true
	}
	if ctx.EffectiveRole == RoleProjectManager {
		return assignedTo(p.ProjectManagerID, u.ID)
	}
	return false
}

// CanPostMessage dispatches on channel. The linked-customer exception is
// checked first and short-circuits the dispatch, but it only ever applies
// to the customer channel: a linked customer never reaches team chat.
func CanPostMessage(ctx OrgContext, p *types.Project, channel Channel, u types.AuthenticatedUser) bool {
	if channel == ChannelCustomer && isLinkedCustomer(p, u) {
		return true
	}

	switch channel {
	case ChannelTeam:
		return CanWriteTeamChat(ctx, p, u)
	case ChannelCustomer:
		return CanWriteCustomerChat(ctx, p, u)
	default:
		return false
	}
}

// CanManageCustomers gates CRM writes. Project managers are excluded by
// design: CRM records are commercial data owned by the admin tier.
func CanManageCustomers(ctx OrgContext) bool {
	if v, done := orgGate(ctx); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole)
}

func CanViewCustomers(ctx OrgContext) bool {
	if v, done := orgGate(ctx); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole) || ctx.EffectiveRole == RoleProjectManager
}

func CanViewInquiries(ctx OrgContext) bool {
	if v, done := orgGate(ctx); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole) || ctx.EffectiveRole == RoleProjectManager
}

func CanConvertInquiry(ctx OrgContext) bool {
	if v, done := orgGate(ctx); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole) || ctx.EffectiveRole == RoleProjectManager
}

func CanCreateOrder(ctx OrgContext) bool {
	if v, done := orgGate(ctx); done {
		return v
	}
	return isAdminTier(ctx.EffectiveRole) || ctx.EffectiveRole == RoleProjectManager
}
