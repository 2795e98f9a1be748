// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package permissions is the client-facing mirror of the authorization
// rules. The web client renders from the verdict snapshots this package
// produces; the server engine in internal/authorization stays the security
// boundary, and any divergence between the two is a defect. The rules here
// are kept declarative so the copy shipped to the client bundle can be
// generated from the same table.
package permissions

import (
	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

type Operation string

const (
	OpViewProject           Operation = "viewProject"
	OpEditProject           Operation = "editProject"
	OpDeleteProject         Operation = "deleteProject"
	OpChangeProjectCustomer Operation = "changeProjectCustomer"
	// OpManageProject is the legacy admin-only gate kept for call sites
	// that still render against it.
	OpManageProject     Operation = "manageProject"
	OpUploadMedia       Operation = "uploadMedia"
	OpReadTeamChat      Operation = "readTeamChat"
	OpWriteTeamChat     Operation = "writeTeamChat"
	OpReadCustomerChat  Operation = "readCustomerChat"
	OpWriteCustomerChat Operation = "writeCustomerChat"
	OpManageCustomers   Operation = "manageCustomers"
	OpViewCustomers     Operation = "viewCustomers"
	OpViewInquiries     Operation = "viewInquiries"
	OpConvertInquiry    Operation = "convertInquiry"
	OpCreateOrder       Operation = "createOrder"
)

// Verdicts is the full permission snapshot for one resource, one payload
// per render.
type Verdicts map[Operation]bool

type grant int

const (
	grantNever grant = iota
	grantOrgWide
	grantAssigned
)

// rule is one row of the declarative permission table.
type rule struct {
	projectScoped bool
	// linkedCustomer marks operations honoring the cross-tenant customer
	// exception; it is evaluated before the org-scope check.
	linkedCustomer bool

	admin          bool
	projectManager grant
	technician     grant
	editor         grant
}

var ruleTable = map[Operation]rule{
	OpViewProject:           {projectScoped: true, linkedCustomer: true, admin: true, projectManager: grantOrgWide, technician: grantAssigned, editor: grantAssigned},
	OpEditProject:           {projectScoped: true, admin: true, projectManager: grantAssigned},
	OpDeleteProject:         {projectScoped: true, admin: true},
	OpChangeProjectCustomer: {projectScoped: true, admin: true},
	OpManageProject:         {projectScoped: true, admin: true},
	OpUploadMedia:           {projectScoped: true, admin: true, projectManager: grantAssigned, technician: grantAssigned, editor: grantAssigned},
	OpReadTeamChat:          {projectScoped: true, admin: true, projectManager: grantOrgWide, technician: grantAssigned, editor: grantAssigned},
	OpWriteTeamChat:         {projectScoped: true, admin: true, projectManager: grantOrgWide, technician: grantAssigned, editor: grantAssigned},
	OpReadCustomerChat:      {projectScoped: true, linkedCustomer: true, admin: true, projectManager: grantOrgWide},
	OpWriteCustomerChat:     {projectScoped: true, linkedCustomer: true, admin: true, projectManager: grantAssigned},
	OpManageCustomers:       {admin: true},
	OpViewCustomers:         {admin: true, projectManager: grantOrgWide},
	OpViewInquiries:         {admin: true, projectManager: grantOrgWide},
	OpConvertInquiry:        {admin: true, projectManager: grantOrgWide},
	OpCreateOrder:           {admin: true, projectManager: grantOrgWide},
}

func isLinkedCustomer(p *types.Project, u types.AuthenticatedUser) bool {
	return u.AccountType == types.AccountTypeAgent &&
		u.ID != "" &&
		p != nil &&
		p.Customer != nil &&
		p.Customer.UserID == u.ID
}

func isAssigned(assignee *string, userID string) bool {
	return assignee != nil && userID != "" && *assignee == userID
}

func applyGrant(g grant, assignee *string, userID string) bool {
	switch g {
	case grantOrgWide:
		return true
	case grantAssigned:
		return isAssigned(assignee, userID)
	default:
		return false
	}
}

// Allowed evaluates one operation against the rule table. Unknown
// operations are denied.
func Allowed(op Operation, ctx authorization.OrgContext, p *types.Project, u types.AuthenticatedUser) bool {
	r, ok := ruleTable[op]
	if !ok {
		return false
	}

	if r.projectScoped {
		if r.linkedCustomer && isLinkedCustomer(p, u) {
			return true
		}
		if p == nil || p.OrgID != ctx.Org.ID {
			return false
		}
	}

	if ctx.IsPersonalOrg {
		return ctx.EffectiveRole == authorization.RolePersonalOwner
	}

	switch ctx.EffectiveRole {
	case authorization.RolePersonalOwner, authorization.RoleOwner, authorization.RoleAdmin:
		return r.admin
	case authorization.RoleProjectManager:
		var assignee *string
		if p != nil {
			assignee = p.ProjectManagerID
		}
		return applyGrant(r.projectManager, assignee, u.ID)
	case authorization.RoleTechnician:
		if p == nil {
			return false
		}
		return applyGrant(r.technician, p.TechnicianID, u.ID)
	case authorization.RoleEditor:
		if p == nil {
			return false
		}
		return applyGrant(r.editor, p.EditorID, u.ID)
	default:
		return false
	}
}

// CanPost mirrors the server-side channel dispatch for message posting.
func CanPost(ctx authorization.OrgContext, p *types.Project, channel authorization.Channel, u types.AuthenticatedUser) bool {
	if channel == authorization.ChannelCustomer && isLinkedCustomer(p, u) {
		return true
	}

	switch channel {
	case authorization.ChannelTeam:
		return Allowed(OpWriteTeamChat, ctx, p, u)
	case authorization.ChannelCustomer:
		return Allowed(OpWriteCustomerChat, ctx, p, u)
	default:
		return false
	}
}

// Snapshot computes the verdict for every operation in one pass. This is
// the payload served to the client per resource.
func Snapshot(ctx authorization.OrgContext, p *types.Project, u types.AuthenticatedUser) Verdicts {
	v := make(Verdicts, len(ruleTable))
	for op := range ruleTable {
		v[op] = Allowed(op, ctx, p, u)
	}
	return v
}
