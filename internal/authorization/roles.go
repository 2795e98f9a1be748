// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"strings"

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// Role is the closed set of effective organization roles used for
// authorization decisions. RolePersonalOwner is synthetic: it is never
// stored, it is produced by org context resolution for personal orgs.
type Role string

const (
	RolePersonalOwner  Role = "PERSONAL_OWNER"
	RoleOwner          Role = "OWNER"
	RoleAdmin          Role = "ADMIN"
	RoleProjectManager Role = "PROJECT_MANAGER"
	RoleTechnician     Role = "TECHNICIAN"
	RoleEditor         Role = "EDITOR"
	RoleAgent          Role = "AGENT"
	RoleNone           Role = "NONE"
)

// NormalizeRole is the single normalization boundary for stored role
// strings. Legacy lowercase aliases from the original membership schema
// ("dispatcher", "photographer") are folded here; decision logic only ever
// compares typed Role constants. Unknown input resolves to RoleNone.
func NormalizeRole(raw string) Role {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "PERSONAL_OWNER":
		return RolePersonalOwner
	case "OWNER":
		return RoleOwner
	case "ADMIN":
		return RoleAdmin
	case "PROJECT_MANAGER", "DISPATCHER":
		return RoleProjectManager
	case "TECHNICIAN", "PHOTOGRAPHER":
		return RoleTechnician
	case "EDITOR":
		return RoleEditor
	case "AGENT":
		return RoleAgent
	default:
		return RoleNone
	}
}

// OrgContext is the resolved authorization scope for one request. It is
// computed once from the actor's membership and never mutated afterwards.
type OrgContext struct {
	Org           types.Organization
	EffectiveRole Role
	IsPersonalOrg bool
}

// NewOrgContext resolves the scope for an organization and an already
// normalized role. For personal organizations the stored role is ignored:
// the sole member resolves to RolePersonalOwner, everyone else to RoleNone.
func NewOrgContext(org types.Organization, role Role, isMember bool) OrgContext {
	ctx := OrgContext{
		Org:           org,
		EffectiveRole: role,
		IsPersonalOrg: org.Type == types.OrgTypePersonal,
	}

	if !isMember {
		ctx.EffectiveRole = RoleNone
		return ctx
	}

	if ctx.IsPersonalOrg {
		ctx.EffectiveRole = RolePersonalOwner
	}

	return ctx
}

func isAdminTier(r Role) bool {
	return r == RolePersonalOwner || r == RoleOwner || r == RoleAdmin
}
