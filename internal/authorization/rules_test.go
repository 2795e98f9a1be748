// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

type fixtureCtx struct {
	OrgID   string `json:"org_id"`
	OrgType string `json:"org_type"`
	Role    string `json:"role"`
}

type fixtureProject struct {
	OrgID            string  `json:"org_id"`
	TechnicianID     *string `json:"technician_id"`
	EditorID         *string `json:"editor_id"`
	ProjectManagerID *string `json:"project_manager_id"`
	CustomerUserID   *string `json:"customer_user_id"`
}

type fixtureUser struct {
	ID          string `json:"id"`
	AccountType string `json:"account_type"`
}

type fixture struct {
	Name    string          `json:"name"`
	Ctx     fixtureCtx      `json:"ctx"`
	Project fixtureProject  `json:"project"`
	User    fixtureUser     `json:"user"`
	Expect  map[string]bool `json:"expect"`
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()

	data, err := os.ReadFile("testdata/permission_fixtures.json")
	if err != nil {
		t.Fatalf("failed to read fixtures: %v", err)
	}

	var fixtures []fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("failed to parse fixtures: %v", err)
	}

	return fixtures
}

func (f fixture) orgContext() OrgContext {
	// Built directly rather than through NewOrgContext so fixtures can
	// describe misconfigured states, e.g. a stale OWNER role on a
	// personal org.
	return OrgContext{
		Org: types.Organization{
			ID:   f.Ctx.OrgID,
			Type: types.OrgType(f.Ctx.OrgType),
		},
		EffectiveRole: Role(f.Ctx.Role),
		IsPersonalOrg: types.OrgType(f.Ctx.OrgType) == types.OrgTypePersonal,
	}
}

func (f fixture) project() *types.Project {
	p := &types.Project{
		OrgID:            f.Project.OrgID,
		TechnicianID:     f.Project.TechnicianID,
		EditorID:         f.Project.EditorID,
		ProjectManagerID: f.Project.ProjectManagerID,
	}
	if f.Project.CustomerUserID != nil {
		p.Customer = &types.ProjectCustomer{UserID: *f.Project.CustomerUserID}
	}
	return p
}

func (f fixture) user() types.AuthenticatedUser {
	return types.AuthenticatedUser{
		ID:          f.User.ID,
		AccountType: types.AccountType(f.User.AccountType),
	}
}

func TestRules_Fixtures(t *testing.T) {
	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			ctx := f.orgContext()
			p := f.project()
			u := f.user()

			got := map[string]bool{
				"viewProject":           CanViewProject(ctx, p, u),
				"editProject":           CanEditProject(ctx, p, u),
				"deleteProject":         CanDeleteProject(ctx, p, u),
				"changeProjectCustomer": CanChangeProjectCustomer(ctx, p, u),
				"manageProject":         CanManageProject(ctx, p, u),
				"uploadMedia":           CanUploadMedia(ctx, p, u),
				"readTeamChat":          CanReadTeamChat(ctx, p, u),
				"writeTeamChat":         CanWriteTeamChat(ctx, p, u),
				"readCustomerChat":      CanReadCustomerChat(ctx, p, u),
				"writeCustomerChat":     CanWriteCustomerChat(ctx, p, u),
				"manageCustomers":       CanManageCustomers(ctx),
				"viewCustomers":         CanViewCustomers(ctx),
				"viewInquiries":         CanViewInquiries(ctx),
				"convertInquiry":        CanConvertInquiry(ctx),
				"createOrder":           CanCreateOrder(ctx),
			}

			for op, want := range f.Expect {
				if got[op] != want {
					t.Errorf("%s: expected %v, got %v", op, want, got[op])
				}
			}
		})
	}
}

func TestNormalizeRole(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Role
	}{
		{"OWNER", RoleOwner},
		{"owner", RoleOwner},
		{"Admin", RoleAdmin},
		{"PROJECT_MANAGER", RoleProjectManager},
		{"dispatcher", RoleProjectManager},
		{"DISPATCHER", RoleProjectManager},
		{"technician", RoleTechnician},
		{"photographer", RoleTechnician},
		{"editor", RoleEditor},
		{"agent", RoleAgent},
		{"personal_owner", RolePersonalOwner},
		{" owner ", RoleOwner},
		{"", RoleNone},
		{"superuser", RoleNone},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			if got := NormalizeRole(tc.raw); got != tc.expected {
				t.Errorf("NormalizeRole(%q) = %q, expected %q", tc.raw, got, tc.expected)
			}
		})
	}
}

func TestNewOrgContext(t *testing.T) {
	personal := types.Organization{ID: "org-p", Type: types.OrgTypePersonal}
	team := types.Organization{ID: "org-t", Type: types.OrgTypeTeam}

	testCases := []struct {
		name     string
		org      types.Organization
		role     Role
		isMember bool
		expected Role
	}{
		{"personal org member collapses to personal owner", personal, RoleOwner, true, RolePersonalOwner},
		{"personal org non-member resolves to none", personal, RoleOwner, false, RoleNone},
		{"team org keeps normalized role", team, RoleProjectManager, true, RoleProjectManager},
		{"team org non-member resolves to none", team, RoleAdmin, false, RoleNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := NewOrgContext(tc.org, tc.role, tc.isMember)
			if ctx.EffectiveRole != tc.expected {
				t.Errorf("expected role %q, got %q", tc.expected, ctx.EffectiveRole)
			}
			if ctx.IsPersonalOrg != (tc.org.Type == types.OrgTypePersonal) {
				t.Errorf("IsPersonalOrg mismatch for %q", tc.org.ID)
			}
		})
	}
}

func TestCanPostMessage_ChannelDispatch(t *testing.T) {
	pmID := "pm-1"
	agentID := "agent-1"

	org := types.Organization{ID: "org-1", Type: types.OrgTypeTeam}
	project := &types.Project{
		OrgID:            "org-1",
		ProjectManagerID: &pmID,
		Customer:         &types.ProjectCustomer{UserID: agentID},
	}

	pmCtx := OrgContext{Org: org, EffectiveRole: RoleProjectManager}
	agentCtx := OrgContext{Org: types.Organization{ID: "org-9", Type: types.OrgTypeTeam}, EffectiveRole: RoleNone}

	pm := types.AuthenticatedUser{ID: pmID, AccountType: types.AccountTypeProvider}
	agent := types.AuthenticatedUser{ID: agentID, AccountType: types.AccountTypeAgent}

	testCases := []struct {
		name     string
		ctx      OrgContext
		channel  Channel
		user     types.AuthenticatedUser
		expected bool
	}{
		{"pm posts to team channel", pmCtx, ChannelTeam, pm, true},
		{"pm posts to customer channel on own project", pmCtx, ChannelCustomer, pm, true},
		{"linked agent posts to customer channel cross-org", agentCtx, ChannelCustomer, agent, true},
		{"linked agent never posts to team channel", agentCtx, ChannelTeam, agent, false},
		{"unknown channel is denied", pmCtx, Channel("broadcast"), pm, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CanPostMessage(tc.ctx, project, tc.channel, tc.user); got != tc.expected {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

// The legacy manage gate must keep excluding project managers even though
// CanEditProject grants them conditional edit rights.
func TestCanManageProject_LegacyDivergence(t *testing.T) {
	pmID := "pm-1"
	org := types.Organization{ID: "org-1", Type: types.OrgTypeTeam}
	project := &types.Project{OrgID: "org-1", ProjectManagerID: &pmID}

	ctx := OrgContext{Org: org, EffectiveRole: RoleProjectManager}
	pm := types.AuthenticatedUser{ID: pmID, AccountType: types.AccountTypeProvider}

	if !CanEditProject(ctx, project, pm) {
		t.Error("expected assigned PM to be able to edit")
	}
	if CanManageProject(ctx, project, pm) {
		t.Error("expected legacy manage gate to deny assigned PM")
	}
}

func TestProjectOps_NilProject(t *testing.T) {
	ctx := OrgContext{
		Org:           types.Organization{ID: "org-1", Type: types.OrgTypeTeam},
		EffectiveRole: RoleOwner,
	}
	u := types.AuthenticatedUser{ID: "u-1", AccountType: types.AccountTypeProvider}

	if CanViewProject(ctx, nil, u) || CanEditProject(ctx, nil, u) || CanDeleteProject(ctx, nil, u) {
		t.Error("expected nil project to deny all project operations")
	}
}
