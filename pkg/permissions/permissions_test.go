// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package permissions

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// The permission fixtures are shared with internal/authorization: both
// implementations run the exact same cases, so a rule changed on one side
// without the other fails here.
const fixturePath = "../../internal/authorization/testdata/permission_fixtures.json"

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

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		t.Fatalf("failed to read shared fixtures: %v", err)
	}

	var fixtures []fixture
	if err := json.Unmarshal(data, &fixtures); err != nil {
		t.Fatalf("failed to parse shared fixtures: %v", err)
	}

	return fixtures
}

func (f fixture) orgContext() authorization.OrgContext {
	return authorization.OrgContext{
		Org: types.Organization{
			ID:   f.Ctx.OrgID,
			Type: types.OrgType(f.Ctx.OrgType),
		},
		EffectiveRole: authorization.Role(f.Ctx.Role),
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

func TestAllowed_SharedFixtures(t *testing.T) {
	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			ctx := f.orgContext()
			p := f.project()
			u := f.user()

			for op, want := range f.Expect {
				if got := Allowed(Operation(op), ctx, p, u); got != want {
					t.Errorf("%s: expected %v, got %v", op, want, got)
				}
			}
		})
	}
}

// Cross-checks the table evaluator against the server rule functions on
// every fixture, independent of the expectations recorded in the file.
func TestAllowed_MatchesServerRules(t *testing.T) {
	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			ctx := f.orgContext()
			p := f.project()
			u := f.user()

			server := map[Operation]bool{
				OpViewProject:           authorization.CanViewProject(ctx, p, u),
				OpEditProject:           authorization.CanEditProject(ctx, p, u),
				OpDeleteProject:         authorization.CanDeleteProject(ctx, p, u),
				OpChangeProjectCustomer: authorization.CanChangeProjectCustomer(ctx, p, u),
				OpManageProject:         authorization.CanManageProject(ctx, p, u),
				OpUploadMedia:           authorization.CanUploadMedia(ctx, p, u),
				OpReadTeamChat:          authorization.CanReadTeamChat(ctx, p, u),
				OpWriteTeamChat:         authorization.CanWriteTeamChat(ctx, p, u),
				OpReadCustomerChat:      authorization.CanReadCustomerChat(ctx, p, u),
				OpWriteCustomerChat:     authorization.CanWriteCustomerChat(ctx, p, u),
				OpManageCustomers:       authorization.CanManageCustomers(ctx),
				OpViewCustomers:         authorization.CanViewCustomers(ctx),
				OpViewInquiries:         authorization.CanViewInquiries(ctx),
				OpConvertInquiry:        authorization.CanConvertInquiry(ctx),
				OpCreateOrder:           authorization.CanCreateOrder(ctx),
			}

			for op, want := range server {
				if got := Allowed(op, ctx, p, u); got != want {
					t.Errorf("%s: mirror returned %v, server returned %v", op, got, want)
				}
			}
		})
	}
}

func TestCanPost_MatchesServerDispatch(t *testing.T) {
	channels := []authorization.Channel{
		authorization.ChannelTeam,
		authorization.ChannelCustomer,
		authorization.Channel("broadcast"),
	}

	for _, f := range loadFixtures(t) {
		t.Run(f.Name, func(t *testing.T) {
			ctx := f.orgContext()
			p := f.project()
			u := f.user()

			for _, ch := range channels {
				want := authorization.CanPostMessage(ctx, p, ch, u)
				if got := CanPost(ctx, p, ch, u); got != want {
					t.Errorf("channel %q: mirror returned %v, server returned %v", ch, got, want)
				}
			}
		})
	}
}

func TestAllowed_UnknownOperation(t *testing.T) {
	ctx := authorization.OrgContext{
		Org:           types.Organization{ID: "org-1", Type: types.OrgTypeTeam},
		EffectiveRole: authorization.RoleOwner,
	}
	u := types.AuthenticatedUser{ID: "u-1", AccountType: types.AccountTypeProvider}

	if Allowed(Operation("formatDisk"), ctx, &types.Project{OrgID: "org-1"}, u) {
		t.Error("expected unknown operation to be denied")
	}
}

func TestSnapshot_CoversEveryOperation(t *testing.T) {
	ctx := authorization.OrgContext{
		Org:           types.Organization{ID: "org-1", Type: types.OrgTypeTeam},
		EffectiveRole: authorization.RoleAdmin,
	}
	u := types.AuthenticatedUser{ID: "u-admin", AccountType: types.AccountTypeProvider}
	p := &types.Project{OrgID: "org-1"}

	v := Snapshot(ctx, p, u)
	if len(v) != len(ruleTable) {
		t.Fatalf("expected %d verdicts, got %d", len(ruleTable), len(v))
	}
	for op := range ruleTable {
		if _, ok := v[op]; !ok {
			t.Errorf("missing verdict for %s", op)
		}
	}
}
