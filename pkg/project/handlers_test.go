// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package project

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/identity"
	"github.com/RelayDigital/vrem-sub006/internal/storage"
	"github.com/RelayDigital/vrem-sub006/internal/types"
	"github.com/RelayDigital/vrem-sub006/pkg/permissions"
)

func newAPIWithMocks(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()

	mux := chi.NewMux()
	NewAPI(mockService, mockLogger).RegisterEndpoints(mux)
	return mux, mockService
}

func doRequest(mux *chi.Mux, method, target, body string, user types.AuthenticatedUser) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = req.WithContext(identity.ContextWithUser(req.Context(), user))

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandleGetProject(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusOK},
		{name: "Forbidden", serviceErr: ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "NotFound", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			if tt.serviceErr != nil {
				mockService.EXPECT().GetProject(gomock.Any(), "proj-1", user).Return(nil, tt.serviceErr)
			} else {
				mockService.EXPECT().GetProject(gomock.Any(), "proj-1", user).Return(sampleProject(), nil)
			}

			rec := doRequest(mux, http.MethodGet, "/api/v0/projects/proj-1", "", user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandleListProjects(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	mux, mockService := newAPIWithMocks(t)
	mockService.EXPECT().ListProjects(gomock.Any(), "org-1", int64(2), int64(10), user).
		Return([]*types.Project{sampleProject()}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/v0/orgs/org-1/projects?page=2&size=10", "", user)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var projects []*types.Project
	if err := json.NewDecoder(rec.Body).Decode(&projects); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(projects) != 1 || projects[0].ID != "proj-1" {
		t.Fatalf("unexpected response %+v", projects)
	}
}

func TestHandleCreateProject(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"address":"12 Harbour St","scheduled_date":"2026-09-14"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateProject(gomock.Any(), "org-1", gomock.Any(), user).Return(sampleProject(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "MissingAddress",
			body:           `{"scheduled_date":"2026-09-14"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "MalformedDate",
			body:           `{"address":"12 Harbour St","scheduled_date":"14/09/2026"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "InvalidJSON",
			body:           `{`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Forbidden",
			body: `{"address":"12 Harbour St","scheduled_date":"2026-09-14"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateProject(gomock.Any(), "org-1", gomock.Any(), user).Return(nil, ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodPost, "/api/v0/orgs/org-1/projects", tt.body, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleUpdateProject(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"status":"delivered"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateProject(gomock.Any(), "proj-1", ProjectPatch{Status: strPtr("delivered")}, user).
					Return(sampleProject(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "UnknownStatus",
			body:           `{"status":"archived"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "NotFound",
			body: `{"notes":"reshoot requested"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateProject(gomock.Any(), "proj-1", ProjectPatch{Notes: strPtr("reshoot requested")}, user).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodPatch, "/api/v0/projects/proj-1", tt.body, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleDeleteProject(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusNoContent},
		{name: "Forbidden", serviceErr: ErrForbidden, expectedStatus: http.StatusForbidden},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			mockService.EXPECT().DeleteProject(gomock.Any(), "proj-1", user).Return(tt.serviceErr)

			rec := doRequest(mux, http.MethodDelete, "/api/v0/projects/proj-1", "", user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandleChangeCustomer(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		body           string
		customerID     *string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Set", body: `{"customer_id":"cust-1"}`, customerID: strPtr("cust-1"), expectedStatus: http.StatusNoContent},
		{name: "Clear", body: `{"customer_id":null}`, expectedStatus: http.StatusNoContent},
		{name: "BadReference", body: `{"customer_id":"cust-9"}`, customerID: strPtr("cust-9"), serviceErr: storage.ErrForeignKeyViolation, expectedStatus: http.StatusBadRequest},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			mockService.EXPECT().ChangeCustomer(gomock.Any(), "proj-1", tt.customerID, user).Return(tt.serviceErr)

			rec := doRequest(mux, http.MethodPut, "/api/v0/projects/proj-1/customer", tt.body, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandleAssign(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		slot           string
		assignment     string
		expectedStatus int
	}{
		{name: "Technician", slot: "technician", assignment: storage.AssignmentTechnician, expectedStatus: http.StatusNoContent},
		{name: "Editor", slot: "editor", assignment: storage.AssignmentEditor, expectedStatus: http.StatusNoContent},
		{name: "ProjectManager", slot: "project-manager", assignment: storage.AssignmentProjectManager, expectedStatus: http.StatusNoContent},
		{name: "UnknownSlot", slot: "producer", expectedStatus: http.StatusBadRequest},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			if tt.assignment != "" {
				mockService.EXPECT().Assign(gomock.Any(), "proj-1", tt.assignment, strPtr("user-9"), user).Return(nil)
			}

			rec := doRequest(mux, http.MethodPut, "/api/v0/projects/proj-1/assignments/"+tt.slot, `{"user_id":"user-9"}`, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandlePermissions(t *testing.T) {
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}

	mux, mockService := newAPIWithMocks(t)
	mockService.EXPECT().GetPermissions(gomock.Any(), "proj-1", user).
		Return(permissions.Verdicts{"viewProject": true, "deleteProject": false}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/v0/projects/proj-1/permissions", "", user)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var verdicts map[string]bool
	if err := json.NewDecoder(rec.Body).Decode(&verdicts); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !verdicts["viewProject"] || verdicts["deleteProject"] {
		t.Fatalf("unexpected verdicts %+v", verdicts)
	}
}

func TestHandleListMessages(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		query          string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name:  "TeamChannel",
			query: "?channel=team",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListMessages(gomock.Any(), "proj-1", authorization.ChannelTeam, user).
					Return([]*types.ProjectMessage{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "MissingChannel",
			query:          "",
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "UnknownChannel",
			query:          "?channel=broadcast",
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodGet, "/api/v0/projects/proj-1/messages"+tt.query, "", user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandlePostMessage(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"channel":"customer","body":"preview is up"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().PostMessage(gomock.Any(), "proj-1", authorization.ChannelCustomer, "preview is up", user).
					Return(&types.ProjectMessage{ID: "msg-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "UnknownChannel",
			body:           `{"channel":"broadcast","body":"hi"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "EmptyBody",
			body:           `{"channel":"team","body":""}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Forbidden",
			body: `{"channel":"team","body":"hi"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().PostMessage(gomock.Any(), "proj-1", authorization.ChannelTeam, "hi", user).
					Return(nil, ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodPost, "/api/v0/projects/proj-1/messages", tt.body, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleAuthorizeUpload(t *testing.T) {
	user := types.AuthenticatedUser{ID: "tech-1", AccountType: types.AccountTypeProvider}

	mux, mockService := newAPIWithMocks(t)
	mockService.EXPECT().AuthorizeUpload(gomock.Any(), "proj-1", user).Return("ticket-1", nil)

	rec := doRequest(mux, http.MethodPost, "/api/v0/projects/proj-1/media", "", user)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["upload_ticket"] != "ticket-1" {
		t.Fatalf("unexpected response %+v", resp)
	}
}
