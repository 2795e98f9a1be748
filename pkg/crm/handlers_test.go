// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package crm

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	gomock "go.uber.org/mock/gomock"

	"github.com/RelayDigital/vrem-sub006/internal/identity"
	"github.com/RelayDigital/vrem-sub006/internal/storage"
	"github.com/RelayDigital/vrem-sub006/internal/types"
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

func TestHandleListCustomers(t *testing.T) {
	user := types.AuthenticatedUser{ID: "user-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusOK},
		{name: "Forbidden", serviceErr: ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "OrgNotFound", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			if tt.serviceErr != nil {
				mockService.EXPECT().ListCustomers(gomock.Any(), "org-1", user).Return(nil, tt.serviceErr)
			} else {
				mockService.EXPECT().ListCustomers(gomock.Any(), "org-1", user).
					Return([]*types.OrganizationCustomer{}, nil)
			}

			rec := doRequest(mux, http.MethodGet, "/api/v0/orgs/org-1/customers", "", user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandleCreateCustomer(t *testing.T) {
	user := types.AuthenticatedUser{ID: "admin-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name":"Jamie Agent","email":"agent@example.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateCustomer(gomock.Any(), "org-1", gomock.Any(), user).
					Return(&types.OrganizationCustomer{ID: "cust-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "MissingName",
			body:           `{"email":"agent@example.com"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "BadEmail",
			body:           `{"name":"Jamie Agent","email":"not-an-email"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodPost, "/api/v0/orgs/org-1/customers", tt.body, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleUpdateCustomer(t *testing.T) {
	user := types.AuthenticatedUser{ID: "admin-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name":"Jamie A. Agent"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateCustomer(gomock.Any(), "cust-1", CustomerPatch{Name: strPtr("Jamie A. Agent")}, user).
					Return(&types.OrganizationCustomer{ID: "cust-1", Name: "Jamie A. Agent"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "BadEmail",
			body:           `{"email":"not-an-email"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Forbidden",
			body: `{"name":"Jamie A. Agent"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateCustomer(gomock.Any(), "cust-1", gomock.Any(), user).
					Return(nil, ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name: "NotFound",
			body: `{"name":"Jamie A. Agent"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateCustomer(gomock.Any(), "cust-1", gomock.Any(), user).
					Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodPut, "/api/v0/customers/cust-1", tt.body, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleDeleteCustomer(t *testing.T) {
	user := types.AuthenticatedUser{ID: "admin-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusNoContent},
		{name: "Forbidden", serviceErr: ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "NotFound", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			mockService.EXPECT().DeleteCustomer(gomock.Any(), "cust-1", user).Return(tt.serviceErr)

			rec := doRequest(mux, http.MethodDelete, "/api/v0/customers/cust-1", "", user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandleSubmitInquiry(t *testing.T) {
	// Inquiry submission is the public lead-capture endpoint, so the
	// zero-value anonymous user goes through.
	var anonymous types.AuthenticatedUser

	for _, tt := range []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name":"Jamie Agent","email":"agent@example.com","message":"Need a twilight shoot"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SubmitInquiry(gomock.Any(), "org-1", gomock.Any()).
					Return(&types.Inquiry{ID: "inq-1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "MissingMessage",
			body:           `{"name":"Jamie Agent","email":"agent@example.com"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodPost, "/api/v0/orgs/org-1/inquiries", tt.body, anonymous)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleConvertInquiry(t *testing.T) {
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "Success", expectedStatus: http.StatusCreated},
		{name: "Forbidden", serviceErr: ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "AlreadyConverted", serviceErr: storage.ErrDuplicateKey, expectedStatus: http.StatusConflict},
		{name: "NotFound", serviceErr: storage.ErrNotFound, expectedStatus: http.StatusNotFound},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			if tt.serviceErr != nil {
				mockService.EXPECT().ConvertInquiry(gomock.Any(), "inq-1", user).Return(nil, tt.serviceErr)
			} else {
				mockService.EXPECT().ConvertInquiry(gomock.Any(), "inq-1", user).
					Return(&ConversionResult{Customer: &types.OrganizationCustomer{ID: "cust-1"}}, nil)
			}

			rec := doRequest(mux, http.MethodPost, "/api/v0/inquiries/inq-1/convert", "", user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestHandleCreateOrder(t *testing.T) {
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}

	for _, tt := range []struct {
		name           string
		body           string
		setupMocks     func(s *MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"address":"12 Harbour St","scheduled_date":"2026-09-14","customer_id":"cust-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				expected := OrderParams{
					Address:       "12 Harbour St",
					ScheduledDate: "2026-09-14",
					CustomerID:    strPtr("cust-1"),
				}
				s.EXPECT().CreateOrder(gomock.Any(), "org-1", expected, user).
					Return(&types.Project{ID: "proj-1", Status: "pending"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "MissingDate",
			body:           `{"address":"12 Harbour St"}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "BadCustomerReference",
			body: `{"address":"12 Harbour St","scheduled_date":"2026-09-14","customer_id":"cust-9"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateOrder(gomock.Any(), "org-1", gomock.Any(), user).
					Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedStatus: http.StatusBadRequest,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mux, mockService := newAPIWithMocks(t)
			tt.setupMocks(mockService)

			rec := doRequest(mux, http.MethodPost, "/api/v0/orgs/org-1/orders", tt.body, user)
			if rec.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.expectedStatus, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestHandleCreateOrder_Response(t *testing.T) {
	user := types.AuthenticatedUser{ID: "pm-1", AccountType: types.AccountTypeProvider}

	mux, mockService := newAPIWithMocks(t)
	mockService.EXPECT().CreateOrder(gomock.Any(), "org-1", gomock.Any(), user).
		Return(&types.Project{ID: "proj-1", Status: "pending"}, nil)

	rec := doRequest(mux, http.MethodPost, "/api/v0/orgs/org-1/orders",
		`{"address":"12 Harbour St","scheduled_date":"2026-09-14"}`, user)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	var p types.Project
	if err := json.NewDecoder(rec.Body).Decode(&p); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if p.ID != "proj-1" || p.Status != "pending" {
		t.Fatalf("unexpected response %+v", p)
	}
}
