// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type OrgType string

const (
	OrgTypePersonal OrgType = "PERSONAL"
	OrgTypeTeam     OrgType = "TEAM"
	OrgTypeCompany  OrgType = "COMPANY"
)

type Organization struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Type      OrgType   `db:"type"`
	CreatedAt time.Time `db:"created_at"`
}

type AccountType string

const (
	// AccountTypeAgent marks customer-side accounts (real-estate agents).
	AccountTypeAgent AccountType = "AGENT"
	// AccountTypeProvider marks provider-side accounts (technicians, editors, org staff).
	AccountTypeProvider AccountType = "PROVIDER"
)

// AuthenticatedUser is the identity-provider-issued actor for one request.
type AuthenticatedUser struct {
	ID          string
	AccountType AccountType
}

type Membership struct {
	ID               string    `db:"id"`
	OrgID            string    `db:"org_id"`
	KratosIdentityID string    `db:"kratos_identity_id"`
	Role             string    `db:"role"`
	CreatedAt        time.Time `db:"created_at"`
}

// ProjectCustomer is the customer relation on a project. UserID links the
// customer to an AGENT account, which is what grants the cross-tenant
// customer exception in authorization.
type ProjectCustomer struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
}

// Project is the central job resource: a booked media shoot.
type Project struct {
	ID    string `db:"id"`
	OrgID string `db:"org_id"`

	TechnicianID     *string `db:"technician_id"`
	EditorID         *string `db:"editor_id"`
	ProjectManagerID *string `db:"project_manager_id"`

	Customer *ProjectCustomer

	Status        string    `db:"status"`
	Address       string    `db:"address"`
	ScheduledDate string    `db:"scheduled_date"`
	Notes         string    `db:"notes"`
	CreatedAt     time.Time `db:"created_at"`
}

type OrganizationCustomer struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	UserID    *string   `db:"user_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	CreatedAt time.Time `db:"created_at"`
}

type Inquiry struct {
	ID        string    `db:"id"`
	OrgID     string    `db:"org_id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Message   string    `db:"message"`
	Converted bool      `db:"converted"`
	CreatedAt time.Time `db:"created_at"`
}

// ProjectMessage is one chat entry on a project. Channel is either the
// provider-internal team channel or the customer-facing channel.
type ProjectMessage struct {
	ID        string    `db:"id"`
	ProjectID string    `db:"project_id"`
	Channel   string    `db:"channel"`
	AuthorID  string    `db:"author_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AvailabilityEntry is a whole-day availability marker. Matching is exact
// string equality on Date (YYYY-MM-DD), no range or time-window logic.
type AvailabilityEntry struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

type Reliability struct {
	OnTimeRate float64 `json:"on_time_rate"`
	NoShows    int     `json:"no_shows"`
	TotalJobs  int     `json:"total_jobs"`
}

// SkillSet rates each skill dimension on a 1-5 scale.
type SkillSet struct {
	Residential int `json:"residential"`
	Video       int `json:"video"`
	Aerial      int `json:"aerial"`
	Twilight    int `json:"twilight"`
	Commercial  int `json:"commercial"`
}

type TechnicianStatus string

const (
	TechnicianActive   TechnicianStatus = "active"
	TechnicianInactive TechnicianStatus = "inactive"
)

// TechnicianProfile is a provider profile. Profiles are never deleted,
// only toggled inactive.
type TechnicianProfile struct {
	ID           string           `db:"id"`
	CompanyID    string           `db:"company_id"`
	Name         string           `db:"name"`
	Status       TechnicianStatus `db:"status"`
	HomeLocation GeoPoint

	Availability     []AvailabilityEntry
	Reliability      Reliability
	Skills           SkillSet
	PreferredClients []string

	CreatedAt time.Time `db:"created_at"`
}

type MediaType string

const (
	MediaTypePhoto    MediaType = "photo"
	MediaTypeVideo    MediaType = "video"
	MediaTypeAerial   MediaType = "aerial"
	MediaTypeTwilight MediaType = "twilight"
)

// JobRequest is the ranking input for one dispatch decision.
type JobRequest struct {
	OrganizationID string
	Location       GeoPoint
	ScheduledDate  string
	MediaTypes     []MediaType
}
