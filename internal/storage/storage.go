// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RelayDigital/vrem-sub006/internal/authorization"
	"github.com/RelayDigital/vrem-sub006/internal/db"
	"github.com/RelayDigital/vrem-sub006/internal/logging"
	"github.com/RelayDigital/vrem-sub006/internal/monitoring"
	"github.com/RelayDigital/vrem-sub006/internal/tracing"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var created types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "type").
		Values(id.String(), org.Name, org.Type).
		Suffix("RETURNING id, name, type, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Type, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var org types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "type", "created_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&org.ID, &org.Name, &org.Type, &org.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

func (s *Storage) ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationsByUserID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("o.id", "o.name", "o.type", "o.created_at").
		From("organizations o").
		Join("memberships m ON o.id = m.org_id").
		Where(sq.Eq{"m.kratos_identity_id": userID}).
		OrderBy("o.created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.Type, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

func (s *Storage) AddMember(ctx context.Context, orgID, userID, role string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMember")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "org_id", "kratos_identity_id", "role").
		Values(id.String(), orgID, userID, role).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add member: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembership")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "org_id", "kratos_identity_id", "role", "created_at").
		From("memberships").
		Where(sq.Eq{"org_id": orgID, "kratos_identity_id": userID}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.KratosIdentityID, &m.Role, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// GetOrgContext resolves the caller's effective role in one organization.
// Role strings are normalized here, at the storage boundary, so the rule
// functions only ever see canonical roles. A missing membership resolves to
// a context with no role rather than an error.
func (s *Storage) GetOrgContext(ctx context.Context, orgID string, user types.AuthenticatedUser) (authorization.OrgContext, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrgContext")
	defer span.End()

	org, err := s.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return authorization.OrgContext{}, err
	}

	m, err := s.GetMembership(ctx, orgID, user.ID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return authorization.NewOrgContext(*org, authorization.RoleNone, false), nil
		}
		return authorization.OrgContext{}, err
	}

	return authorization.NewOrgContext(*org, authorization.NormalizeRole(m.Role), true), nil
}
