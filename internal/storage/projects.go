// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RelayDigital/vrem-sub006/internal/db"
	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// Assignment column names accepted by AssignProject.
const (
	AssignmentTechnician     = "technician_id"
	AssignmentEditor         = "editor_id"
	AssignmentProjectManager = "project_manager_id"
)

var projectColumns = []string{
	"p.id", "p.org_id",
	"p.technician_id", "p.editor_id", "p.project_manager_id",
	"p.status", "p.address", "p.scheduled_date", "p.notes", "p.created_at",
	"c.id", "c.user_id",
}

func (s *Storage) projectQuery(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(projectColumns...).
		From("projects p").
		LeftJoin("organization_customers c ON p.customer_id = c.id")
}

func scanProject(row sq.RowScanner) (*types.Project, error) {
	var p types.Project
	var customerID, customerUserID sql.NullString

	err := row.Scan(
		&p.ID, &p.OrgID,
		&p.TechnicianID, &p.EditorID, &p.ProjectManagerID,
		&p.Status, &p.Address, &p.ScheduledDate, &p.Notes, &p.CreatedAt,
		&customerID, &customerUserID,
	)
	if err != nil {
		return nil, err
	}

	if customerID.Valid {
		p.Customer = &types.ProjectCustomer{
			ID:     customerID.String,
			UserID: customerUserID.String,
		}
	}

	return &p, nil
}

func (s *Storage) CreateProject(ctx context.Context, p *types.Project) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProject")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate project ID: %w", err)
	}

	var customerID *string
	if p.Customer != nil {
		customerID = &p.Customer.ID
	}

	_, err = s.db.Statement(ctx).
		Insert("projects").
		Columns("id", "org_id", "customer_id", "status", "address", "scheduled_date", "notes").
		Values(id.String(), p.OrgID, customerID, p.Status, p.Address, p.ScheduledDate, p.Notes).
		ExecContext(ctx)

	if err != nil {
		return nil, WrapForeignKeyError(err, "project references missing organization or customer")
	}

	return s.GetProjectByID(ctx, id.String())
}

func (s *Storage) GetProjectByID(ctx context.Context, id string) (*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProjectByID")
	defer span.End()

	p, err := scanProject(s.projectQuery(ctx).Where(sq.Eq{"p.id": id}).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return p, nil
}

func (s *Storage) ListProjectsByOrgID(ctx context.Context, orgID string, page, size int64) ([]*types.Project, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectsByOrgID")
	defer span.End()

	pageSize := db.PageSize(size)
	query := s.projectQuery(ctx).
		Where(sq.Eq{"p.org_id": orgID}).
		OrderBy("p.created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []*types.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return projects, nil
}

// UpdateProject follows PATCH semantics: only fields named in paths change.
func (s *Storage) UpdateProject(ctx context.Context, p *types.Project, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProject")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "status":
			updateMap["status"] = p.Status
		case "address":
			updateMap["address"] = p.Address
		case "scheduled_date":
			updateMap["scheduled_date"] = p.ScheduledDate
		case "notes":
			updateMap["notes"] = p.Notes
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("projects").
		SetMap(updateMap).
		Where(sq.Eq{"id": p.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	return requireRowsAffected(res, "project")
}

func (s *Storage) DeleteProject(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProject")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("projects").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return requireRowsAffected(res, "project")
}

// AssignProject sets or clears one of the three assignee slots. A nil
// userID clears the assignment.
func (s *Storage) AssignProject(ctx context.Context, id, assignment string, userID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignProject")
	defer span.End()

	switch assignment {
	case AssignmentTechnician, AssignmentEditor, AssignmentProjectManager:
	default:
		return fmt.Errorf("unknown assignment %q", assignment)
	}

	res, err := s.db.Statement(ctx).
		Update("projects").
		Set(assignment, userID).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to assign project: %w", err)
	}

	return requireRowsAffected(res, "project")
}

// SetProjectCustomer relinks or clears the customer relation.
func (s *Storage) SetProjectCustomer(ctx context.Context, id string, customerID *string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetProjectCustomer")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("projects").
		Set("customer_id", customerID).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return WrapForeignKeyError(err, "customer does not exist")
	}

	return requireRowsAffected(res, "project")
}

func (s *Storage) CreateProjectMessage(ctx context.Context, m *types.ProjectMessage) (*types.ProjectMessage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProjectMessage")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate message ID: %w", err)
	}

	var created types.ProjectMessage
	err = s.db.Statement(ctx).
		Insert("project_messages").
		Columns("id", "project_id", "channel", "author_id", "body").
		Values(id.String(), m.ProjectID, m.Channel, m.AuthorID, m.Body).
		Suffix("RETURNING id, project_id, channel, author_id, body, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.ProjectID, &created.Channel, &created.AuthorID, &created.Body, &created.CreatedAt)

	if err != nil {
		return nil, WrapForeignKeyError(err, "message references missing project")
	}

	return &created, nil
}

func (s *Storage) ListProjectMessages(ctx context.Context, projectID, channel string) ([]*types.ProjectMessage, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProjectMessages")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "project_id", "channel", "author_id", "body", "created_at").
		From("project_messages").
		Where(sq.Eq{"project_id": projectID, "channel": channel}).
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*types.ProjectMessage
	for rows.Next() {
		var m types.ProjectMessage
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Channel, &m.AuthorID, &m.Body, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return messages, nil
}

func requireRowsAffected(res sql.Result, resource string) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", resource, ErrNotFound)
	}
	return nil
}
