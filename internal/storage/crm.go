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

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

func (s *Storage) CreateOrganizationCustomer(ctx context.Context, c *types.OrganizationCustomer) (*types.OrganizationCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganizationCustomer")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate customer ID: %w", err)
	}

	var created types.OrganizationCustomer
	err = s.db.Statement(ctx).
		Insert("organization_customers").
		Columns("id", "org_id", "user_id", "name", "email").
		Values(id.String(), c.OrgID, c.UserID, c.Name, c.Email).
		Suffix("RETURNING id, org_id, user_id, name, email, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.UserID, &created.Name, &created.Email, &created.CreatedAt)

	if err != nil {
		return nil, WrapDuplicateKeyError(err, "customer email already registered for organization")
	}

	return &created, nil
}

func (s *Storage) ListOrganizationCustomers(ctx context.Context, orgID string) ([]*types.OrganizationCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOrganizationCustomers")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "user_id", "name", "email", "created_at").
		From("organization_customers").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	var customers []*types.OrganizationCustomer
	for rows.Next() {
		var c types.OrganizationCustomer
		if err := rows.Scan(&c.ID, &c.OrgID, &c.UserID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return customers, nil
}

func (s *Storage) GetOrganizationCustomerByID(ctx context.Context, id string) (*types.OrganizationCustomer, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationCustomerByID")
	defer span.End()

	var c types.OrganizationCustomer
	err := s.db.Statement(ctx).
		Select("id", "org_id", "user_id", "name", "email", "created_at").
		From("organization_customers").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.OrgID, &c.UserID, &c.Name, &c.Email, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &c, nil
}

// UpdateOrganizationCustomer follows PATCH semantics: only fields named in
// paths change.
func (s *Storage) UpdateOrganizationCustomer(ctx context.Context, c *types.OrganizationCustomer, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganizationCustomer")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = c.Name
		case "email":
			updateMap["email"] = c.Email
		case "user_id":
			updateMap["user_id"] = c.UserID
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("organization_customers").
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID}).
		ExecContext(ctx)

	if err != nil {
		return WrapDuplicateKeyError(err, "customer email already registered for organization")
	}

	return requireRowsAffected(res, "customer")
}

func (s *Storage) DeleteOrganizationCustomer(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrganizationCustomer")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("organization_customers").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	return requireRowsAffected(res, "customer")
}

func (s *Storage) CreateInquiry(ctx context.Context, i *types.Inquiry) (*types.Inquiry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInquiry")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate inquiry ID: %w", err)
	}

	var created types.Inquiry
	err = s.db.Statement(ctx).
		Insert("inquiries").
		Columns("id", "org_id", "name", "email", "message").
		Values(id.String(), i.OrgID, i.Name, i.Email, i.Message).
		Suffix("RETURNING id, org_id, name, email, message, converted, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Name, &created.Email, &created.Message, &created.Converted, &created.CreatedAt)

	if err != nil {
		return nil, WrapForeignKeyError(err, "inquiry references missing organization")
	}

	return &created, nil
}

func (s *Storage) ListInquiries(ctx context.Context, orgID string) ([]*types.Inquiry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListInquiries")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "org_id", "name", "email", "message", "converted", "created_at").
		From("inquiries").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiries: %w", err)
	}
	defer rows.Close()

	var inquiries []*types.Inquiry
	for rows.Next() {
		var i types.Inquiry
		if err := rows.Scan(&i.ID, &i.OrgID, &i.Name, &i.Email, &i.Message, &i.Converted, &i.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry: %w", err)
		}
		inquiries = append(inquiries, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return inquiries, nil
}

func (s *Storage) GetInquiryByID(ctx context.Context, id string) (*types.Inquiry, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInquiryByID")
	defer span.End()

	var i types.Inquiry
	err := s.db.Statement(ctx).
		Select("id", "org_id", "name", "email", "message", "converted", "created_at").
		From("inquiries").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&i.ID, &i.OrgID, &i.Name, &i.Email, &i.Message, &i.Converted, &i.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}

	return &i, nil
}

// MarkInquiryConverted flips the converted flag exactly once; an already
// converted inquiry reports ErrDuplicateKey so callers can't double-convert.
func (s *Storage) MarkInquiryConverted(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInquiryConverted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("inquiries").
		Set("converted", true).
		Where(sq.Eq{"id": id, "converted": false}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to convert inquiry: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Either missing or already converted; disambiguate for the caller.
		if _, err := s.GetInquiryByID(ctx, id); err != nil {
			return err
		}
		return ErrDuplicateKey
	}

	return nil
}
