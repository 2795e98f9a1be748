// Copyright 2026 Relay Digital Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/RelayDigital/vrem-sub006/internal/types"
)

// Technician profile documents (availability, reliability, skills,
// preferred clients) live in jsonb columns: they are read whole on every
// ranking pass and never filtered on in SQL.

var technicianColumns = []string{
	"id", "company_id", "name", "status",
	"home_lat", "home_lng",
	"availability", "reliability", "skills", "preferred_clients",
	"created_at",
}

func scanTechnician(row sq.RowScanner) (*types.TechnicianProfile, error) {
	var p types.TechnicianProfile
	var availability, reliability, skills, preferredClients []byte

	err := row.Scan(
		&p.ID, &p.CompanyID, &p.Name, &p.Status,
		&p.HomeLocation.Lat, &p.HomeLocation.Lng,
		&availability, &reliability, &skills, &preferredClients,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := decodeDocument(availability, &p.Availability, "availability"); err != nil {
		return nil, err
	}
	if err := decodeDocument(reliability, &p.Reliability, "reliability"); err != nil {
		return nil, err
	}
	if err := decodeDocument(skills, &p.Skills, "skills"); err != nil {
		return nil, err
	}
	if err := decodeDocument(preferredClients, &p.PreferredClients, "preferred_clients"); err != nil {
		return nil, err
	}

	return &p, nil
}

func decodeDocument(raw []byte, dst interface{}, column string) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("failed to decode %s document: %w", column, err)
	}
	return nil
}

func (s *Storage) CreateTechnicianProfile(ctx context.Context, p *types.TechnicianProfile) (*types.TechnicianProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTechnicianProfile")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate technician ID: %w", err)
	}

	availability, err := json.Marshal(p.Availability)
	if err != nil {
		return nil, fmt.Errorf("failed to encode availability: %w", err)
	}
	reliability, err := json.Marshal(p.Reliability)
	if err != nil {
		return nil, fmt.Errorf("failed to encode reliability: %w", err)
	}
	skills, err := json.Marshal(p.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skills: %w", err)
	}
	preferredClients, err := json.Marshal(p.PreferredClients)
	if err != nil {
		return nil, fmt.Errorf("failed to encode preferred clients: %w", err)
	}

	status := p.Status
	if status == "" {
		status = types.TechnicianActive
	}

	_, err = s.db.Statement(ctx).
		Insert("technician_profiles").
		Columns("id", "company_id", "name", "status", "home_lat", "home_lng",
			"availability", "reliability", "skills", "preferred_clients").
		Values(id.String(), p.CompanyID, p.Name, status,
			p.HomeLocation.Lat, p.HomeLocation.Lng,
			availability, reliability, skills, preferredClients).
		ExecContext(ctx)

	if err != nil {
		return nil, WrapForeignKeyError(err, "technician references missing company")
	}

	return s.GetTechnicianProfileByID(ctx, id.String())
}

func (s *Storage) GetTechnicianProfileByID(ctx context.Context, id string) (*types.TechnicianProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTechnicianProfileByID")
	defer span.End()

	row := s.db.Statement(ctx).
		Select(technicianColumns...).
		From("technician_profiles").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx)

	p, err := scanTechnician(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get technician: %w", err)
	}

	return p, nil
}

// ListTechnicianProfiles returns every profile regardless of status; the
// ranking engine applies the active filter so inactive exclusion has a
// single owner.
func (s *Storage) ListTechnicianProfiles(ctx context.Context) ([]*types.TechnicianProfile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListTechnicianProfiles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(technicianColumns...).
		From("technician_profiles").
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}
	defer rows.Close()

	var profiles []*types.TechnicianProfile
	for rows.Next() {
		p, err := scanTechnician(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan technician: %w", err)
		}
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return profiles, nil
}

// SetTechnicianStatus toggles a profile between active and inactive.
// Profiles are never deleted.
func (s *Storage) SetTechnicianStatus(ctx context.Context, id string, status types.TechnicianStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetTechnicianStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("technician_profiles").
		Set("status", status).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to set technician status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// RecordJobOutcome folds one completed job into the reliability document.
// The on-time rate is recomputed over the new total so the stored document
// stays consistent with its own counters.
func (s *Storage) RecordJobOutcome(ctx context.Context, id string, onTime bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordJobOutcome")
	defer span.End()

	p, err := s.GetTechnicianProfileByID(ctx, id)
	if err != nil {
		return err
	}

	r := p.Reliability
	onTimeJobs := r.OnTimeRate * float64(r.TotalJobs)
	if onTime {
		onTimeJobs++
	} else {
		r.NoShows++
	}
	r.TotalJobs++
	r.OnTimeRate = onTimeJobs / float64(r.TotalJobs)

	reliability, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode reliability: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Update("technician_profiles").
		Set("reliability", reliability).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to record job outcome: %w", err)
	}

	return nil
}

func (s *Storage) ListPreferredVendorIDs(ctx context.Context, orgID string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPreferredVendorIDs")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("company_id").
		From("preferred_vendors").
		Where(sq.Eq{"org_id": orgID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list preferred vendors: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan preferred vendor: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func (s *Storage) AddPreferredVendor(ctx context.Context, orgID, companyID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddPreferredVendor")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("preferred_vendors").
		Columns("org_id", "company_id").
		Values(orgID, companyID).
		Suffix("ON CONFLICT DO NOTHING").
		ExecContext(ctx)

	if err != nil {
		return WrapForeignKeyError(err, "preferred vendor references missing organization or company")
	}

	return nil
}
