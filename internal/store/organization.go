package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"orgbook.app/api-server/core/db/sqlc"
	"orgbook.app/api-server/internal/model"
)

type organizationStore struct {
	queries *sqlc.Queries
}

func newOrganizationStore(queries *sqlc.Queries) OrganizationStore {
	return &organizationStore{queries: queries}
}

func (s *organizationStore) GetByID(ctx context.Context, tenantID string, id int64) (*model.Organization, error) {
	row, err := s.queries.GetOrganization(ctx, sqlc.GetOrganizationParams{
		ID:       id,
		TenantID: tenantID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toOrganizationModel(row), nil
}

func (s *organizationStore) ListByTenant(ctx context.Context, tenantID string) ([]model.Organization, error) {
	rows, err := s.queries.ListOrganizationsByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	return toOrganizationModels(rows), nil
}

func (s *organizationStore) Create(ctx context.Context, org *model.Organization) error {
	row, err := s.queries.CreateOrganization(ctx, sqlc.CreateOrganizationParams{
		ID:          org.ID,
		TenantID:    org.TenantID,
		Name:        org.Name,
		OrgNumber:   org.OrgNumber,
		Address:     org.Address,
		City:        org.City,
		Zip:         org.Zip,
		Phone:       org.Phone,
		Email:       org.Email,
		Website:     org.Website,
		Description: org.Description,
		CreatedAt:   pgtype.Timestamptz{Time: org.CreatedAt, Valid: true},
	})
	if err != nil {
		return err
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) Update(ctx context.Context, org *model.Organization) error {
	updatedAt := pgtype.Timestamptz{}
	if org.UpdatedAt != nil {
		updatedAt = pgtype.Timestamptz{Time: *org.UpdatedAt, Valid: true}
	}

	row, err := s.queries.UpdateOrganization(ctx, sqlc.UpdateOrganizationParams{
		ID:          org.ID,
		TenantID:    org.TenantID,
		Name:        org.Name,
		OrgNumber:   org.OrgNumber,
		Address:     org.Address,
		City:        org.City,
		Zip:         org.Zip,
		Phone:       org.Phone,
		Email:       org.Email,
		Website:     org.Website,
		Description: org.Description,
		UpdatedAt:   updatedAt,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*org = *toOrganizationModel(row)
	return nil
}

func (s *organizationStore) Delete(ctx context.Context, tenantID string, id int64) error {
	_, err := s.queries.DeleteOrganization(ctx, sqlc.DeleteOrganizationParams{
		ID:       id,
		TenantID: tenantID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func toOrganizationModel(row sqlc.Organization) *model.Organization {
	var updatedAt *time.Time
	if row.UpdatedAt.Valid {
		t := row.UpdatedAt.Time
		updatedAt = &t
	}

	return &model.Organization{
		ID:          row.ID,
		TenantID:    row.TenantID,
		Name:        row.Name,
		OrgNumber:   row.OrgNumber,
		Address:     row.Address,
		City:        row.City,
		Zip:         row.Zip,
		Phone:       row.Phone,
		Email:       row.Email,
		Website:     row.Website,
		Description: row.Description,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   updatedAt,
	}
}

func toOrganizationModels(rows []sqlc.Organization) []model.Organization {
	result := make([]model.Organization, len(rows))
	for i, row := range rows {
		result[i] = *toOrganizationModel(row)
	}
	return result
}
