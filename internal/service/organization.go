package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"orgbook.app/api-server/common/id"
	"orgbook.app/api-server/internal/model"
	"orgbook.app/api-server/internal/store"
)

var (
	// ErrNotFound is returned when no organization matches (id, tenant),
	// including ids that exist under a different tenant.
	ErrNotFound = errors.New("organization not found")

	// ErrInvalidInput is returned when a required field is missing or empty.
	ErrInvalidInput = errors.New("name is required")
)

// OrganizationFields are the caller-settable fields of an organization.
// id, tenant_id and timestamps are assigned by the service, never by input.
type OrganizationFields struct {
	Name        string
	OrgNumber   string
	Address     string
	City        string
	Zip         string
	Phone       string
	Email       string
	Website     string
	Description string
}

type OrganizationService interface {
	List(ctx context.Context, tenantID string) ([]model.Organization, error)
	Get(ctx context.Context, tenantID string, id int64) (*model.Organization, error)
	Create(ctx context.Context, tenantID string, fields OrganizationFields) (*model.Organization, error)
	Update(ctx context.Context, tenantID string, id int64, fields OrganizationFields) (*model.Organization, error)
	Delete(ctx context.Context, tenantID string, id int64) error
}

type organizationService struct {
	orgStore store.OrganizationStore
}

func NewOrganizationService(orgStore store.OrganizationStore) OrganizationService {
	return &organizationService{orgStore: orgStore}
}

func (s *organizationService) List(ctx context.Context, tenantID string) ([]model.Organization, error) {
	orgs, err := s.orgStore.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}
	if orgs == nil {
		orgs = []model.Organization{}
	}
	return orgs, nil
}

func (s *organizationService) Get(ctx context.Context, tenantID string, orgID int64) (*model.Organization, error) {
	org, err := s.orgStore.GetByID(ctx, tenantID, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting organization: %w", err)
	}
	return org, nil
}

func (s *organizationService) Create(ctx context.Context, tenantID string, fields OrganizationFields) (*model.Organization, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	org := &model.Organization{
		ID:          id.New(),
		TenantID:    tenantID,
		Name:        name,
		OrgNumber:   fields.OrgNumber,
		Address:     fields.Address,
		City:        fields.City,
		Zip:         fields.Zip,
		Phone:       fields.Phone,
		Email:       fields.Email,
		Website:     fields.Website,
		Description: fields.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.orgStore.Create(ctx, org); err != nil {
		slog.ErrorContext(ctx, "failed to create organization", "error", err)
		return nil, fmt.Errorf("creating organization: %w", err)
	}

	slog.InfoContext(ctx, "organization created", "organization_id", org.ID)
	return org, nil
}

// Update replaces every mutable field: optional fields absent from the input
// become empty strings rather than keeping their previous values.
func (s *organizationService) Update(ctx context.Context, tenantID string, orgID int64, fields OrganizationFields) (*model.Organization, error) {
	name := strings.TrimSpace(fields.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	now := time.Now().UTC()
	org := &model.Organization{
		ID:          orgID,
		TenantID:    tenantID,
		Name:        name,
		OrgNumber:   fields.OrgNumber,
		Address:     fields.Address,
		City:        fields.City,
		Zip:         fields.Zip,
		Phone:       fields.Phone,
		Email:       fields.Email,
		Website:     fields.Website,
		Description: fields.Description,
		UpdatedAt:   &now,
	}

	if err := s.orgStore.Update(ctx, org); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		slog.ErrorContext(ctx, "failed to update organization", "error", err, "organization_id", orgID)
		return nil, fmt.Errorf("updating organization: %w", err)
	}

	slog.InfoContext(ctx, "organization updated", "organization_id", org.ID)
	return org, nil
}

func (s *organizationService) Delete(ctx context.Context, tenantID string, orgID int64) error {
	if err := s.orgStore.Delete(ctx, tenantID, orgID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		slog.ErrorContext(ctx, "failed to delete organization", "error", err, "organization_id", orgID)
		return fmt.Errorf("deleting organization: %w", err)
	}

	slog.InfoContext(ctx, "organization deleted", "organization_id", orgID)
	return nil
}
