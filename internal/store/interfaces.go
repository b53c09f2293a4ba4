package store

import (
	"context"
	"errors"

	"orgbook.app/api-server/internal/model"
)

// ErrNotFound covers both a row that does not exist and a row owned by a
// different tenant. The two are indistinguishable on purpose: every scoped
// query carries tenant_id in its SQL predicate, so a foreign tenant's row is
// never observable through this interface.
var ErrNotFound = errors.New("not found")

type OrganizationStore interface {
	GetByID(ctx context.Context, tenantID string, id int64) (*model.Organization, error)
	ListByTenant(ctx context.Context, tenantID string) ([]model.Organization, error) // ordered by name ascending
	Create(ctx context.Context, org *model.Organization) error
	Update(ctx context.Context, org *model.Organization) error
	Delete(ctx context.Context, tenantID string, id int64) error
}
