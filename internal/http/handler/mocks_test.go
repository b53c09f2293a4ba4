package handler_test

import (
	"context"

	"orgbook.app/api-server/internal/model"
	"orgbook.app/api-server/internal/service"
)

type mockOrganizationService struct {
	listFn   func(ctx context.Context, tenantID string) ([]model.Organization, error)
	getFn    func(ctx context.Context, tenantID string, id int64) (*model.Organization, error)
	createFn func(ctx context.Context, tenantID string, fields service.OrganizationFields) (*model.Organization, error)
	updateFn func(ctx context.Context, tenantID string, id int64, fields service.OrganizationFields) (*model.Organization, error)
	deleteFn func(ctx context.Context, tenantID string, id int64) error
}

func (m *mockOrganizationService) List(ctx context.Context, tenantID string) ([]model.Organization, error) {
	if m.listFn != nil {
		return m.listFn(ctx, tenantID)
	}
	return []model.Organization{}, nil
}

func (m *mockOrganizationService) Get(ctx context.Context, tenantID string, id int64) (*model.Organization, error) {
	if m.getFn != nil {
		return m.getFn(ctx, tenantID, id)
	}
	return nil, nil
}

func (m *mockOrganizationService) Create(ctx context.Context, tenantID string, fields service.OrganizationFields) (*model.Organization, error) {
	if m.createFn != nil {
		return m.createFn(ctx, tenantID, fields)
	}
	return nil, nil
}

func (m *mockOrganizationService) Update(ctx context.Context, tenantID string, id int64, fields service.OrganizationFields) (*model.Organization, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, tenantID, id, fields)
	}
	return nil, nil
}

func (m *mockOrganizationService) Delete(ctx context.Context, tenantID string, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, tenantID, id)
	}
	return nil
}
