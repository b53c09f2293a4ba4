package service

import (
	"orgbook.app/api-server/internal/store"
)

type Services struct {
	stores *store.Stores
}

func NewServices(stores *store.Stores) *Services {
	return &Services{stores: stores}
}

func (s *Services) Organizations() OrganizationService {
	return NewOrganizationService(s.stores.Organizations())
}
