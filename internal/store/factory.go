package store

import (
	"orgbook.app/api-server/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Organizations() OrganizationStore {
	return newOrganizationStore(s.queries)
}
