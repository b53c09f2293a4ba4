package model

import "time"

// Organization is the sole persisted entity: one company profile owned by
// exactly one tenant. TenantID is stamped at creation and never changes.
type Organization struct {
	ID          int64      `json:"id"`
	TenantID    string     `json:"tenant_id"`
	Name        string     `json:"name"`
	OrgNumber   string     `json:"org_number"`
	Address     string     `json:"address"`
	City        string     `json:"city"`
	Zip         string     `json:"zip"`
	Phone       string     `json:"phone"`
	Email       string     `json:"email"`
	Website     string     `json:"website"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"` // nil until the first update
}
