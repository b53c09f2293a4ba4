package dto

import (
	"time"

	"orgbook.app/api-server/internal/model"
	"orgbook.app/api-server/internal/service"
)

// OrganizationRequest is the body shape shared by create and update. Updates
// are a full replace: omitted optional fields reset to the empty string.
type OrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	OrgNumber   string `json:"org_number"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	Description string `json:"description"`
}

func (r OrganizationRequest) Fields() service.OrganizationFields {
	return service.OrganizationFields{
		Name:        r.Name,
		OrgNumber:   r.OrgNumber,
		Address:     r.Address,
		City:        r.City,
		Zip:         r.Zip,
		Phone:       r.Phone,
		Email:       r.Email,
		Website:     r.Website,
		Description: r.Description,
	}
}

type OrganizationResponse struct {
	ID          int64      `json:"id,string"`
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
	UpdatedAt   *time.Time `json:"updated_at"`
}

func ToOrganizationResponse(org *model.Organization) *OrganizationResponse {
	return &OrganizationResponse{
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
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}
}

func ToOrganizationResponses(orgs []model.Organization) []OrganizationResponse {
	result := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		result[i] = *ToOrganizationResponse(&orgs[i])
	}
	return result
}
