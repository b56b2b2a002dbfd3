// internals/features/lembaga/organizations/dto/organization_dto.go
package dto

type CreateOrganizationRequest struct {
	OrganizationName    string  `json:"organization_name" validate:"required,min=3,max=150"`
	OrganizationAddress *string `json:"organization_address,omitempty" validate:"omitempty,max=500"`
	OrganizationCity    *string `json:"organization_city,omitempty" validate:"omitempty,max=100"`
	OrganizationPhone   *string `json:"organization_phone,omitempty" validate:"omitempty,max=30"`
}

type UpdateOrganizationRequest struct {
	OrganizationName    *string `json:"organization_name,omitempty" validate:"omitempty,min=3,max=150"`
	OrganizationAddress *string `json:"organization_address,omitempty" validate:"omitempty,max=500"`
	OrganizationCity    *string `json:"organization_city,omitempty" validate:"omitempty,max=100"`
	OrganizationPhone   *string `json:"organization_phone,omitempty" validate:"omitempty,max=30"`
}

type VerifyOrganizationRequest struct {
	Approved bool    `json:"approved"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}
