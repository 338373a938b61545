package dto

import (
	"context"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/client"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateClientRequest struct {
	Name         string             `json:"name" validate:"required"`
	Company      string             `json:"company,omitempty"`
	Email        string             `json:"email" validate:"required"`
	Phone        string             `json:"phone,omitempty"`
	Industry     string             `json:"industry,omitempty"`
	Address      string             `json:"address,omitempty"`
	Status       types.ClientStatus `json:"status,omitempty"`
	TotalRevenue decimal.Decimal    `json:"total_revenue"`
}

func (r *CreateClientRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateClientRequest) ToClient(ctx context.Context) *client.Client {
	return &client.Client{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CLIENT),
		Name:         r.Name,
		Company:      r.Company,
		Email:        r.Email,
		Phone:        r.Phone,
		Industry:     r.Industry,
		Address:      r.Address,
		Status:       lo.Ternary(r.Status == "", types.ClientStatusActive, r.Status),
		TotalRevenue: r.TotalRevenue,
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type UpdateClientRequest struct {
	Name         *string             `json:"name,omitempty"`
	Company      *string             `json:"company,omitempty"`
	Email        *string             `json:"email,omitempty"`
	Phone        *string             `json:"phone,omitempty"`
	Industry     *string             `json:"industry,omitempty"`
	Address      *string             `json:"address,omitempty"`
	Status       *types.ClientStatus `json:"status,omitempty"`
	TotalRevenue *decimal.Decimal    `json:"total_revenue,omitempty"`
}

func (r *UpdateClientRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("name", r.Name),
		blankString("email", r.Email),
	)
}

func (r *UpdateClientRequest) Apply(c *client.Client) {
	set(&c.Name, r.Name)
	set(&c.Company, r.Company)
	set(&c.Email, r.Email)
	set(&c.Phone, r.Phone)
	set(&c.Industry, r.Industry)
	set(&c.Address, r.Address)
	set(&c.Status, r.Status)
	set(&c.TotalRevenue, r.TotalRevenue)
}

type ClientResponse struct {
	*client.Client
}

type ListClientsResponse = types.ListResponse[*ClientResponse]
