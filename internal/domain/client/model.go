package client

import (
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

type Client struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Company      string             `json:"company"`
	Email        string             `json:"email"`
	Phone        string             `json:"phone,omitempty"`
	Industry     string             `json:"industry,omitempty"`
	Address      string             `json:"address,omitempty"`
	Status       types.ClientStatus `json:"status"`
	TotalRevenue decimal.Decimal    `json:"total_revenue"`
	types.BaseModel
}

func (c *Client) GetID() string { return c.ID }

func (c *Client) Clone() *Client {
	cp := *c
	return &cp
}
