package types

import (
	"context"
	"time"
)

// BaseModel carries the audit fields every entity shares
type BaseModel struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy string    `json:"created_by"`
	UpdatedBy string    `json:"updated_by"`
}

func GetDefaultBaseModel(ctx context.Context) BaseModel {
	now := Now(ctx)
	return BaseModel{
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: GetUserID(ctx),
		UpdatedBy: GetUserID(ctx),
	}
}

// Touch stamps an update
func (b *BaseModel) Touch(ctx context.Context) {
	b.UpdatedAt = Now(ctx)
	b.UpdatedBy = GetUserID(ctx)
}
