package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ActivityService interface {
	GetActivity(ctx context.Context, filter *types.ActivityFilter) (*dto.ListActivityResponse, error)
}

type activityService struct {
	ServiceParams
}

func NewActivityService(params ServiceParams) ActivityService {
	return &activityService{
		ServiceParams: params,
	}
}

func (s *activityService) GetActivity(ctx context.Context, filter *types.ActivityFilter) (*dto.ListActivityResponse, error) {
	if filter == nil {
		filter = types.NewActivityFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	entries, total := s.ActivityLog.List(ctx, filter)
	resp := types.NewListResponse(entries, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}
