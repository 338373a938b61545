package service

import (
	"context"
	"strings"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/suggestion"
)

type SuggestionService interface {
	GetSuggestions(ctx context.Context, list string) (*dto.SuggestionsResponse, error)
}

type suggestionService struct {
	ServiceParams
}

func NewSuggestionService(params ServiceParams) SuggestionService {
	return &suggestionService{
		ServiceParams: params,
	}
}

func (s *suggestionService) GetSuggestions(_ context.Context, list string) (*dto.SuggestionsResponse, error) {
	if !suggestion.IsKnownList(list) {
		return nil, ierr.NewErrorf("unknown suggestion list %s", list).
			WithHintf("Suggestion list must be one of %s", strings.Join(suggestion.KnownLists, ", ")).
			WithReportableDetails(map[string]any{
				"list": list,
			}).
			Mark(ierr.ErrNotFound)
	}

	return &dto.SuggestionsResponse{
		List:   list,
		Values: s.Suggestions.List(list),
	}, nil
}
