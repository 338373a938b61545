package dto

import (
	"github.com/vidinfra/erpdesk/internal/activity"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ListActivityResponse = types.ListResponse[*activity.Entry]
