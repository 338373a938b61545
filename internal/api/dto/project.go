package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/project"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateProjectRequest struct {
	Name        string              `json:"name" validate:"required"`
	Description string              `json:"description,omitempty"`
	Client      string              `json:"client" validate:"required"`
	Manager     string              `json:"manager" validate:"required"`
	Status      types.ProjectStatus `json:"status,omitempty"`
	StartDate   time.Time           `json:"start_date" validate:"required"`
	EndDate     time.Time           `json:"end_date" validate:"required"`
	Budget      decimal.Decimal     `json:"budget" validate:"required"`
	Spent       decimal.Decimal     `json:"spent"`
	Progress    int                 `json:"progress"`
	Team        []string            `json:"team,omitempty"`
}

func (r *CreateProjectRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

// ToProject starts the project with default KPIs and a full health score
func (r *CreateProjectRequest) ToProject(ctx context.Context) *project.Project {
	return &project.Project{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PROJECT),
		Name:        r.Name,
		Description: r.Description,
		Client:      r.Client,
		Manager:     r.Manager,
		Status:      lo.Ternary(r.Status == "", types.ProjectStatusPlanning, r.Status),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Budget:      r.Budget,
		Spent:       r.Spent,
		Progress:    r.Progress,
		Team:        lo.Ternary(r.Team == nil, []string{}, r.Team),
		KPIs:        project.DefaultKPIs(),
		HealthScore: project.HealthScore(project.DefaultKPIs()),
		Files:       []*project.File{},
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

// UpdateProjectRequest is a patch. KPIs and health are only recomputed by
// the explicit health recalculation.
type UpdateProjectRequest struct {
	Name               *string              `json:"name,omitempty"`
	Description        *string              `json:"description,omitempty"`
	Client             *string              `json:"client,omitempty"`
	Manager            *string              `json:"manager,omitempty"`
	Status             *types.ProjectStatus `json:"status,omitempty"`
	StartDate          *time.Time           `json:"start_date,omitempty"`
	EndDate            *time.Time           `json:"end_date,omitempty"`
	Budget             *decimal.Decimal     `json:"budget,omitempty"`
	Spent              *decimal.Decimal     `json:"spent,omitempty"`
	Progress           *int                 `json:"progress,omitempty"`
	Team               []string             `json:"team,omitempty"`
	ClientSatisfaction *decimal.Decimal     `json:"client_satisfaction,omitempty"`
}

func (r *UpdateProjectRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("name", r.Name),
		blankString("client", r.Client),
		blankString("manager", r.Manager),
		blankTime("start_date", r.StartDate),
		blankTime("end_date", r.EndDate),
		blankDecimal("budget", r.Budget),
	)
}

func (r *UpdateProjectRequest) Apply(p *project.Project) {
	set(&p.Name, r.Name)
	set(&p.Description, r.Description)
	set(&p.Client, r.Client)
	set(&p.Manager, r.Manager)
	set(&p.Status, r.Status)
	set(&p.StartDate, r.StartDate)
	set(&p.EndDate, r.EndDate)
	set(&p.Budget, r.Budget)
	set(&p.Spent, r.Spent)
	set(&p.Progress, r.Progress)
	set(&p.KPIs.ClientSatisfaction, r.ClientSatisfaction)
	if r.Team != nil {
		p.Team = append([]string{}, r.Team...)
	}
}

type ProjectResponse struct {
	*project.Project
}

type ListProjectsResponse = types.ListResponse[*ProjectResponse]

// UploadFileRequest adds a file to a project. Content is optional; when it is
// given it is stored and the URL is derived from the storage key.
type UploadFileRequest struct {
	Name       string               `json:"name" validate:"required"`
	URL        string               `json:"url,omitempty"`
	Content    []byte               `json:"content,omitempty"`
	Size       int64                `json:"size,omitempty"`
	MimeType   string               `json:"mime_type,omitempty"`
	UploadedBy string               `json:"uploaded_by,omitempty"`
	Resolution types.FileResolution `json:"resolution,omitempty"`
}

func (r *UploadFileRequest) Validate() error {
	if err := r.Resolution.Validate(); err != nil {
		return err
	}
	if r.URL == "" && len(r.Content) == 0 {
		return ierr.NewError("file url or content is required").
			WithHint("Please provide the file content or a link to it").
			Mark(ierr.ErrValidation)
	}
	return validator.ValidateRequest(r)
}

type UploadFileResponse struct {
	File       *project.File        `json:"file"`
	Resolution types.FileResolution `json:"resolution,omitempty"`
	Conflict   bool                 `json:"conflict"`
	Replaced   *project.FileVersion `json:"replaced,omitempty"`
}

type RevertFileRequest struct {
	Version int `json:"version" validate:"required"`
}

func (r *RevertFileRequest) Validate() error {
	return validator.ValidateRequest(r)
}

type FileResponse struct {
	*project.File
}
