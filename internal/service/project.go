package service

import (
	"context"

	"github.com/h2non/filetype"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/blob"
	"github.com/vidinfra/erpdesk/internal/domain/project"
	"github.com/vidinfra/erpdesk/internal/domain/task"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error)
	GetProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error)
	UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id string) error

	// RecalculateHealth refreshes the KPIs and health score from the
	// project's tasks. It is the only operation that changes them.
	RecalculateHealth(ctx context.Context, id string) (*dto.ProjectResponse, error)
	UploadFile(ctx context.Context, id string, req dto.UploadFileRequest) (*dto.UploadFileResponse, error)
	RevertFile(ctx context.Context, id, fileID string, req dto.RevertFileRequest) (*dto.FileResponse, error)
}

type projectService struct {
	ServiceParams
}

func NewProjectService(params ServiceParams) ProjectService {
	return &projectService{
		ServiceParams: params,
	}
}

func (s *projectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToProject(ctx)
	if err := s.ProjectRepo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.Logger.Infow("created project",
		"project_id", p.ID,
		"name", p.Name,
		"budget", p.Budget.String(),
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeProject, types.ActionCreated), types.EntityTypeProject, p.ID, p)

	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) GetProject(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	if err := requireID("project", id); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) GetProjects(ctx context.Context, filter *types.ProjectFilter) (*dto.ListProjectsResponse, error) {
	if filter == nil {
		filter = types.NewProjectFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	projects, err := s.ProjectRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ProjectRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, &dto.ProjectResponse{Project: p})
	}

	return &dto.ListProjectsResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *projectService) UpdateProject(ctx context.Context, id string, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.ProjectRepo.Mutate(ctx, id, func(p *project.Project) error {
		req.Apply(p)
		p.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeProject, types.ActionUpdated), types.EntityTypeProject, p.ID, p)
	return &dto.ProjectResponse{Project: p}, nil
}

// DeleteProject removes the project. Its tasks are left in place.
func (s *projectService) DeleteProject(ctx context.Context, id string) error {
	if err := requireID("project", id); err != nil {
		return err
	}

	if err := s.ProjectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeProject, types.ActionDeleted), types.EntityTypeProject, id, nil)
	return nil
}

func (s *projectService) RecalculateHealth(ctx context.Context, id string) (*dto.ProjectResponse, error) {
	if err := requireID("project", id); err != nil {
		return nil, err
	}

	stats, err := s.taskStats(ctx, id)
	if err != nil {
		return nil, err
	}

	var previous decimal.Decimal
	p, err := s.ProjectRepo.Mutate(ctx, id, func(p *project.Project) error {
		previous = p.HealthScore
		p.RecalculateHealth(stats, types.Now(ctx))
		p.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("recalculated project health",
		"project_id", p.ID,
		"previous", previous.String(),
		"health_score", p.HealthScore.String(),
		"tasks", stats.Total,
		"done", stats.Done,
	)
	s.publishEvent(ctx, types.EventProjectHealthUpdated, types.EntityTypeProject, p.ID, map[string]any{
		"kpis":         p.KPIs,
		"health_score": p.HealthScore,
	})

	return &dto.ProjectResponse{Project: p}, nil
}

func (s *projectService) taskStats(ctx context.Context, projectID string) (project.TaskStats, error) {
	filter := types.NewNoLimitTaskFilter()
	filter.ProjectID = projectID

	tasks, err := s.TaskRepo.List(ctx, filter)
	if err != nil {
		return project.TaskStats{}, err
	}

	return project.TaskStats{
		Total: len(tasks),
		Done: lo.CountBy(tasks, func(t *task.ProjectTask) bool {
			return t.Status == types.TaskStatusDone
		}),
	}, nil
}

// UploadFile adds a file to the project, resolving a name collision with the
// requested resolution. When content is given it is stored first so the
// recorded URL points at the stored object. The whole resolution runs under
// the project's write lock, so concurrent uploads get distinct versions.
func (s *projectService) UploadFile(ctx context.Context, id string, req dto.UploadFileRequest) (*dto.UploadFileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// one id per upload so the dry run and the real apply agree
	fileID := types.GenerateUUIDWithPrefix(types.UUID_PREFIX_FILE)
	newID := func() string { return fileID }

	upload := project.Upload{
		Name:       req.Name,
		URL:        req.URL,
		Size:       req.Size,
		MimeType:   req.MimeType,
		UploadedBy: lo.Ternary(req.UploadedBy == "", types.GetUserID(ctx), req.UploadedBy),
		Date:       types.Now(ctx),
	}
	if len(req.Content) > 0 {
		if upload.Size == 0 {
			upload.Size = int64(len(req.Content))
		}
		if upload.MimeType == "" {
			upload.MimeType = detectMimeType(req.Content)
		}
	}

	var res project.UploadResult
	p, err := s.ProjectRepo.Mutate(ctx, id, func(p *project.Project) error {
		if len(req.Content) > 0 {
			// resolve against a copy first to learn which file and version the
			// content belongs to
			preview, err := p.Clone().ApplyUpload(upload, req.Resolution, newID)
			if err != nil {
				return err
			}

			url, err := s.Blob.Put(ctx, &blob.Object{
				Key:         blob.ObjectKey(p.ID, preview.File.ID, preview.File.CurrentVersion, preview.File.Name),
				Data:        req.Content,
				ContentType: upload.MimeType,
			})
			if err != nil {
				return err
			}
			upload.URL = url
		}

		var err error
		res, err = p.ApplyUpload(upload, req.Resolution, newID)
		if err != nil {
			return err
		}
		p.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("uploaded project file",
		"project_id", p.ID,
		"file_id", res.File.ID,
		"name", res.File.Name,
		"version", res.File.CurrentVersion,
		"resolution", res.Resolution,
	)
	s.publishEvent(ctx, uploadEventName(res.Resolution), types.EntityTypeProject, p.ID, res)

	return &dto.UploadFileResponse{
		File:       res.File,
		Resolution: res.Resolution,
		Conflict:   res.Conflict,
		Replaced:   res.Replaced,
	}, nil
}

func (s *projectService) RevertFile(ctx context.Context, id, fileID string, req dto.RevertFileRequest) (*dto.FileResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var f *project.File
	p, err := s.ProjectRepo.Mutate(ctx, id, func(p *project.Project) error {
		var err error
		f, err = p.RevertFile(fileID, req.Version)
		if err != nil {
			return err
		}
		p.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Infow("reverted project file",
		"project_id", p.ID,
		"file_id", f.ID,
		"restored_version", req.Version,
		"current_version", f.CurrentVersion,
	)
	s.publishEvent(ctx, types.EventProjectFileReverted, types.EntityTypeProject, p.ID, map[string]any{
		"file_id":          f.ID,
		"restored_version": req.Version,
		"current_version":  f.CurrentVersion,
	})

	return &dto.FileResponse{File: f}, nil
}

func uploadEventName(resolution types.FileResolution) string {
	switch resolution {
	case types.FileResolutionNewVersion:
		return types.EventProjectFileVersioned
	case types.FileResolutionOverwrite:
		return types.EventProjectFileOverwrite
	case types.FileResolutionRename:
		return types.EventProjectFileRenamed
	default:
		return types.EventProjectFileUploaded
	}
}

func detectMimeType(content []byte) string {
	kind, err := filetype.Match(content)
	if err != nil || kind == filetype.Unknown {
		return "application/octet-stream"
	}
	return kind.MIME.Value
}
