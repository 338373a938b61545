package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sourcegraph/conc/pool"
	"github.com/stretchr/testify/suite"
	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/blob"
	"github.com/vidinfra/erpdesk/internal/domain/project"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/testutil"
	"github.com/vidinfra/erpdesk/internal/types"
)

type ProjectServiceSuite struct {
	testutil.BaseServiceTestSuite
	service ProjectService
	tasks   TaskService
}

func TestProjectService(t *testing.T) {
	suite.Run(t, new(ProjectServiceSuite))
}

func (s *ProjectServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := testServiceParams(&s.BaseServiceTestSuite)
	s.service = NewProjectService(params)
	s.tasks = NewTaskService(params)
}

// png magic followed by padding
var pngContent = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 0x49, 0x48, 0x44, 0x52}

func (s *ProjectServiceSuite) createProject() *dto.ProjectResponse {
	p, err := s.service.CreateProject(s.GetContext(), dto.CreateProjectRequest{
		Name:      "Warehouse migration",
		Client:    "Globex",
		Manager:   "sara",
		StartDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC),
		Budget:    decimal.NewFromInt(10000),
		Spent:     decimal.NewFromInt(11000),
		Progress:  40,
	})
	s.Require().NoError(err)
	return p
}

func (s *ProjectServiceSuite) TestCreateProject_Defaults() {
	p := s.createProject()

	s.Equal(types.ProjectStatusPlanning, p.Status)
	s.True(decimal.NewFromInt(100).Equal(p.HealthScore))
	s.Equal(project.DefaultKPIs(), p.KPIs)
	s.Empty(p.Files)
}

func (s *ProjectServiceSuite) TestRecalculateHealth() {
	p := s.createProject()

	for i, status := range []types.TaskStatus{types.TaskStatusDone, types.TaskStatusTodo, types.TaskStatusReview, types.TaskStatusInProgress} {
		_, err := s.tasks.CreateTask(s.GetContext(), dto.CreateTaskRequest{
			ProjectID: p.ID,
			Title:     "task",
			Status:    status,
		})
		s.Require().NoError(err, "task %d", i)
	}
	_, err := s.tasks.CreateTask(s.GetContext(), dto.CreateTaskRequest{ProjectID: "proj_other", Title: "other"})
	s.Require().NoError(err)

	// task changes alone never touch the score
	stored, err := s.service.GetProject(s.GetContext(), p.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(100).Equal(stored.HealthScore))

	// 50 of 100 days elapsed with 40% progress: 10 days behind
	s.SetNow(time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC))

	updated, err := s.service.RecalculateHealth(s.GetContext(), p.ID)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(25).Equal(updated.KPIs.TaskCompletionRate))
	s.True(decimal.NewFromInt(110).Equal(updated.KPIs.BudgetAdherence))
	s.Equal(-10, updated.KPIs.ScheduleVariance)
	// 100 - 15 budget - 20 schedule
	s.True(decimal.NewFromInt(65).Equal(updated.HealthScore), "got %s", updated.HealthScore)
	s.Contains(s.GetPublisher().EventNames(), types.EventProjectHealthUpdated)
}

func (s *ProjectServiceSuite) TestUpdateProject_DoesNotRecomputeHealth() {
	p := s.createProject()

	satisfaction := decimal.NewFromInt(2)
	updated, err := s.service.UpdateProject(s.GetContext(), p.ID, dto.UpdateProjectRequest{ClientSatisfaction: &satisfaction})
	s.Require().NoError(err)
	s.True(satisfaction.Equal(updated.KPIs.ClientSatisfaction))
	s.True(decimal.NewFromInt(100).Equal(updated.HealthScore))
}

func (s *ProjectServiceSuite) TestDeleteProject_KeepsTasks() {
	p := s.createProject()
	t, err := s.tasks.CreateTask(s.GetContext(), dto.CreateTaskRequest{ProjectID: p.ID, Title: "cut over"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.DeleteProject(s.GetContext(), p.ID))

	kept, err := s.tasks.GetTask(s.GetContext(), t.ID)
	s.Require().NoError(err)
	s.Equal(p.ID, kept.ProjectID)
}

func (s *ProjectServiceSuite) upload(projectID, name string, content []byte, resolution types.FileResolution) (*dto.UploadFileResponse, error) {
	return s.service.UploadFile(s.GetContext(), projectID, dto.UploadFileRequest{
		Name:       name,
		Content:    content,
		Resolution: resolution,
	})
}

func (s *ProjectServiceSuite) TestUploadFile_StoresContent() {
	p := s.createProject()

	res, err := s.upload(p.ID, "logo.png", pngContent, types.FileResolutionNone)
	s.Require().NoError(err)
	s.False(res.Conflict)

	f := res.File
	key := blob.ObjectKey(p.ID, f.ID, 1, "logo.png")
	s.Equal("/files/"+key, f.URL)
	s.Equal("image/png", f.MimeType)
	s.Equal(int64(len(pngContent)), f.Size)
	s.Equal(types.DefaultUserID, f.UploadedBy)

	obj, err := s.GetBlob().Get(context.Background(), key)
	s.Require().NoError(err)
	s.Equal(pngContent, obj.Data)
}

func (s *ProjectServiceSuite) TestUploadFile_LinkOnly() {
	p := s.createProject()

	res, err := s.service.UploadFile(s.GetContext(), p.ID, dto.UploadFileRequest{
		Name:     "brief.pdf",
		URL:      "https://docs.example/brief.pdf",
		Size:     2048,
		MimeType: "application/pdf",
	})
	s.Require().NoError(err)
	s.Equal("https://docs.example/brief.pdf", res.File.URL)
	s.Equal(int64(2048), res.File.Size)

	_, err = s.service.UploadFile(s.GetContext(), p.ID, dto.UploadFileRequest{Name: "empty.txt"})
	s.True(ierr.IsValidation(err))
}

func (s *ProjectServiceSuite) TestUploadFile_CollisionNeedsResolution() {
	p := s.createProject()
	_, err := s.upload(p.ID, "plan.txt", []byte("v1"), types.FileResolutionNone)
	s.Require().NoError(err)

	_, err = s.upload(p.ID, "plan.txt", []byte("v2"), types.FileResolutionNone)
	s.True(ierr.IsAlreadyExists(err))

	stored, err := s.service.GetProject(s.GetContext(), p.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Files, 1)
	s.Equal(1, stored.Files[0].CurrentVersion)
}

func (s *ProjectServiceSuite) TestUploadVersionAndRevert() {
	p := s.createProject()
	first, err := s.upload(p.ID, "plan.txt", []byte("first draft"), types.FileResolutionNone)
	s.Require().NoError(err)
	v1URL := first.File.URL

	second, err := s.upload(p.ID, "plan.txt", []byte("second draft"), types.FileResolutionNewVersion)
	s.Require().NoError(err)
	s.True(second.Conflict)
	s.Equal(first.File.ID, second.File.ID)
	s.Equal(2, second.File.CurrentVersion)
	s.NotEqual(v1URL, second.File.URL)
	s.Require().Len(second.File.Versions, 1)
	s.Equal(v1URL, second.File.Versions[0].URL)

	reverted, err := s.service.RevertFile(s.GetContext(), p.ID, first.File.ID, dto.RevertFileRequest{Version: 1})
	s.Require().NoError(err)
	s.Equal(3, reverted.CurrentVersion)
	s.Equal(v1URL, reverted.URL)
	s.Len(reverted.Versions, 2)

	_, err = s.service.RevertFile(s.GetContext(), p.ID, first.File.ID, dto.RevertFileRequest{Version: 3})
	s.True(ierr.IsNotFound(err))

	s.Equal([]string{
		"project.created",
		types.EventProjectFileUploaded,
		types.EventProjectFileVersioned,
		types.EventProjectFileReverted,
	}, s.GetPublisher().EventNames())
}

func (s *ProjectServiceSuite) TestUploadRenameAndOverwrite() {
	p := s.createProject()
	_, err := s.upload(p.ID, "report.pdf", []byte("a"), types.FileResolutionNone)
	s.Require().NoError(err)

	copied, err := s.upload(p.ID, "report.pdf", []byte("b"), types.FileResolutionRename)
	s.Require().NoError(err)
	s.Equal("report (Copy).pdf", copied.File.Name)
	s.Equal(1, copied.File.CurrentVersion)

	overwritten, err := s.upload(p.ID, "report.pdf", []byte("cc"), types.FileResolutionOverwrite)
	s.Require().NoError(err)
	s.Equal(1, overwritten.File.CurrentVersion)
	s.Empty(overwritten.File.Versions)
	s.Equal(int64(2), overwritten.File.Size)

	stored, err := s.service.GetProject(s.GetContext(), p.ID)
	s.Require().NoError(err)
	s.Len(stored.Files, 2)
	s.Contains(s.GetPublisher().EventNames(), types.EventProjectFileOverwrite)
	s.Contains(s.GetPublisher().EventNames(), types.EventProjectFileRenamed)
}

func (s *ProjectServiceSuite) TestUploadFile_ConcurrentNewVersions() {
	p := s.createProject()
	_, err := s.upload(p.ID, "logo.png", pngContent, types.FileResolutionNone)
	s.Require().NoError(err)

	const uploads = 50
	wp := pool.New().WithErrors().WithMaxGoroutines(16)
	for i := 0; i < uploads; i++ {
		wp.Go(func() error {
			_, err := s.upload(p.ID, "logo.png", pngContent, types.FileResolutionNewVersion)
			return err
		})
	}
	s.Require().NoError(wp.Wait())

	stored, err := s.service.GetProject(s.GetContext(), p.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Files, 1)

	f := stored.Files[0]
	s.Equal(1+uploads, f.CurrentVersion)
	s.Len(f.Versions, uploads)

	// every version got its own blob object
	urls := map[string]struct{}{f.URL: {}}
	for i, v := range f.Versions {
		s.Equal(i+1, v.VersionNumber)
		urls[v.URL] = struct{}{}
	}
	s.Len(urls, 1+uploads)
	for version := 1; version <= 1+uploads; version++ {
		ok, err := s.GetBlob().Exists(s.GetContext(), blob.ObjectKey(p.ID, f.ID, version, "logo.png"))
		s.Require().NoError(err)
		s.True(ok, "version %d", version)
	}
}

func (s *ProjectServiceSuite) TestUploadOverwrite_EventKeepsReplacedVersion() {
	p := s.createProject()
	_, err := s.service.UploadFile(s.GetContext(), p.ID, dto.UploadFileRequest{
		Name:       "contract.pdf",
		URL:        "/old-url",
		Size:       111,
		UploadedBy: "sara",
	})
	s.Require().NoError(err)

	res, err := s.service.UploadFile(s.GetContext(), p.ID, dto.UploadFileRequest{
		Name:       "contract.pdf",
		URL:        "/new-url",
		Size:       222,
		UploadedBy: "omar",
		Resolution: types.FileResolutionOverwrite,
	})
	s.Require().NoError(err)
	s.Equal("/new-url", res.File.URL)
	s.Require().NotNil(res.Replaced)
	s.Equal("/old-url", res.Replaced.URL)
	s.Equal(int64(111), res.Replaced.Size)
	s.Equal("sara", res.Replaced.UploadedBy)
	s.Equal(1, res.Replaced.VersionNumber)

	var payload string
	for _, e := range s.GetPublisher().Events() {
		if e.EventName == types.EventProjectFileOverwrite {
			payload = string(e.Payload)
		}
	}
	s.Contains(payload, `"url":"/old-url"`)
	s.Contains(payload, `"size":111`)
	s.Contains(payload, `"url":"/new-url"`)
}

func (s *ProjectServiceSuite) TestUploadFile_FailedResolutionSavesNothing() {
	p := s.createProject()
	_, err := s.upload(p.ID, "logo.png", pngContent, types.FileResolutionNone)
	s.Require().NoError(err)

	_, err = s.upload(p.ID, "logo.png", pngContent, types.FileResolutionNone)
	s.True(ierr.IsAlreadyExists(err))

	stored, err := s.service.GetProject(s.GetContext(), p.ID)
	s.Require().NoError(err)
	s.Require().Len(stored.Files, 1)
	s.Equal(1, stored.Files[0].CurrentVersion)
}
