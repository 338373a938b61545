package project

import (
	"path"
	"strings"
	"time"

	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

// Upload describes incoming file content already placed in blob storage
type Upload struct {
	Name       string
	URL        string
	Size       int64
	MimeType   string
	UploadedBy string
	Date       time.Time
}

// UploadResult reports which path an upload took
type UploadResult struct {
	File       *File                `json:"file"`
	Resolution types.FileResolution `json:"resolution,omitempty"`
	// Conflict is true when the name matched an existing file
	Conflict bool `json:"conflict"`
	// Replaced is the live state an overwrite discarded
	Replaced *FileVersion `json:"replaced,omitempty"`
}

// FindFile returns the file whose name matches exactly, case sensitive
func (p *Project) FindFile(name string) *File {
	for _, f := range p.Files {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func (p *Project) GetFile(id string) *File {
	for _, f := range p.Files {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// CopyName inserts " (Copy)" before the extension: report.pdf -> report (Copy).pdf
func CopyName(name string) string {
	ext := path.Ext(name)
	return strings.TrimSuffix(name, ext) + " (Copy)" + ext
}

// ApplyUpload adds u to the project's files. Without a name collision the
// upload becomes a new version 1 file. On a collision the resolution decides:
// new_version archives the live state and bumps the version, overwrite
// replaces the live state without touching version or history, rename adds
// an independent copy. A collision without a resolution is an error.
func (p *Project) ApplyUpload(u Upload, resolution types.FileResolution, newID func() string) (UploadResult, error) {
	if err := resolution.Validate(); err != nil {
		return UploadResult{}, err
	}

	existing := p.FindFile(u.Name)
	if existing == nil {
		f := newFile(newID(), u.Name, u)
		p.Files = append(p.Files, f)
		return UploadResult{File: f}, nil
	}

	switch resolution {
	case types.FileResolutionNewVersion:
		existing.archive()
		existing.CurrentVersion++
		existing.setLive(u.Name, u)
	case types.FileResolutionOverwrite:
		replaced := existing.snapshot()
		existing.setLive(u.Name, u)
		return UploadResult{File: existing, Resolution: resolution, Conflict: true, Replaced: &replaced}, nil
	case types.FileResolutionRename:
		f := newFile(newID(), CopyName(u.Name), u)
		p.Files = append(p.Files, f)
		return UploadResult{File: f, Resolution: resolution, Conflict: true}, nil
	default:
		return UploadResult{}, ierr.NewErrorf("file %s already exists", u.Name).
			WithHint("A file with this name already exists. Choose new_version, overwrite or rename").
			WithReportableDetails(map[string]any{
				"file_id":         existing.ID,
				"file_name":       existing.Name,
				"current_version": existing.CurrentVersion,
			}).
			Mark(ierr.ErrAlreadyExists)
	}

	return UploadResult{File: existing, Resolution: resolution, Conflict: true}, nil
}

// RevertFile archives the live state of the file and promotes the archived
// snapshot of version as the new live state under the next version number.
func (p *Project) RevertFile(fileID string, version int) (*File, error) {
	f := p.GetFile(fileID)
	if f == nil {
		return nil, ierr.NewErrorf("file %s not found", fileID).
			WithHint("File not found").
			WithReportableDetails(map[string]any{
				"file_id": fileID,
			}).
			Mark(ierr.ErrNotFound)
	}

	var target *FileVersion
	for i := range f.Versions {
		if f.Versions[i].VersionNumber == version {
			v := f.Versions[i]
			target = &v
			break
		}
	}
	if target == nil {
		return nil, ierr.NewErrorf("version %d of file %s not found", version, fileID).
			WithHint("Only archived versions can be restored").
			WithReportableDetails(map[string]any{
				"file_id":         fileID,
				"version":         version,
				"current_version": f.CurrentVersion,
			}).
			Mark(ierr.ErrNotFound)
	}

	f.archive()
	f.CurrentVersion++
	f.Name = target.Name
	f.URL = target.URL
	f.Date = target.Date
	f.UploadedBy = target.UploadedBy
	f.Size = target.Size
	f.MimeType = target.MimeType
	return f, nil
}

func newFile(id, name string, u Upload) *File {
	f := &File{
		ID:             id,
		CurrentVersion: 1,
		Versions:       []FileVersion{},
	}
	f.setLive(name, u)
	return f
}

func (f *File) setLive(name string, u Upload) {
	f.Name = name
	f.URL = u.URL
	f.Date = u.Date
	f.UploadedBy = u.UploadedBy
	f.Size = u.Size
	f.MimeType = u.MimeType
}

func (f *File) snapshot() FileVersion {
	return FileVersion{
		VersionNumber: f.CurrentVersion,
		Name:          f.Name,
		URL:           f.URL,
		Date:          f.Date,
		UploadedBy:    f.UploadedBy,
		Size:          f.Size,
		MimeType:      f.MimeType,
	}
}

func (f *File) archive() {
	f.Versions = append(f.Versions, f.snapshot())
}
