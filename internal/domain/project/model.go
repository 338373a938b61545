package project

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

type Project struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	Client      string              `json:"client"`
	Manager     string              `json:"manager"`
	Status      types.ProjectStatus `json:"status"`
	StartDate   time.Time           `json:"start_date"`
	EndDate     time.Time           `json:"end_date"`
	Budget      decimal.Decimal     `json:"budget"`
	Spent       decimal.Decimal     `json:"spent"`
	// Progress is the reported completion percentage, 0 to 100
	Progress    int             `json:"progress"`
	Team        []string        `json:"team"`
	KPIs        KPIs            `json:"kpis"`
	HealthScore decimal.Decimal `json:"health_score"`
	Files       []*File         `json:"files"`
	types.BaseModel
}

func (p *Project) GetID() string { return p.ID }

func (p *Project) Clone() *Project {
	c := *p
	c.Team = append([]string{}, p.Team...)
	c.Files = make([]*File, 0, len(p.Files))
	for _, f := range p.Files {
		c.Files = append(c.Files, f.Clone())
	}
	return &c
}

// File is a project document with its version history. The live fields
// describe the current version; Versions holds strictly older snapshots.
type File struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	CurrentVersion int           `json:"current_version"`
	URL            string        `json:"url"`
	Date           time.Time     `json:"date"`
	UploadedBy     string        `json:"uploaded_by"`
	Size           int64         `json:"size"`
	MimeType       string        `json:"mime_type,omitempty"`
	Versions       []FileVersion `json:"versions"`
}

// FileVersion is an archived snapshot of a file's live state
type FileVersion struct {
	VersionNumber int       `json:"version_number"`
	Name          string    `json:"name"`
	URL           string    `json:"url"`
	Date          time.Time `json:"date"`
	UploadedBy    string    `json:"uploaded_by"`
	Size          int64     `json:"size"`
	MimeType      string    `json:"mime_type,omitempty"`
}

func (f *File) Clone() *File {
	c := *f
	c.Versions = append([]FileVersion{}, f.Versions...)
	return &c
}
