// Package blob stores uploaded project file content and hands back the URL
// recorded on the file version.
package blob

import (
	"context"
	"fmt"
	"strings"

	"github.com/vidinfra/erpdesk/internal/config"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/types"
)

// Object is one stored upload
type Object struct {
	Key         string
	Data        []byte
	ContentType string
}

type Store interface {
	// Put stores the object under its key and returns the URL to record
	Put(ctx context.Context, obj *Object) (string, error)
	Get(ctx context.Context, key string) (*Object, error)
	Exists(ctx context.Context, key string) (bool, error)
}

// NewStore builds the configured backend
func NewStore(cfg *config.Configuration, log *logger.Logger) (Store, error) {
	switch cfg.Blob.Backend {
	case types.BlobBackendMemory, "":
		return NewMemoryStore(cfg.Blob.PublicBaseURL), nil
	case types.BlobBackendS3:
		return NewS3Store(context.Background(), cfg, log)
	default:
		return nil, ierr.NewErrorf("unknown blob backend: %s", cfg.Blob.Backend).
			WithHint("blob.backend must be memory or s3").
			Mark(ierr.ErrValidation)
	}
}

// ObjectKey lays out project files as <project>/<file>/v<version>/<name>
func ObjectKey(projectID, fileID string, version int, name string) string {
	return fmt.Sprintf("%s/%s/v%d/%s", projectID, fileID, version, strings.ReplaceAll(name, "/", "_"))
}

func joinURL(base, key string) string {
	return strings.TrimSuffix(base, "/") + "/" + key
}
