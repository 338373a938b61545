package blob

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidinfra/erpdesk/internal/config"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/logger"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore("/files/")

	key := ObjectKey("proj_1", "file_1", 2, "q1/report.pdf")
	assert.Equal(t, "proj_1/file_1/v2/q1_report.pdf", key)

	url, err := s.Put(ctx, &Object{Key: key, Data: []byte("%PDF-1.4"), ContentType: "application/pdf"})
	require.NoError(t, err)
	assert.Equal(t, "/files/proj_1/file_1/v2/q1_report.pdf", url)

	ok, err := s.Exists(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	obj, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), obj.Data)
	assert.Equal(t, "application/pdf", obj.ContentType)

	_, err = s.Get(ctx, "missing")
	assert.True(t, ierr.IsNotFound(err))

	_, err = s.Put(ctx, &Object{})
	assert.True(t, ierr.IsValidation(err))
}

func TestNewStore(t *testing.T) {
	cfg := config.GetDefaultConfig()
	s, err := NewStore(cfg, logger.NewNopLogger())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	cfg.Blob.Backend = "ftp"
	_, err = NewStore(cfg, logger.NewNopLogger())
	assert.True(t, ierr.IsValidation(err))
}
