package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/vidinfra/erpdesk/internal/config"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/types"
)

type StoreSuite struct {
	suite.Suite
	ctx     context.Context
	newFunc func(t *testing.T) Store
	store   Store
}

func (s *StoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = s.newFunc(s.T())
}

func (s *StoreSuite) TearDownTest() {
	s.NoError(s.store.Close())
}

func (s *StoreSuite) TestGetMissing() {
	v, ok, err := s.store.Get(s.ctx, "missing")
	s.NoError(err)
	s.False(ok)
	s.Empty(v)
}

func (s *StoreSuite) TestSetOverwrites() {
	s.NoError(s.store.Set(s.ctx, "invoice_seq", "1"))
	s.NoError(s.store.Set(s.ctx, "invoice_seq", "2"))

	v, ok, err := s.store.Get(s.ctx, "invoice_seq")
	s.NoError(err)
	s.True(ok)
	s.Equal("2", v)
}

func (s *StoreSuite) TestSetMany() {
	s.NoError(s.store.SetMany(s.ctx, map[string]string{
		"invoice_year": "2024",
		"invoice_seq":  "7",
	}))

	year, ok, err := s.store.Get(s.ctx, "invoice_year")
	s.NoError(err)
	s.True(ok)
	s.Equal("2024", year)

	seq, ok, err := s.store.Get(s.ctx, "invoice_seq")
	s.NoError(err)
	s.True(ok)
	s.Equal("7", seq)
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newFunc: func(t *testing.T) Store {
		return NewMemoryStore()
	}})
}

func TestSQLiteStore(t *testing.T) {
	suite.Run(t, &StoreSuite{newFunc: func(t *testing.T) Store {
		path := filepath.Join(t.TempDir(), "kv.db")
		s, err := NewSQLStore(context.Background(), DriverSQLite, path)
		require.NoError(t, err)
		require.NoError(t, s.Migrate(context.Background()))
		return s
	}})
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv.db")

	first, err := NewSQLStore(ctx, DriverSQLite, path)
	require.NoError(t, err)
	require.NoError(t, first.Migrate(ctx))
	require.NoError(t, first.SetMany(ctx, map[string]string{"invoice_year": "2025", "invoice_seq": "12"}))
	require.NoError(t, first.Close())

	second, err := NewSQLStore(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer second.Close()
	require.NoError(t, second.Migrate(ctx))

	seq, ok, err := second.Get(ctx, "invoice_seq")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "12", seq)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNopLogger()

	t.Run("memory", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		s, err := Open(ctx, cfg, log)
		require.NoError(t, err)
		require.IsType(t, &MemoryStore{}, s)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		cfg.KVStore.Backend = types.KVBackendSQLite
		cfg.KVStore.SQLite.Path = filepath.Join(t.TempDir(), "open.db")
		s, err := Open(ctx, cfg, log)
		require.NoError(t, err)
		defer s.Close()
		require.NoError(t, s.Set(ctx, "k", "v"))
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := config.GetDefaultConfig()
		cfg.KVStore.Backend = "etcd"
		_, err := Open(ctx, cfg, log)
		require.Error(t, err)
	})
}
