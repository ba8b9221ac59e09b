package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err, "open test store")
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	require.NotNil(t, s.DB())

	var n int
	err := s.DB().QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, kvTableName).Scan(&n)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "migration creates the records table")
}

func TestForeignKeysPragma(t *testing.T) {
	s := openTestStore(t)

	var got string
	require.NoError(t, s.DB().QueryRow("PRAGMA foreign_keys").Scan(&got))
	assert.Equal(t, "1", got)
}

func TestOpenFileDatabaseUsesWAL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clbp.db")
	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

// kvContract exercises the behaviour every KV implementation shares.
func kvContract(t *testing.T, kv KV) {
	ctx := context.Background()

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Put(ctx, ProgressKey, []byte(`{"currentStepIndex":1}`)))
	v, ok, err := kv.Get(ctx, ProgressKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"currentStepIndex":1}`, string(v))

	require.NoError(t, kv.Put(ctx, ProgressKey, []byte(`{"currentStepIndex":2}`)))
	v, _, err = kv.Get(ctx, ProgressKey)
	require.NoError(t, err)
	assert.Equal(t, `{"currentStepIndex":2}`, string(v), "put replaces the value")

	require.NoError(t, kv.Put(ctx, LanguageKey, []byte("fa")))
	require.NoError(t, kv.Delete(ctx, ProgressKey))
	_, ok, err = kv.Get(ctx, ProgressKey)
	require.NoError(t, err)
	assert.False(t, ok)

	v, ok, err = kv.Get(ctx, LanguageKey)
	require.NoError(t, err)
	assert.True(t, ok, "delete only touches its key")
	assert.Equal(t, "fa", string(v))

	assert.NoError(t, kv.Delete(ctx, "never-written"))
}

func TestSQLiteKV(t *testing.T) {
	kvContract(t, openTestStore(t).KV())
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemoryKV())
}

func TestSQLiteKVCloseClosesStore(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	require.NoError(t, kv.Close())
	assert.Error(t, s.DB().Ping(), "closing the KV closes the database")
}

func TestMemoryKVClose(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Put(context.Background(), LanguageKey, []byte("en")))
	assert.NoError(t, kv.Close())
}

func TestRedisKV(t *testing.T) {
	addr := os.Getenv("CLBP_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("CLBP_TEST_REDIS_ADDR not set")
	}
	kv, err := OpenRedis(context.Background(), addr, "clbp-test:"+t.Name()+":")
	require.NoError(t, err)
	defer kv.Close()
	kvContract(t, kv)
}

func TestOpenRedisRejectsEmptyAddr(t *testing.T) {
	_, err := OpenRedis(context.Background(), " ", DefaultRedisPrefix)
	assert.Error(t, err)
}

func TestSQLiteKVPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clbp.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.KV().Put(ctx, ProgressKey, []byte("snapshot")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	v, ok, err := s.KV().Get(ctx, ProgressKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "snapshot", string(v))
}

func TestRecord(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()
	r := NewRecord(kv, ProgressKey)
	assert.Equal(t, ProgressKey, r.Key())

	data, err := r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, r.Save(ctx, []byte("v1")))
	data, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1", string(data))

	require.NoError(t, r.Clear(ctx))
	data, err = r.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Run("env override", func(t *testing.T) {
		want := filepath.Join(dir, "custom", "x.db")
		t.Setenv("CLBP_DB", want)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.DirExists(t, filepath.Dir(want))
	})

	t.Run("xdg data home", func(t *testing.T) {
		t.Setenv("CLBP_DB", "")
		t.Setenv("XDG_DATA_HOME", dir)
		got, err := DefaultDBPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "clbp", "clbp.db"), got)
	})
}

func TestWithConnPragmas(t *testing.T) {
	assert.Equal(t, "a.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withConnPragmas("a.db"))
	assert.Equal(t, "file:x?mode=memory&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", withConnPragmas("file:x?mode=memory"))
}
