package importer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsCreateResolve(t *testing.T) {
	s := NewSessions(time.Hour)

	id := s.Create("/tmp/uploads/file-1.xlsx", "player")
	require.NotEmpty(t, id)

	path, importType, ok := s.Resolve(id)
	require.True(t, ok)
	assert.Equal(t, "/tmp/uploads/file-1.xlsx", path)
	assert.Equal(t, "player", importType)

	_, _, ok = s.Resolve("no-such-id")
	assert.False(t, ok)
}

func TestSessionsRemove(t *testing.T) {
	s := NewSessions(time.Hour)
	id := s.Create("/tmp/uploads/file-2.xlsx", "parent")

	s.Remove(id)
	_, _, ok := s.Resolve(id)
	assert.False(t, ok)

	// Unknown ids are a no-op.
	s.Remove("no-such-id")
}

func TestSessionsExpiry(t *testing.T) {
	s := NewSessions(10 * time.Minute)

	current := time.Now()
	s.now = func() time.Time { return current }

	id := s.Create("/tmp/uploads/file-3.xlsx", "player")

	current = current.Add(11 * time.Minute)
	_, _, ok := s.Resolve(id)
	assert.False(t, ok, "expired session must not resolve")
}

func TestSessionsSweepUnlinksFiles(t *testing.T) {
	dir := t.TempDir()
	staged := filepath.Join(dir, "file-4.xlsx")
	require.NoError(t, os.WriteFile(staged, []byte("x"), 0o644))

	s := NewSessions(10 * time.Minute)
	current := time.Now()
	s.now = func() time.Time { return current }

	s.Create(staged, "relative")
	fresh := s.Create(filepath.Join(dir, "missing.xlsx"), "player")
	_ = fresh

	current = current.Add(time.Hour)
	removed := s.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 0, s.Len())
	_, err := os.Stat(staged)
	assert.True(t, os.IsNotExist(err), "swept session file should be unlinked")
}

func TestSessionsZeroTTLNeverExpires(t *testing.T) {
	s := NewSessions(0)
	id := s.Create("/tmp/uploads/file-5.xlsx", "player")

	assert.Equal(t, 0, s.Sweep())
	_, _, ok := s.Resolve(id)
	assert.True(t, ok)
}

func TestInUploadDir(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		path string
		want bool
	}{
		{"inside", "uploads", "uploads/file-1.xlsx", true},
		{"nested", "uploads", "uploads/2026/file.csv", true},
		{"outside", "uploads", "/etc/passwd", false},
		{"traversal", "uploads", "uploads/../main.go", false},
		{"sibling prefix", "uploads", "uploads-evil/file.xlsx", false},
		{"dir itself", "uploads", "uploads", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InUploadDir(tt.dir, tt.path))
		})
	}
}
