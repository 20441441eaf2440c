package importer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bytesReader(s string) io.Reader { return strings.NewReader(s) }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

// writeParserStub writes a shell script honoring the parser contract:
// args are <file> <type> <mode>.
func writeParserStub(t *testing.T, body string) *Runner {
	t.Helper()
	script := filepath.Join(t.TempDir(), "parser.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"+body), 0o755))
	return NewRunner("/bin/sh", script, testLogger())
}

func TestRunnerPreview(t *testing.T) {
	r := writeParserStub(t, `
if [ "$3" != "preview" ]; then exit 2; fi
echo '[{"player_id":"P001","ch_name":"Lin"},{"player_id":"P002","ch_name":"Chen"}]'
`)

	rows, err := r.Preview(context.Background(), "staged.xlsx", "player")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var first map[string]string
	require.NoError(t, json.Unmarshal(rows[0], &first))
	assert.Equal(t, "P001", first["player_id"])
}

func TestRunnerPreviewBadOutput(t *testing.T) {
	r := writeParserStub(t, `echo 'not json'`)

	_, err := r.Preview(context.Background(), "staged.xlsx", "player")
	assert.Error(t, err)
}

func TestRunnerPreviewProcessFailure(t *testing.T) {
	r := writeParserStub(t, `
echo 'missing module openpyxl' >&2
exit 1
`)

	_, err := r.Preview(context.Background(), "staged.xlsx", "player")
	require.Error(t, err)

	var pErr *ProcessError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "missing module openpyxl", pErr.Stderr)
}

func TestRunnerImport(t *testing.T) {
	r := writeParserStub(t, `
if [ "$3" != "import" ]; then exit 2; fi
echo "imported 42 player rows"
`)

	msg, err := r.Import(context.Background(), "staged.xlsx", "player")
	require.NoError(t, err)
	assert.Equal(t, "imported 42 player rows", msg)
}

func TestSaveUpload(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveUpload(dir, "Roster 2026.XLSX", bytesReader("spreadsheet-bytes"))
	require.NoError(t, err)

	assert.True(t, InUploadDir(dir, path))
	assert.Equal(t, ".xlsx", filepath.Ext(path), "extension kept and lowercased")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "spreadsheet-bytes", string(data))

	// A second save of the same name must not collide.
	other, err := SaveUpload(dir, "Roster 2026.XLSX", bytesReader("x"))
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}
