// Package importer drives the spreadsheet import pipeline: staged uploads,
// preview/import runs of the external parser process, and the TTL session
// registry that tracks staged files between preview and confirm.
package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// ProcessError carries the parser's diagnostic output when it exits
// non-zero, so handlers can surface the reason to the caller.
type ProcessError struct {
	Stderr string
	Err    error
}

func (e *ProcessError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("parser process failed: %s", e.Stderr)
	}
	return fmt.Sprintf("parser process failed: %v", e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// Runner invokes the external parser process. The collaborator contract:
// `<command> <script> <file> <type> preview` prints a JSON array of row
// objects on stdout and exits 0, or writes diagnostics to stderr and exits
// non-zero; `... import` performs the writes and prints a human-readable
// completion message.
type Runner struct {
	Command string
	Script  string
	Logger  *slog.Logger
}

func NewRunner(command, script string, logger *slog.Logger) *Runner {
	return &Runner{Command: command, Script: script, Logger: logger}
}

// Preview parses the staged file without persisting anything and returns
// the parsed rows.
func (r *Runner) Preview(ctx context.Context, path, importType string) ([]json.RawMessage, error) {
	stdout, err := r.run(ctx, path, importType, "preview")
	if err != nil {
		return nil, err
	}

	var data []json.RawMessage
	if err := json.Unmarshal(stdout, &data); err != nil {
		return nil, fmt.Errorf("parse preview output: %w", err)
	}
	return data, nil
}

// Import persists the staged file's rows and returns the parser's
// completion message.
func (r *Runner) Import(ctx context.Context, path, importType string) (string, error) {
	stdout, err := r.run(ctx, path, importType, "import")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}

func (r *Runner) run(ctx context.Context, path, importType, mode string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.Command, r.Script, path, importType, mode)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Info("Running parser process",
		"command", r.Command, "script", r.Script, "type", importType, "mode", mode)

	if err := cmd.Run(); err != nil {
		r.Logger.Error("Parser process failed",
			"mode", mode, "error", err, "stderr", stderr.String())
		return nil, &ProcessError{Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}
	return stdout.Bytes(), nil
}
