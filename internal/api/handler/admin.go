package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/fieldside/leaguedesk/internal/api/respond"
	"github.com/fieldside/leaguedesk/internal/config"
	"github.com/fieldside/leaguedesk/internal/importer"
	"github.com/fieldside/leaguedesk/internal/store"
)

const maxUploadBytes = 32 << 20

// PreviewExcel stages an uploaded spreadsheet and returns its parsed rows
// without persisting anything. The response carries a session id (and the
// staged path, which older clients still send back verbatim).
// @Summary Preview a spreadsheet upload
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx or .csv)"
// @Param type formData string false "Import type" Enums(player, parent, relative)
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/admin/preview-excel [post]
func (h *Handler) PreviewExcel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respond.FailMessage(w, http.StatusBadRequest, "no file received")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		respond.FailMessage(w, http.StatusBadRequest, "no file received")
		return
	}
	defer file.Close()

	importType := r.FormValue("type")
	if importType == "" {
		importType = config.ImportTypePlayer
	}
	if !config.ValidImportType(importType) {
		respond.FailMessage(w, http.StatusBadRequest, "unknown import type: "+importType)
		return
	}

	path, err := importer.SaveUpload(h.cfg.UploadDir, header.Filename, file)
	if err != nil {
		h.logger.Error("Staging upload failed", "filename", header.Filename, "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, "could not stage upload")
		return
	}

	rows, err := h.runner.Preview(r.Context(), path, importType)
	if err != nil {
		os.Remove(path)
		h.logger.Error("Preview failed", "path", path, "type", importType, "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, previewFailureMessage(err))
		return
	}

	sessionID := h.sessions.Create(path, importType)
	respond.JSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"data":       rows,
		"tempPath":   path,
		"session_id": sessionID,
	})
}

// previewFailureMessage surfaces the parser's own diagnostics when it
// produced any; anything else gets a generic message.
func previewFailureMessage(err error) string {
	var pErr *importer.ProcessError
	if errors.As(err, &pErr) && pErr.Stderr != "" {
		return "parse failed: " + pErr.Stderr
	}
	return "could not parse spreadsheet"
}

// importRequest is the body of confirm-import and delete-temp. Clients
// send the session id from preview; tempPath alone is still accepted.
type importRequest struct {
	SessionID string `json:"session_id"`
	TempPath  string `json:"tempPath"`
	Type      string `json:"type"`
}

// resolveStaged maps a request body to a staged file path and import type,
// checking that the path stays inside the upload directory.
func (h *Handler) resolveStaged(req importRequest) (path, importType string, ok bool) {
	if req.SessionID != "" {
		if path, importType, ok = h.sessions.Resolve(req.SessionID); ok {
			return path, importType, true
		}
		return "", "", false
	}
	if req.TempPath == "" || !importer.InUploadDir(h.cfg.UploadDir, req.TempPath) {
		return "", "", false
	}
	importType = req.Type
	if importType == "" {
		importType = config.ImportTypePlayer
	}
	return req.TempPath, importType, true
}

// ConfirmImport runs the parser in import mode against a staged file, then
// cleans up the session and the file.
// @Summary Confirm a previewed import
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/admin/confirm-import [post]
func (h *Handler) ConfirmImport(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.FailMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID == "" && req.TempPath == "" {
		respond.FailMessage(w, http.StatusBadRequest, "missing staged file reference")
		return
	}

	path, importType, ok := h.resolveStaged(req)
	if !ok {
		respond.FailMessage(w, http.StatusBadRequest, "unknown or expired import session")
		return
	}

	message, err := h.runner.Import(r.Context(), path, importType)
	if err != nil {
		h.logger.Error("Import failed", "path", path, "type", importType, "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, "import failed")
		return
	}

	// The staged file is spent; drop it and anything cached off old data.
	h.sessions.Remove(req.SessionID)
	os.Remove(path)
	h.cache.Invalidate()

	respond.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": message})
}

// DeleteTemp discards a staged upload. A missing reference is a no-op
// success; a path outside the upload directory is rejected.
// @Summary Discard a staged upload
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /api/admin/delete-temp [post]
func (h *Handler) DeleteTemp(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.FailMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SessionID == "" && req.TempPath == "" {
		respond.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "nothing to delete"})
		return
	}

	path := req.TempPath
	if req.SessionID != "" {
		if p, _, ok := h.sessions.Resolve(req.SessionID); ok {
			path = p
		}
	}
	if path == "" {
		h.sessions.Remove(req.SessionID)
		respond.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "nothing to delete"})
		return
	}
	if !importer.InUploadDir(h.cfg.UploadDir, path) {
		respond.FailMessage(w, http.StatusForbidden, "invalid path")
		return
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.logger.Error("Temp file delete failed", "path", path, "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, "could not delete staged file")
		return
	}
	h.sessions.Remove(req.SessionID)

	respond.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "staged file removed"})
}

// PlayerStatus lists distinct status labels for a year's players.
// @Summary Distinct player statuses
// @Tags admin
// @Produce json
// @Param year query string true "Year"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/player-status [get]
func (h *Handler) PlayerStatus(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.store.PlayerStatuses(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Error("Player status list failed", "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, "could not read status list")
		return
	}
	respond.Data(w, statuses)
}

// SearchPlayers returns a year's players, optionally narrowed to one
// status label.
// @Summary Players by year and status
// @Tags admin
// @Produce json
// @Param year query string true "Year"
// @Param status query string false "Status label"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/search-players [get]
func (h *Handler) SearchPlayers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	players, err := h.store.SearchPlayersByStatus(r.Context(), q.Get("year"), q.Get("status"))
	if err != nil {
		h.logger.Error("Player search failed", "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, "could not read player data")
		return
	}
	respond.Data(w, players)
}

// PlayerDetailSummary counts a year's players per status label.
// @Summary Player counts per status
// @Tags admin
// @Produce json
// @Param year query string true "Year"
// @Success 200 {object} map[string]interface{}
// @Router /api/admin/player-detail-summary [get]
func (h *Handler) PlayerDetailSummary(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.PlayerStatusSummary(r.Context(), r.URL.Query().Get("year"))
	if err != nil {
		h.logger.Error("Player status summary failed", "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, "could not compute status summary")
		return
	}
	respond.Data(w, counts)
}

// DeletePlayer removes one player row. Not-found and store failure are
// reported distinctly so the UI can message them apart.
// @Summary Delete a player
// @Tags admin
// @Produce json
// @Param player_id path string true "Player id"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/admin/delete-player/{player_id} [delete]
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "player_id")

	err := h.store.DeletePlayer(r.Context(), playerID)
	switch {
	case errors.Is(err, store.ErrPlayerNotFound):
		respond.FailMessage(w, http.StatusNotFound, "player not found")
	case err != nil:
		h.logger.Error("Player delete failed", "player_id", playerID, "error", err)
		respond.FailMessage(w, http.StatusInternalServerError, "could not delete player")
	default:
		h.cache.Invalidate()
		respond.JSON(w, http.StatusOK, map[string]interface{}{"success": true, "message": "player deleted"})
	}
}
