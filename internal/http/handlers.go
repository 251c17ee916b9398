// Package http serves the site: static frontend assets, the materialized
// JSON data tree, and health endpoints. Every response is marked
// non-cacheable so a weekly data refresh is visible immediately.
package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"os"
	"path"

	"fbcw-data-service/internal/domain"
	"fbcw-data-service/internal/materialize"
)

// Handler wires HTTP routes to the data tree and public assets.
type Handler struct {
	dataDir   string
	publicDir string
	logger    *slog.Logger
}

// NewHandler constructs a Handler serving the given directories.
func NewHandler(dataDir, publicDir string, logger *slog.Logger) *Handler {
	return &Handler{
		dataDir:   dataDir,
		publicDir: publicDir,
		logger:    logger,
	}
}

// Health reports that the process is up.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether the data tree is present and readable. The server
// can start before the first collection run, so readiness is about data.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	data, err := os.ReadFile(materialize.LeagueInfoPath(h.dataDir))
	if err != nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "data not collected yet")
		return
	}
	var info domain.LeagueInfo
	if err := json.Unmarshal(data, &info); err != nil {
		h.writeError(w, nethttp.StatusServiceUnavailable, "league info unreadable")
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{
		"status":       "ready",
		"last_updated": info.LastUpdated,
	})
}

// Data serves JSON files from the data tree under /data/.
func (h *Handler) Data() nethttp.Handler {
	fileServer := nethttp.FileServer(noListingFS{nethttp.Dir(h.dataDir)})
	return nethttp.StripPrefix("/data/", fileServer)
}

// Static serves the frontend assets from the public directory.
func (h *Handler) Static() nethttp.Handler {
	return nethttp.FileServer(noListingFS{nethttp.Dir(h.publicDir)})
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

// noListingFS serves files but refuses directory listings. A directory is
// only served when it contains an index.html, which the file server then
// renders instead of a listing.
type noListingFS struct {
	fs nethttp.FileSystem
}

func (n noListingFS) Open(name string) (nethttp.File, error) {
	f, err := n.fs.Open(name)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if stat.IsDir() {
		index := path.Join(name, "index.html")
		idx, err := n.fs.Open(index)
		if err != nil {
			f.Close()
			return nil, os.ErrNotExist
		}
		idx.Close()
	}
	return f, nil
}
