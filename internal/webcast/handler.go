package webcast

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

const playlistContentType = "application/vnd.apple.mpegurl"

// Handler exposes the pipeline over HTTP in serve mode.
type Handler struct {
	svc *Service
	log *slog.Logger
}

// NewHandler returns a Handler backed by the given Service.
func NewHandler(svc *Service, log *slog.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// GetPlaylist handles GET /playlist.m3u8: the current merged artifact.
func (h *Handler) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	data, ok := h.svc.Playlist()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", playlistContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Refresh handles POST /refresh: run the pipeline now.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	status, err := h.svc.Run(r.Context())
	if err != nil {
		h.log.Error("refresh failed", slog.String("error", err.Error()))
		w.WriteHeader(http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(status)
}

// Status handles GET /status: outcome of the most recent run.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(h.svc.LastStatus())
}
