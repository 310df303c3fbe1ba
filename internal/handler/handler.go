package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/finwell/finwell-server/internal/middleware"
	"github.com/finwell/finwell-server/internal/service"
	"github.com/sirupsen/logrus"
)

const defaultHistoryMonths = 12

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// GetNetWorth returns the owner's current net worth snapshot. The
// aggregation is total, so this endpoint always answers 200.
func (h *Handler) GetNetWorth(w http.ResponseWriter, r *http.Request) {
	snap := h.svc.ComputeNetWorth(r.Context(), middleware.OwnerID(r.Context()))
	h.writeJSON(w, http.StatusOK, snap)
}

// CreateSnapshot computes a fresh snapshot, persists it fire-and-forget
// and returns it. A failed write is logged server-side and never
// surfaces here.
func (h *Handler) CreateSnapshot(w http.ResponseWriter, r *http.Request) {
	ownerID := middleware.OwnerID(r.Context())
	snap := h.svc.ComputeNetWorth(r.Context(), ownerID)
	h.svc.SaveSnapshot(r.Context(), ownerID, snap)
	h.writeJSON(w, http.StatusCreated, snap)
}

// GetHistory returns the owner's persisted snapshot points for the
// requested window (?months=N, default 12).
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	months, ok := h.monthsParam(w, r)
	if !ok {
		return
	}
	points, err := h.svc.History(r.Context(), middleware.OwnerID(r.Context()), months)
	if err != nil {
		h.log.Errorf("Failed to load snapshot history: %v", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, http.StatusOK, points)
}

// GetTrend runs trend analysis over the requested history window.
// Fewer than two persisted snapshots is reported as insufficient data,
// not as an error.
func (h *Handler) GetTrend(w http.ResponseWriter, r *http.Request) {
	months, ok := h.monthsParam(w, r)
	if !ok {
		return
	}
	points, err := h.svc.History(r.Context(), middleware.OwnerID(r.Context()), months)
	if err != nil {
		h.log.Errorf("Failed to load snapshot history: %v", err)
		http.Error(w, "failed to load history", http.StatusInternalServerError)
		return
	}

	analysis := service.AnalyzeTrend(points)
	if analysis == nil {
		h.writeJSON(w, http.StatusOK, map[string]bool{"insufficient_data": true})
		return
	}
	h.writeJSON(w, http.StatusOK, analysis)
}

func (h *Handler) monthsParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("months")
	if raw == "" {
		return defaultHistoryMonths, true
	}
	months, err := strconv.Atoi(raw)
	if err != nil || months < 1 {
		http.Error(w, "months must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return months, true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}
