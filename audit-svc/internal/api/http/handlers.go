package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"ifood/audit-svc/internal/service"
	"ifood/logger"

	"github.com/gorilla/mux"
)

type Handler struct {
	Stats service.StatsInterface
	log   *logger.Logger
	now   func() time.Time
}

func NewHandler(svc service.StatsInterface, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Discard()
	}
	return &Handler{Stats: svc, log: log, now: time.Now}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "audit-svc"})
	}).Methods("GET")
	r.HandleFunc("/api/audit/daily", h.getDaily).Methods("GET")
	r.HandleFunc("/api/audit/{entity}/{id}", h.getHistory).Methods("GET")
}

// getDaily serves the counters of ?date=YYYY-MM-DD, today (UTC) by default.
func (h *Handler) getDaily(w http.ResponseWriter, r *http.Request) {
	day := h.now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		day = parsed
	}

	stats, err := h.Stats.Daily(r.Context(), day)
	if err != nil {
		h.log.Error(r.Context(), "daily_stats", "failed to load daily counters", err)
		http.Error(w, "failed to load daily counters", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	entityID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.Stats.History(r.Context(), vars["entity"], entityID, limit)
	if err != nil {
		h.log.Error(r.Context(), "history", "failed to load audit history", err)
		http.Error(w, "failed to load audit history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
