package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"ifood/ifood-svc/internal/dto"
)

const (
	problemContentType = "application/problem+json"
	problemBaseURL     = "https://www.jhipster.tech/problem"
)

// Problem is the error body returned for every 4xx/5xx except 404 on a
// single-entity read, which has an empty body.
type Problem struct {
	Type        string           `json:"type"`
	Title       string           `json:"title"`
	Status      int              `json:"status"`
	Detail      string           `json:"detail,omitempty"`
	Path        string           `json:"path,omitempty"`
	Message     string           `json:"message"`
	Params      string           `json:"params,omitempty"`
	EntityName  string           `json:"entityName,omitempty"`
	ErrorKey    string           `json:"errorKey,omitempty"`
	FieldErrors []dto.FieldError `json:"fieldErrors,omitempty"`
}

func writeProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Path == "" {
		p.Path = r.URL.Path
	}
	w.Header().Set("Content-Type", problemContentType)
	w.WriteHeader(p.Status)
	json.NewEncoder(w).Encode(p)
}

// badRequestAlert reports a client error tied to one entity, with the error
// headers the admin UI reads.
func (h *Handler) badRequestAlert(w http.ResponseWriter, r *http.Request, title, entity, errorKey string) {
	h.errorHeaders(w, entity, errorKey)
	writeProblem(w, r, Problem{
		Type:       problemBaseURL + "/problem-with-message",
		Title:      title,
		Status:     http.StatusBadRequest,
		Message:    "error." + errorKey,
		Params:     entity,
		EntityName: entity,
		ErrorKey:   errorKey,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, entity string, err error) {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		writeProblem(w, r, Problem{
			Type:        problemBaseURL + "/constraint-violation",
			Title:       "Method argument not valid",
			Status:      http.StatusBadRequest,
			Message:     "error.validation",
			FieldErrors: verr.Fields,
		})
		return
	}

	h.log.Error(r.Context(), "request_failed", "request to "+entity+" failed", err)
	writeProblem(w, r, Problem{
		Type:    problemBaseURL + "/problem-with-message",
		Title:   "Internal Server Error",
		Status:  http.StatusInternalServerError,
		Message: "error.http.500",
	})
}

func (h *Handler) malformedBody(w http.ResponseWriter, r *http.Request, err error) {
	writeProblem(w, r, Problem{
		Type:    problemBaseURL + "/problem-with-message",
		Title:   "Bad Request",
		Status:  http.StatusBadRequest,
		Detail:  err.Error(),
		Message: "error.http.400",
	})
}

func (h *Handler) alertHeaders(w http.ResponseWriter, entity, action string, id int64) {
	w.Header().Set("X-"+h.AppName+"-alert", h.AppName+"."+entity+"."+action)
	w.Header().Set("X-"+h.AppName+"-params", strconv.FormatInt(id, 10))
}

func (h *Handler) errorHeaders(w http.ResponseWriter, entity, errorKey string) {
	w.Header().Set("X-"+h.AppName+"-error", "error."+errorKey)
	w.Header().Set("X-"+h.AppName+"-params", entity)
}
