package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"ifood/ifood-svc/internal/domain"
	"ifood/ifood-svc/internal/dto"
	"ifood/ifood-svc/internal/service"

	"github.com/gorilla/mux"
)

const ndjsonContentType = "application/x-ndjson"

// resource serves the CRUD endpoints of one entity under /api/<path>.
type resource[D dto.Entity] struct {
	h          *Handler
	path       string
	svc        service.EntityServiceInterface[D]
	newDTO     func() D
	paginated  bool
	streamable bool
	// onCreated may add headers to a 201 response.
	onCreated func(w http.ResponseWriter, id int64)
}

func registerResource[D dto.Entity](r *mux.Router, res *resource[D]) {
	base := "/api/" + res.path
	r.HandleFunc(base, res.create).Methods(http.MethodPost)
	r.HandleFunc(base, res.list).Methods(http.MethodGet)
	r.HandleFunc(base+"/{id}", res.get).Methods(http.MethodGet)
	r.HandleFunc(base+"/{id}", res.update).Methods(http.MethodPut)
	r.HandleFunc(base+"/{id}", res.partialUpdate).Methods(http.MethodPatch)
	r.HandleFunc(base+"/{id}", res.delete).Methods(http.MethodDelete)
}

func (res *resource[D]) entity() string {
	return res.svc.Name()
}

func (res *resource[D]) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		res.h.malformedBody(w, r, fmt.Errorf("invalid id %q", mux.Vars(r)["id"]))
		return 0, false
	}
	return id, true
}

func (res *resource[D]) decode(w http.ResponseWriter, r *http.Request) (D, bool) {
	d := res.newDTO()
	if err := json.NewDecoder(r.Body).Decode(d); err != nil {
		res.h.malformedBody(w, r, err)
		return d, false
	}
	return d, true
}

func (res *resource[D]) create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	res.h.log.Debug(ctx, "create", "REST request to save "+res.entity())

	d, ok := res.decode(w, r)
	if !ok {
		return
	}
	if err := dto.Validate(d); err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	if d.GetID() != nil {
		res.h.badRequestAlert(w, r, "A new "+res.entity()+" cannot already have an ID", res.entity(), "idexists")
		return
	}

	saved, err := res.svc.Save(ctx, d)
	if err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}

	id := *saved.GetID()
	w.Header().Set("Location", fmt.Sprintf("/api/%s/%d", res.path, id))
	res.h.alertHeaders(w, res.entity(), "created", id)
	if res.onCreated != nil {
		res.onCreated(w, id)
	}
	writeJSON(w, http.StatusCreated, saved)
}

// checkID runs the id checks shared by PUT and PATCH and reports whether the
// request may proceed.
func (res *resource[D]) checkID(w http.ResponseWriter, r *http.Request, pathID int64, d D) bool {
	id := d.GetID()
	if id == nil {
		res.h.badRequestAlert(w, r, "Invalid id", res.entity(), "idnull")
		return false
	}
	if *id != pathID {
		res.h.badRequestAlert(w, r, "Invalid ID", res.entity(), "idinvalid")
		return false
	}
	exists, err := res.svc.Exists(r.Context(), pathID)
	if err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return false
	}
	if !exists {
		res.h.badRequestAlert(w, r, "Entity not found", res.entity(), "idnotfound")
		return false
	}
	return true
}

func (res *resource[D]) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	pathID, ok := res.pathID(w, r)
	if !ok {
		return
	}
	res.h.log.Debug(ctx, "update", fmt.Sprintf("REST request to update %s %d", res.entity(), pathID))

	d, ok := res.decode(w, r)
	if !ok {
		return
	}
	if err := dto.Validate(d); err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	if !res.checkID(w, r, pathID, d) {
		return
	}

	saved, err := res.svc.Update(ctx, d)
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	res.h.alertHeaders(w, res.entity(), "updated", pathID)
	writeJSON(w, http.StatusOK, saved)
}

func isPatchContentType(header string) bool {
	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return false
	}
	return mediaType == "application/merge-patch+json" || mediaType == "application/json"
}

func (res *resource[D]) partialUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !isPatchContentType(r.Header.Get("Content-Type")) {
		writeProblem(w, r, Problem{
			Type:    problemBaseURL + "/problem-with-message",
			Title:   "Unsupported Media Type",
			Status:  http.StatusUnsupportedMediaType,
			Message: "error.http.415",
		})
		return
	}
	pathID, ok := res.pathID(w, r)
	if !ok {
		return
	}
	res.h.log.Debug(ctx, "partial_update", fmt.Sprintf("REST request to partial update %s %d", res.entity(), pathID))

	d, ok := res.decode(w, r)
	if !ok {
		return
	}
	if err := dto.ValidatePatch(d); err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	if !res.checkID(w, r, pathID, d) {
		return
	}

	saved, err := res.svc.PartialUpdate(ctx, d)
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	res.h.alertHeaders(w, res.entity(), "updated", pathID)
	writeJSON(w, http.StatusOK, saved)
}

func acceptsNDJSON(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == ndjsonContentType {
			return true
		}
	}
	return false
}

func (res *resource[D]) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	page := parsePageRequest(r.URL.Query())

	if res.streamable && acceptsNDJSON(r) {
		res.stream(w, r, domain.Unpaged(page.Sort...))
		return
	}

	res.h.log.Debug(ctx, "list", "REST request to get all "+res.entity())
	if !res.paginated {
		items, err := res.svc.FindAll(ctx, domain.Unpaged(page.Sort...))
		if err != nil {
			res.h.writeError(w, r, res.entity(), err)
			return
		}
		writeJSON(w, http.StatusOK, items)
		return
	}

	items, err := res.svc.FindAll(ctx, page)
	if err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	total, err := res.svc.CountAll(ctx)
	if err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	writePaginationHeaders(w, r, page, total)
	writeJSON(w, http.StatusOK, items)
}

// stream writes one JSON document per line. The status line is sent with the
// first element, so a failure before that still becomes a 500.
func (res *resource[D]) stream(w http.ResponseWriter, r *http.Request, page domain.PageRequest) {
	ctx := r.Context()
	res.h.log.Debug(ctx, "stream", "REST request to stream all "+res.entity())

	flusher, _ := w.(http.Flusher)
	enc := json.NewEncoder(w)
	started := false
	start := func() {
		if !started {
			w.Header().Set("Content-Type", ndjsonContentType)
			w.WriteHeader(http.StatusOK)
			started = true
		}
	}

	for d, err := range res.svc.Stream(ctx, page) {
		if err != nil {
			if !started {
				res.h.writeError(w, r, res.entity(), err)
				return
			}
			res.h.log.Error(ctx, "stream", "stream of "+res.entity()+" aborted", err)
			return
		}
		start()
		if err := enc.Encode(d); err != nil {
			return
		}
		if flusher != nil {
			flusher.Flush()
		}
	}
	start()
}

func (res *resource[D]) get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := res.pathID(w, r)
	if !ok {
		return
	}
	res.h.log.Debug(ctx, "get", fmt.Sprintf("REST request to get %s %d", res.entity(), id))

	d, err := res.svc.FindOne(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (res *resource[D]) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, ok := res.pathID(w, r)
	if !ok {
		return
	}
	res.h.log.Debug(ctx, "delete", fmt.Sprintf("REST request to delete %s %d", res.entity(), id))

	if err := res.svc.Delete(ctx, id); err != nil {
		res.h.writeError(w, r, res.entity(), err)
		return
	}
	res.h.alertHeaders(w, res.entity(), "deleted", id)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
