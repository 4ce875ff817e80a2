package httpapi

import (
	"net/http"
	"strings"

	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/events"
	"hirepath-engine/internal/savedjobs"

	"github.com/gorilla/mux"
)

type SavedJobsHandler struct {
	Saved *savedjobs.Repo
	Hub   *events.Hub
}

func (h SavedJobsHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Saved.List())
}

type saveJobReq struct {
	Job   domain.Job `json:"job"`
	Notes string     `json:"notes"`
}

func (h SavedJobsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveJobReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(req.Job.ID) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields", "job.id is required")
		return
	}

	if err := h.Saved.Save(r.Context(), req.Job, req.Notes); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.JobSaved, map[string]any{"id": req.Job.ID}))
	WriteJSON(w, http.StatusOK, h.Saved.List())
}

func (h SavedJobsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Saved.Remove(r.Context(), id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.JobRemoved, map[string]any{"id": id}))
	w.WriteHeader(http.StatusNoContent)
}

type notesReq struct {
	Notes string `json:"notes"`
}

func (h SavedJobsHandler) UpdateNotes(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req notesReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if err := h.Saved.UpdateNotes(r.Context(), id, req.Notes); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.JobSaved, map[string]any{"id": id}))
	WriteJSON(w, http.StatusOK, h.Saved.List())
}
