package httpapi

import (
	"net/http"
	"strings"

	"hirepath-engine/internal/apps"
	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/events"

	"github.com/gorilla/mux"
)

type AppsHandler struct {
	Apps *apps.Repo
	Hub  *events.Hub
}

func (h AppsHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Apps.List())
}

func (h AppsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in apps.AddInput
	if err := decodeStrict(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(in.Company) == "" || strings.TrimSpace(in.Position) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields", "company and position are required")
		return
	}
	if in.Status != "" && !in.Status.Valid() {
		WriteError(w, r, http.StatusBadRequest, "invalid_status", "unknown status: "+string(in.Status))
		return
	}

	app, err := h.Apps.Add(r.Context(), in)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.ApplicationCreated, map[string]any{"id": app.ID}))
	WriteJSON(w, http.StatusCreated, app)
}

func (h AppsHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var p apps.Patch
	if err := decodeStrict(r, &p); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if p.Status != nil && !p.Status.Valid() {
		WriteError(w, r, http.StatusBadRequest, "invalid_status", "unknown status: "+string(*p.Status))
		return
	}

	if err := h.Apps.Update(r.Context(), id, p); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	// Unknown ids are a silent no-op in the repository; report what
	// exists and only announce mutations that happened.
	if app, ok := h.Apps.Get(id); ok {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.ApplicationUpdated, map[string]any{"id": id}))
		WriteJSON(w, http.StatusOK, app)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"id": id, "found": false})
}

func (h AppsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.Apps.Delete(r.Context(), id); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.ApplicationDeleted, map[string]any{"id": id}))
	w.WriteHeader(http.StatusNoContent)
}

func (h AppsHandler) AddCommunication(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var in apps.CommInput
	if err := decodeStrict(r, &in); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if in.Type == "" {
		in.Type = domain.CommNote
	}
	if !in.Type.Valid() {
		WriteError(w, r, http.StatusBadRequest, "invalid_type", "unknown communication type: "+string(in.Type))
		return
	}

	if err := h.Apps.AddCommunication(r.Context(), id, in); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if app, ok := h.Apps.Get(id); ok {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.CommunicationAdded, map[string]any{"id": id}))
		WriteJSON(w, http.StatusOK, app)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"id": id, "found": false})
}
