package httpapi

import (
	"net/http"
	"time"

	"hirepath-engine/internal/apps"
	"hirepath-engine/internal/board"
	"hirepath-engine/internal/domain"
	"hirepath-engine/internal/events"
)

type BoardHandler struct {
	Apps *apps.Repo
	Hub  *events.Hub
}

type boardView struct {
	Columns   []board.Column            `json:"columns"`
	Stats     board.Stats               `json:"stats"`
	Reminders map[string]board.Reminder `json:"reminders"`
}

func (h BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	list := h.Apps.List()
	WriteJSON(w, http.StatusOK, boardView{
		Columns:   board.Columns(list),
		Stats:     board.ComputeStats(list),
		Reminders: board.Reminders(list, time.Now()),
	})
}

type transitionReq struct {
	ID     string        `json:"id"`
	Status domain.Status `json:"status"`
}

func (h BoardHandler) Transition(w http.ResponseWriter, r *http.Request) {
	var req transitionReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if !req.Status.Valid() {
		WriteError(w, r, http.StatusBadRequest, "invalid_status", "unknown status: "+string(req.Status))
		return
	}

	moved, err := board.Transition(r.Context(), h.Apps, req.ID, req.Status)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	if moved {
		h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.ApplicationUpdated, map[string]any{"id": req.ID}))
	}
	WriteJSON(w, http.StatusOK, map[string]any{"moved": moved})
}
