package events

import (
	"encoding/json"
	"time"
)

// Event types published over the SSE stream. The UI re-renders the affected
// view from engine state when one arrives.
const (
	ApplicationCreated = "application_created"
	ApplicationUpdated = "application_updated"
	ApplicationDeleted = "application_deleted"
	CommunicationAdded = "communication_added"
	JobSaved           = "job_saved"
	JobRemoved         = "job_removed"
	ResumeUpdated      = "resume_updated"
	MailScanFinished   = "mailscan_finished"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
