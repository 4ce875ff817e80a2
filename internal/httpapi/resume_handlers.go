package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hirepath-engine/internal/events"
	"hirepath-engine/internal/resume"
	"hirepath-engine/internal/tailor"
)

const maxImportBytes = 10 << 20

type ResumeHandler struct {
	Resume *resume.Holder
	Tailor *tailor.Gateway
	Hub    *events.Hub
}

func (h ResumeHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Resume.Get())
}

type putResumeReq struct {
	Content string `json:"content"`
}

func (h ResumeHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req putResumeReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields", "content is required")
		return
	}

	if err := h.Resume.Save(r.Context(), req.Content); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.ResumeUpdated, nil))
	WriteJSON(w, http.StatusOK, h.Resume.Get())
}

// Import accepts a multipart upload ("file" field), extracts text from it
// and replaces the master resume.
func (h ResumeHandler) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportBytes); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_upload", err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_upload", "missing file field")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxImportBytes+1))
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_upload", err.Error())
		return
	}
	if len(data) > maxImportBytes {
		WriteError(w, r, http.StatusRequestEntityTooLarge, "too_large", "file exceeds 10 MB")
		return
	}

	content, err := resume.Import(header.Filename, data)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, resume.ErrUnsupportedFormat) {
			status = http.StatusUnsupportedMediaType
		}
		WriteError(w, r, status, "import_failed", err.Error())
		return
	}

	if err := h.Resume.Save(r.Context(), content); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "store_error", err.Error())
		return
	}
	h.Hub.Publish(events.MakeEvent(RequestIDFrom(r.Context()), events.ResumeUpdated, nil))
	WriteJSON(w, http.StatusOK, h.Resume.Get())
}

// Export renders the current master resume as a PDF. When company and title
// query params are present the download name carries them.
func (h ResumeHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := resume.ExportFileName(q.Get("company"), q.Get("title"), time.Now().Format("2006-01-02"))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))

	if err := resume.Export(h.Resume.Get().Content, w); err != nil {
		// Headers may already be out; log-only is useless here, so best
		// effort error body for clients that check.
		WriteError(w, r, http.StatusInternalServerError, "export_failed", err.Error())
	}
}

func (h ResumeHandler) TailorResume(w http.ResponseWriter, r *http.Request) {
	var req tailor.Request
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.MasterResume == "" {
		req.MasterResume = h.Resume.Get().Content
	}
	if strings.TrimSpace(req.MasterResume) == "" ||
		strings.TrimSpace(req.JobDescription) == "" ||
		strings.TrimSpace(req.JobTitle) == "" ||
		strings.TrimSpace(req.Company) == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields",
			"masterResume, jobDescription, jobTitle and company are all required")
		return
	}

	res, err := h.Tailor.Tailor(r.Context(), req)
	if err != nil {
		if errors.Is(err, tailor.ErrNoCredential) {
			WriteError(w, r, http.StatusPreconditionFailed, "no_credential", err.Error())
			return
		}
		WriteError(w, r, http.StatusBadGateway, "tailor_failed", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, res)
}
