package httpapi

import (
	"context"
	"net/http"
	"sync/atomic"

	"hirepath-engine/internal/config"
)

type MailScanHandler struct {
	CfgVal  *atomic.Value // stores config.Config
	RunScan func(ctx context.Context, cfg config.Config) (int, error)
}

// Run triggers one synchronous scan outside the scheduler's cadence.
func (h MailScanHandler) Run(w http.ResponseWriter, r *http.Request) {
	if h.RunScan == nil {
		WriteError(w, r, http.StatusConflict, "mailscan_disabled", "mail scanning is not configured")
		return
	}
	cfg := h.CfgVal.Load().(config.Config)
	if !cfg.MailScan.Enabled {
		WriteError(w, r, http.StatusConflict, "mailscan_disabled", "mail scanning is disabled in config")
		return
	}

	added, err := h.RunScan(r.Context(), cfg)
	if err != nil {
		WriteError(w, r, http.StatusBadGateway, "mailscan_failed", err.Error())
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{"added": added})
}
