package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every API route. The returned handler has no middleware
// attached; main() chains RequestID/AccessLog/Recover/Cors around it.
func NewRouter(d Deps) *mux.Router {
	r := mux.NewRouter()

	ah := AppsHandler{Apps: d.Apps, Hub: d.Hub}
	r.HandleFunc("/applications", ah.List).Methods(http.MethodGet)
	r.HandleFunc("/applications", ah.Create).Methods(http.MethodPost)
	r.HandleFunc("/applications/{id}", ah.Patch).Methods(http.MethodPatch)
	r.HandleFunc("/applications/{id}", ah.Delete).Methods(http.MethodDelete)
	r.HandleFunc("/applications/{id}/communications", ah.AddCommunication).Methods(http.MethodPost)

	bh := BoardHandler{Apps: d.Apps, Hub: d.Hub}
	r.HandleFunc("/board", bh.Get).Methods(http.MethodGet)
	r.HandleFunc("/board/transition", bh.Transition).Methods(http.MethodPost)

	jh := JobsHandler{Feed: d.Feed, Saved: d.Saved}
	r.HandleFunc("/jobs", jh.List).Methods(http.MethodGet)

	sjh := SavedJobsHandler{Saved: d.Saved, Hub: d.Hub}
	r.HandleFunc("/saved-jobs", sjh.List).Methods(http.MethodGet)
	r.HandleFunc("/saved-jobs", sjh.Save).Methods(http.MethodPost)
	r.HandleFunc("/saved-jobs/{id}", sjh.Remove).Methods(http.MethodDelete)
	r.HandleFunc("/saved-jobs/{id}/notes", sjh.UpdateNotes).Methods(http.MethodPatch)

	rh := ResumeHandler{Resume: d.Resume, Tailor: d.Tailor, Hub: d.Hub}
	r.HandleFunc("/resume", rh.Get).Methods(http.MethodGet)
	r.HandleFunc("/resume", rh.Put).Methods(http.MethodPut)
	r.HandleFunc("/resume/import", rh.Import).Methods(http.MethodPost)
	r.HandleFunc("/resume/export", rh.Export).Methods(http.MethodGet)
	r.HandleFunc("/resume/tailor", rh.TailorResume).Methods(http.MethodPost)

	ch := ConfigHandler{CfgVal: d.CfgVal, UserCfgPath: d.UserCfgPath, LoadCfg: d.LoadCfg}
	r.HandleFunc("/config", ch.Get).Methods(http.MethodGet)
	r.HandleFunc("/config", ch.Put).Methods(http.MethodPut)
	r.HandleFunc("/config/path", ch.Path).Methods(http.MethodGet)

	sh := SecretsHandler{}
	r.HandleFunc("/secrets/status", sh.Status).Methods(http.MethodGet)
	r.HandleFunc("/secrets/{name}", sh.Set).Methods(http.MethodPost)
	r.HandleFunc("/secrets/{name}", sh.Delete).Methods(http.MethodDelete)

	msh := MailScanHandler{CfgVal: d.CfgVal, RunScan: d.RunMailScan}
	r.HandleFunc("/mailscan/run", msh.Run).Methods(http.MethodPost)

	eh := EventsHandler{Hub: d.Hub}
	r.HandleFunc("/events", eh.ServeSSE).Methods(http.MethodGet)

	r.HandleFunc("/health", HealthHandler{}.Health).Methods(http.MethodGet)

	return r
}
