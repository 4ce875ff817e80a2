package httpapi

import (
	"net/http"

	"hirepath-engine/internal/secrets"

	"github.com/gorilla/mux"
)

type SecretsHandler struct{}

type setSecretReq struct {
	Value string `json:"value"`
}

func (h SecretsHandler) Set(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !secrets.Known(name) {
		WriteError(w, r, http.StatusNotFound, "unknown_secret", "unknown secret: "+name)
		return
	}

	var req setSecretReq
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	if req.Value == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_fields", "value is required")
		return
	}

	if err := secrets.Set(name, req.Value); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	if !secrets.Known(name) {
		WriteError(w, r, http.StatusNotFound, "unknown_secret", "unknown secret: "+name)
		return
	}
	if err := secrets.Delete(name); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_error", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Status reports which secrets resolve, never their values.
func (h SecretsHandler) Status(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, secrets.Status())
}
