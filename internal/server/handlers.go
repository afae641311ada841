package server

import (
	"encoding/json"
	"net/http"

	"github.com/edgewise-labs/rulewizard/pkg/sqlgen"
	"github.com/edgewise-labs/rulewizard/pkg/wizard"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleCompile compiles a wizard state posted as JSON into SQL.
// Compilation itself cannot fail; only a malformed body is an error.
func (s *Server) handleCompile(w http.ResponseWriter, r *http.Request) {
	state, err := wizard.Decode(r.Body)
	if err != nil {
		s.logger.Debug("rejecting compile request", "error", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := sqlgen.Compile(state)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
