package endpoints

import (
	"encoding/json"
	"net/http"
)

// respondWithError wraps a caller-facing message in the {"error": ...} shape
// used for transport-level failures (format validation, missing pool). The
// consulta envelope is not used here: these responses carry no data payload.
func respondWithError(w http.ResponseWriter, code int, message interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": message})
}

// respondWithJSON marshals payload as the entire response body. Payloads are
// built from the response structs in this package, so marshaling cannot fail.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	body, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(body)
}
