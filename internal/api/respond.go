// internal/api/respond.go
//
// JSON plumbing shared by every handler: encode, decode-and-validate,
// and the error envelope.
//
// Notes
// -----
// • Errors go out as {"error": "..."} with an appropriate status so the
//   admin UI can surface them verbatim.
// • Validation failures return 422 with the first offending field, which
//   is all the editor screens display anyway.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nessdigital/webcore/internal/config"
)

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("encode response", "error", err)
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError sends the JSON error envelope.
func writeError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, errorBody{Error: msg}, status)
}

// decodeValid decodes the request body into dst and re-validates it
// against its struct tags.  Client-side checks are advisory only; this
// is the authoritative gate.
func decodeValid(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, "invalid JSON body", http.StatusBadRequest)
		return false
	}

	if err := config.Validate(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			writeError(w, "invalid field: "+verrs[0].Field(), http.StatusUnprocessableEntity)
			return false
		}
		writeError(w, "validation failed", http.StatusUnprocessableEntity)
		return false
	}
	return true
}
