// internal/api/translate.go
//
// Translation-assist endpoint for the admin editors.
//
// The response always carries usable text: provider failures degrade to
// the submitted original, so the editor keeps a starting point either
// way.
package api

import (
	"net/http"

	"github.com/nessdigital/webcore/internal/locale"
)

type translateRequest struct {
	Text string `json:"text" validate:"required"`
	From string `json:"from" validate:"required,oneof=pt en es"`
}

type translateResponse struct {
	Text      string `json:"text"`
	Language  string `json:"language"`
	Suggested bool   `json:"suggested"` // false when the original came back
}

// translateAssist suggests a translation of the submitted text into the
// ?lang= target.
func (h *Handler) translateAssist(w http.ResponseWriter, r *http.Request) {
	target, err := locale.Parse(r.URL.Query().Get("lang"))
	if err != nil {
		writeError(w, "unsupported target language", http.StatusBadRequest)
		return
	}

	var req translateRequest
	if !decodeValid(w, r, &req) {
		return
	}

	from, _ := locale.Parse(req.From) // oneof tag already vetted it
	out := h.Translate.Assist(r.Context(), req.Text, from, target)

	writeJSON(w, translateResponse{
		Text:      out,
		Language:  string(target),
		Suggested: out != req.Text,
	}, http.StatusOK)
}
