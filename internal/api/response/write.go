package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/mcoot/tilegame-go/internal/api/apierr"
)

// JSON encodes data before touching the response, so a value that fails to
// encode becomes a 500 instead of a truncated body with the wrong status.
// A nil data writes only the status.
func JSON(w http.ResponseWriter, status int, data any) {
	if data == nil {
		w.WriteHeader(status)
		return
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

// NoContent acknowledges a delete
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
