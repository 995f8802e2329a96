package middleware

import (
	"log/slog"
	"net/http"

	"github.com/mcoot/tilegame-go/internal/api/apierr"
	"github.com/mcoot/tilegame-go/internal/middleware"
)

// Recovery answers a panicking API handler with the INTERNAL_ERROR JSON body.
// The panic value stays in the server log.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
