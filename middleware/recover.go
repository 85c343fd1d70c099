package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	httpError "github.com/mathquizapp/mathquiz/pkg/http"
)

// Recover returns a middleware that intercepts a panic raised by the next
// handler, converts the panic value to an error and answers with 500.
// An optional onError callback replaces the default slog report.
func Recover(onError ...func(error, *http.Request)) func(http.Handler) http.Handler {
	var handleError func(error, *http.Request)
	if len(onError) > 0 {
		handleError = onError[0]
	} else {
		handleError = func(err error, r *http.Request) {
			slog.Error("recovered from panic", "path", r.URL.Path, "error", err)
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					var e error
					switch x := rec.(type) {
					case error:
						e = x
					case string:
						e = errors.New(x)
					default:
						e = errors.New("unknown panic")
					}
					handleError(e, r)
					httpError.ErrorResponse(w, http.StatusInternalServerError, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
