package health

import (
	"net/http"

	"github.com/dmitrymomot/comingsoon/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
func Liveness() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response.Render(w, r, nil, response.WithNoCache(response.StringWithStatus("ALIVE", http.StatusOK)))
	})
}
