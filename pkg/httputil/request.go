package httputil

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PathParam returns the named path variable, or "" if the route has none
func PathParam(r *http.Request, key string) string {
	return mux.Vars(r)[key]
}
