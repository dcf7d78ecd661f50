package middleware

import (
	"net/http"

	"github.com/aaravmahajanofficial/storefront-studio/internal/state"
)

// Serialize runs next inside loop so that the store transitions made by one
// request never interleave with another's.
func Serialize(loop *state.Loop) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loop.Do(func() {
				next.ServeHTTP(w, r)
			})
		})
	}
}
