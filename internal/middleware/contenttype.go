package middleware

import (
	"net/http"
	"strings"

	"github.com/atinyakov/oceanview/internal/server/response"
)

// AllowContentType rejects requests carrying a body whose Content-Type is
// not one of contentTypes. Bodiless requests pass. Rejections use the JSON
// error envelope with status 415.
func AllowContentType(contentTypes ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(contentTypes))
	for _, ct := range contentTypes {
		allowed[strings.ToLower(strings.TrimSpace(ct))] = struct{}{}
	}
	msg := "Content-Type must be " + strings.Join(contentTypes, " or ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength == 0 {
				next.ServeHTTP(w, r)
				return
			}
			mediaType, _, _ := strings.Cut(r.Header.Get("Content-Type"), ";")
			if _, ok := allowed[strings.ToLower(strings.TrimSpace(mediaType))]; !ok {
				response.Error(w, http.StatusUnsupportedMediaType, msg)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
