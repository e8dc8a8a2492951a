package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// RequestID присваивает каждому запросу уникальный идентификатор
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(RequestIDHeader) != "" {
				return next.RoundTrip(req)
			}
			tagged := req.Clone(req.Context())
			tagged.Header.Set(RequestIDHeader, uuid.NewString())
			return next.RoundTrip(tagged)
		})
	}
}
