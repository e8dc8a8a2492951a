package middleware

import "net/http"

// TokenSource источник токена сессии
type TokenSource interface {
	Token() string
}

// Auth добавляет заголовок Authorization: Bearer <token>, если токен есть
// Без токена запрос уходит как есть - сервер сам решает, нужна ли авторизация
func Auth(tokens TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			token := tokens.Token()
			if token == "" || req.Header.Get("Authorization") != "" {
				return next.RoundTrip(req)
			}

			// RoundTripper не должен изменять исходный запрос
			authed := req.Clone(req.Context())
			authed.Header.Set("Authorization", "Bearer "+token)
			return next.RoundTrip(authed)
		})
	}
}
