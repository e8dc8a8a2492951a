package middleware

import "net/http"

// Middleware обертка над http.RoundTripper
type Middleware func(next http.RoundTripper) http.RoundTripper

// RoundTripperFunc адаптер функции к http.RoundTripper
type RoundTripperFunc func(req *http.Request) (*http.Response, error)

// RoundTrip реализует http.RoundTripper
func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Chain собирает транспорт из базового и цепочки middleware
// Первый middleware в списке выполняется первым
func Chain(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(middlewares) - 1; i >= 0; i-- {
		if middlewares[i] == nil {
			continue
		}
		rt = middlewares[i](rt)
	}
	return rt
}
