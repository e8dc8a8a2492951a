package middleware

import "net/http"

// RoundTripperInstrumenter источник метрик для транспорта
type RoundTripperInstrumenter interface {
	InstrumentRoundTripper(next http.RoundTripper) http.RoundTripper
}

// Metrics собирает метрики запросов к API
func Metrics(instrumenter RoundTripperInstrumenter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return instrumenter.InstrumentRoundTripper(next)
	}
}
