package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/pkg/metrics"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newEchoServer(t *testing.T, seen *http.Header) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*seen = r.Header.Clone()
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doGet(t *testing.T, rt http.RoundTripper, url string) {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	resp, err := rt.RoundTrip(req)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestAuth_AttachesBearerToken(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, &seen)

	doGet(t, Chain(nil, Auth(staticToken("secret"))), srv.URL)
	assert.Equal(t, "Bearer secret", seen.Get("Authorization"))
}

func TestAuth_NoTokenNoHeader(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, &seen)

	doGet(t, Chain(nil, Auth(staticToken(""))), srv.URL)
	assert.Empty(t, seen.Get("Authorization"))
}

func TestRequestID_SetsUUID(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, &seen)

	doGet(t, Chain(nil, RequestID()), srv.URL)

	_, err := uuid.Parse(seen.Get(RequestIDHeader))
	assert.NoError(t, err)
}

func TestChain_WithMetrics(t *testing.T) {
	var seen http.Header
	srv := newEchoServer(t, &seen)

	m := metrics.New("test")
	rt := Chain(http.DefaultTransport, RequestID(), Auth(staticToken("t")), Metrics(m))
	doGet(t, rt, srv.URL)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("204", "get")))
	assert.Equal(t, "Bearer t", seen.Get("Authorization"))
	assert.NotEmpty(t, seen.Get(RequestIDHeader))
}
