package metrics

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentRoundTripper_CountsRequests(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	m := New("test_client")
	client := &http.Client{Transport: m.InstrumentRoundTripper(http.DefaultTransport)}

	for i := 0; i < 2; i++ {
		resp, err := client.Get(srv.URL)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("200", "get")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.RequestsInFlight))
}

func TestCounters(t *testing.T) {
	m := New("test_client")

	m.RecordAvailabilityFallback()
	m.RecordBookingCreated()
	m.RecordBookingCreated()
	m.RecordBookingCancelled()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.AvailabilityFallback))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCancelled))
}

func TestWriteToTextfile(t *testing.T) {
	m := New("test_client")
	m.RecordBookingCreated()

	path := filepath.Join(t.TempDir(), "client.prom")
	require.NoError(t, m.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "bookings_created_total")
	assert.Contains(t, string(data), `service="test_client"`)
}
