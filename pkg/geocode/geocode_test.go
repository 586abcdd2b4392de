package geocode

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestResolveReturnsCoordinates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "Jakarta", r.URL.Query().Get("address"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [
				{"geometry": {"location": {"lat": -6.2088, "lng": 106.8456}}}
			]
		}`))
	}))
	defer srv.Close()

	g := NewWithBaseURL(newTestLogger(), srv.URL, "test-key")

	lat, lng, ok := g.Resolve(context.Background(), "Jakarta")
	assert.True(t, ok)
	assert.InDelta(t, -6.2088, lat, 0.0001)
	assert.InDelta(t, 106.8456, lng, 0.0001)
}

func TestResolveNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer srv.Close()

	g := NewWithBaseURL(newTestLogger(), srv.URL, "test-key")

	_, _, ok := g.Resolve(context.Background(), "does not exist")
	assert.False(t, ok)
}

func TestResolveUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewWithBaseURL(newTestLogger(), srv.URL, "test-key")

	_, _, ok := g.Resolve(context.Background(), "Jakarta")
	assert.False(t, ok)
}

func TestResolveMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	g := NewWithBaseURL(newTestLogger(), srv.URL, "test-key")

	_, _, ok := g.Resolve(context.Background(), "Jakarta")
	assert.False(t, ok)
}

func TestResolveUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	g := NewWithBaseURL(newTestLogger(), srv.URL, "test-key")

	_, _, ok := g.Resolve(context.Background(), "Jakarta")
	assert.False(t, ok)
}
