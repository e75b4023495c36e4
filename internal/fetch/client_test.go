package fetch

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"

	"bills_fetcher/internal/metrics"
)

const page = "<html><body><table><tr><td>PRIMERA</td></tr></table></body></html>"

type ClientSuite struct {
	suite.Suite
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func (s *ClientSuite) SetupTest() {
	s.metrics = metrics.New(prometheus.NewRegistry())
	s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) newClient(retries int, timeout time.Duration) *Client {
	return New(Config{Timeout: timeout, Retries: retries, Backoff: 0}, s.metrics, s.logger)
}

func (s *ClientSuite) serve(handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	s.T().Cleanup(srv.Close)
	return srv
}

func (s *ClientSuite) TestFetch_Success() {
	srv := s.serve(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, page)
	})

	resp, err := s.newClient(3, time.Second).Fetch(context.Background(), srv.URL)
	s.Require().NoError(err)
	s.Equal(page, resp.Body)
	s.Equal("text/html; charset=utf-8", resp.ContentType)
	s.Equal(http.StatusOK, resp.StatusCode)
	s.Equal(float64(1), testutil.ToFloat64(s.metrics.FetchAttempts.WithLabelValues("success")))
	s.Equal(float64(0), testutil.ToFloat64(s.metrics.FetchInFlight))
}

func (s *ClientSuite) TestFetch_RetriesUntilSuccess() {
	var calls atomic.Int32
	srv := s.serve(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, page)
	})

	resp, err := s.newClient(3, time.Second).Fetch(context.Background(), srv.URL)
	s.Require().NoError(err)
	s.Equal(page, resp.Body)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientSuite) TestFetch_ExhaustsRetries() {
	var calls atomic.Int32
	srv := s.serve(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := s.newClient(3, time.Second).Fetch(context.Background(), srv.URL)
	s.Require().Error(err)

	var fetchErr *FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.Equal(KindTransport, fetchErr.Kind)
	s.Equal(srv.URL, fetchErr.URL)
	s.Equal(3, fetchErr.Attempts)
	s.Equal(int32(3), calls.Load())
}

func (s *ClientSuite) TestFetch_EmptyBody() {
	srv := s.serve(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
	})

	_, err := s.newClient(2, time.Second).Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.Equal(KindEmptyBody, fetchErr.Kind)
	s.Equal(2, fetchErr.Attempts)
}

func (s *ClientSuite) TestFetch_WrongContentType() {
	srv := s.serve(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"proyectos": []}`)
	})

	_, err := s.newClient(1, time.Second).Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.Equal(KindWrongContentType, fetchErr.Kind)
	s.Equal(1, fetchErr.Attempts)
}

func (s *ClientSuite) TestFetch_NonTextBody() {
	srv := s.serve(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj"))
	})

	_, err := s.newClient(1, time.Second).Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.Equal(KindNonTextBody, fetchErr.Kind)
}

func (s *ClientSuite) TestFetch_Timeout() {
	release := make(chan struct{})
	srv := s.serve(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	_, err := s.newClient(2, 50*time.Millisecond).Fetch(context.Background(), srv.URL)

	var fetchErr *FetchError
	s.Require().ErrorAs(err, &fetchErr)
	s.Equal(KindTimeout, fetchErr.Kind)
	s.Equal(2, fetchErr.Attempts)
	s.Equal(float64(2), testutil.ToFloat64(s.metrics.FetchAttempts.WithLabelValues(string(KindTimeout))))
}
