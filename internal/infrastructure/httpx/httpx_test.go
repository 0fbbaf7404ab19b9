package httpx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func httpClientRT(rt http.RoundTripper) *http.Client {
	return &http.Client{Transport: rt, Timeout: 2 * time.Second}
}

func jsonResp(r *http.Request, code int, body string) *http.Response {
	return &http.Response{StatusCode: code, Body: io.NopCloser(strings.NewReader(body)), Header: make(http.Header), Request: r}
}

type okBody struct {
	OK bool `json:"ok"`
}

func TestDoJSON_SingleAttemptByDefault(t *testing.T) {
	var calls int
	c := &Client{HTTP: httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResp(r, 500, "err"), nil
	}))}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	var out okBody
	err := c.DoJSON(context.Background(), req, &out)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 500, se.Code)
	require.Equal(t, 1, calls)
}

func TestDoJSON_Retry500Then200(t *testing.T) {
	var calls int
	c := &Client{Retries: 2, HTTP: httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			return jsonResp(r, 500, "err"), nil
		}
		return jsonResp(r, 200, `{"ok": true}`), nil
	}))}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var out okBody
	require.NoError(t, c.DoJSON(ctx, req, &out))
	require.True(t, out.OK)
	require.Equal(t, 2, calls)
}

type tempTimeoutErr struct{}

func (tempTimeoutErr) Error() string   { return "timeout" }
func (tempTimeoutErr) Timeout() bool   { return true }
func (tempTimeoutErr) Temporary() bool { return true }

func TestDoJSON_RetryNetTimeoutThen200(t *testing.T) {
	var calls int
	c := &Client{Retries: 1, HTTP: httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		if calls == 1 {
			var ne net.Error = tempTimeoutErr{}
			return nil, ne
		}
		return jsonResp(r, 200, `{"ok": true}`), nil
	}))}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	var out okBody
	require.NoError(t, c.DoJSON(context.Background(), req, &out))
	require.Equal(t, 2, calls)
}

func TestDoJSON_NoRetryOn400(t *testing.T) {
	var calls int
	c := &Client{Retries: 3, HTTP: httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return jsonResp(r, 400, "bad"), nil
	}))}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	var out any
	err := c.DoJSON(context.Background(), req, &out)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 400, se.Code)
	require.Equal(t, 1, calls)
}

func TestDoJSON_DecodeError_NoRetry(t *testing.T) {
	var calls int
	c := &Client{Retries: 3, HTTP: httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		calls++
		return &http.Response{StatusCode: 200, Body: io.NopCloser(bytes.NewBufferString("{x")), Header: make(http.Header), Request: r}, nil
	}))}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	var out map[string]any
	err := c.DoJSON(context.Background(), req, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
	require.Equal(t, 1, calls)
}

type trackingBody struct {
	io.Reader
	closed *atomic.Bool
}

func (b trackingBody) Close() error { b.closed.Store(true); return nil }

func TestDoJSON_ClosesBodyOnError(t *testing.T) {
	var closed atomic.Bool
	c := &Client{HTTP: httpClientRT(rtFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{StatusCode: 503, Body: trackingBody{Reader: strings.NewReader(""), closed: &closed}, Header: make(http.Header), Request: r}, nil
	}))}
	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)

	var out any
	require.Error(t, c.DoJSON(context.Background(), req, &out))
	require.True(t, closed.Load())
}

func TestDoJSON_ContextDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(srv.Close)

	c := New(5 * time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL, nil)

	var out any
	err := c.DoJSON(ctx, req, &out)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded))
}
