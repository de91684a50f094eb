package usecase

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"sync"
	"testing"

	"alertr-srv/internal/alert"
	"alertr-srv/pkg/log"
)

type recordedRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   string
}

// fakeTransport records every outbound request. respond decides the answer
// from the request and its consumed body; nil means 200 OK.
type fakeTransport struct {
	mu      sync.Mutex
	reqs    []recordedRequest
	respond func(r *http.Request, body string) (*http.Response, error)
}

func (f *fakeTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
	}
	f.mu.Lock()
	f.reqs = append(f.reqs, recordedRequest{Method: r.Method, URL: r.URL.String(), Header: r.Header.Clone(), Body: string(body)})
	f.mu.Unlock()

	if f.respond != nil {
		return f.respond(r, string(body))
	}
	return statusResponse(r, http.StatusOK), nil
}

func (f *fakeTransport) requests() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.reqs...)
}

func statusResponse(r *http.Request, code int) *http.Response {
	return &http.Response{
		StatusCode: code,
		Status:     http.StatusText(code),
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    r,
	}
}

func newTestUseCase(ft *fakeTransport, opts Options) *implUseCase {
	opts.Client = &http.Client{Transport: ft}
	return New(log.NewNop(), opts).(*implUseCase)
}

func decodeBody(t *testing.T, body string) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal([]byte(body), &m); err != nil {
		t.Fatalf("body is not json: %v (%q)", err, body)
	}
	return m
}

var samplePayload = alert.Payload{
	SessionID:        "sess-1",
	NotificationType: "permission_prompt",
	Message:          "Claude needs your permission to use Bash",
	Details:          "rm -rf build",
	Cwd:              "/home/dev/projects/alertr",
	Hostname:         "devbox",
	Timestamp:        "2026-01-02T03:04:05Z",
}
