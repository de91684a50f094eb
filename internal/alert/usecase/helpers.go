package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

var (
	errMissingFields      = errors.New("missing required url fields")
	errUnsupportedService = errors.New("unsupported service")
)

type requestOption func(*http.Request)

func withHeader(key, value string) requestOption {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// withBasicAuth sets credentials only when both halves are present.
func withBasicAuth(user, password string) requestOption {
	return func(r *http.Request) {
		if user != "" && password != "" {
			r.SetBasicAuth(user, password)
		}
	}
}

func (uc *implUseCase) postJSON(ctx context.Context, target string, v any, opts ...requestOption) error {
	body, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode body: %w", err)
	}
	opts = append([]requestOption{withHeader("Content-Type", "application/json")}, opts...)
	return uc.post(ctx, target, body, opts...)
}

// post sends body and treats any 2xx as success. Transport errors are
// stripped of the request URL, which may embed credentials.
func (uc *implUseCase) post(ctx context.Context, target string, body []byte, opts ...requestOption) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return errors.New("build request: invalid target")
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := uc.client.Do(req)
	if err != nil {
		var ue *url.Error
		if errors.As(err, &ue) {
			err = ue.Err
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}

// firstPathSegment returns the first non-empty segment of path.
func firstPathSegment(path string) string {
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			return seg
		}
	}
	return ""
}

// splitTrimmed splits s on sep, trims each part and drops the blank ones.
func splitTrimmed(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
