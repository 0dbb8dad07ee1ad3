// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-rank/auth"
	"github.com/danielhkuo/quickly-rank/cliparse"
	"github.com/danielhkuo/quickly-rank/editor"
	"github.com/danielhkuo/quickly-rank/models"
	"github.com/danielhkuo/quickly-rank/session"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               3318,
		SessionKeySalt:     "test-session-salt",
		SessionIdleTimeout: time.Hour,
	}
}

// NewTestStore returns an empty session store that does not log
func NewTestStore() *session.Store {
	return session.NewStore(session.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

// CreateTestSession starts a session directly in the store and returns its
// ID and session key. Editors created here panic on invariant violations.
func CreateTestSession(t *testing.T, store *session.Store, cfg cliparse.Config, candidates []string, initial models.FlatSelection) (sessionID, sessionKey string) {
	t.Helper()

	sess := store.Create(candidates, initial, editor.WithStrict(true))
	return sess.ID, auth.GenerateSessionKey(sess.ID, cfg.SessionKeySalt)
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// SessionHeaders returns the headers authenticating requests to a session
func SessionHeaders(sessionKey string) map[string]string {
	return map[string]string{"X-Session-Key": sessionKey}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
