package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAccessHandler_Notify_ReportsSend(t *testing.T) {
	notifier := newMockNotifier()
	h := NewAccessHandler(notifier)

	body := `{"ip":"203.0.113.9","userAgent":"panel-ui","timestamp":"2025-06-01T12:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin-access", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Notify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	ev := <-notifier.events
	if ev.IP != "203.0.113.9" || ev.UserAgent != "panel-ui" {
		t.Errorf("unexpected event: %+v", ev)
	}
	if ev.At.Format("2006-01-02") != "2025-06-01" {
		t.Errorf("expected claimed timestamp to be used, got %v", ev.At)
	}

	var resp map[string]any
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["sent"] != true {
		t.Errorf("expected sent=true, got %v", resp["sent"])
	}
}

func TestAccessHandler_Notify_DefaultsFromRequest(t *testing.T) {
	notifier := newMockNotifier()
	h := NewAccessHandler(notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/admin-access", strings.NewReader(`{}`))
	req.RemoteAddr = "198.51.100.7:1234"
	req.Header.Set("User-Agent", "curl/8.0")
	rec := httptest.NewRecorder()
	h.Notify(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	ev := <-notifier.events
	if ev.IP != "198.51.100.7" {
		t.Errorf("expected IP from request, got %q", ev.IP)
	}
	if ev.UserAgent != "curl/8.0" {
		t.Errorf("expected user agent from request, got %q", ev.UserAgent)
	}
}

func TestAccessHandler_Notify_SendFailureIsStructured(t *testing.T) {
	notifier := newMockNotifier()
	notifier.err = errors.New("smtp down")
	h := NewAccessHandler(notifier)

	req := httptest.NewRequest(http.MethodPost, "/api/admin-access", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Notify(rec, req)

	// The send failed, but the endpoint itself still answers.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.NewDecoder(rec.Body).Decode(&resp)
	if resp["sent"] != false {
		t.Errorf("expected sent=false, got %v", resp["sent"])
	}
	if resp["error"] == "" {
		t.Error("expected error field describing the failure")
	}
}
