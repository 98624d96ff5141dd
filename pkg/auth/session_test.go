package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGenerateSessionToken_Shape(t *testing.T) {
	token, err := GenerateSessionToken()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(token) != 64 {
		t.Errorf("expected 64-char hex token, got %d chars", len(token))
	}
	for _, c := range token {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			t.Fatalf("unexpected character %q in token", c)
		}
	}
}

func TestGenerateSessionToken_Unique(t *testing.T) {
	a, _ := GenerateSessionToken()
	b, _ := GenerateSessionToken()
	if a == b {
		t.Error("expected distinct tokens")
	}
}

func TestSetSessionCookie_Attributes(t *testing.T) {
	rec := httptest.NewRecorder()
	SetSessionCookie(rec, "tok-1")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != SessionCookieName() || c.Value != "tok-1" {
		t.Errorf("unexpected cookie: %+v", c)
	}
	if !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteNoneMode {
		t.Errorf("expected HttpOnly Secure SameSite=None, got %+v", c)
	}
	if c.MaxAge != int(SessionDuration.Seconds()) {
		t.Errorf("expected MaxAge=%d, got %d", int(SessionDuration.Seconds()), c.MaxAge)
	}
}

func TestClearSessionCookie_Expires(t *testing.T) {
	rec := httptest.NewRecorder()
	ClearSessionCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge >= 0 {
		t.Errorf("expected negative MaxAge, got %d", cookies[0].MaxAge)
	}
}

func TestSessionTokenFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := SessionTokenFromRequest(req); got != "" {
		t.Errorf("expected empty token without cookie, got %q", got)
	}

	req.AddCookie(&http.Cookie{Name: SessionCookieName(), Value: "tok-9"})
	if got := SessionTokenFromRequest(req); got != "tok-9" {
		t.Errorf("expected tok-9, got %q", got)
	}
}
