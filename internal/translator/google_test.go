package translator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"google.golang.org/api/option"
)

func newTestGoogleService(t *testing.T, handler http.HandlerFunc) *GoogleService {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	svc, err := NewGoogleService(context.Background(), "",
		option.WithEndpoint(server.URL+"/"),
		option.WithoutAuthentication(),
	)
	if err != nil {
		t.Fatalf("failed to create service: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func TestGoogleService_Translate_Success(t *testing.T) {
	svc := newTestGoogleService(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("failed to parse request: %v", err)
		}
		if r.Form.Get("source") != "en" || r.Form.Get("target") != "ta" {
			t.Errorf("expected en -> ta, got %s -> %s", r.Form.Get("source"), r.Form.Get("target"))
		}
		if r.Form.Get("format") != "text" {
			t.Errorf("expected text format, got %q", r.Form.Get("format"))
		}
		if q := r.Form["q"]; len(q) != 1 || q[0] != "Hello" {
			t.Errorf("unexpected query %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"வணக்கம்"}]}}`))
	})

	got, err := svc.Translate(context.Background(), "Hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "வணக்கம்" {
		t.Errorf("expected 'வணக்கம்', got %q", got)
	}
}

func TestGoogleService_Translate_APIError(t *testing.T) {
	svc := newTestGoogleService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	})

	if _, err := svc.Translate(context.Background(), "Hello"); err == nil {
		t.Error("expected error for 403")
	}
}

func TestGoogleService_Translate_Empty(t *testing.T) {
	svc := newTestGoogleService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"translations":[]}}`))
	})

	if _, err := svc.Translate(context.Background(), "Hello"); err == nil {
		t.Error("expected error for empty translations")
	}
}

func TestGoogleService_Name(t *testing.T) {
	svc := newTestGoogleService(t, func(w http.ResponseWriter, r *http.Request) {})

	if svc.Name() != "google" {
		t.Errorf("expected 'google', got %q", svc.Name())
	}
}
