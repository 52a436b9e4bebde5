package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shraddhayatra/internal/domain/models"
)

var blessingTrip = models.Trip{Title: "Ayodhya Yatra", FromStation: "Lucknow", ToStation: "Ayodhya"}

func TestBlessingWithoutKeyFallsBack(t *testing.T) {
	got := BlessingService{}.Blessing(context.Background(), blessingTrip)
	if got != "The divine presence is always with you on your journey. May your trip be blessed. (API Key not configured)" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestBlessingReturnsGeneratedText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-2.5-flash:generateContent") {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("missing api key in query: %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"  May your yatra be serene.  "}]}}]}`))
	}))
	defer srv.Close()

	svc := BlessingService{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}
	got := svc.Blessing(context.Background(), blessingTrip)
	if got != "May your yatra be serene." {
		t.Fatalf("unexpected blessing: %q", got)
	}
}

func TestBlessingDegradesOnAPIFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := BlessingService{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}
	got := svc.Blessing(context.Background(), blessingTrip)
	if got != "May your journey be filled with peace and devotion. (Error fetching blessing)" {
		t.Fatalf("unexpected fallback: %q", got)
	}
}

func TestBlessingDegradesOnEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	svc := BlessingService{APIKey: "test-key", BaseURL: srv.URL, Client: srv.Client()}
	got := svc.Blessing(context.Background(), blessingTrip)
	if !strings.Contains(got, "(Error fetching blessing)") {
		t.Fatalf("unexpected result: %q", got)
	}
}
