package services

import (
	"encoding/json"
	"testing"

	"shraddhayatra/internal/domain/models"
)

func TestMaterializeDefaults(t *testing.T) {
	s := ContentService{}.Materialize(nil)

	if s.SiteLogoURL != "/logo.png" {
		t.Fatalf("expected default logo, got %q", s.SiteLogoURL)
	}
	if s.UpiID != "" {
		t.Fatalf("expected empty upi id, got %q", s.UpiID)
	}

	var about struct {
		MissionTitle string `json:"missionTitle"`
	}
	if err := json.Unmarshal(s.AboutContent, &about); err != nil {
		t.Fatalf("default about is not valid JSON: %v", err)
	}
	if about.MissionTitle != "Our Mission" {
		t.Fatalf("unexpected default about: %+v", about)
	}

	if got := (ContentService{}).ContactWhatsApp(s); got != "919598023701" {
		t.Fatalf("expected default whatsapp number, got %q", got)
	}
}

func TestMaterializeAppliesRowsAndKeepsExtras(t *testing.T) {
	rows := []models.ConfigRow{
		{Key: "site_logo_url", Value: json.RawMessage(`"https://cdn.example.org/logo.svg"`)},
		{Key: "upi_id", Value: json.RawMessage(`"trust@upi"`)},
		{Key: "contact_content", Value: json.RawMessage(`{"whatsapp_number":"911234567890"}`)},
		{Key: "festival_banner", Value: json.RawMessage(`{"enabled":true}`)},
	}

	s := ContentService{}.Materialize(rows)
	if s.SiteLogoURL != "https://cdn.example.org/logo.svg" {
		t.Fatalf("logo not applied: %q", s.SiteLogoURL)
	}
	if s.UpiID != "trust@upi" {
		t.Fatalf("upi not applied: %q", s.UpiID)
	}
	if got := (ContentService{}).ContactWhatsApp(s); got != "911234567890" {
		t.Fatalf("contact override not applied, got %q", got)
	}
	if _, ok := s.Extra["festival_banner"]; !ok {
		t.Fatalf("unknown key not kept in extras: %+v", s.Extra)
	}
}

func TestMaterializeIgnoresMalformedScalars(t *testing.T) {
	rows := []models.ConfigRow{
		{Key: "site_logo_url", Value: json.RawMessage(`{"oops":true}`)},
	}
	s := ContentService{}.Materialize(rows)
	if s.SiteLogoURL != "/logo.png" {
		t.Fatalf("malformed logo value should keep the default, got %q", s.SiteLogoURL)
	}
}
