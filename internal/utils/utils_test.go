package utils

import (
	"strings"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"+919876543210", "+919876543210"},
		{"9876543210", "+919876543210"},
		{"919876543210", "+919876543210"},
		{"98765 43210", "+919876543210"},
		{"98765-43210", "+919876543210"},
	}
	for _, c := range cases {
		if got := NormalizePhone(c.in); got != c.want {
			t.Errorf("NormalizePhone(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatRupees(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "Rs 0"},
		{999, "Rs 999"},
		{1500, "Rs 1,500"},
		{150000, "Rs 1,50,000"},
		{12345678, "Rs 1,23,45,678"},
		{-1500, "-Rs 1,500"},
	}
	for _, c := range cases {
		if got := FormatRupees(c.in); got != c.want {
			t.Errorf("FormatRupees(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatSpokenDate(t *testing.T) {
	if got := FormatSpokenDate("2024-01-15"); got != "Monday, 15 January" {
		t.Errorf("unexpected spoken date: %q", got)
	}
	// unparsable input passes through untouched
	if got := FormatSpokenDate("soon"); got != "soon" {
		t.Errorf("expected passthrough, got %q", got)
	}
}

func TestWhatsAppLinkEncodesLikeTheChatApp(t *testing.T) {
	got := WhatsAppLink("919598023701", "Hello there & welcome")
	if !strings.HasPrefix(got, "https://api.whatsapp.com/send?phone=919598023701&text=") {
		t.Fatalf("unexpected prefix: %q", got)
	}
	if strings.Contains(got, "+") {
		t.Errorf("spaces must be %%20, got %q", got)
	}
	if !strings.Contains(got, "Hello%20there%20%26%20welcome") {
		t.Errorf("unexpected encoding: %q", got)
	}
}

func TestNormalizeSpace(t *testing.T) {
	if got := NormalizeSpace("  Asha   Sharma "); got != "Asha Sharma" {
		t.Errorf("unexpected: %q", got)
	}
}

func TestSafeFilenamePart(t *testing.T) {
	if got := SafeFilenamePart("Asha Sharma/ji"); got != "Asha_Sharma_ji" {
		t.Errorf("unexpected: %q", got)
	}
	if got := SafeFilenamePart("  "); got != "NA" {
		t.Errorf("unexpected empty handling: %q", got)
	}
}
