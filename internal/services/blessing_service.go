package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/utils"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel          = "gemini-2.5-flash"

	blessingNoKeyFallback = "The divine presence is always with you on your journey. May your trip be blessed. (API Key not configured)"
	blessingErrFallback   = "May your journey be filled with peace and devotion. (Error fetching blessing)"
)

// BlessingService asks the generative-text collaborator for a short
// devotional message. It never fails hard: a missing key or a bad
// response degrades to a static fallback string.
type BlessingService struct {
	APIKey    string
	BaseURL   string
	Client    *http.Client
	RequestID string
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (s BlessingService) Blessing(ctx context.Context, trip models.Trip) string {
	if s.APIKey == "" {
		return blessingNoKeyFallback
	}

	prompt := fmt.Sprintf(
		"Generate a short, spiritual blessing (2-3 sentences) from ShraddhaYatra Trust for a devotee undertaking the %q pilgrimage from %s to %s. The tone should be uplifting, respectful, and encouraging.",
		trip.Title, trip.FromStation, trip.ToStation,
	)

	payload, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return blessingErrFallback
	}

	base := s.BaseURL
	if base == "" {
		base = defaultGeminiBaseURL
	}
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", base, geminiModel, s.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return blessingErrFallback
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client().Do(req)
	if err != nil {
		utils.LogEvent(s.RequestID, "blessing", "request_failed", err.Error())
		return blessingErrFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.LogEvent(s.RequestID, "blessing", "bad_status", resp.Status)
		return blessingErrFallback
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		utils.LogEvent(s.RequestID, "blessing", "decode_failed", err.Error())
		return blessingErrFallback
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return blessingErrFallback
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return blessingErrFallback
	}
	return text
}

func (s BlessingService) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	return &http.Client{Timeout: 15 * time.Second}
}
