package services

import (
	"encoding/json"

	"shraddhayatra/internal/domain/models"
)

// Settings is the materialized site configuration. Recognized keys only;
// unknown rows are carried in Extra untouched.
type Settings struct {
	SiteLogoURL    string          `json:"site_logo_url"`
	UpiID          string          `json:"upi_id"`
	AboutContent   json.RawMessage `json:"about_content"`
	ContactContent json.RawMessage `json:"contact_content"`

	Extra map[string]json.RawMessage `json:"extra,omitempty"`
}

const defaultSiteLogoURL = "/logo.png"

// Built-in About document so the About page never renders empty.
const defaultAboutContent = `{
  "missionTitle": "Our Mission",
  "mainTitle": "Guiding Devotees on Their Spiritual Path",
  "subtitle": "ShraddhaYatra Trust is a non-profit organization dedicated to facilitating profound spiritual journeys to India's most sacred destinations.",
  "body": "Founded on the principles of selfless service (seva), faith (shraddha), and community (satsang), our trust aims to make pilgrimages accessible, safe, and spiritually enriching for everyone. We believe that a yatra is not just a journey to a place, but a transformative inner experience.",
  "visionTitle": "Our Vision",
  "visionBody": "To be a beacon of light for seekers, providing them with opportunities to deepen their faith, connect with our rich cultural heritage, and experience the divine presence that permeates our holy lands. We envision a world where every individual has the chance to embark on a spiritual pilgrimage that nourishes their soul.",
  "whatWeDoTitle": "What We Do",
  "whatWeDoPoints": [
    "Organize Group Yatras: We meticulously plan and manage group trips to holy sites like Ayodhya, Vrindavan, Varanasi, and more, taking care of all logistical details so you can focus on your spiritual practices.",
    "Promote Spiritual Knowledge: Through our journeys, we aim to share the timeless wisdom of our scriptures and the significance of the sacred places we visit.",
    "Foster a Devotional Community: Our trips are designed to create a supportive and uplifting environment where devotees can share their experiences and grow together in their spiritual journey."
  ],
  "closing": "Join us as we travel not just across lands, but deeper into our own hearts. Let ShraddhaYatra Trust be your companion on the path to spiritual awakening."
}`

// Built-in Contact document, same reason.
const defaultContactContent = `{
  "address": "123 Temple Road, Lucknow, UP, India",
  "phone": "+91 987 654 3210",
  "email": "contact@shraddhayatra.org",
  "whatsapp_number": "919598023701"
}`

// ContentService flattens config rows into Settings, applying fallback
// defaults for the two document keys. Values are not shape-validated.
type ContentService struct{}

func (ContentService) Materialize(rows []models.ConfigRow) Settings {
	s := Settings{
		SiteLogoURL:    defaultSiteLogoURL,
		AboutContent:   json.RawMessage(defaultAboutContent),
		ContactContent: json.RawMessage(defaultContactContent),
	}

	for _, row := range rows {
		switch row.Key {
		case "site_logo_url":
			var v string
			if err := json.Unmarshal(row.Value, &v); err == nil && v != "" {
				s.SiteLogoURL = v
			}
		case "upi_id":
			var v string
			if err := json.Unmarshal(row.Value, &v); err == nil {
				s.UpiID = v
			}
		case "about_content":
			if len(row.Value) > 0 {
				s.AboutContent = row.Value
			}
		case "contact_content":
			if len(row.Value) > 0 {
				s.ContactContent = row.Value
			}
		default:
			if s.Extra == nil {
				s.Extra = map[string]json.RawMessage{}
			}
			s.Extra[row.Key] = row.Value
		}
	}
	return s
}

// ContactWhatsApp digs the inquiry number out of the contact document.
func (ContentService) ContactWhatsApp(s Settings) string {
	var c struct {
		WhatsAppNumber string `json:"whatsapp_number"`
	}
	if err := json.Unmarshal(s.ContactContent, &c); err != nil {
		return ""
	}
	return c.WhatsAppNumber
}
