package services

import (
	"fmt"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"
)

// Notification templates the admin can send for a trip.
const (
	TemplateReminder     = "reminder"
	TemplateDateChange   = "date_change"
	TemplateCancellation = "cancellation"
	TemplateCustom       = "custom"
)

type NotificationRequest struct {
	Template      string `json:"template"`
	CustomMessage string `json:"custom_message"`
	NewDate       string `json:"new_date"`
}

type NotificationResult struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}

// NotifyService composes devotee notifications and returns the WhatsApp
// deep link for them. Sending is fire-and-forget on the client side; the
// only writes here are the date change and the cancellation, each a
// single update on the one trip concerned.
type NotifyService struct {
	Trips         repositories.TripRepository
	TrustWhatsApp string
	RequestID     string
}

func (s NotifyService) Send(tripID int64, req NotificationRequest) (NotificationResult, error) {
	trip, err := s.Trips.GetByID(tripID)
	if err != nil {
		return NotificationResult{}, err
	}

	header := fmt.Sprintf("Update from Shraddha Yatra Trust regarding your trip: %q\n\n", trip.Title)

	var body string
	switch req.Template {
	case TemplateReminder:
		body = fmt.Sprintf(
			"This is a friendly reminder that your journey is scheduled for tomorrow, %s. Please arrive at %s by %s. We wish you a blessed yatra!",
			utils.FormatSpokenDate(trip.Date), trip.FromStation, trip.Time,
		)

	case TemplateDateChange:
		if req.NewDate == "" {
			return NotificationResult{}, domain.ValidationError{Field: "new_date", Msg: "required for a date change"}
		}
		if req.NewDate != trip.Date {
			if err := s.Trips.UpdateDate(trip.ID, req.NewDate); err != nil {
				return NotificationResult{}, err
			}
		}
		body = fmt.Sprintf(
			"Important: The date for this trip has been changed. The new date is %s. All other details remain the same. We apologize for any inconvenience.",
			utils.FormatSpokenDate(req.NewDate),
		)

	case TemplateCancellation:
		if err := s.Trips.UpdateStatus(trip.ID, domain.TripCancelled); err != nil {
			return NotificationResult{}, err
		}
		body = "We regret to inform you that this trip has been cancelled due to unforeseen circumstances. A full refund will be processed shortly. We are sorry for the inconvenience and hope you will join us for a future yatra."

	case TemplateCustom:
		if req.CustomMessage == "" {
			return NotificationResult{}, domain.ValidationError{Field: "custom_message", Msg: "required for a custom notification"}
		}
		body = req.CustomMessage

	default:
		return NotificationResult{}, domain.ValidationError{Field: "template", Msg: "unknown notification template"}
	}

	message := header + body
	utils.LogEvent(s.RequestID, "notify", "compose", fmt.Sprintf("trip_id=%d template=%s", trip.ID, req.Template))

	return NotificationResult{
		Message:     message,
		WhatsAppURL: utils.WhatsAppLink(s.TrustWhatsApp, message),
	}, nil
}

// ComposeInquiry formats a contact-form submission for the trust's
// WhatsApp number.
func ComposeInquiry(name, phone, message string) string {
	return fmt.Sprintf("Inquiry from ShraddhaYatra Website:\n\n*Name:* %s\n*Phone:* %s\n\n*Message:*\n%s", name, phone, message)
}
