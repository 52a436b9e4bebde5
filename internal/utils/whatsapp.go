package utils

import (
	"net/url"
	"strings"
)

// WhatsAppLink builds the api.whatsapp.com deep link with pre-filled text.
// Spaces are %20, matching encodeURIComponent, so the chat app renders
// the message verbatim.
func WhatsAppLink(phone, text string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	return "https://api.whatsapp.com/send?phone=" + url.QueryEscape(phone) + "&text=" + encoded
}
