package utils

import (
	"log"
	"strings"
)

// LogEvent writes one structured application log line, keyed
// module.action. Keep messages summarized; payloads and credentials
// never belong in the log.
func LogEvent(requestID, module, action, message string) {
	log.Printf("evt=%s.%s request_id=%s %s",
		strings.ToLower(strings.TrimSpace(module)), action, strings.TrimSpace(requestID), message)
}
