package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCreateBookingWithoutSessionReturnsPendingAction(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/bookings",
		strings.NewReader(`{"trip_id": 42, "seat_count": 2}`))
	c.Request.Header.Set("Content-Type", "application/json")

	CreateBooking(c)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	var body struct {
		Code          string `json:"code"`
		PendingAction struct {
			View   string `json:"view"`
			TripID int64  `json:"trip_id"`
		} `json:"pending_action"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Code != "login_required" {
		t.Fatalf("unexpected code: %q", body.Code)
	}
	if body.PendingAction.View != "tripDetail" || body.PendingAction.TripID != 42 {
		t.Fatalf("unexpected pending action: %+v", body.PendingAction)
	}
}
