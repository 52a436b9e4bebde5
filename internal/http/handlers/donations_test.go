package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	intconfig "shraddhayatra/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
)

// A donation is a mutation like any other: the response must carry the
// reloaded snapshot, not just an acknowledgement.
func TestCreateDonationReturnsRefreshedSnapshot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	intconfig.DB = db
	defer func() {
		intconfig.DB = nil
		db.Close()
	}()

	mock.ExpectExec("INSERT INTO donations").
		WillReturnResult(sqlmock.NewResult(1, 1))

	// full snapshot reload after the write
	mock.ExpectQuery("FROM trips").WillReturnRows(sqlmock.NewRows([]string{
		"id", "title", "description", "date", "time",
		"from_station", "to_station", "platform",
		"train_no", "ticket_price", "food_price",
		"food_option", "notes", "image_url", "status",
	}))
	mock.ExpectQuery("FROM bookings").WillReturnRows(sqlmock.NewRows(
		[]string{"id", "trip_id", "user_id", "seat_count", "admin_status", "created_at"}))
	mock.ExpectQuery("FROM gallery").WillReturnRows(sqlmock.NewRows(
		[]string{"id", "trip_id", "image_url", "caption"}))
	mock.ExpectQuery("FROM donations").WillReturnRows(sqlmock.NewRows(
		[]string{"id", "donor_name", "user_id", "amount", "transaction_id", "created_at"}).
		AddRow(1, "Asha Sharma", nil, 501, "", "2025-04-09 10:00:00"))
	mock.ExpectQuery("FROM testimonials").WillReturnRows(sqlmock.NewRows(
		[]string{"id", "author_name", "author_location", "author_image_url", "message", "created_at"}))
	mock.ExpectQuery("information_schema\\.tables").WithArgs("team_members").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}))
	mock.ExpectQuery("FROM config").WillReturnRows(sqlmock.NewRows([]string{"key", "value"}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/donations",
		strings.NewReader(`{"donor_name":"Asha Sharma","amount":501}`))
	c.Request.Header.Set("Content-Type", "application/json")

	CreateDonation(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Message string `json:"message"`
		Data    struct {
			Donations []struct {
				DonorName string `json:"donor_name"`
			} `json:"donations"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !strings.HasPrefix(body.Message, "Thank you for your generous donation!") {
		t.Fatalf("unexpected message: %q", body.Message)
	}
	if len(body.Data.Donations) != 1 || body.Data.Donations[0].DonorName != "Asha Sharma" {
		t.Fatalf("expected the reloaded donation list, got %+v", body.Data.Donations)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
