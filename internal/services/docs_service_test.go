package services

import (
	"bytes"
	"strings"
	"testing"

	"shraddhayatra/internal/domain/models"
)

func TestMemberID(t *testing.T) {
	got := MemberID("0b0e8aa1-4c2d-4f3e-9a1b-123456789abc")
	if got != "SYT-0B0E8AA1" {
		t.Fatalf("unexpected member id: %q", got)
	}
	if short := MemberID("ab"); short != "SYT-AB" {
		t.Fatalf("unexpected short member id: %q", short)
	}
}

func TestBookingCode(t *testing.T) {
	b := models.Booking{ID: 7, CreatedAt: "2025-04-09 10:00:00"}
	if got := BookingCode(b); got != "SYT00/04/007" {
		t.Fatalf("unexpected booking code: %q", got)
	}
}

func TestGenerateIDCardProducesPDF(t *testing.T) {
	svc := DocsService{
		CardLoader: func(userID string) (models.User, error) {
			return models.User{
				ID:         userID,
				Name:       "Asha Sharma",
				Phone:      "+919876543210",
				BloodGroup: "o+",
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateIDCard("0b0e8aa1-4c2d-4f3e-9a1b-123456789abc")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.Contains(filename, "SYT-0B0E8AA1") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename: %q", filename)
	}
}

func TestGenerateConfirmationProducesPDF(t *testing.T) {
	svc := DocsService{
		ConfirmationLoader: func(bookingID int64) (confirmationData, error) {
			return confirmationData{
				Booking: models.Booking{ID: bookingID, TripID: 42, UserID: "u-1", SeatCount: 3, AdminStatus: "approved", CreatedAt: "2025-04-09 10:00:00"},
				Trip:    models.Trip{ID: 42, Title: "Ayodhya Yatra", FromStation: "Lucknow", ToStation: "Ayodhya", Date: "2025-11-20", Time: "06:30", TicketPrice: 1500},
				User:    models.User{ID: "u-1", Name: "Asha Sharma", Phone: "+919876543210"},
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateConfirmation(7)
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "BOOKING_7_") {
		t.Fatalf("unexpected filename: %q", filename)
	}
}
