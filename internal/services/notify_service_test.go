package services

import (
	"strings"
	"testing"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func notifyWithDB(t *testing.T) (NotifyService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	svc := NotifyService{
		Trips:         repositories.TripRepository{DB: db},
		TrustWhatsApp: "919598023701",
	}
	return svc, mock, func() { db.Close() }
}

func TestSendReminderComposesMessage(t *testing.T) {
	svc, mock, done := notifyWithDB(t)
	defer done()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(42)).
		WillReturnRows(tripRow(42, "Ayodhya Yatra"))

	res, err := svc.Send(42, NotificationRequest{Template: TemplateReminder})
	if err != nil {
		t.Fatalf("send error: %v", err)
	}
	if !strings.HasPrefix(res.Message, `Update from Shraddha Yatra Trust regarding your trip: "Ayodhya Yatra"`) {
		t.Fatalf("unexpected header: %q", res.Message)
	}
	if !strings.Contains(res.Message, "friendly reminder") || !strings.Contains(res.Message, "Lucknow") {
		t.Fatalf("unexpected body: %q", res.Message)
	}
	if !strings.HasPrefix(res.WhatsAppURL, "https://api.whatsapp.com/send?phone=919598023701&text=") {
		t.Fatalf("unexpected url: %q", res.WhatsAppURL)
	}
	if strings.Contains(res.WhatsAppURL, "+") {
		t.Fatalf("spaces must encode as %%20, got %q", res.WhatsAppURL)
	}
}

func TestSendDateChangeUpdatesTrip(t *testing.T) {
	svc, mock, done := notifyWithDB(t)
	defer done()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(42)).
		WillReturnRows(tripRow(42, "Ayodhya Yatra"))
	mock.ExpectExec("UPDATE trips SET date").
		WithArgs("2025-12-01", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.Send(42, NotificationRequest{Template: TemplateDateChange, NewDate: "2025-12-01"})
	if err != nil {
		t.Fatalf("send error: %v", err)
	}
	if !strings.Contains(res.Message, "Monday, 1 December") {
		t.Fatalf("expected the spoken new date, got %q", res.Message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSendDateChangeSkipsWriteWhenUnchanged(t *testing.T) {
	svc, mock, done := notifyWithDB(t)
	defer done()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(42)).
		WillReturnRows(tripRow(42, "Ayodhya Yatra"))

	// tripRow's date is 2025-11-20; sending the same date writes nothing
	if _, err := svc.Send(42, NotificationRequest{Template: TemplateDateChange, NewDate: "2025-11-20"}); err != nil {
		t.Fatalf("send error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSendCancellationMarksTripCancelled(t *testing.T) {
	svc, mock, done := notifyWithDB(t)
	defer done()

	mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(42)).
		WillReturnRows(tripRow(42, "Ayodhya Yatra"))
	mock.ExpectExec("UPDATE trips SET status").
		WithArgs(domain.TripCancelled, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := svc.Send(42, NotificationRequest{Template: TemplateCancellation})
	if err != nil {
		t.Fatalf("send error: %v", err)
	}
	if !strings.Contains(res.Message, "has been cancelled") {
		t.Fatalf("unexpected body: %q", res.Message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSendValidatesTemplateInput(t *testing.T) {
	svc, mock, done := notifyWithDB(t)
	defer done()

	for _, req := range []NotificationRequest{
		{Template: "broadcast"},
		{Template: TemplateDateChange},
		{Template: TemplateCustom},
	} {
		mock.ExpectQuery("FROM trips WHERE id").WithArgs(int64(42)).
			WillReturnRows(tripRow(42, "Ayodhya Yatra"))
		if _, err := svc.Send(42, req); !domain.IsValidation(err) {
			t.Fatalf("template %q: expected validation error, got %v", req.Template, err)
		}
	}
}

func TestComposeInquiry(t *testing.T) {
	got := ComposeInquiry("Asha", "+919876543210", "When is the next yatra?")
	if !strings.Contains(got, "*Name:* Asha") || !strings.Contains(got, "When is the next yatra?") {
		t.Fatalf("unexpected inquiry: %q", got)
	}
}
