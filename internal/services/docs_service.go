package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"

	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// DocsService renders the printable documents: the devotee ID card and
// the booking confirmation. Both replace the legacy client-side canvas
// capture with server-side PDFs.
type DocsService struct {
	Profiles  repositories.ProfileRepository
	Bookings  repositories.BookingRepository
	Trips     repositories.TripRepository
	RequestID string

	CardLoader         func(userID string) (models.User, error)
	ConfirmationLoader func(bookingID int64) (confirmationData, error)
}

type confirmationData struct {
	Booking models.Booking
	Trip    models.Trip
	User    models.User
}

// MemberID derives the printed card ID from the profile's UUID.
func MemberID(userID string) string {
	id := strings.ReplaceAll(userID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return "SYT-" + strings.ToUpper(id)
}

// BookingCode formats the human-facing booking reference, e.g.
// "SYT00/04/007".
func BookingCode(b models.Booking) string {
	month := int(time.Now().Month())
	if t, err := utils.ParseDate(strings.SplitN(b.CreatedAt, " ", 2)[0]); err == nil {
		month = int(t.Month())
	}
	return fmt.Sprintf("SYT00/%02d/%03d", month, b.ID)
}

func (s DocsService) GenerateIDCard(userID string) ([]byte, string, error) {
	user, err := s.loadUser(userID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_id_card", fmt.Sprintf("user_id=%s", userID))
	return buildIDCardPDF(user)
}

func (s DocsService) GenerateConfirmation(bookingID int64) ([]byte, string, error) {
	data, err := s.loadConfirmation(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_confirmation", fmt.Sprintf("booking_id=%d", bookingID))
	return buildConfirmationPDF(data)
}

func (s DocsService) loadUser(userID string) (models.User, error) {
	if s.CardLoader != nil {
		return s.CardLoader(userID)
	}
	return s.Profiles.GetByID(userID)
}

func (s DocsService) loadConfirmation(bookingID int64) (confirmationData, error) {
	if s.ConfirmationLoader != nil {
		return s.ConfirmationLoader(bookingID)
	}

	var data confirmationData
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return data, err
	}
	trip, err := s.Trips.GetByID(booking.TripID)
	if err != nil {
		return data, err
	}
	user, err := s.Profiles.GetByID(booking.UserID)
	if err != nil {
		return data, err
	}

	data.Booking = booking
	data.Trip = trip
	data.User = user
	return data, nil
}

// buildIDCardPDF renders the landscape wallet card, matching the legacy
// on-screen card geometry.
func buildIDCardPDF(u models.User) ([]byte, string, error) {
	memberID := MemberID(u.ID)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "mm",
		Size:    gofpdf.SizeType{Wd: 92, Ht: 58},
	})
	pdf.SetTitle("Devotee Identity Card", false)
	pdf.SetMargins(4, 4, 4)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 5, "Shraddha Yatra Trust", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(217, 119, 6)
	pdf.CellFormat(0, 4, "Devotee Identity Card", "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetDrawColor(249, 115, 22)
	pdf.SetLineWidth(0.6)
	pdf.Line(4, 15, 88, 15)

	qrData := fmt.Sprintf("MemberID: %s\nName: %s\nPhone: %s", memberID, u.Name, u.Phone)
	qrPNG, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		return nil, "", err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("member-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("member-qr", 68, 17, 20, 20, false, opts, 0, "")

	pdf.SetY(17)
	cardField(pdf, "Full Name", docValue(u.Name, "N/A"))
	cardField(pdf, "Member ID", memberID)
	cardField(pdf, "Date of Birth", docValue(u.DOB, "N/A"))
	cardField(pdf, "Blood Group", docValue(strings.ToUpper(u.BloodGroup), "N/A"))
	cardField(pdf, "Phone", docValue(u.Phone, "N/A"))
	cardField(pdf, "Address", docValue(u.Address, "N/A"))

	pdf.SetY(46)
	pdf.SetFont("Helvetica", "", 6.5)
	pdf.SetTextColor(107, 114, 128)
	emergency := fmt.Sprintf("In Case of Emergency, Contact: %s (%s)",
		docValue(u.EmergencyContactName, "N/A"), docValue(u.EmergencyContactPhone, "N/A"))
	pdf.CellFormat(0, 3.2, emergency, "", 1, "L", false, 0, "")

	pdf.SetDrawColor(229, 231, 235)
	pdf.SetLineWidth(0.2)
	pdf.Line(4, 51, 88, 51)
	pdf.SetY(52)
	pdf.CellFormat(0, 3.2, "This card serves as identification for Shraddha Yatra Trust yatras.", "", 1, "C", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("IDCARD_%s_%s.pdf", memberID, utils.SafeFilenamePart(u.Name))
	return buf.Bytes(), filename, nil
}

func cardField(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(107, 114, 128)
	pdf.CellFormat(60, 2.8, label, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(60, 3.6, value, "", 1, "L", false, 0, "")
}

func buildConfirmationPDF(d confirmationData) ([]byte, string, error) {
	code := BookingCode(d.Booking)
	seats := d.Booking.SeatCount
	if seats <= 0 {
		seats = 1
	}
	total := d.Trip.TicketPrice * int64(seats)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Confirmation", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING CONFIRMATION")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, "Shraddha Yatra Trust")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking Ref    : %s", code),
		fmt.Sprintf("Devotee        : %s", docValue(d.User.Name, "-")),
		fmt.Sprintf("Phone          : %s", docValue(d.User.Phone, "-")),
		fmt.Sprintf("Yatra          : %s", docValue(d.Trip.Title, "-")),
		fmt.Sprintf("Route          : %s -> %s", docValue(d.Trip.FromStation, "-"), docValue(d.Trip.ToStation, "-")),
		fmt.Sprintf("Date/Time      : %s %s", docValue(d.Trip.Date, "-"), docValue(d.Trip.Time, "-")),
		fmt.Sprintf("Train / Plf    : %s / %s", docValue(d.Trip.TrainNo, "-"), docValue(d.Trip.Platform, "-")),
		fmt.Sprintf("Seats          : %d", seats),
		fmt.Sprintf("Ticket Total   : %s", utils.FormatRupees(total)),
		fmt.Sprintf("Request Status : %s", docValue(d.Booking.AdminStatus, "-")),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	qrPNG, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		return nil, "", err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("booking-qr", opts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("booking-qr", 150, 30, 40, 40, false, opts, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry this confirmation and a government ID during the yatra. Seat allocation is confirmed only after admin approval.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("BOOKING_%d_%s.pdf", d.Booking.ID, utils.SafeFilenamePart(d.User.Name))
	return buf.Bytes(), filename, nil
}

func docValue(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
