package services

import (
	"fmt"

	intdb "shraddhayatra/internal/db"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"
)

// Snapshot is everything the client needs to render: the resolved session
// user plus all domain collections and materialized settings. Collections
// that failed to load are empty, with the failure noted in Warnings.
type Snapshot struct {
	User         *models.User          `json:"user"`
	Trips        []models.Trip         `json:"trips"`
	Bookings     []models.Booking      `json:"bookings"`
	Gallery      []models.GalleryImage `json:"gallery"`
	Donations    []models.Donation     `json:"donations"`
	Testimonials []models.Testimonial  `json:"testimonials"`
	Team         []models.TeamMember   `json:"team"`
	Settings     Settings              `json:"settings"`
	Users        []models.User         `json:"users,omitempty"`
	Warnings     []Warning             `json:"warnings,omitempty"`
}

// Warning is a non-fatal per-collection load failure.
type Warning struct {
	Feature string `json:"feature"`
	Message string `json:"message"`
}

// BootstrapService fetches all collections independently, tolerating
// partial failures per collection.
type BootstrapService struct {
	Profiles     ProfileService
	Trips        repositories.TripRepository
	Bookings     repositories.BookingRepository
	Gallery      repositories.GalleryRepository
	Donations    repositories.DonationRepository
	Testimonials repositories.TestimonialRepository
	Team         repositories.TeamRepository
	Config       repositories.ConfigRepository
	Content      ContentService
	RequestID    string
}

// Load builds the full snapshot. Session resolution failures propagate
// (the caller reports them as critical); collection failures do not.
func (s BootstrapService) Load(rc domain.RequestContext) (Snapshot, error) {
	snap := Snapshot{
		Trips:        []models.Trip{},
		Bookings:     []models.Booking{},
		Gallery:      []models.GalleryImage{},
		Donations:    []models.Donation{},
		Testimonials: []models.Testimonial{},
		Team:         []models.TeamMember{},
	}

	if rc.Authenticated() {
		user, err := s.Profiles.Resolve(rc.UserID)
		if err != nil {
			return snap, err
		}
		snap.User = &user
		rc.Role = user.Role
	}

	if trips, err := s.Trips.List(); err != nil {
		snap.Warnings = append(snap.Warnings, s.classify("trips", err))
	} else {
		snap.Trips = trips
	}

	if bookings, err := s.Bookings.List(); err != nil {
		snap.Warnings = append(snap.Warnings, s.classify("bookings", err))
	} else {
		snap.Bookings = bookings
	}

	if gallery, err := s.Gallery.List(); err != nil {
		snap.Warnings = append(snap.Warnings, s.classify("gallery", err))
	} else {
		snap.Gallery = gallery
	}

	if donations, err := s.Donations.List(); err != nil {
		snap.Warnings = append(snap.Warnings, s.classify("donations", err))
	} else {
		snap.Donations = donations
	}

	if testimonials, err := s.Testimonials.List(); err != nil {
		snap.Warnings = append(snap.Warnings, s.classify("testimonials", err))
	} else {
		snap.Testimonials = testimonials
	}

	// Optional feature: a missing table is already absorbed by the repo;
	// anything else is still isolated here.
	if team, err := s.Team.List(); err != nil {
		if intdb.IsMissingTable(err) {
			snap.Team = []models.TeamMember{}
		} else {
			snap.Warnings = append(snap.Warnings, s.classify("team members", err))
		}
	} else {
		snap.Team = team
	}

	rows, err := s.Config.List()
	if err != nil {
		snap.Warnings = append(snap.Warnings, s.classify("site configuration", err))
		rows = nil
	}
	snap.Settings = s.Content.Materialize(rows)

	if rc.IsAdmin() {
		if users, err := s.Profiles.Profiles.List(); err != nil {
			snap.Warnings = append(snap.Warnings, s.classify("members", err))
		} else {
			snap.Users = users
		}
	}

	return snap, nil
}

// classify shapes a collection failure for the client. Access-denied on
// the profiles table means a misconfigured grant, worth a friendlier
// message and a logged remediation hint.
func (s BootstrapService) classify(feature string, err error) Warning {
	switch {
	case intdb.IsAccessDenied(err):
		utils.LogEvent(s.RequestID, "bootstrap", "access_denied",
			fmt.Sprintf("feature=%s err=%v; check the MySQL grants for the application user", feature, err))
		return Warning{
			Feature: feature,
			Message: "A security policy prevented loading some data. Please contact the administrator.",
		}
	default:
		utils.LogEvent(s.RequestID, "bootstrap", "load_failed", fmt.Sprintf("feature=%s err=%v", feature, err))
		return Warning{
			Feature: feature,
			Message: fmt.Sprintf("Failed to load %s.", feature),
		}
	}
}
