package services

import (
	"fmt"

	intdb "shraddhayatra/internal/db"
	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"
)

// ProfileService resolves an authenticated identity to its profile row,
// self-healing by inserting a default member profile when the row is
// missing. A failed heal is fatal for the session.
type ProfileService struct {
	Profiles  repositories.ProfileRepository
	Auth      repositories.AuthRepository
	RequestID string
}

func (s ProfileService) Resolve(userID string) (models.User, error) {
	u, err := s.Profiles.GetByID(userID)
	if err == nil {
		return u, nil
	}
	if !domain.IsNotFound(err) {
		return models.User{}, err
	}

	// Authenticated identity without a profile row: recreate it from the
	// registration metadata. This is deliberate recovery, not a query.
	auth, authErr := s.Auth.GetByID(userID)
	if authErr != nil {
		return models.User{}, domain.UnauthorizedError{
			Msg: "Your session could not be verified. Please sign in again.",
			Err: authErr,
		}
	}

	fresh := models.User{
		ID:    auth.ID,
		Name:  auth.Name,
		Phone: auth.Phone,
		Role:  domain.RoleMember,
	}
	if fresh.Name == "" {
		fresh.Name = "Devotee"
	}

	if insErr := s.Profiles.Insert(fresh); insErr != nil {
		// A concurrent resolve may have healed the row first.
		if intdb.IsDuplicateKey(insErr) {
			return s.Profiles.GetByID(userID)
		}
		utils.LogEvent(s.RequestID, "profile", "self_heal_failed", fmt.Sprintf("user_id=%s err=%v", userID, insErr))
		return models.User{}, domain.UnauthorizedError{
			Msg: "We could not prepare your profile. Please contact support at contact@shraddhayatra.org.",
			Err: insErr,
		}
	}

	utils.LogEvent(s.RequestID, "profile", "self_heal", fmt.Sprintf("user_id=%s", userID))
	return fresh, nil
}
