package handlers

import (
	"net/http"
	"strings"

	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"

	"github.com/gin-gonic/gin"
)

type createDonationRequest struct {
	DonorName     string `json:"donor_name"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transaction_id"`
}

// POST /api/donations
// Runs behind OptionalAuth: a logged-in donor gets linked to their
// profile, anonymous donations keep a NULL user_id.
func CreateDonation(c *gin.Context) {
	var req createDonationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.DonorName = utils.NormalizeSpace(req.DonorName)
	if req.DonorName == "" || req.Amount <= 0 {
		RespondError(c, http.StatusBadRequest, "donor name and a positive amount are required", nil)
		return
	}

	d := models.Donation{
		DonorName:     req.DonorName,
		Amount:        req.Amount,
		TransactionID: strings.TrimSpace(req.TransactionID),
	}
	rc := middleware.RequestContext(c)
	if rc.Authenticated() {
		uid := rc.UserID
		d.UserID = &uid
	}

	respondAction(c, "Thank you for your generous donation! May you be blessed.", func() error {
		_, err := repositories.DonationRepository{}.Insert(d)
		return err
	})
}

// GET /api/admin/donations
func ListDonations(c *gin.Context) {
	donations, err := repositories.DonationRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load donations", err)
		return
	}
	c.JSON(http.StatusOK, donations)
}
