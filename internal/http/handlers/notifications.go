package handlers

import (
	"net/http"

	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/services"
	"shraddhayatra/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/admin/trips/:id/notify
// Composes the notification, applies any side effect (date change or
// cancellation), and hands back the WhatsApp deep link.
func NotifyTrip(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req services.NotificationRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.NotifyService{
		TrustWhatsApp: trustWhatsApp,
		RequestID:     middleware.GetRequestID(c),
	}
	result, err := svc.Send(id, req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notification prepared.",
		"data":    result,
	})
}

type inquiryRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// POST /api/contact
// The public contact form. Picks the WhatsApp number from site settings,
// falling back to the trust's configured number.
func ContactInquiry(c *gin.Context) {
	var req inquiryRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = utils.NormalizeSpace(req.Name)
	req.Message = utils.TrimOrEmpty(req.Message)
	if req.Name == "" || req.Message == "" {
		RespondError(c, http.StatusBadRequest, "name and message are required", nil)
		return
	}

	number := trustWhatsApp
	if rows, err := (repositories.ConfigRepository{}).List(); err == nil {
		content := services.ContentService{}
		if n := content.ContactWhatsApp(content.Materialize(rows)); n != "" {
			number = n
		}
	}

	text := services.ComposeInquiry(req.Name, utils.NormalizePhone(req.Phone), req.Message)
	c.JSON(http.StatusOK, gin.H{
		"message":      "Thank you! Your inquiry is ready to send.",
		"whatsapp_url": utils.WhatsAppLink(number, text),
	})
}
