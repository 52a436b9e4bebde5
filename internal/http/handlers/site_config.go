package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/config
// Public, always materialized: missing rows fall back to built-in
// defaults, so the client can render without special cases.
func GetSiteConfig(c *gin.Context) {
	rows, err := repositories.ConfigRepository{}.List()
	if err != nil {
		rows = nil
	}
	c.JSON(http.StatusOK, services.ContentService{}.Materialize(rows))
}

// PUT /api/admin/config/:key
// The value is stored as raw JSON, whatever shape the admin sends.
func UpdateSiteConfig(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	if key == "" {
		RespondError(c, http.StatusBadRequest, "config key is required", nil)
		return
	}

	var value json.RawMessage
	if !BindJSONOrError(c, &value) {
		return
	}
	if !json.Valid(value) {
		RespondError(c, http.StatusBadRequest, "value must be valid JSON", nil)
		return
	}

	respondAction(c, "Settings saved.", func() error {
		return repositories.ConfigRepository{}.Upsert(key, value)
	})
}
