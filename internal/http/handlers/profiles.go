package handlers

import (
	"net/http"

	"shraddhayatra/internal/domain"
	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/http/middleware"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"

	"github.com/gin-gonic/gin"
)

// PUT /api/profiles/:id
// Members edit their own profile; admins can edit anyone's.
func UpdateProfile(c *gin.Context) {
	targetID := c.Param("id")
	rc := middleware.RequestContext(c)
	if targetID != rc.UserID && !rc.IsAdmin() {
		RespondError(c, http.StatusForbidden, "Access Denied.", nil)
		return
	}

	var p models.ProfileUpdate
	if !BindJSONOrError(c, &p) {
		return
	}

	p.Name = utils.NormalizeSpace(p.Name)
	p.Phone = utils.NormalizePhone(p.Phone)
	if p.Name == "" || p.Phone == "" {
		RespondError(c, http.StatusBadRequest, "name and phone are required", nil)
		return
	}

	respondAction(c, "Profile updated successfully!", func() error {
		return repositories.ProfileRepository{}.Update(targetID, p)
	})
}

// GET /api/admin/users
func ListUsers(c *gin.Context) {
	users, err := repositories.ProfileRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load members", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

type roleRequest struct {
	Role string `json:"role"`
}

// PUT /api/admin/users/:id/role
// An admin cannot demote themselves; that would lock the last admin out.
func UpdateUserRole(c *gin.Context) {
	targetID := c.Param("id")
	var req roleRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if req.Role != domain.RoleAdmin && req.Role != domain.RoleMember {
		RespondError(c, http.StatusBadRequest, "role must be admin or member", nil)
		return
	}

	rc := middleware.RequestContext(c)
	if targetID == rc.UserID && req.Role != domain.RoleAdmin {
		RespondError(c, http.StatusBadRequest, "you cannot remove your own admin role", nil)
		return
	}

	respondAction(c, "Member role updated.", func() error {
		return repositories.ProfileRepository{}.UpdateRole(targetID, req.Role)
	})
}
