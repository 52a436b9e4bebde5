package handlers

import (
	"net/http"

	"shraddhayatra/internal/domain/models"
	"shraddhayatra/internal/repositories"
	"shraddhayatra/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/team
// Empty when the deployment has no team_members table.
func GetTeam(c *gin.Context) {
	members, err := repositories.TeamRepository{}.List()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to load team members", err)
		return
	}
	c.JSON(http.StatusOK, members)
}

// POST /api/admin/team
func CreateTeamMember(c *gin.Context) {
	var m models.TeamMember
	if !BindJSONOrError(c, &m) {
		return
	}
	m.Name = utils.NormalizeSpace(m.Name)
	if m.Name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	respondAction(c, "Team member added.", func() error {
		_, err := repositories.TeamRepository{}.Insert(m)
		return err
	})
}

// PUT /api/admin/team/:id
func UpdateTeamMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var m models.TeamMember
	if !BindJSONOrError(c, &m) {
		return
	}
	m.Name = utils.NormalizeSpace(m.Name)
	if m.Name == "" {
		RespondError(c, http.StatusBadRequest, "name is required", nil)
		return
	}
	respondAction(c, "Team member updated.", func() error {
		return repositories.TeamRepository{}.Update(id, m)
	})
}

// DELETE /api/admin/team/:id
func DeleteTeamMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	respondAction(c, "Team member removed.", func() error {
		return repositories.TeamRepository{}.Delete(id)
	})
}
