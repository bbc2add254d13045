// controllers/admin.go
package controllers

import (
	"net/http"

	"zentrixia-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminGetAppointments lists every tenant's appointments. The route is gated
// by utils.RequireAdmin.
func AdminGetAppointments(c *gin.Context) {
	appointments, err := queryAppointments(nil, c.Query("search"), c.Query("status"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao carregar agendamentos")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// AdminUpdateAppointmentStatus updates any appointment's status without a
// tenant scope. The same transition guard applies.
func AdminUpdateAppointmentStatus(c *gin.Context) {
	applyStatusUpdate(c, nil)
}
