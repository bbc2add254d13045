package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"zentrixia-backend/config"
	"zentrixia-backend/models"
	"zentrixia-backend/services"
	"zentrixia-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notifier is wired in main. Dispatch is best effort: a nil notifier or a
// full queue never affects the operation that produced the event.
var Notifier *services.Notifier

func notify(event services.NotificationEvent, appointment models.Appointment) {
	if Notifier != nil {
		Notifier.Notify(event, appointment)
	}
}

// CreateAppointmentInput defines the expected JSON structure for the public
// booking form.
type CreateAppointmentInput struct {
	Name     string  `json:"name"`
	WhatsApp string  `json:"whatsapp"`
	Email    string  `json:"email"`
	Service  string  `json:"service"`
	Date     string  `json:"date"`
	TimeSlot string  `json:"timeSlot"`
	Notes    string  `json:"notes"`
	OwnerID  *string `json:"ownerId"` // Defaults to the shop account
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// validateAppointmentInput runs the field checks in form order and returns
// the first failure.
func validateAppointmentInput(input CreateAppointmentInput, now time.Time) *utils.FieldError {
	if err := utils.ValidateName(input.Name); err != nil {
		return err
	}
	if err := utils.ValidatePhone(input.WhatsApp); err != nil {
		return err
	}
	if err := utils.ValidateEmail(input.Email); err != nil {
		return err
	}
	if err := utils.ValidateNotes(input.Notes); err != nil {
		return err
	}
	if input.Service == "" {
		return &utils.FieldError{Field: "servico", Message: "Selecione um serviço"}
	}
	if _, ok := models.LookupService(input.Service); !ok {
		return &utils.FieldError{Field: "servico", Message: "Serviço inválido"}
	}
	if err := utils.ValidateDate(input.Date, now); err != nil {
		return err
	}
	if input.TimeSlot == "" {
		return &utils.FieldError{Field: "horario", Message: "Selecione um horário"}
	}
	if !models.ValidTimeSlot(input.TimeSlot) {
		return &utils.FieldError{Field: "horario", Message: "Horário inválido"}
	}
	return nil
}

// CreateAppointment handles the public booking form. Validation happens
// before any store call; the price always comes from the catalog, never from
// the client. Nothing prevents two appointments on the same date and slot.
func CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if fieldErr := validateAppointmentInput(input, time.Now()); fieldErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fieldErr.Message, "field": fieldErr.Field})
		return
	}

	service, _ := models.LookupService(input.Service)

	appointment := models.Appointment{
		OwnerID:       resolveOwnerID(input.OwnerID),
		CustomerName:  strings.TrimSpace(input.Name),
		CustomerPhone: strings.TrimSpace(input.WhatsApp),
		CustomerEmail: strings.TrimSpace(input.Email),
		ServiceName:   service.Name,
		ServicePrice:  service.Price,
		Date:          input.Date,
		TimeSlot:      input.TimeSlot,
		Notes:         input.Notes,
		Status:        models.StatusPending,
	}

	if err := config.DB.Create(&appointment).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao realizar agendamento. Tente novamente.")
		return
	}

	notify(services.EventNewAppointment, appointment)

	c.JSON(http.StatusCreated, appointment)
}

// resolveOwnerID picks the tenant for a public booking: an explicit ownerId
// in the payload, else the shop account from DEFAULT_OWNER_ID.
func resolveOwnerID(requested *string) uuid.UUID {
	if requested != nil {
		if id, err := uuid.Parse(*requested); err == nil {
			return id
		}
	}
	if id, err := uuid.Parse(os.Getenv("DEFAULT_OWNER_ID")); err == nil {
		return id
	}
	return uuid.Nil
}

// GetAppointments lists the caller's appointments ordered by date then time
// slot, with optional search and status filters.
func GetAppointments(c *gin.Context) {
	ownerUUID, ok := callerID(c)
	if !ok {
		return
	}

	appointments, err := queryAppointments(&ownerUUID, c.Query("search"), c.Query("status"))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao carregar agendamentos")
		return
	}

	c.JSON(http.StatusOK, appointments)
}

// UpdateAppointmentStatus overwrites the status of one of the caller's
// appointments, validating the transition against the lifecycle.
func UpdateAppointmentStatus(c *gin.Context) {
	ownerUUID, ok := callerID(c)
	if !ok {
		return
	}
	applyStatusUpdate(c, &ownerUUID)
}

// applyStatusUpdate is shared between the owner and admin routes; a nil
// ownerID means no tenant scope.
func applyStatusUpdate(c *gin.Context, ownerID *uuid.UUID) {
	appointmentUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var input UpdateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !models.ValidStatus(input.Status) {
		utils.RespondWithError(c, http.StatusBadRequest, "Status inválido")
		return
	}

	query := config.DB.Where("id = ?", appointmentUUID)
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}

	var appointment models.Appointment
	if err := query.First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Agendamento não encontrado")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if !models.CanTransition(appointment.Status, input.Status) {
		utils.RespondWithError(c, http.StatusUnprocessableEntity, "Transição de status inválida")
		return
	}

	// Same-state update: idempotent no-op, no notification.
	if appointment.Status == input.Status {
		c.JSON(http.StatusOK, appointment)
		return
	}

	if err := config.DB.Model(&appointment).Update("status", input.Status).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Erro ao atualizar status")
		return
	}
	appointment.Status = input.Status

	notify(services.EventForStatus(input.Status), appointment)

	c.JSON(http.StatusOK, appointment)
}

// queryAppointments applies the dashboard filters: exact status match
// ("todos" or empty means all) and a case-insensitive substring search over
// name, phone and service.
func queryAppointments(ownerID *uuid.UUID, search, status string) ([]models.Appointment, error) {
	query := config.DB.Model(&models.Appointment{})
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	if status != "" && status != "todos" {
		query = query.Where("status = ?", status)
	}
	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(customer_name) LIKE ? OR LOWER(customer_phone) LIKE ? OR LOWER(service_name) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var appointments []models.Appointment
	err := query.Order("date asc").Order("time_slot asc").Find(&appointments).Error
	return appointments, err
}

// callerID extracts the authenticated owner's UUID from the request context.
func callerID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User ID not found in context")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(userID.(string))
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetCatalog exposes the fixed service menu and bookable time slots.
func GetCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":  models.ServiceCatalog,
		"timeSlots": models.TimeSlots,
	})
}
