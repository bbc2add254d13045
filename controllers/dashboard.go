package controllers

import (
	"net/http"
	"time"

	"zentrixia-backend/config"
	"zentrixia-backend/models"
	"zentrixia-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardOverview struct {
	TotalAppointments int64   `json:"totalAppointments"`
	TotalRevenue      float64 `json:"totalRevenue"`

	TodayAppointments int64   `json:"todayAppointments"`
	TodayRevenue      float64 `json:"todayRevenue"`
	TodayConfirmed    int64   `json:"todayConfirmed"`

	WeekAppointments     int64   `json:"weekAppointments"`
	WeekRevenue          float64 `json:"weekRevenue"`
	LastWeekAppointments int64   `json:"lastWeekAppointments"`
	WeeklyVariation      float64 `json:"weeklyVariation"`
}

// GetDashboardOverview aggregates the caller's appointment metrics. Revenue
// only counts completed appointments.
func GetDashboardOverview(c *gin.Context) {
	ownerUUID, ok := callerID(c)
	if !ok {
		return
	}

	now := time.Now()
	today := now.Format("2006-01-02")
	startOfWeek := utils.StartOfWeek(now).Format("2006-01-02")
	startOfLastWeek := utils.StartOfWeek(now).AddDate(0, 0, -7).Format("2006-01-02")

	var overview DashboardOverview

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ?", ownerUUID).
		Count(&overview.TotalAppointments)

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ? AND status = ?", ownerUUID, models.StatusCompleted).
		Select("COALESCE(SUM(service_price), 0)").
		Scan(&overview.TotalRevenue)

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ? AND date = ?", ownerUUID, today).
		Count(&overview.TodayAppointments)

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ? AND date = ? AND status = ?", ownerUUID, today, models.StatusCompleted).
		Select("COALESCE(SUM(service_price), 0)").
		Scan(&overview.TodayRevenue)

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ? AND date = ? AND status = ?", ownerUUID, today, models.StatusConfirmed).
		Count(&overview.TodayConfirmed)

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ? AND date >= ?", ownerUUID, startOfWeek).
		Count(&overview.WeekAppointments)

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ? AND date >= ? AND status = ?", ownerUUID, startOfWeek, models.StatusCompleted).
		Select("COALESCE(SUM(service_price), 0)").
		Scan(&overview.WeekRevenue)

	config.DB.Model(&models.Appointment{}).
		Where("owner_id = ? AND date >= ? AND date < ?", ownerUUID, startOfLastWeek, startOfWeek).
		Count(&overview.LastWeekAppointments)

	if overview.LastWeekAppointments > 0 {
		overview.WeeklyVariation = float64(overview.WeekAppointments-overview.LastWeekAppointments) /
			float64(overview.LastWeekAppointments) * 100
	}

	c.JSON(http.StatusOK, overview)
}
