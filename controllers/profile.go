package controllers

import (
	"net/http"

	"zentrixia-backend/config"
	"zentrixia-backend/models"
	"zentrixia-backend/utils"

	"github.com/gin-gonic/gin"
)

type UpdateProfileInput struct {
	BusinessName *string `json:"businessName"`
	WhatsApp     *string `json:"whatsapp"`
}

func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"businessName": user.BusinessName,
		"whatsapp":     user.WhatsApp,
		"email":        user.Email,
	})
}

func UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userId")
	if !exists {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found")
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input")
		return
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", userID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	if input.BusinessName != nil {
		user.BusinessName = *input.BusinessName
	}
	if input.WhatsApp != nil {
		user.WhatsApp = *input.WhatsApp
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}
