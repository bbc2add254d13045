package main

import (
	"fmt"
	"log"
	"os"

	"zentrixia-backend/config"
	"zentrixia-backend/controllers"
	"zentrixia-backend/models"
	"zentrixia-backend/routes"
	"zentrixia-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()
	config.InitMetrics()

	config.DB.AutoMigrate(
		&models.User{},
		&models.UserRole{},
		&models.Appointment{},
		&models.NotificationLog{},
	)
}

func main() {
	notifier := services.NewNotifier(config.DB)
	notifier.Start()
	defer notifier.Stop()
	controllers.Notifier = notifier

	reminders := services.NewReminderService(config.DB)
	reminders.StartScheduler()
	defer reminders.StopScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
