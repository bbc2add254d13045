package routes

import (
	"os"
	"strings"

	"zentrixia-backend/config"
	"zentrixia-backend/controllers"
	"zentrixia-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000", "http://localhost:5173"}
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())
	r.Use(config.PrometheusMetrics())

	r.GET("/metrics", gin.WrapH(config.MetricsHandler()))

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
		auth.POST("/logout", controllers.Logout)
	}

	// Public booking surface: no auth, validation happens in the handler
	r.GET("/api/servicos", controllers.GetCatalog)
	r.POST("/api/agendamentos", controllers.CreateAppointment)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		agendamentos := api.Group("/agendamentos")
		{
			agendamentos.GET("", controllers.GetAppointments)
			agendamentos.PUT("/:id/status", controllers.UpdateAppointmentStatus)
		}

		api.GET("/dashboard", controllers.GetDashboardOverview)

		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}

		admin := api.Group("/admin", utils.RequireAdmin())
		{
			admin.GET("/agendamentos", controllers.AdminGetAppointments)
			admin.PUT("/agendamentos/:id/status", controllers.AdminUpdateAppointmentStatus)
		}
	}

	return r
}
