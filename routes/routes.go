package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	accountRepo "rosterly/database/repository/account"
	"rosterly/handlers"
	"rosterly/middleware"
)

// HandlerBundle gathers the handlers and the repository the auth middleware
// resolves accounts against.
type HandlerBundle struct {
	AccountRepo     accountRepo.AccountRepository
	AccountHandler  *handlers.AccountHandler
	WorkerHandler   *handlers.WorkerHandler
	ScheduleHandler *handlers.ScheduleHandler
	SettingsHandler *handlers.SettingsHandler
	BoardHandler    *handlers.BoardHandler
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	registerHealthRoute(r)
	registerAuthRoutes(r, hb)
	registerWorkerRoutes(r, hb)
	registerScheduleRoutes(r, hb)
	registerBoardRoutes(r, hb)
	registerAdminRoutes(r, hb)
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Rosterly"})
	})
}

// registerAuthRoutes registers registration and login plus the signed-in
// account lookup.
func registerAuthRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.AccountHandler.RegisterHandler)
		api.POST("/login", hb.AccountHandler.LoginHandler)

		api.Use(middleware.AuthMiddleware(hb.AccountRepo))
		api.GET("/me", hb.AccountHandler.MeHandler)
	}
}

// registerWorkerRoutes registers worker pool management. All endpoints
// require authentication.
func registerWorkerRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/workers")
	{
		api.Use(middleware.AuthMiddleware(hb.AccountRepo))
		api.POST("", hb.WorkerHandler.CreateWorkerHandler)
		api.GET("", hb.WorkerHandler.ListWorkersHandler)
		api.GET("/:id", hb.WorkerHandler.GetWorkerHandler)
		api.PUT("/:id", hb.WorkerHandler.UpdateWorkerHandler)
		api.DELETE("/:id", hb.WorkerHandler.DeleteWorkerHandler)
		api.PUT("/:id/suspend", hb.WorkerHandler.SuspendWorkerHandler)
	}
}

// registerScheduleRoutes registers read access to the current schedule and
// the venue hours. Writes live under the admin group.
func registerScheduleRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/schedule")
	{
		api.Use(middleware.AuthMiddleware(hb.AccountRepo))
		api.GET("/current", hb.ScheduleHandler.CurrentScheduleHandler)
	}

	settings := r.Group("/api/settings")
	{
		settings.Use(middleware.AuthMiddleware(hb.AccountRepo))
		settings.GET("/hours", hb.SettingsHandler.GetOperatingHoursHandler)
	}
}

// registerBoardRoutes registers announcements and the shift-coverage board.
func registerBoardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(hb.AccountRepo))
	{
		api.GET("/announcements", hb.BoardHandler.ListAnnouncementsHandler)
		api.POST("/announcements", hb.BoardHandler.CreateAnnouncementHandler)
		api.PUT("/announcements/:id", hb.BoardHandler.UpdateAnnouncementHandler)
		api.DELETE("/announcements/:id", hb.BoardHandler.DeleteAnnouncementHandler)

		api.POST("/coverage/postings", hb.BoardHandler.PostShiftHandler)
		api.GET("/coverage/postings", hb.BoardHandler.ListPostingsHandler)
		api.PUT("/coverage/postings/:id/close", hb.BoardHandler.ClosePostingHandler)
		api.POST("/coverage/postings/:id/applications", hb.BoardHandler.ApplyToPostingHandler)
		api.GET("/coverage/postings/:id/applications", hb.BoardHandler.ListApplicationsHandler)

		api.POST("/coverage/requests", hb.BoardHandler.RequestCoverageHandler)
		api.GET("/coverage/requests", hb.BoardHandler.ListCoverageRequestsHandler)
		api.PUT("/coverage/requests/:id/resolve", hb.BoardHandler.ResolveCoverageRequestHandler)

		api.GET("/coverage/active", hb.BoardHandler.ListActiveCoverageHandler)
	}
}

// registerAdminRoutes registers the admin-gated endpoints: schedule
// generation and management, venue hours, account flags, and application
// approval.
func registerAdminRoutes(r *gin.Engine, hb *HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(hb.AccountRepo), middleware.AdminOnly())
	{
		admin.POST("/schedule/generate", hb.ScheduleHandler.GenerateScheduleHandler)
		admin.POST("/schedule/generate/async", hb.ScheduleHandler.EnqueueGenerateHandler)
		admin.GET("/schedule", hb.ScheduleHandler.ListSchedulesHandler)
		admin.PUT("/schedule/:id/current", hb.ScheduleHandler.SetCurrentScheduleHandler)
		admin.DELETE("/schedule/:id", hb.ScheduleHandler.DeleteScheduleHandler)

		admin.PUT("/settings/hours", hb.SettingsHandler.SetOperatingHoursHandler)

		admin.PUT("/accounts/admin", hb.AccountHandler.SetAdminHandler)
		admin.PUT("/accounts/suspend", hb.AccountHandler.SetSuspendedHandler)

		admin.PUT("/coverage/postings/:id/applications/:appId/approve", hb.BoardHandler.ApproveApplicationHandler)
	}
}
