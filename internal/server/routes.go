// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	// Load env
	_ "github.com/joho/godotenv/autoload"

	// Init swagger doc
	_ "QuickShift-backend/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"QuickShift-backend/internal/auth"
	applicationctl "QuickShift-backend/internal/controller/application"
	jobctl "QuickShift-backend/internal/controller/job"
	"QuickShift-backend/internal/middleware"
	"QuickShift-backend/internal/model"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *MyServer) RegisterRoutes() http.Handler {
	r := gin.Default()

	allowOrginsStr := os.Getenv("ALLOW_ORIGIN")
	allowOrgins := strings.Split(allowOrginsStr, ",")

	lAuth := auth.NewLocalAuthHandler(s.DB)
	jobController := jobctl.NewJobController(s.DB)
	applicationController := applicationctl.NewApplicationController(s.DB)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrgins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))
	r.Use(middleware.SafeHeader())

	r.GET("/", s.HelloWorldHandler)
	r.GET("/health", s.healthHandler)
	v1 := r.Group("/api/v1")
	v1.Use(middleware.SizeLimit(1 << 20))
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("register", lAuth.LocalRegisterHandler)
			authRoute.POST("login", lAuth.LocalLoginHandler)
		}

		// Public routes: job discovery and application intake need no
		// principal, drafts are filtered inside the store
		v1.GET("/jobs", jobController.GetJobs)
		v1.GET("/jobs/:id", jobController.GetJobByID)
		v1.POST("/jobs/:id/apply", applicationController.ApplyHandler)

		// Job management endpoints (employer only)
		needEmployer := v1.Group("")
		{
			needEmployer.Use(middleware.RequireAuth(s.DB), middleware.CheckRole(model.RoleEmployer))
			needEmployer.POST("/jobs", jobController.CreateJobHandler)
			needEmployer.PUT("/jobs/:id", jobController.EditJobHandler)
			needEmployer.DELETE("/jobs/:id", jobController.DeleteJobHandler)
			needEmployer.GET("/employer/jobs", jobController.GetMyJobs)
			needEmployer.GET("/jobs/:id/applications", jobController.GetJobApplications)
		}
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// HelloWorldHandler handle request by return message "Hello World"
func (s *MyServer) HelloWorldHandler(c *gin.Context) {
	resp := make(map[string]string)
	resp["message"] = "Hello World"

	c.JSON(http.StatusOK, resp)
}

func (s *MyServer) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.DB.Health())
}
