package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/khabaroff/thesis-management/src/config"
	"github.com/khabaroff/thesis-management/src/handlers"
	"github.com/khabaroff/thesis-management/src/middleware"
)

// RootMessage is served on / when no frontend is configured
const RootMessage = "Thesis Management System API"

// NewRouter builds the gin engine. Each route is classified as open or
// protected here, once, when the router is built.
func NewRouter(cfg *config.Config, svc *Services, db handlers.HealthChecker, version string) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	dev := cfg.IsDevelopment()
	requireAdmin := middleware.RequireAdmin(svc.Tokens)

	health := handlers.NewHealthHandler(db, version)
	router.GET("/health", health.HandleHealth)
	router.GET("/ready", health.HandleReady)
	router.GET("/info", health.HandleInfo)

	api := router.Group("/api")

	auth := handlers.NewAuthHandler(svc.Admins, dev)
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/login", auth.HandleLogin)
		authGroup.GET("/profile", requireAdmin, auth.HandleProfile)
		if cfg.RegistrationMode == config.RegistrationOpen {
			authGroup.POST("/register", auth.HandleRegister)
		} else {
			authGroup.POST("/register", requireAdmin, auth.HandleRegister)
		}
		authGroup.GET("/admins", requireAdmin, auth.HandleListAdmins)
		authGroup.PUT("/admins/:id", requireAdmin, auth.HandleUpdateAdmin)
		authGroup.DELETE("/admins/:id", requireAdmin, auth.HandleDeleteAdmin)
	}

	departments := handlers.NewDepartmentHandler(svc.Departments, dev)
	deptGroup := api.Group("/departments")
	{
		deptGroup.GET("", departments.HandleList)
		deptGroup.GET("/:id", departments.HandleGet)
		deptGroup.POST("", requireAdmin, departments.HandleCreate)
		deptGroup.PUT("/:id", requireAdmin, departments.HandleUpdate)
		deptGroup.DELETE("/:id", requireAdmin, departments.HandleDelete)
	}

	supervisors := handlers.NewSupervisorHandler(svc.Supervisors, dev)
	supGroup := api.Group("/supervisors")
	{
		supGroup.GET("", supervisors.HandleList)
		supGroup.GET("/:id", supervisors.HandleGet)
		supGroup.GET("/:id/theses", supervisors.HandleTheses)
		supGroup.POST("", requireAdmin, supervisors.HandleCreate)
		supGroup.PUT("/:id", requireAdmin, supervisors.HandleUpdate)
		supGroup.DELETE("/:id", requireAdmin, supervisors.HandleDelete)
	}

	students := handlers.NewStudentHandler(svc.Students, dev)
	stuGroup := api.Group("/students")
	{
		stuGroup.GET("", students.HandleList)
		stuGroup.GET("/:id", students.HandleGet)
		stuGroup.GET("/:id/thesis", students.HandleThesis)
		stuGroup.POST("", requireAdmin, students.HandleCreate)
		stuGroup.PUT("/:id", requireAdmin, students.HandleUpdate)
		stuGroup.DELETE("/:id", requireAdmin, students.HandleDelete)
	}

	theses := handlers.NewThesisHandler(svc.Theses, dev)
	thesisGroup := api.Group("/theses")
	{
		thesisGroup.GET("", theses.HandleList)
		thesisGroup.GET("/year/:year", theses.HandleByYear)
		thesisGroup.GET("/date-range/:startDate/:endDate", theses.HandleByDateRange)
		thesisGroup.GET("/supervisor/:supervisorId", theses.HandleBySupervisor)
		thesisGroup.GET("/student/:studentId", theses.HandleByStudent)
		thesisGroup.GET("/search/:query", theses.HandleSearch)
		thesisGroup.GET("/:id", theses.HandleGet)
		thesisGroup.POST("", requireAdmin, theses.HandleCreate)
		thesisGroup.PUT("/:id", requireAdmin, theses.HandleUpdate)
		thesisGroup.DELETE("/:id", requireAdmin, theses.HandleDelete)
	}

	mountFrontend(router, cfg.StaticDir)
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"Content-Length", "X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	cfg.AllowOrigins = origins
	return cfg
}

// mountFrontend serves the API banner on / or, when dir is set, a built
// single-page app with index.html as the fallback for unknown paths.
func mountFrontend(router *gin.Engine, dir string) {
	notFoundAPI := func(c *gin.Context) bool {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") || c.Request.URL.Path == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return true
		}
		return false
	}

	if dir == "" {
		router.GET("/", func(c *gin.Context) {
			c.String(http.StatusOK, RootMessage)
		})
		router.NoRoute(func(c *gin.Context) {
			if !notFoundAPI(c) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			}
		})
		return
	}

	index := filepath.Join(dir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if notFoundAPI(c) {
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		candidate := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			c.File(candidate)
			return
		}
		c.File(index)
	})
}
