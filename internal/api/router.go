package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/worktrace/worktrace/internal/config"
	"github.com/worktrace/worktrace/internal/handler"
	"github.com/worktrace/worktrace/internal/importer"
	"github.com/worktrace/worktrace/internal/middleware"
	"github.com/worktrace/worktrace/internal/repository"
	"github.com/worktrace/worktrace/internal/service"
)

// SetupRouter wires repositories, services and handlers into the HTTP API
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	visitRepo := repository.NewVisitRepository(db)
	runRepo := repository.NewImportRunRepository(db)

	visitService := service.NewVisitService(visitRepo)
	worktimeService := service.NewWorktimeService(visitRepo, cfg.AbsenceThreshold(), cfg.StartFloor())
	imp := importer.New(visitRepo, runRepo)

	visitHandler := handler.NewVisitHandler(visitService)
	worktimeHandler := handler.NewWorktimeHandler(worktimeService)
	importHandler := handler.NewImportHandler(imp, runRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "worktrace API is running",
		})
	})

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(120, time.Minute))
	{
		api.GET("/visits", visitHandler.GetVisits)

		worktime := api.Group("/worktime")
		{
			worktime.GET("/report", worktimeHandler.GetReport)
			worktime.GET("/summary", worktimeHandler.GetSummary)
		}

		imports := api.Group("/imports")
		{
			imports.GET("", importHandler.List)
			imports.POST("", middleware.Auth(cfg.JWTSecret), importHandler.Upload)
		}
	}

	return r
}
