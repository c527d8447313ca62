package router

import (
	"time"

	"gigbook/api"
	"gigbook/config"
	_ "gigbook/docs"
	"gigbook/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires all HTTP routes
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()
	r.Use(CORSMiddleware())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", middleware.LoginRateLimit(5, time.Minute), authHandler.Login)
		}

		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)
			authorized.PUT("/auth/password", authHandler.ChangePassword)

			entryHandler := api.NewEntryHandler()
			entries := authorized.Group("/entries")
			{
				entries.POST("", entryHandler.Create)
				entries.GET("", entryHandler.List)
				entries.GET("/:id", entryHandler.Get)
				entries.PUT("/:id", entryHandler.Update)
				entries.PUT("/:id/status", entryHandler.SetStatus)
				entries.DELETE("/:id", entryHandler.Delete)
			}

			clientHandler := api.NewClientHandler()
			clients := authorized.Group("/clients")
			{
				clients.POST("", clientHandler.Create)
				clients.GET("", clientHandler.List)
				clients.GET("/duplicates", clientHandler.Duplicates)
				clients.POST("/merge", clientHandler.Merge)
				clients.POST("/merge-names", clientHandler.MergeNames)
				clients.GET("/:id", clientHandler.Get)
				clients.PUT("/:id", clientHandler.Update)
				clients.DELETE("/:id", clientHandler.Delete)
			}

			categoryHandler := api.NewCategoryHandler()
			categories := authorized.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
				categories.PUT("/:id", categoryHandler.Update)
				categories.DELETE("/:id", categoryHandler.Delete)
			}

			dashboardHandler := api.NewDashboardHandler()
			dashboard := authorized.Group("/dashboard")
			{
				dashboard.GET("/kpi", dashboardHandler.GetKPI)
				dashboard.GET("/series", dashboardHandler.GetSeries)
				dashboard.GET("/categories", dashboardHandler.GetCategories)
				dashboard.GET("/attention", dashboardHandler.GetAttention)
			}

			ruleHandler := api.NewRuleHandler()
			rules := authorized.Group("/rules")
			{
				rules.GET("", ruleHandler.List)
				rules.POST("", ruleHandler.Create)
				rules.PUT("/:id", ruleHandler.Update)
				rules.DELETE("/:id", ruleHandler.Delete)
			}

			calendarHandler := api.NewCalendarHandler(cfg)
			calendar := authorized.Group("/calendar")
			{
				calendar.GET("/preview", calendarHandler.Preview)
				calendar.POST("/classify", calendarHandler.Classify)
			}

			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/xlsx", exportHandler.ExportXLSX)
			}

			reminderHandler := api.NewReminderHandler(cfg)
			authorized.POST("/reminders/overdue", reminderHandler.SendOverdue)
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware allows cross-origin requests from the web client
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
