package router

import (
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/config"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/handler"
	"github.com/Dhanu-coder-indian/smart-expense-tracker-dhanu/internal/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the Gin engine and the full route table.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	// public: register / login
	authHandler := handler.NewAuthHandler(db, cfg.JWT.Secret, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// everything else requires a valid token
	protected := r.Group("")
	protected.Use(
		middleware.AuthMiddleware(cfg.JWT.Secret, db),
		middleware.AuditMiddleware(db),
	)

	expenseHandler := handler.NewExpenseHandler(db)
	protected.POST("/expense", expenseHandler.CreateExpense)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.GET("/expenses/by-date/:date", expenseHandler.ListExpensesByDate)
	protected.PUT("/expense/:id", expenseHandler.UpdateExpense)
	protected.DELETE("/expense/:id", expenseHandler.DeleteExpense)

	statsHandler := handler.NewStatsHandler(db)
	protected.GET("/monthly-total/:month", statsHandler.MonthlyTotal)
	protected.GET("/chart-data/monthly/:month", statsHandler.MonthlyChart)
	protected.GET("/yearly-summary/:year", statsHandler.YearlySummary)
	protected.GET("/chart-data/yearly/:year", statsHandler.YearlyChart)
	protected.GET("/summary", statsHandler.Summary)
	protected.GET("/chart-data", statsHandler.Chart)

	exportHandler := handler.NewExportHandler(db)
	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)
	protected.GET("/export/pdf", exportHandler.ExportPDF)
	protected.GET("/export/pdf/monthly/:month", exportHandler.ExportPDFMonthly)

	auditHandler := handler.NewAuditHandler(db, cfg.App.AuditPageSize)
	protected.GET("/logs", auditHandler.ListLogs)

	return r
}
