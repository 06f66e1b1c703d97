package api

import (
	"net/http" // HTTP status codes

	"budget_bloom/internal/middleware" // Auth, logging and CORS middleware
	"budget_bloom/internal/service"    // Services
	"budget_bloom/internal/store"      // Expense repository

	"github.com/gin-gonic/gin" // Gin web framework
)

// Services bundles everything the handlers depend on
type Services struct {
	Auth     *service.Auth
	Expenses *store.Expenses
	Goals    *service.Goals
	Insights *service.Insights
	Now      service.Clock // Reference clock, its location decides calendar days
}

// NewRouter builds the gin engine with every route
func NewRouter(s Services) (*gin.Engine, error) {
	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.CORS())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}

	loc := s.Now().Location() // Location used to interpret calendar dates

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// Auth routes
	r.POST("/register", RegisterHandler(s.Auth)) // Registration endpoint
	r.POST("/login", LoginHandler(s.Auth))       // Login endpoint

	// Protected routes
	protected := r.Group("")
	protected.Use(middleware.TokenAuthMiddleware(s.Auth))
	protected.GET("/profile", ProfileHandler())

	protected.POST("/expenses", CreateExpenseHandler(s.Expenses, s.Goals, loc))
	protected.GET("/expenses", ListExpensesHandler(s.Expenses, loc))
	protected.PUT("/expenses/:id", UpdateExpenseHandler(s.Expenses, s.Goals, loc))
	protected.DELETE("/expenses/:id", DeleteExpenseHandler(s.Expenses, s.Goals))

	protected.POST("/goal", SetGoalHandler(s.Goals))
	protected.GET("/goal", GetGoalHandler(s.Goals))
	protected.GET("/nudges", NudgesHandler(s.Insights))

	protected.GET("/dashboard", DashboardHandler(s.Insights))
	protected.GET("/charts/categories.png", ChartHandler(s.Insights, CategoryChart))
	protected.GET("/charts/daily.png", ChartHandler(s.Insights, DailyChart))

	return r, nil
}
