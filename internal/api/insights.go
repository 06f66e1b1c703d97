package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes

	"budget_bloom/internal/charts"     // PNG rendering
	"budget_bloom/internal/middleware" // Current user lookup
	"budget_bloom/internal/service"    // Aggregation engine

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// NudgesHandler returns the advisory messages of the authenticated user
func NudgesHandler(insights *service.Insights) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		nudges, err := insights.Nudges(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.JSON(http.StatusOK, nudges)
	}
}

// DashboardHandler returns category totals and the daily spend series
func DashboardHandler(insights *service.Insights) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		dash, err := insights.Dashboard(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.JSON(http.StatusOK, dash)
	}
}

// chartRenderer turns a dashboard into an image
type chartRenderer func(*service.Dashboard) ([]byte, error)

// ChartHandler serves one dashboard chart as PNG, 204 when there is nothing to draw
func ChartHandler(insights *service.Insights, render chartRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		dash, err := insights.Dashboard(c.Request.Context(), user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		img, err := render(dash)
		if errors.Is(err, charts.ErrNoData) {
			c.Status(http.StatusNoContent)
			return
		}
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.Data(http.StatusOK, "image/png", img)
	}
}

// CategoryChart renders spend by category
func CategoryChart(d *service.Dashboard) ([]byte, error) {
	return charts.CategoryPie(d.ByCategory)
}

// DailyChart renders the daily spend series
func DailyChart(d *service.Dashboard) ([]byte, error) {
	return charts.DailyBars(d.Daily)
}
