package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"budget_bloom/internal/middleware" // Current user lookup
	"budget_bloom/internal/service"    // Goal tracker

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// GoalRequest sets the goal of a month, the current one unless year and month are given
type GoalRequest struct {
	Amount float64 `json:"amount" binding:"required"` // Target amount
	Year   *int    `json:"year"`                      // Optional calendar year, current one when absent
	Month  *int    `json:"month"`                     // Optional month 1..12, current one when absent
}

// SetGoalHandler upserts the savings goal of the authenticated user
func SetGoalHandler(goals *service.Goals) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		var req GoalRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Amount required"})
			return
		}
		year, month := goals.CurrentPeriod()
		if req.Year != nil {
			year = *req.Year
		}
		if req.Month != nil {
			month = *req.Month
		}
		goal, err := goals.SetGoal(c.Request.Context(), user.ID, year, month, req.Amount)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,     // User ID
			"year":    goal.Year,   // Goal year
			"month":   goal.Month,  // Goal month
			"amount":  goal.Amount, // Target amount
		}).Info("Goal saved")
		c.JSON(http.StatusOK, gin.H{"message": "Goal saved", "goal": goal})
	}
}

// GetGoalHandler returns the goal progress of the current month, or of ?year=&month=
func GetGoalHandler(goals *service.Goals) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		year, month := goals.CurrentPeriod()
		if y := c.Query("year"); y != "" {
			v, err := strconv.Atoi(y)
			if err != nil || v < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid year"})
				return
			}
			year = v
		}
		if m := c.Query("month"); m != "" {
			v, err := strconv.Atoi(m)
			if err != nil || v < 1 || v > 12 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid month"})
				return
			}
			month = v
		}
		summary, err := goals.Summary(c.Request.Context(), user.ID, year, month)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}
