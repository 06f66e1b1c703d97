package api

import (
	"fmt"      // Error wrapping
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Date parsing

	"budget_bloom/internal/domain"     // Importing domain models
	"budget_bloom/internal/middleware" // Current user lookup
	"budget_bloom/internal/service"    // Goal cache invalidation
	"budget_bloom/internal/store"      // Expense repository

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ExpenseRequest is the body of create and update
type ExpenseRequest struct {
	Amount   float64 `json:"amount" binding:"required"`   // Positive amount
	Category string  `json:"category" binding:"required"` // One of domain.Categories
	Note     string  `json:"note"`                        // Optional note
	Date     string  `json:"date" binding:"required"`     // YYYY-MM-DD or RFC 3339
}

// UpdateResult reports how many expenses an update touched
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult reports how many expenses a delete removed
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// parseDate accepts a calendar day (midnight in loc) or an RFC 3339 timestamp
func parseDate(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.ParseInLocation(time.DateOnly, raw, loc); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrValidation, raw)
	}
	return t, nil
}

// fields converts the request into validated-ready domain fields
func (r ExpenseRequest) fields(loc *time.Location) (domain.ExpenseFields, error) {
	date, err := parseDate(r.Date, loc)
	if err != nil {
		return domain.ExpenseFields{}, err
	}
	return domain.ExpenseFields{
		Amount:   r.Amount,
		Category: domain.Category(r.Category),
		Note:     r.Note,
		Date:     date,
	}, nil
}

// bindExpense reads the authenticated user and the expense body, answering the request on failure
func bindExpense(c *gin.Context, loc *time.Location) (*domain.User, domain.ExpenseFields, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
		return nil, domain.ExpenseFields{}, false
	}
	var req ExpenseRequest // Bind JSON request to struct
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Required fields missing"})
		return nil, domain.ExpenseFields{}, false
	}
	fields, err := req.fields(loc)
	if err != nil {
		respondError(c, err, nil)
		return nil, domain.ExpenseFields{}, false
	}
	return user, fields, true
}

// expenseID parses the :id path parameter
func expenseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expense id"})
		return 0, false
	}
	return uint(id), true
}

// CreateExpenseHandler records an expense for the authenticated user
func CreateExpenseHandler(expenses *store.Expenses, goals *service.Goals, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, fields, ok := bindExpense(c, loc)
		if !ok {
			return
		}
		expense, err := expenses.Create(c.Request.Context(), user.ID, fields)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		goals.Invalidate(c.Request.Context(), user.ID) // Cached goal summaries are stale now
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID,          // User ID
			"expense_id": expense.ID,       // Expense ID
			"amount":     expense.Amount,   // Amount
			"category":   expense.Category, // Category
		}).Info("Expense created")
		c.JSON(http.StatusCreated, expense)
	}
}

// ListExpensesHandler returns the user's expenses filtered by category and date range
func ListExpensesHandler(expenses *store.Expenses, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		filter := store.Filter{Category: domain.Category(c.Query("category"))}
		switch sort := c.Query("sort"); sort {
		case store.SortNewest, store.SortHighest:
			filter.Sort = sort
		}
		// Filter by start and end dates when present
		for param, dest := range map[string]*time.Time{"start": &filter.Start, "end": &filter.End} {
			raw := c.Query(param)
			if raw == "" {
				continue
			}
			t, err := parseDate(raw, loc)
			if err != nil {
				respondError(c, err, nil)
				return
			}
			*dest = t
		}
		list, err := expenses.List(c.Request.Context(), user.ID, filter)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateExpenseHandler replaces the fields of one of the user's expenses
func UpdateExpenseHandler(expenses *store.Expenses, goals *service.Goals, loc *time.Location) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := expenseID(c)
		if !ok {
			return
		}
		user, fields, ok := bindExpense(c, loc)
		if !ok {
			return
		}
		n, err := expenses.Update(c.Request.Context(), id, user.ID, fields)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID, "expense_id": id})
			return
		}
		if n > 0 {
			goals.Invalidate(c.Request.Context(), user.ID)
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID, // User ID
			"expense_id": id,      // Expense ID
			"matched":    n,       // Zero when the id is not the user's
		}).Info("Expense updated")
		c.JSON(http.StatusOK, UpdateResult{MatchedCount: n, ModifiedCount: n})
	}
}

// DeleteExpenseHandler removes one of the user's expenses
func DeleteExpenseHandler(expenses *store.Expenses, goals *service.Goals) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := expenseID(c)
		if !ok {
			return
		}
		user, ok := middleware.CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}
		n, err := expenses.Delete(c.Request.Context(), id, user.ID)
		if err != nil {
			respondError(c, err, logrus.Fields{"user_id": user.ID, "expense_id": id})
			return
		}
		if n > 0 {
			goals.Invalidate(c.Request.Context(), user.ID)
		}
		logrus.WithFields(logrus.Fields{
			"user_id":    user.ID, // User ID
			"expense_id": id,      // Expense ID
			"deleted":    n,       // Zero when the id is not the user's
		}).Info("Expense deleted")
		c.JSON(http.StatusOK, DeleteResult{DeletedCount: n})
	}
}
