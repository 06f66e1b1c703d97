package domain

// Goal Model, one per user per calendar month
type Goal struct {
	ID     uint    `gorm:"primaryKey" json:"id"`                               // Primary key
	UserID uint    `gorm:"not null;uniqueIndex:idx_goal_period" json:"userId"` // Owning user
	Year   int     `gorm:"not null;uniqueIndex:idx_goal_period" json:"year"`   // Calendar year
	Month  int     `gorm:"not null;uniqueIndex:idx_goal_period" json:"month"`  // 1..12
	Amount float64 `gorm:"not null" json:"amount"`                             // Target amount
}

// GoalSummary is the progress of a user against a monthly goal.
type GoalSummary struct {
	Goal         float64 `json:"goal"`         // Target, 0 when none is set
	Spent        float64 `json:"spent"`        // Sum of the month's expenses
	Percent      float64 `json:"percent"`      // Spent as a share of goal, capped at 100
	Remaining    float64 `json:"remaining"`    // Goal minus spent, never negative
	Overspending bool    `json:"overspending"` // Spent exceeds goal
}

// NewGoalSummary derives percent, remaining and overspending from a goal and spent amount.
// A zero goal means no goal was set.
func NewGoalSummary(goal, spent float64) GoalSummary {
	if goal <= 0 {
		return GoalSummary{Spent: spent}
	}
	return GoalSummary{
		Goal:         goal,
		Spent:        spent,
		Percent:      min(spent*100/goal, 100), // Multiply first to keep whole percentages exact
		Remaining:    max(goal-spent, 0),
		Overspending: spent > goal,
	}
}
