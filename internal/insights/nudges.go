package insights

import (
	"fmt" // Message formatting

	"budget_bloom/internal/domain" // Categories
)

// Fixed nudge messages
const (
	GreetingNudge = "Here's your spending check-in for today!"
	HalfwayNudge  = "You're halfway to your savings goal!"
	NoSpendNudge  = "Try a no-spend day tomorrow?"
)

// DoubledNudge is the message for a category whose weekly spend more than doubled.
func DoubledNudge(c domain.Category) string {
	return fmt.Sprintf("%s spending doubled this week!", c)
}

// NudgeInput is everything the nudge rules look at.
type NudgeInput struct {
	Goal       float64                     // Current month goal, 0 when none is set
	HasGoal    bool                        // A goal exists for the current month
	MonthTotal float64                     // Spent since the first of the month
	ThisWeek   map[domain.Category]float64 // Per-category spend since StartOfWeek
	LastWeek   map[domain.Category]float64 // Per-category spend of the previous week
	SpentToday bool                        // Any expense dated today
}

// Nudges evaluates the rules in order and returns the messages.
func Nudges(in NudgeInput) []string {
	nudges := []string{GreetingNudge} // Always first

	if in.HasGoal && in.MonthTotal >= in.Goal*0.5 && in.MonthTotal < in.Goal {
		nudges = append(nudges, HalfwayNudge)
	}

	for _, c := range domain.Categories { // Fixed order keeps output deterministic
		current, ok := in.ThisWeek[c]
		if !ok {
			continue
		}
		if prev, ok := in.LastWeek[c]; ok && current > prev*2 {
			nudges = append(nudges, DoubledNudge(c))
		}
	}

	if in.SpentToday {
		nudges = append(nudges, NoSpendNudge)
	}
	return nudges
}
