package model

// WeeklyObjective is a single outcome targeted for one week.
// WeekStart is the Monday of that week as a YYYY-MM-DD day string.
type WeeklyObjective struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	WeekStart string `json:"weekStart"`
	Completed bool   `json:"completed"`
}
