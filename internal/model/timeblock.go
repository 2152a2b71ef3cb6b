package model

// TimeBlock reserves a slot in the day's schedule.
// StartTime and EndTime are HH:MM clock strings; Date is a YYYY-MM-DD day
// string. Blocks are allowed to overlap.
type TimeBlock struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	StartTime string   `json:"startTime"`
	EndTime   string   `json:"endTime"`
	Category  Category `json:"category"`
	Date      string   `json:"date"`
}
