package model

import "time"

// Settings is the singleton planner configuration.
// WorkStart/WorkEnd are HH:MM clock strings; DailyCapacity is in hours;
// PomodoroLength and BreakLength are in minutes.
type Settings struct {
	WorkStart      string `json:"workStart"`
	WorkEnd        string `json:"workEnd"`
	DailyCapacity  int    `json:"dailyCapacity"`
	PomodoroLength int    `json:"pomodoroLength"`
	BreakLength    int    `json:"breakLength"`
}

// DefaultSettings returns the settings applied before the user changes
// anything.
func DefaultSettings() Settings {
	return Settings{
		WorkStart:      "09:00",
		WorkEnd:        "17:00",
		DailyCapacity:  5,
		PomodoroLength: 25,
		BreakLength:    5,
	}
}

// User is the singleton local profile.
type User struct {
	Name               string    `json:"name"`
	WorkStart          string    `json:"workStart"`
	WorkEnd            string    `json:"workEnd"`
	DailyCapacity      int       `json:"dailyCapacity"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	CreatedAt          time.Time `json:"createdAt"`
}
