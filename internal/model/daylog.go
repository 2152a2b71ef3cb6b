package model

// DayEntry is one day's check-in. Energy, Mood and Sleep are 1-5 ratings;
// nil means not recorded, which is distinct from a day with no entry at all.
type DayEntry struct {
	Highlight  string `json:"highlight,omitempty"`
	Energy     *int   `json:"energy"`
	Mood       *int   `json:"mood"`
	Sleep      *int   `json:"sleep"`
	Reflection string `json:"reflection,omitempty"`
	Wins       string `json:"wins,omitempty"`
}

// DayLog maps YYYY-MM-DD day strings to entries. Days without activity have
// no key.
type DayLog map[string]DayEntry
