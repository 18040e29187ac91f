package domain

import "time"

// Rank scale boundaries
const (
	MinRank = 0
	MaxRank = 5
)

// Preferred notification hour boundaries and default
const (
	MinHour     = 0
	MaxHour     = 23
	DefaultHour = 22
)

// Callback payloads emitted by the prompt keyboards
const (
	CallbackEdit       = "Edit"
	CallbackAddComment = "Add comment"
)

// MonthNames maps every calendar month to its display name, so prompt
// formatting is total and never hits a missing entry
var MonthNames = map[time.Month]string{
	time.January:   "January",
	time.February:  "February",
	time.March:     "March",
	time.April:     "April",
	time.May:       "May",
	time.June:      "June",
	time.July:      "July",
	time.August:    "August",
	time.September: "September",
	time.October:   "October",
	time.November:  "November",
	time.December:  "December",
}

// ValidHour reports whether h is a valid preferred notification hour.
func ValidHour(h int) bool {
	return h >= MinHour && h <= MaxHour
}
