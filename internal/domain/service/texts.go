package service

import (
	"fmt"
	"time"

	"github.com/picolepixel/rank-day-bot/internal/domain"
)

// dayLabel formats the evaluated day through the total month mapping.
func dayLabel(t time.Time) string {
	return fmt.Sprintf("%d %s %d", t.Day(), domain.MonthNames[t.Month()], t.Year())
}

func promptText(t time.Time) string {
	return fmt.Sprintf("How was your day, %s? Rate it from 0 to 5.", dayLabel(t))
}

func resultText(rank int, t time.Time) string {
	return fmt.Sprintf("You rated %s as %d/%d.", dayLabel(t), rank, domain.MaxRank)
}
