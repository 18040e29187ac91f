package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_dayLabel(t *testing.T) {
	label := dayLabel(time.Date(2024, 1, 5, 22, 0, 0, 0, time.UTC))

	assert.Equal(t, "5 January 2024", label)
}

func Test_promptText(t *testing.T) {
	text := promptText(time.Date(2024, 12, 31, 22, 0, 0, 0, time.UTC))

	assert.Contains(t, text, "31 December 2024")
	assert.Contains(t, text, "0 to 5")
}

func Test_resultText(t *testing.T) {
	text := resultText(4, time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC))

	assert.Contains(t, text, "1 June 2024")
	assert.Contains(t, text, "4/5")
}
