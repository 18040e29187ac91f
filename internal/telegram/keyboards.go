package telegram

import (
	"strconv"

	"github.com/go-telegram/bot/models"
	"github.com/picolepixel/rank-day-bot/internal/domain"
)

// rankKeyboard builds the inline 0-5 selection row. Callback data is the
// digit itself.
func rankKeyboard() *models.InlineKeyboardMarkup {
	var row []models.InlineKeyboardButton
	for v := domain.MinRank; v <= domain.MaxRank; v++ {
		s := strconv.Itoa(v)
		row = append(row, models.InlineKeyboardButton{
			Text:         s,
			CallbackData: s,
		})
	}

	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{row},
	}
}

// resultKeyboard builds the follow-up actions shown under a confirmation.
func resultKeyboard() *models.InlineKeyboardMarkup {
	row := []models.InlineKeyboardButton{
		{Text: "Edit", CallbackData: domain.CallbackEdit},
		{Text: "Add comment", CallbackData: domain.CallbackAddComment},
	}

	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{row},
	}
}
