package contract

import "context"

// Dispatcher abstracts the messaging transport behind the bot. All calls
// are at-most-once: a failure is returned to the caller and never retried
// here. Callers bound each call with a context timeout shorter than the
// scheduler tick.
type Dispatcher interface {
	// SendPrompt sends a new rating prompt with the 0-5 keyboard and
	// returns the handle of the dispatched message.
	SendPrompt(ctx context.Context, chatID int64, text string) (handle int, err error)
	// EditPrompt redisplays the 0-5 keyboard at an existing handle,
	// reopening a previously ranked day.
	EditPrompt(ctx context.Context, chatID int64, handle int, text string) error
	// SendResult replaces the prompt at handle with a rank confirmation
	// and the Edit / Add comment follow-up actions.
	SendResult(ctx context.Context, chatID int64, handle int, text string) error
}
