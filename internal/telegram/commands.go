package telegram

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdStart CommandType = "start"
	CmdHour  CommandType = "hour"
	CmdHelp  CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// ParseCommand parses a message text like "/hour 21" or "/start@some_bot".
// Non-command text is not a command at all and returns (nil, nil).
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 || !strings.HasPrefix(parts[0], "/") {
		return nil, nil
	}

	// Group chats address commands as /cmd@bot_name.
	name := strings.TrimPrefix(parts[0], "/")
	if at := strings.Index(name, "@"); at >= 0 {
		name = name[:at]
	}

	cmd := &Command{
		Raw: text,
	}

	switch name {
	case "start":
		cmd.Type = CmdStart
	case "hour":
		cmd.Type = CmdHour
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

func GetHelpText() string {
	return `Available commands:

` + "`/start`" + ` - Register and receive the daily rating prompt (22:00 by default)
` + "`/hour H`" + ` - Set the hour of the daily prompt (0-23)
` + "`/help`" + ` - Show this message

When the prompt arrives, tap a number from 0 to 5 to rate your day.
Use the Edit button under a rated day to change your mind.`
}
