package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pthm-cable/kennel/systems"
)

// Command is one scripted player input, e.g. "feed:0", "wash", "select:1".
type Command struct {
	Action systems.Action
	Arg    int
	Save   bool // write the current slot instead of acting
}

// ParseCommand parses "action[:arg]". The argument is required for feed and
// select. "save" is accepted as a pseudo-action.
func ParseCommand(s string) (Command, error) {
	name, argStr, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	if strings.EqualFold(name, "save") {
		return Command{Save: true}, nil
	}
	a, ok := systems.ParseAction(name)
	if !ok {
		return Command{}, fmt.Errorf("unknown action %q", name)
	}
	cmd := Command{Action: a}
	needsArg := a == systems.ActionFeed || a == systems.ActionSelect
	if needsArg && !hasArg {
		return Command{}, fmt.Errorf("action %q requires an index", name)
	}
	if hasArg {
		n, err := strconv.Atoi(strings.TrimSpace(argStr))
		if err != nil {
			return Command{}, fmt.Errorf("action %q: bad index %q: %w", name, argStr, err)
		}
		cmd.Arg = n
	}
	return cmd, nil
}

// ParseScript parses a comma-separated list of commands.
func ParseScript(s string) ([]Command, error) {
	var cmds []Command
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		cmd, err := ParseCommand(part)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

// String formats a command the way ParseCommand reads it.
func (c Command) String() string {
	if c.Save {
		return "save"
	}
	if c.Action == systems.ActionFeed || c.Action == systems.ActionSelect {
		return c.Action.String() + ":" + strconv.Itoa(c.Arg)
	}
	return c.Action.String()
}
