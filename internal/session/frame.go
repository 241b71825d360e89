package session

import (
	"fmt"

	"github.com/appengine-ltd/drug-wars/internal/game"
)

const Title = "Drug Wars"

// Frame is everything a Display needs for one full redraw.
type Frame struct {
	Title     string
	Day       int
	Cash      int
	Debt      int
	Inventory int
	UnitPrice int
	Actions   []string

	// Notice is a one-key message such as a rejected trade.
	Notice string

	Prompting bool
	Prompt    string
}

func newFrame(s game.Snapshot, actions []string) Frame {
	return Frame{
		Title:     Title,
		Day:       s.Day,
		Cash:      s.Cash,
		Debt:      s.Debt,
		Inventory: s.Inventory,
		UnitPrice: s.UnitPrice,
		Actions:   actions,
	}
}

// StatusLines returns the status panel rows. The first row is the day.
func (f Frame) StatusLines() []string {
	return []string{
		fmt.Sprintf("Day: %d", f.Day),
		fmt.Sprintf("Cash: $%d", f.Cash),
		fmt.Sprintf("Debt: $%d", f.Debt),
		fmt.Sprintf("Drugs: %d", f.Inventory),
		fmt.Sprintf("Drug Price: $%d", f.UnitPrice),
	}
}

// PromptLine is the command prompt row, empty when no command is being typed.
func (f Frame) PromptLine() string {
	if !f.Prompting {
		return ""
	}
	return "> " + f.Prompt + "_"
}
