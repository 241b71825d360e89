package session

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/appengine-ltd/drug-wars/internal/game"
	"github.com/appengine-ltd/drug-wars/internal/parser"
)

const maxPromptLen = 40

// Loop is the read-dispatch-render cycle over a single game.State.
type Loop struct {
	state    *game.State
	bindings Bindings
	parser   *parser.Parser
	logger   *zap.Logger
	actions  []string

	notice    string
	prompting bool
	prompt    string
}

func NewLoop(state *game.State, bindings Bindings, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loop{
		state:    state,
		bindings: bindings,
		parser:   parser.New(),
		logger:   logger,
		actions: []string{
			actionLabel(bindings.Buy, "Buy Drugs"),
			actionLabel(bindings.Sell, "Sell Drugs"),
			actionLabel(bindings.Advance, "Next Day"),
			actionLabel(bindings.Quit, "Quit"),
			actionLabel(bindings.Command, "Command"),
		},
	}
}

// Run renders, waits for a key and dispatches it until a quit key arrives or
// the event source fails.
func (l *Loop) Run(display Display, events EventSource) error {
	l.logger.Info("session started", snapshotFields(l.state.Snapshot())...)
	for {
		display.Render(l.Frame())

		key, err := events.NextKey()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if l.HandleKey(key) {
			l.logger.Info("session ended", snapshotFields(l.state.Snapshot())...)
			return nil
		}
	}
}

func (l *Loop) Frame() Frame {
	f := newFrame(l.state.Snapshot(), l.actions)
	f.Notice = l.notice
	f.Prompting = l.prompting
	f.Prompt = l.prompt
	return f
}

// HandleKey applies one key press and reports whether the session should end.
func (l *Loop) HandleKey(key Key) bool {
	l.notice = ""
	if key == KeyInterrupt {
		return true
	}
	if l.prompting {
		return l.handlePromptKey(key)
	}

	switch key {
	case l.bindings.Quit:
		return true
	case l.bindings.Buy:
		l.buy(1)
	case l.bindings.Sell:
		l.sell(1)
	case l.bindings.Advance:
		l.advance()
	case l.bindings.Command:
		l.prompting = true
		l.prompt = ""
	}
	return false
}

func (l *Loop) handlePromptKey(key Key) bool {
	switch key {
	case KeyEscape:
		l.prompting = false
		l.prompt = ""
	case KeyBackspace:
		if l.prompt != "" {
			r := []rune(l.prompt)
			l.prompt = string(r[:len(r)-1])
		}
	case KeyEnter:
		line := l.prompt
		l.prompting = false
		l.prompt = ""
		return l.execute(line)
	default:
		if text, ok := key.Printable(); ok && len(l.prompt) < maxPromptLen {
			l.prompt += text
		}
	}
	return false
}

func (l *Loop) execute(line string) bool {
	intent := l.parser.Parse(line)
	if intent.Clarify != nil {
		l.notice = intent.Clarify.Prompt
		if len(intent.Clarify.Options) > 0 {
			l.notice += " " + strings.Join(intent.Clarify.Options, " or ") + "?"
		}
		l.logger.Debug("command not understood", zap.String("input", line))
		return false
	}

	if (intent.Verb == "buy" || intent.Verb == "sell") && !tradesDrugs(intent.Args) {
		l.notice = "Only drugs are traded here."
		l.logger.Debug("command refused", zap.String("input", line), zap.Strings("args", intent.Args))
		return false
	}

	switch intent.Verb {
	case "buy":
		l.buy(intent.Amount(l.state.MaxAffordable()))
	case "sell":
		l.sell(intent.Amount(l.state.Inventory))
	case "next":
		l.advance()
	case "quit":
		return true
	case "help":
		l.notice = "Commands: buy [n|max], sell [n|all], next, quit."
	}
	return false
}

// tradesDrugs accepts no object or the commodity itself.
func tradesDrugs(args []string) bool {
	for _, arg := range args {
		if arg != "drugs" && arg != "drug" {
			return false
		}
	}
	return true
}

func (l *Loop) buy(amount int) {
	applied := l.state.Buy(amount)
	if !applied {
		l.notice = "Not enough cash."
	}
	l.logTrade("buy", amount, applied)
}

func (l *Loop) sell(amount int) {
	applied := l.state.Sell(amount)
	if !applied {
		l.notice = "Not enough drugs."
	}
	l.logTrade("sell", amount, applied)
}

func (l *Loop) advance() {
	l.state.AdvanceDay()
	l.logger.Debug("day advanced", snapshotFields(l.state.Snapshot())...)
}

func (l *Loop) logTrade(action string, amount int, applied bool) {
	fields := append([]zap.Field{
		zap.String("action", action),
		zap.Int("amount", amount),
		zap.Bool("applied", applied),
	}, snapshotFields(l.state.Snapshot())...)
	l.logger.Debug("trade", fields...)
}

func snapshotFields(s game.Snapshot) []zap.Field {
	return []zap.Field{
		zap.Int("day", s.Day),
		zap.Int("cash", s.Cash),
		zap.Int("debt", s.Debt),
		zap.Int("inventory", s.Inventory),
		zap.Int("unit_price", s.UnitPrice),
	}
}
