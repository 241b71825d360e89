package parser

import (
	"fmt"
	"strings"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Unknown command. Try " + strings.Join(p.registry.Commands(), ", ") + ".",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt:  "Did you mean:",
			Options: []string{cmdMatch.Canonical, alternates[0].Canonical},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens[cmdMatch.Consumed:]
	argsTokens, q := splitQuantity(argsTokens)
	intent.Quantity = q

	def, _ := p.registry.command(intent.Verb)
	if q != nil && def.MaxArgs == 0 {
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s does not take an amount.", def.Canonical)}
		return intent
	}
	for _, token := range argsTokens {
		if !looksNumeric(token) {
			continue
		}
		if def.MaxArgs == 0 {
			intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s does not take an amount.", def.Canonical)}
		} else {
			intent.Clarify = &ClarifyQuestion{Prompt: "Amount must be a whole number of units."}
		}
		return intent
	}
	if len(argsTokens) > def.MaxArgs {
		intent.Confidence = clampScore(intent.Confidence - 0.05)
	}
	if len(argsTokens) > 0 {
		intent.Args = append([]string(nil), argsTokens...)
	}
	return intent
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
