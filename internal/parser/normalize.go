package parser

import (
	"regexp"
	"strconv"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := true
	runes := []rune(raw)
	for i, r := range runes {
		// A leading minus on a number survives so a signed amount can be refused.
		if r == '-' && lastSpace && i+1 < len(runes) && isDigit(runes[i+1]) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if (r >= 'a' && r <= 'z') || isDigit(r) {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '-' || r == '_' || r == '/' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// looksNumeric reports whether a token was meant as an amount.
func looksNumeric(token string) bool {
	token = strings.TrimPrefix(token, "-")
	return token != "" && isDigit(rune(token[0]))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func parseQuantityToken(token string) *Quantity {
	token = strings.TrimSpace(strings.ToLower(token))
	if token == "" {
		return nil
	}
	switch token {
	case "all", "everything":
		return &Quantity{Raw: token, N: -1, Unit: UnitAll}
	case "max", "most":
		return &Quantity{Raw: token, N: -1, Unit: UnitMax}
	}
	if n, err := strconv.Atoi(token); err == nil && n >= 0 {
		return &Quantity{Raw: token, N: n, Unit: UnitCount}
	}
	return nil
}

func splitQuantity(tokens []string) ([]string, *Quantity) {
	if len(tokens) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(tokens))
	var q *Quantity
	for _, token := range tokens {
		if q == nil {
			if candidate := parseQuantityToken(token); candidate != nil {
				q = candidate
				continue
			}
		}
		out = append(out, token)
	}
	return out, q
}
