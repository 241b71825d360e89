package session

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Key identifies a single key press. Printable keys are the character itself;
// everything else uses the angle-bracket names termui reports.
type Key string

const (
	KeyEnter     Key = "<Enter>"
	KeyBackspace Key = "<Backspace>"
	KeyEscape    Key = "<Escape>"
	KeySpace     Key = "<Space>"
	KeyInterrupt Key = "<C-c>"
	KeyResize    Key = "<Resize>"
)

// Printable returns the text a key types into the command prompt.
func (k Key) Printable() (string, bool) {
	if k == KeySpace {
		return " ", true
	}
	if utf8.RuneCountInString(string(k)) != 1 {
		return "", false
	}
	r, _ := utf8.DecodeRuneInString(string(k))
	if r < 32 || r == 127 {
		return "", false
	}
	return string(k), true
}

// Bindings maps the four game actions and the command prompt to keys.
type Bindings struct {
	Quit    Key `yaml:"quit"`
	Buy     Key `yaml:"buy"`
	Sell    Key `yaml:"sell"`
	Advance Key `yaml:"advance"`
	Command Key `yaml:"command"`
}

func DefaultBindings() Bindings {
	return Bindings{
		Quit:    "q",
		Buy:     "b",
		Sell:    "s",
		Advance: "n",
		Command: ":",
	}
}

func (b Bindings) Validate() error {
	seen := make(map[Key]string, 5)
	for _, entry := range []struct {
		name string
		key  Key
	}{
		{"quit", b.Quit},
		{"buy", b.Buy},
		{"sell", b.Sell},
		{"advance", b.Advance},
		{"command", b.Command},
	} {
		if strings.TrimSpace(string(entry.key)) == "" {
			return fmt.Errorf("key binding %s is empty", entry.name)
		}
		if entry.key == KeyInterrupt || entry.key == KeyResize {
			return fmt.Errorf("key binding %s cannot use reserved key %s", entry.name, entry.key)
		}
		if other, ok := seen[entry.key]; ok {
			return fmt.Errorf("key %q bound to both %s and %s", entry.key, other, entry.name)
		}
		seen[entry.key] = entry.name
	}
	return nil
}

// actionLabel renders "(B)uy Drugs" when the key is the label's first letter,
// and "[x] Buy Drugs" otherwise.
func actionLabel(key Key, label string) string {
	k := string(key)
	if utf8.RuneCountInString(k) == 1 && strings.HasPrefix(strings.ToLower(label), strings.ToLower(k)) {
		return "(" + strings.ToUpper(k) + ")" + label[len(k):]
	}
	return "[" + k + "] " + label
}
