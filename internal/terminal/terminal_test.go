package terminal

import (
	"strings"
	"testing"

	ui "github.com/gizak/termui/v3"

	"github.com/appengine-ltd/drug-wars/internal/session"
)

func TestSplitHalvesInsideMargin(t *testing.T) {
	top, bottom := split(80, 24)
	if top.x1 != 2 || top.y1 != 2 || top.x2 != 78 {
		t.Fatalf("unexpected top %+v", top)
	}
	if bottom.y2 != 22 || top.y2 != bottom.y1 {
		t.Fatalf("expected panels to meet, top=%+v bottom=%+v", top, bottom)
	}
	if top.y2-top.y1 != bottom.y2-bottom.y1 {
		t.Fatalf("expected equal halves, top=%+v bottom=%+v", top, bottom)
	}
}

func TestSplitTinyTerminal(t *testing.T) {
	top, bottom := split(1, 1)
	if top.x2 <= top.x1 || bottom.y2 <= top.y1 {
		t.Fatalf("expected non-empty rects, top=%+v bottom=%+v", top, bottom)
	}
}

func TestStatusTextBoldsDayAndShowsNotice(t *testing.T) {
	f := session.Frame{Day: 3, Cash: 10, Debt: 5000, Inventory: 2, UnitPrice: 1200, Notice: "Not enough cash."}
	text := statusText(f)
	lines := strings.Split(text, "\n")
	if lines[0] != "[Day: 3](mod:bold)" {
		t.Fatalf("unexpected day line %q", lines[0])
	}
	if lines[4] != "Drug Price: $1200" {
		t.Fatalf("unexpected price line %q", lines[4])
	}
	if !strings.Contains(text, "[Not enough cash.](fg:yellow)") {
		t.Fatalf("expected notice in %q", text)
	}
}

func TestActionRowsAppendPrompt(t *testing.T) {
	f := session.Frame{Actions: []string{"(B)uy Drugs", "(Q)uit"}}
	if rows := actionRows(f); len(rows) != 2 {
		t.Fatalf("expected plain actions, got %+v", rows)
	}
	f.Prompting = true
	f.Prompt = "sell 2"
	rows := actionRows(f)
	if rows[len(rows)-1] != "[> sell 2_](mod:bold)" {
		t.Fatalf("unexpected prompt row %q", rows[len(rows)-1])
	}
	if len(f.Actions) != 2 {
		t.Fatalf("frame actions mutated: %+v", f.Actions)
	}
}

func TestKeyFromEvent(t *testing.T) {
	tests := []struct {
		event ui.Event
		want  session.Key
		ok    bool
	}{
		{event: ui.Event{Type: ui.KeyboardEvent, ID: "b"}, want: "b", ok: true},
		{event: ui.Event{Type: ui.KeyboardEvent, ID: "<C-c>"}, want: session.KeyInterrupt, ok: true},
		{event: ui.Event{Type: ui.KeyboardEvent, ID: "<Space>"}, want: session.KeySpace, ok: true},
		{event: ui.Event{Type: ui.ResizeEvent, ID: "<Resize>"}, want: session.KeyResize, ok: true},
		{event: ui.Event{Type: ui.MouseEvent, ID: "<MouseLeft>"}, ok: false},
	}
	for _, tc := range tests {
		got, ok := keyFromEvent(tc.event)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("keyFromEvent(%+v)=%q,%v want %q,%v", tc.event, got, ok, tc.want, tc.ok)
		}
	}
}
