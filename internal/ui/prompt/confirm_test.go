package prompt

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	default:
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
}

func TestConfirmModel_Update(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		key       string
		confirmed bool
		done      bool
		cancelled bool
	}{
		{"y confirms", "y", true, true, false},
		{"Y confirms", "Y", true, true, false},
		{"n declines", "n", false, true, false},
		{"enter defaults no", "enter", false, true, false},
		{"ctrl+c cancels", "ctrl+c", false, true, true},
		{"esc cancels", "esc", false, true, true},
		{"q cancels", "q", false, true, true},
		{"unhandled is no-op", "x", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := confirmModel{prompt: "Remove yay?"}
			updated, cmd := m.Update(keyPress(tt.key))
			um := updated.(confirmModel)

			if um.confirmed != tt.confirmed {
				t.Errorf("confirmed = %v, want %v", um.confirmed, tt.confirmed)
			}
			if um.done != tt.done {
				t.Errorf("done = %v, want %v", um.done, tt.done)
			}
			if um.cancelled != tt.cancelled {
				t.Errorf("cancelled = %v, want %v", um.cancelled, tt.cancelled)
			}
			if (cmd != nil) != tt.done {
				t.Errorf("cmd nil = %v, want quit only when done", cmd == nil)
			}
		})
	}
}

func TestConfirmModel_IgnoresNonKeys(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Remove yay?"}
	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if updated.(confirmModel).done || cmd != nil {
		t.Error("window resize should not finish the prompt")
	}
}

func TestConfirmModel_View(t *testing.T) {
	t.Parallel()

	m := confirmModel{prompt: "Remove yay?"}
	if got := m.View().Content; !strings.Contains(got, "Remove yay?") || !strings.Contains(got, "[y/N]") {
		t.Errorf("View().Content = %q, want prompt and [y/N]", got)
	}

	m.done = true
	if got := m.View().Content; got != "" {
		t.Errorf("View().Content after done = %q, want empty", got)
	}
}
