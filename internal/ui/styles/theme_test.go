package styles

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/aurx/internal/config"
)

func TestSelectTheme(t *testing.T) {
	t.Parallel()

	dark := func() bool { return true }
	light := func() bool { return false }

	tests := []struct {
		name   string
		cfg    config.ThemeConfig
		isDark func() bool
		want   Theme
	}{
		{"empty is default", config.ThemeConfig{}, dark, DefaultTheme},
		{"unknown falls back", config.ThemeConfig{Name: "solarized"}, dark, DefaultTheme},
		{"nord dark", config.ThemeConfig{Name: "nord", Mode: "dark"}, light, NordTheme},
		{"nord light", config.ThemeConfig{Name: "nord", Mode: "light"}, dark, NordLightTheme},
		{"auto light background", config.ThemeConfig{Name: "gruvbox", Mode: "auto"}, light, GruvboxLightTheme},
		{"auto dark background", config.ThemeConfig{Name: "catppuccin"}, dark, CatppuccinMochaTheme},
		{"dark-only family in light mode", config.ThemeConfig{Name: "default", Mode: "light"}, dark, DefaultTheme},
		{"none", config.ThemeConfig{Name: "none"}, light, NoneTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := selectTheme(tt.cfg, tt.isDark); got != tt.want {
				t.Errorf("selectTheme(%+v) = %+v, want %+v", tt.cfg, got, tt.want)
			}
		})
	}
}

func TestSelectTheme_ExplicitModeSkipsDetection(t *testing.T) {
	t.Parallel()

	detect := func() bool {
		t.Error("background detection ran with explicit mode")
		return true
	}
	selectTheme(config.ThemeConfig{Name: "nord", Mode: "light"}, detect)
}

// Tests below mutate package state and do not run in parallel.

func TestApply(t *testing.T) {
	defer Apply(DefaultTheme)

	Apply(NordTheme)
	if Current() != NordTheme {
		t.Error("Current() did not return the applied theme")
	}
	if Success != NordTheme.Success {
		t.Errorf("Success = %v, want %v", Success, NordTheme.Success)
	}
	if SuccessStyle.GetForeground() != NordTheme.Success {
		t.Error("SuccessStyle was not rebuilt")
	}
}

func TestStatusWord(t *testing.T) {
	defer Apply(DefaultTheme)
	Apply(NoneTheme)

	for _, w := range []string{StatusDone, StatusFailed, StatusSkipped, StatusExists, "other"} {
		got := StatusWord(w)
		if !strings.Contains(got, w) {
			t.Errorf("StatusWord(%q) = %q, want to contain the word", w, got)
		}
		if lipgloss.Width(got) != len(w) {
			t.Errorf("StatusWord(%q) width = %d, want %d", w, lipgloss.Width(got), len(w))
		}
	}
}
