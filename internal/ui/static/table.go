// Package static renders non-interactive terminal output such as tables.
package static

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/raphi011/aurx/internal/repo"
	"github.com/raphi011/aurx/internal/ui/styles"
)

// PackageHeaders are the columns of the list --long table.
var PackageHeaders = []string{"NAME", "VERSION", "UPDATED", "PATH"}

// RenderTable creates a borderless table with aligned columns.
// Returns an empty string when there are no rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.PrimaryStyle.Bold(true).PaddingRight(2)
			}
			if col == 0 {
				return styles.AccentStyle.PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	var b strings.Builder
	b.WriteString(t.String())
	b.WriteString("\n")
	return b.String()
}

// PackageTableRow formats one installed package for PackageHeaders.
// Unknown values render as "-".
func PackageTableRow(info repo.Info, now time.Time) []string {
	version := info.Version
	if version == "" {
		version = "-"
	}
	return []string{info.Name, version, FormatAge(info.Updated, now), info.Path}
}

// FormatAge renders the time since t in a coarse human form,
// e.g. "3 hours ago". A zero t renders as "-".
func FormatAge(t, now time.Time) string {
	if t.IsZero() {
		return "-"
	}
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		return plural(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		return plural(int(d/(30*24*time.Hour)), "month")
	default:
		return plural(int(d/(365*24*time.Hour)), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
