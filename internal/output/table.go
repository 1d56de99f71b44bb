// Package output provides terminal output utilities for textmine.
//
// This package includes:
//   - Table rendering functions for frequent itemsets and association rules
//   - A spinner for indeterminate operations
//   - Formatting helpers for supports, ratios, and timestamps
//
// All table rendering functions use ASCII characters and ANSI color codes
// for terminal output; color is suppressed when stdout is not a TTY or
// NO_COLOR is set.
package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/textmine/internal/mining"
)

// ANSI color codes for lift display
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
)

// liftEpsilon is the band around 1.0 rendered as "independent" rather than
// positively or negatively correlated.
const liftEpsilon = 1e-9

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderItemsetTable renders a table of frequent itemsets with their
// supports. Expects itemsets to be pre-sorted by the caller.
func RenderItemsetTable(itemsets []mining.FrequentItemset) string {
	if len(itemsets) == 0 {
		return "No frequent itemsets found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-44s %-6s %s\n", "Itemset", "Size", "Support"))
	sb.WriteString(strings.Repeat("─", 60))
	sb.WriteString("\n")

	for _, fi := range itemsets {
		sb.WriteString(fmt.Sprintf("%-44s %-6d %s\n",
			truncate(fi.Items.String(), 44),
			len(fi.Items),
			formatRatio(fi.Support)))
	}

	return sb.String()
}

// RenderRuleTable renders a table of association rules with their metrics.
// Expects rules to be pre-sorted by the caller. Lift is colored green when
// it indicates positive correlation, red for negative, gray for
// independence.
func RenderRuleTable(rules []mining.Rule) string {
	if len(rules) == 0 {
		return "No rules met the confidence threshold.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-48s %-9s %-12s %s\n", "Rule", "Support", "Confidence", "Lift"))
	sb.WriteString(strings.Repeat("─", 80))
	sb.WriteString("\n")

	for _, r := range rules {
		sb.WriteString(fmt.Sprintf("%-48s %-9s %-12s %s\n",
			truncate(r.String(), 48),
			formatRatio(r.Support),
			formatRatio(r.Confidence),
			colorizeLift(r.Lift)))
	}

	return sb.String()
}

// colorizeLift formats the lift value with a correlation color.
func colorizeLift(lift float64) string {
	text := formatRatio(lift)
	switch {
	case lift > 1+liftEpsilon:
		return colorize(colorGreen, text)
	case lift < 1-liftEpsilon:
		return colorize(colorRed, text)
	default:
		return colorize(colorGray, text)
	}
}

// formatRatio renders supports, confidences, and lifts with two decimals.
func formatRatio(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatRelativeTime renders a timestamp as a human-readable distance from
// now, e.g. "3 hours ago".
func FormatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		mins := int(diff.Minutes())
		if mins == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", mins)
	case diff < 24*time.Hour:
		hours := int(diff.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	case diff < 7*24*time.Hour:
		days := int(diff.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	default:
		weeks := int(diff.Hours() / 24 / 7)
		if weeks == 1 {
			return "1 week ago"
		}
		return fmt.Sprintf("%d weeks ago", weeks)
	}
}

// truncate shortens s to maxLen, appending "..." when content is cut.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
