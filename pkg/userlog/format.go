package userlog

import (
	"fmt"
	"time"

	"github.com/fatih/color"
)

// FormatSendSummary formats the copied/failed counts of a send batch.
func FormatSendSummary(copied, failed int) string {
	summary := color.GreenString("%d copied", copied)
	if failed > 0 {
		summary += ", " + color.RedString("%d failed", failed)
	}
	return summary
}

// FormatEntryLine formats one scan result row for display.
func FormatEntryLine(name string, size int64, modified time.Time, author string) string {
	line := fmt.Sprintf("%-40s %10s  %s", name, FormatSize(size), modified.Format("2006-01-02 15:04"))
	if author != "" {
		line += "  " + color.CyanString(author)
	}
	return line
}

// FormatSize renders a byte count in a compact human-readable form.
func FormatSize(size int64) string {
	switch {
	case size >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(size)/(1<<20))
	case size >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(size)/(1<<10))
	default:
		return fmt.Sprintf("%d B", size)
	}
}
