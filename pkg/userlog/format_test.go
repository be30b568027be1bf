package userlog

import (
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestFormatSendSummary(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	tests := []struct {
		name   string
		copied int
		failed int
		want   string
	}{
		{name: "all_copied", copied: 3, failed: 0, want: "3 copied"},
		{name: "partial_failure", copied: 1, failed: 1, want: "1 copied, 1 failed"},
		{name: "nothing_copied", copied: 0, failed: 2, want: "0 copied, 2 failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSendSummary(tt.copied, tt.failed))
		})
	}
}

func TestFormatEntryLine(t *testing.T) {
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	modified := time.Date(2023, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("with_author", func(t *testing.T) {
		line := FormatEntryLine("report.xlsx", 2048, modified, "Ada")
		assert.Contains(t, line, "report.xlsx")
		assert.Contains(t, line, "2.0 KiB")
		assert.Contains(t, line, "2023-06-01 09:30")
		assert.Contains(t, line, "Ada")
	})

	t.Run("without_author", func(t *testing.T) {
		line := FormatEntryLine("report.xlsx", 100, modified, "")
		assert.NotContains(t, line, "  \x1b")
		assert.Contains(t, line, "100 B")
	})
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatSize(512))
	assert.Equal(t, "1.0 KiB", FormatSize(1024))
	assert.Equal(t, "2.5 MiB", FormatSize(5<<20/2))
}
