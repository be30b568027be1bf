// Package userlog prints user-facing feedback for file operations,
// mirroring every message into the structured log.
package userlog

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
)

// 🎨 FileChangeType represents what happened to a file
type FileChangeType int

const (
	FileCopied FileChangeType = iota
	FileCopyFailed
	FileDiscarded
	FileSkipped
)

// 🖼️ FileChange represents one file outcome to report
type FileChange struct {
	Type   FileChangeType
	Name   string
	Detail string
	Err    error
}

// 📢 UserLogger provides user-friendly feedback about operations
type UserLogger struct {
	log zerolog.Logger
}

// NewUserLogger creates a user logger bound to the context's structured
// logger.
func NewUserLogger(ctx context.Context) *UserLogger {
	return &UserLogger{
		log: *zerolog.Ctx(ctx),
	}
}

// LogFileChange prints one file outcome with appropriate prefix and
// mirrors it to the structured log.
func (u *UserLogger) LogFileChange(change FileChange) {
	var action string
	var printer *pterm.PrefixPrinter
	switch change.Type {
	case FileCopied:
		action = "Sent"
		printer = pterm.Success.WithPrefix(pterm.Prefix{Text: "📤"})
	case FileCopyFailed:
		action = "Failed"
		printer = pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"})
	case FileDiscarded:
		action = "Discarded"
		printer = pterm.Warning.WithPrefix(pterm.Prefix{Text: "🗑️"})
	case FileSkipped:
		action = "Skipped"
		printer = pterm.Debug.WithPrefix(pterm.Prefix{Text: "⏭️"})
	}

	msg := fmt.Sprintf("%s %s", action, change.Name)
	if change.Detail != "" {
		msg += fmt.Sprintf(" (%s)", change.Detail)
	}

	printer.Println(msg)
	if change.Err != nil {
		pterm.Error.Println(change.Err)
		u.log.Error().Err(change.Err).Msg(msg)
		return
	}
	u.log.Info().Msg(msg)
}

// LogSendSummary prints the batch summary of a send.
func (u *UserLogger) LogSendSummary(copied, failed int, notPersisted bool) {
	msg := FormatSendSummary(copied, failed)
	if failed > 0 {
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "📊"}).Println(msg)
	} else {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "📊"}).Println(msg)
	}
	u.log.Info().Int("copied", copied).Int("failed", failed).Msg("send finished")

	if notPersisted {
		warn := "status not persisted: handled files will reappear on the next scan"
		pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(warn)
		u.log.Warn().Msg(warn)
	}
}

// LogValidation prints a success or failure message.
func (u *UserLogger) LogValidation(valid bool, description string, err error) {
	if valid {
		pterm.Success.WithPrefix(pterm.Prefix{Text: "✅"}).Println(description)
		u.log.Info().Msg(description)
		return
	}
	if err != nil {
		pterm.Error.WithPrefix(pterm.Prefix{Text: "❌"}).Println(description)
		pterm.Error.Println(err)
		u.log.Error().Err(err).Msg(description)
		return
	}
	pterm.Warning.WithPrefix(pterm.Prefix{Text: "⚠️"}).Println(description)
	u.log.Warn().Msg(description)
}
