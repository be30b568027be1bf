package commands

import (
	"context"
	"strings"

	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// TerminalPicker asks for a folder path on the terminal. Empty input or
// an aborted prompt counts as cancellation.
type TerminalPicker struct{}

// NewTerminalPicker creates a terminal-backed folder picker.
func NewTerminalPicker() *TerminalPicker {
	return &TerminalPicker{}
}

// PickFolder prompts for a directory path and wraps it.
func (p *TerminalPicker) PickFolder(ctx context.Context, prompt string) (vfs.Folder, error) {
	input, err := pterm.DefaultInteractiveTextInput.Show(prompt)
	if err != nil {
		return nil, errors.Errorf("%w: %w", vfs.ErrCancelled, err)
	}

	path := strings.TrimSpace(input)
	if path == "" {
		return nil, vfs.ErrCancelled
	}
	return vfs.NewOSFolder(path)
}
