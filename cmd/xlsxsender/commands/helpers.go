// Package commands implements the xlsxsender subcommands.
package commands

import (
	"context"

	"github.com/LuanGibin/XlsxSender/cmd/xlsxsender/opts"
	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/LuanGibin/XlsxSender/pkg/userlog"
	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// OptsFactory builds the shared dependencies after flags are parsed.
type OptsFactory func(ctx context.Context) (*opts.RootOpts, error)

// resolveSource returns the source folder: the configured path if set,
// otherwise the interactive picker.
func resolveSource(ctx context.Context, ro *opts.RootOpts) (vfs.Folder, error) {
	if ro.Config.Source != "" {
		return vfs.NewOSFolder(ro.Config.Source)
	}
	return ro.Picker.PickFolder(ctx, "Source folder")
}

// resolveDest returns the destination folder: the explicit flag, then
// the configured path, then the interactive picker.
func resolveDest(ctx context.Context, ro *opts.RootOpts, destFlag string) (vfs.Folder, error) {
	if destFlag != "" {
		return vfs.NewOSFolder(destFlag)
	}
	if ro.Config.Destination != "" {
		return vfs.NewOSFolder(ro.Config.Destination)
	}
	return ro.Picker.PickFolder(ctx, "Destination folder")
}

// selectByName filters entries down to the named files. Every name must
// refer to a scanned entry.
func selectByName(entries []scanner.FileEntry, names []string) ([]scanner.FileEntry, error) {
	byName := make(map[string]scanner.FileEntry, len(entries))
	for _, e := range entries {
		byName[e.Name] = e
	}

	selected := make([]scanner.FileEntry, 0, len(names))
	for _, name := range names {
		e, ok := byName[name]
		if !ok {
			return nil, errors.Errorf("no unhandled file named %q in the source folder", name)
		}
		selected = append(selected, e)
	}
	return selected, nil
}

// selectInteractive shows a multiselect over the scanned entries. A
// cancelled prompt maps to vfs.ErrCancelled.
func selectInteractive(entries []scanner.FileEntry) ([]scanner.FileEntry, error) {
	options := make([]string, 0, len(entries))
	byOption := make(map[string]scanner.FileEntry, len(entries))
	for _, e := range entries {
		opt := userlog.FormatEntryLine(e.Name, e.Size, e.ModifiedAt, e.LastModifiedBy)
		options = append(options, opt)
		byOption[opt] = e
	}

	chosen, err := pterm.DefaultInteractiveMultiselect.
		WithOptions(options).
		WithDefaultText("Select files").
		Show()
	if err != nil {
		return nil, errors.Errorf("%w: %w", vfs.ErrCancelled, err)
	}

	selected := make([]scanner.FileEntry, 0, len(chosen))
	for _, opt := range chosen {
		selected = append(selected, byOption[opt])
	}
	return selected, nil
}

// pickEntries resolves the selection: explicit names if given, otherwise
// the interactive multiselect.
func pickEntries(entries []scanner.FileEntry, names []string) ([]scanner.FileEntry, error) {
	if len(names) > 0 {
		return selectByName(entries, names)
	}
	return selectInteractive(entries)
}
