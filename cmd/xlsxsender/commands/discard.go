package commands

import (
	"github.com/LuanGibin/XlsxSender/pkg/operation"
	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/LuanGibin/XlsxSender/pkg/userlog"
	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewDiscardCmd creates the discard command.
func NewDiscardCmd(newOpts OptsFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "discard [file...]",
		Short: "Mark selected files discarded without copying them",
		Long: `Discard records the selected files as "discarded" in the status sidecar so
later scans skip them. Nothing is copied. With no file arguments an
interactive selection is shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := newOpts(ctx)
			if err != nil {
				return err
			}

			source, err := resolveSource(ctx, ro)
			if err != nil {
				if errors.Is(err, vfs.ErrCancelled) {
					return nil
				}
				return err
			}

			entries, err := ro.Scanner.Scan(ctx, source)
			if err != nil {
				return errors.Errorf("scanning %s: %w", source.Name(), err)
			}
			if len(entries) == 0 {
				pterm.Info.Println("No unhandled files found.")
				return nil
			}

			selected, err := pickEntries(entries, args)
			if err != nil {
				if errors.Is(err, vfs.ErrCancelled) {
					return nil
				}
				return err
			}
			if len(selected) == 0 {
				pterm.Info.Println("Nothing selected.")
				return nil
			}

			op := operation.NewDiscardOperation(operation.Options{
				Store:   ro.Store,
				Source:  source,
				Entries: selected,
				Observer: func(entry scanner.FileEntry, _ error) {
					ro.UserLogger.LogFileChange(userlog.FileChange{Type: userlog.FileDiscarded, Name: entry.Name})
				},
			})

			if err := ro.Runner.Run(ctx, op); err != nil {
				return err
			}
			pterm.Success.Printfln("Discarded %d file(s).", len(selected))
			return nil
		},
	}
}
