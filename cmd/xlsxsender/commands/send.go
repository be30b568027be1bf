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

// NewSendCmd creates the send command.
func NewSendCmd(newOpts OptsFactory) *cobra.Command {
	var destDir string

	cmd := &cobra.Command{
		Use:   "send [file...]",
		Short: "Copy selected files to the destination folder and mark them sent",
		Long: `Send copies the selected unhandled files from the source folder into the
destination folder and records them as "sent" in the status sidecar. With no
file arguments an interactive selection is shown.

Files are copied independently: one failed copy does not stop the rest, and
every attempted file is marked sent regardless of its individual outcome.`,
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

			dest, err := resolveDest(ctx, ro, destDir)
			if err != nil {
				if errors.Is(err, vfs.ErrCancelled) {
					return nil
				}
				return err
			}

			op := operation.NewSendOperation(operation.Options{
				Store:   ro.Store,
				Source:  source,
				Dest:    dest,
				Entries: selected,
				Observer: func(entry scanner.FileEntry, copyErr error) {
					change := userlog.FileChange{Type: userlog.FileCopied, Name: entry.Name}
					if copyErr != nil {
						change = userlog.FileChange{Type: userlog.FileCopyFailed, Name: entry.Name, Err: copyErr}
					}
					ro.UserLogger.LogFileChange(change)
				},
			})

			runErr := ro.Runner.Run(ctx, op)
			result := op.Result()
			ro.UserLogger.LogSendSummary(result.Copied, result.Failed, result.NotPersisted)

			if runErr != nil {
				return runErr
			}
			if result.Failed > 0 {
				return errors.Errorf("%d of %d copies failed", result.Failed, len(selected))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&destDir, "dest", "t", "", "destination folder (overrides config)")
	return cmd
}
