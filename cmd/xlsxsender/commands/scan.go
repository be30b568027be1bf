package commands

import (
	"github.com/LuanGibin/XlsxSender/pkg/userlog"
	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

// NewScanCmd creates the scan command.
func NewScanCmd(newOpts OptsFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "List unhandled spreadsheet files in the source folder",
		Long: `Scan enumerates the source folder and lists the spreadsheet files that
have not been sent or discarded yet, newest first.`,
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

			for _, e := range entries {
				pterm.Println(userlog.FormatEntryLine(e.Name, e.Size, e.ModifiedAt, e.LastModifiedBy))
			}
			pterm.Info.Printfln("%d unhandled file(s) in %s", len(entries), source.Name())
			return nil
		},
	}
}
