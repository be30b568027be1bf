package main

import (
	"context"
	"os"

	"github.com/LuanGibin/XlsxSender/cmd/xlsxsender/commands"
	"github.com/LuanGibin/XlsxSender/pkg/userlog"
	"github.com/spf13/cobra"
)

func main() {
	ctx := setupLogging(context.Background())

	rootCmd := &cobra.Command{
		Use:   "xlsxsender",
		Short: "Pick spreadsheet files from a folder and send or discard them",
		Long: `xlsxsender scans a source folder for .xlsx files that have not been
handled yet, lets you select a subset, and either copies the selection to a
destination folder (marking the files "sent") or dismisses it (marking them
"discarded"). Handled files are recorded in a small JSON sidecar inside the
source folder so that later scans skip them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	addRootFlags(rootCmd)

	rootCmd.AddCommand(
		commands.NewScanCmd(newRootOpts),
		commands.NewSendCmd(newRootOpts),
		commands.NewDiscardCmd(newRootOpts),
		commands.NewPickCmd(newRootOpts),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userlog.NewUserLogger(ctx).LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
