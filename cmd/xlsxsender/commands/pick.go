package commands

import (
	"context"

	"github.com/LuanGibin/XlsxSender/cmd/xlsxsender/opts"
	"github.com/LuanGibin/XlsxSender/pkg/operation"
	"github.com/LuanGibin/XlsxSender/pkg/scanner"
	"github.com/LuanGibin/XlsxSender/pkg/session"
	"github.com/LuanGibin/XlsxSender/pkg/status"
	"github.com/LuanGibin/XlsxSender/pkg/userlog"
	"github.com/LuanGibin/XlsxSender/pkg/vfs"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

const (
	actionSend    = "send to a destination folder"
	actionDiscard = "discard"
	actionQuit    = "quit"
)

// NewPickCmd creates the interactive pick command.
func NewPickCmd(newOpts OptsFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Interactively select files and send or discard them",
		Long: `Pick runs the interactive loop: choose a source folder, select files from
the unhandled candidates, then send or discard the selection. The list
refreshes after each action until nothing is left or you quit. Cancelling
any prompt leaves everything untouched.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ro, err := newOpts(ctx)
			if err != nil {
				return err
			}

			err = runPickLoop(ctx, ro)
			if errors.Is(err, vfs.ErrCancelled) {
				return nil
			}
			return err
		},
	}
}

// runPickLoop drives scan/select/act rounds until the folder has no
// unhandled files left or the user quits.
func runPickLoop(ctx context.Context, ro *opts.RootOpts) error {
	source, err := resolveSource(ctx, ro)
	if err != nil {
		return err
	}

	sess := session.New()
	for {
		entries, err := ro.Scanner.Scan(ctx, source)
		if err != nil {
			return errors.Errorf("scanning %s: %w", source.Name(), err)
		}
		sess.SetEntries(entries)

		if len(sess.Entries()) == 0 {
			pterm.Info.Println("No unhandled files left.")
			return nil
		}

		selected, err := selectInteractive(sess.Entries())
		if err != nil {
			return err
		}
		for _, e := range selected {
			sess.Select(e.Key())
		}
		if len(sess.Selected()) == 0 {
			pterm.Info.Println("Nothing selected.")
			return nil
		}

		action, err := pterm.DefaultInteractiveSelect.
			WithOptions([]string{actionSend, actionDiscard, actionQuit}).
			WithDefaultText("What should happen to the selection?").
			Show()
		if err != nil {
			return errors.Errorf("%w: %w", vfs.ErrCancelled, err)
		}

		switch action {
		case actionSend:
			err := runSend(ctx, ro, source, sess)
			if errors.Is(err, vfs.ErrCancelled) {
				// Aborted destination pick: list and selection stay intact.
				continue
			}
			if err != nil {
				return err
			}
		case actionDiscard:
			if err := runDiscard(ctx, ro, source, sess); err != nil {
				return err
			}
		case actionQuit:
			return nil
		}
	}
}

func runSend(ctx context.Context, ro *opts.RootOpts, source vfs.Folder, sess *session.Session) error {
	dest, err := resolveDest(ctx, ro, "")
	if err != nil {
		return err
	}

	selected := sess.Selected()
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

	// A failed status save is already summarized above; anything else ends
	// the loop.
	if runErr != nil && !errors.Is(runErr, status.ErrNotPersisted) {
		return runErr
	}

	sess.Prune(selected)
	return nil
}

func runDiscard(ctx context.Context, ro *opts.RootOpts, source vfs.Folder, sess *session.Session) error {
	selected := sess.Selected()
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

	sess.Prune(selected)
	return nil
}
