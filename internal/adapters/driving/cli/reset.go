package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/safedrive/internal/core/domain"
)

// Overridden in tests.
var (
	now        = time.Now
	stdinIsTTY = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Move the data file aside and start with no records",
	Long: `Move the data file to <path>.bak-<timestamp> so the next run starts with
no records. Use this when the data file can no longer be read.

The file is never deleted. Confirmation is asked for interactively; pass
--yes when running without a terminal.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(resetCmd)
}

func runReset(cmd *cobra.Command, _ []string) error {
	settings, err := currentSettings()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if !settings.Backend.Persistent() {
		fmt.Fprintf(out, "The %s backend keeps nothing on disk; nothing to reset.\n", settings.Backend)
		return nil
	}

	path := settings.RecordPath()
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(out, "%s does not exist; nothing to reset.\n", path)
			return nil
		}
		return domain.NewIOFailure("reset", path, err)
	}

	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		if !stdinIsTTY() {
			return fmt.Errorf("reset %s: %w (pass --yes to confirm)", path, domain.ErrNotConfirmed)
		}
		fmt.Fprintf(out, "Move %s aside and start with no records? [y/N]: ", path)
		if !confirmed(bufio.NewReader(cmd.InOrStdin())) {
			fmt.Fprintln(out, "Reset cancelled.")
			return nil
		}
	}

	backup := fmt.Sprintf("%s.bak-%s", path, now().Format("20060102-150405"))
	if err := os.Rename(path, backup); err != nil {
		return domain.NewIOFailure("reset", path, err)
	}

	fmt.Fprintf(out, "Moved %s to %s\n", path, backup)
	return nil
}

func confirmed(reader *bufio.Reader) bool {
	answer, _ := reader.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
