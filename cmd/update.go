package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquest/internal/selfupdate"
)

const updateTimeout = 2 * time.Minute

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update mathquest to the latest release",
	RunE:  runUpdate,
}

func init() {
	updateCmd.Flags().String("version", "", "Update to a specific release tag instead of the latest")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("version")

	ctx, cancel := context.WithTimeout(cmd.Context(), updateTimeout)
	defer cancel()

	checker := selfupdate.NewChecker(selfupdate.WithTimeout(updateTimeout))
	err := checker.Update(ctx, &selfupdate.UpdateInput{
		CurrentVersion: resolvedVersion(),
		TargetVersion:  target,
	}, func(p selfupdate.UpdateProgress) {
		cmd.Println(p.Message)
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, selfupdate.ErrDevBuild):
		cmd.Println("Cannot update a development build. Install a release build first.")
		return nil
	case errors.Is(err, selfupdate.ErrAlreadyLatest):
		cmd.Println("Already running the latest version.")
		return nil
	case os.IsPermission(err):
		return fmt.Errorf("%w\n\nTry running: sudo mathquest update", err)
	}
	return err
}
