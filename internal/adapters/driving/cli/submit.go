package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

var submitPlatform string

var submitCmd = &cobra.Command{
	Use:   "submit <app>",
	Short: "Submit the version in preparation for App Review",
	Long: `Attaches the app's editable version, the one still in preparation, to
an open review submission. A submission already waiting on the platform
is reused; otherwise a new one is created.`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().StringVar(&submitPlatform, "platform", "", "platform to process: ios, macos, or both")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	if appResolver == nil || versionService == nil || submissionService == nil {
		return errors.New("submission service not configured")
	}

	platforms, err := platformsFromFlag(submitPlatform)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	appID, err := appResolver.Resolve(ctx, args[0])
	if err != nil {
		return actionable(fmt.Errorf("resolving app %q: %w", args[0], err))
	}

	return runForPlatforms(cmd, platforms, func(platform domain.Platform) error {
		version, err := versionService.FindEditable(ctx, appID, platform)
		if err != nil {
			return fmt.Errorf("finding editable version: %w", err)
		}
		logger.Debug("submitting version %s (%s) on %s", version.VersionString, version.ID, platform)
		if err := submissionService.Submit(ctx, appID, platform, version.ID); err != nil {
			return fmt.Errorf("submitting version %s: %w", version.VersionString, err)
		}
		cmd.Printf("%s: version %s submitted for review.\n", platform.DisplayName(), version.VersionString)
		return nil
	})
}
