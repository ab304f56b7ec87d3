package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

var selectBuildPlatform string

var selectBuildCmd = &cobra.Command{
	Use:   "select-build <app> <versionString>",
	Short: "Attach the newest uploaded build to a version",
	Long: `Finds the most recently uploaded build for the app and attaches it to
the version with the given version string. Builds still processing are
selected like any other; App Store Connect rejects them at submission
time if processing has not finished.`,
	Args: cobra.ExactArgs(2),
	RunE: runSelectBuild,
}

func init() {
	selectBuildCmd.Flags().StringVar(&selectBuildPlatform, "platform", "", "platform to process: ios, macos, or both")
	rootCmd.AddCommand(selectBuildCmd)
}

func runSelectBuild(cmd *cobra.Command, args []string) error {
	if appResolver == nil || versionService == nil || buildService == nil {
		return errors.New("build service not configured")
	}

	platforms, err := platformsFromFlag(selectBuildPlatform)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	appID, err := appResolver.Resolve(ctx, args[0])
	if err != nil {
		return actionable(fmt.Errorf("resolving app %q: %w", args[0], err))
	}
	versionString := args[1]

	return runForPlatforms(cmd, platforms, func(platform domain.Platform) error {
		version, err := versionService.Find(ctx, appID, platform, versionString)
		if err != nil {
			return fmt.Errorf("finding version %s: %w", versionString, err)
		}
		build, err := buildService.NewestBuild(ctx, appID, platform)
		if err != nil {
			return fmt.Errorf("finding newest build: %w", err)
		}
		logger.Debug("assigning build %s (%s) to version %s", build.ID, build.Version, version.ID)
		if err := buildService.Assign(ctx, version.ID, build.ID); err != nil {
			return fmt.Errorf("assigning build %s: %w", build.Version, err)
		}
		cmd.Printf("%s: attached build %s (uploaded %s) to version %s.\n",
			platform.DisplayName(), build.Version, build.UploadedDate.Format("2006-01-02 15:04"), versionString)
		return nil
	})
}
