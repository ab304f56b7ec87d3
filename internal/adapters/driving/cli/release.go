package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

var (
	versionHintGerman  string
	versionHintEnglish string
	versionHintJSON    string
	versionPlatform    string
)

var versionCmd = &cobra.Command{
	Use:   "version <app> <versionString>",
	Short: "Create or update an app version with localized release notes",
	Long: `Guarantees that exactly one version with the given version string
exists for the app on each selected platform, then writes the German
and English release notes for it.

A version that already exists is reused. When the store refuses a new
version because one is still active, the active version's string is
changed in place instead.

Release notes come either from --hint-german / --hint-english, or from
--hint with a JSON object containing both a "german" and an "english"
key.`,
	Args: cobra.ExactArgs(2),
	RunE: runVersion,
}

func init() {
	versionCmd.Flags().StringVar(&versionHintGerman, "hint-german", "", "German (de-DE) release-note text")
	versionCmd.Flags().StringVar(&versionHintEnglish, "hint-english", "", "English (en-US) release-note text")
	versionCmd.Flags().StringVar(&versionHintJSON, "hint", "", `release notes as JSON: {"german": "...", "english": "..."}`)
	versionCmd.Flags().StringVar(&versionPlatform, "platform", "", "platform to process: ios, macos, or both")

	rootCmd.AddCommand(versionCmd)
}

// parseHints builds the release notes from the hint flags. The JSON
// form and the per-locale flags are mutually exclusive; the JSON form
// must carry both locales, the per-locale form at least one.
func parseHints() (domain.ReleaseNotes, error) {
	if versionHintJSON != "" {
		if versionHintGerman != "" || versionHintEnglish != "" {
			return domain.ReleaseNotes{}, fmt.Errorf("%w: --hint cannot be combined with --hint-german or --hint-english", domain.ErrInvalidInput)
		}
		return domain.ParseReleaseNotesJSON(versionHintJSON)
	}
	notes := domain.ReleaseNotes{
		German:  versionHintGerman,
		English: versionHintEnglish,
	}
	if notes.IsEmpty() {
		return domain.ReleaseNotes{}, fmt.Errorf("%w: release notes required, pass --hint-german, --hint-english, or --hint", domain.ErrInvalidInput)
	}
	return notes, nil
}

func runVersion(cmd *cobra.Command, args []string) error {
	if appResolver == nil || versionService == nil || releaseNotesService == nil {
		return errors.New("version service not configured")
	}

	notes, err := parseHints()
	if err != nil {
		return err
	}
	platforms, err := platformsFromFlag(versionPlatform)
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
		logger.Debug("reconciling version %s for app %s on %s", versionString, appID, platform)
		versionID, err := versionService.Reconcile(ctx, appID, platform, versionString)
		if err != nil {
			return fmt.Errorf("reconciling version %s: %w", versionString, err)
		}
		if err := releaseNotesService.UpsertAll(ctx, versionID, notes); err != nil {
			return fmt.Errorf("writing release notes: %w", err)
		}
		cmd.Printf("%s: version %s ready with release notes.\n", platform.DisplayName(), versionString)
		return nil
	})
}
