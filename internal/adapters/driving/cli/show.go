package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <app>",
	Short: "Show all versions of an app and their states",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if appResolver == nil || versionService == nil {
		return errors.New("version service not configured")
	}

	ctx := cmd.Context()
	appID, err := appResolver.Resolve(ctx, args[0])
	if err != nil {
		return actionable(fmt.Errorf("resolving app %q: %w", args[0], err))
	}

	versions, err := versionService.List(ctx, appID)
	if err != nil {
		return actionable(fmt.Errorf("listing versions: %w", err))
	}
	if len(versions) == 0 {
		cmd.Println("No versions found.")
		return nil
	}

	cmd.Printf("%-10s %-12s %-28s %s\n", "PLATFORM", "VERSION", "STATE", "LOCALES")
	for _, version := range versions {
		locales := "-"
		if releaseNotesService != nil {
			if localizations, err := releaseNotesService.List(ctx, version.ID); err == nil && len(localizations) > 0 {
				names := make([]string, 0, len(localizations))
				for _, localization := range localizations {
					names = append(names, localization.Locale)
				}
				locales = strings.Join(names, ", ")
			}
		}
		cmd.Printf("%-10s %-12s %-28s %s\n", version.Platform.DisplayName(), version.VersionString, version.State, locales)
	}
	return nil
}
