package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var listAppsCmd = &cobra.Command{
	Use:   "list-apps",
	Short: "List all apps visible to the stored API key",
	Args:  cobra.NoArgs,
	RunE:  runListApps,
}

func init() {
	rootCmd.AddCommand(listAppsCmd)
}

func runListApps(cmd *cobra.Command, _ []string) error {
	if appResolver == nil {
		return errors.New("app resolver not configured")
	}

	apps, err := appResolver.ListApps(cmd.Context())
	if err != nil {
		return actionable(fmt.Errorf("listing apps: %w", err))
	}
	if len(apps) == 0 {
		cmd.Println("No apps visible to this key.")
		return nil
	}

	cmd.Printf("%-12s %-36s %s\n", "ID", "BUNDLE ID", "NAME")
	for _, app := range apps {
		cmd.Printf("%-12s %-36s %s\n", app.ID, app.BundleID, app.Name)
	}
	return nil
}
