// Package cli implements the cobra command surface of Ascribe.
//
// Commands consume the driving ports only; services are injected once
// from main via SetServices. Every command fails with a clear message
// when its service is not configured, which keeps the package testable
// with mock ports.
package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driving"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Injected services. Nil until SetServices runs.
var (
	appResolver         driving.AppResolver
	versionService      driving.VersionService
	releaseNotesService driving.ReleaseNotesService
	buildService        driving.BuildService
	submissionService   driving.SubmissionService
	credentialsService  driving.CredentialsService
	configStore         driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "ascribe",
	Short: "Publish app versions and release notes to App Store Connect",
	Long: `Ascribe automates the App Store Connect publishing workflow:
storing API credentials, creating or updating app versions and their
localized release notes, assigning builds, and submitting for review.

Run 'ascribe init' once to store your API key, then:

  ascribe version com.example.myapp 2.1.0 --hint-english "Bug fixes"
  ascribe select-build com.example.myapp 2.1.0
  ascribe submit com.example.myapp`,
	SilenceUsage: true,
	PersistentPreRun: func(*cobra.Command, []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().String("config-dir", "", "directory for the config file (default ~/.ascribe)")
}

// EarlyConfigDir extracts --config-dir from raw arguments. main calls
// this before cobra parses anything so the config store can be placed
// first.
func EarlyConfigDir(args []string) string {
	for i, arg := range args {
		if arg == "--config-dir" && i+1 < len(args) {
			return args[i+1]
		}
		if strings.HasPrefix(arg, "--config-dir=") {
			return strings.TrimPrefix(arg, "--config-dir=")
		}
	}
	return ""
}

// Services bundles everything the commands need.
type Services struct {
	AppResolver  driving.AppResolver
	Versions     driving.VersionService
	ReleaseNotes driving.ReleaseNotesService
	Builds       driving.BuildService
	Submissions  driving.SubmissionService
	Credentials  driving.CredentialsService
	Config       driven.ConfigStore
}

// SetServices injects the service implementations the commands use.
func SetServices(s Services) {
	appResolver = s.AppResolver
	versionService = s.Versions
	releaseNotesService = s.ReleaseNotes
	buildService = s.Builds
	submissionService = s.Submissions
	credentialsService = s.Credentials
	configStore = s.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// actionable turns domain errors the user can act on into messages
// that name the next command to run.
func actionable(err error) error {
	switch {
	case errors.Is(err, domain.ErrCredentialsMissing):
		return fmt.Errorf("%w\nrun 'ascribe init' to store your App Store Connect API key", err)
	case errors.Is(err, domain.ErrBuildMissing):
		return fmt.Errorf("%w\nrun 'ascribe select-build' to attach the newest build first", err)
	case errors.Is(err, domain.ErrNoBuilds):
		return fmt.Errorf("%w\nupload a build with Xcode or your CI pipeline first", err)
	}
	return err
}

// platformsFromFlag expands the --platform value into the ordered
// platform list a command processes. An empty value falls back to the
// configured default and finally to iOS.
func platformsFromFlag(value string) ([]domain.Platform, error) {
	if value == "" && configStore != nil {
		value = configStore.GetString("defaults.platform")
	}
	if value == "" {
		value = "ios"
	}
	if value == "both" {
		return []domain.Platform{domain.PlatformIOS, domain.PlatformMacOS}, nil
	}
	platform, err := domain.ParsePlatform(value)
	if err != nil {
		return nil, err
	}
	return []domain.Platform{platform}, nil
}

// runForPlatforms runs fn for each platform strictly in order. A
// failure on one platform is reported but does not prevent the attempt
// on the next; the combined error carries every per-platform failure.
func runForPlatforms(cmd *cobra.Command, platforms []domain.Platform, fn func(domain.Platform) error) error {
	var errs []error
	for _, platform := range platforms {
		if err := fn(platform); err != nil {
			cmd.PrintErrf("%s: %v\n", platform.DisplayName(), actionable(err))
			errs = append(errs, fmt.Errorf("%s: %w", platform.DisplayName(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%d of %d platforms failed: %w", len(errs), len(platforms), errors.Join(errs...))
	}
	return nil
}
