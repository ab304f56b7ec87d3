package driven

import (
	"context"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
)

// AppFilter narrows an app listing.
type AppFilter struct {
	// BundleID filters to apps with this exact bundle identifier.
	BundleID string
}

// VersionFilter narrows a version listing for one app.
type VersionFilter struct {
	// Platform filters to versions for this platform.
	Platform domain.Platform
	// VersionString filters to versions with this exact string.
	VersionString string
}

// ConnectClient abstracts the App Store Connect REST API so the core
// services can be exercised against a stand-in implementation. The
// production adapter performs authenticated JSON:API calls; beyond the
// interface the core treats the remote system as opaque.
//
// Error contract: implementations classify version-creation conflicts
// into domain.ErrVersionExists (duplicate version string) and
// domain.ErrVersionNotPermitted (active version blocks creation),
// wrapped so errors.Is matches. CreateSubmissionItem maps the
// missing-build rejection onto domain.ErrBuildMissing. Every other
// remote failure propagates with its detail preserved.
type ConnectClient interface {
	// ListApps returns catalog apps, optionally filtered.
	ListApps(ctx context.Context, filter AppFilter) ([]domain.App, error)

	// ListVersions returns the app's versions, optionally filtered.
	ListVersions(ctx context.Context, appID string, filter VersionFilter) ([]domain.AppStoreVersion, error)

	// CreateVersion creates a new version for the app and platform.
	CreateVersion(ctx context.Context, appID string, platform domain.Platform, versionString string) (*domain.AppStoreVersion, error)

	// UpdateVersionString rewrites an existing version's string.
	UpdateVersionString(ctx context.Context, versionID, versionString string) (*domain.AppStoreVersion, error)

	// ListLocalizations returns the version's release-note localizations.
	ListLocalizations(ctx context.Context, versionID string) ([]domain.VersionLocalization, error)

	// CreateLocalization creates release-note text for a locale.
	CreateLocalization(ctx context.Context, versionID, locale, whatsNew string) (*domain.VersionLocalization, error)

	// UpdateLocalization replaces the text of an existing localization.
	UpdateLocalization(ctx context.Context, localizationID, whatsNew string) (*domain.VersionLocalization, error)

	// ListBuilds returns builds for the app and platform, newest first.
	ListBuilds(ctx context.Context, appID string, platform domain.Platform, limit int) ([]domain.Build, error)

	// AssignBuild links a build to a version.
	AssignBuild(ctx context.Context, versionID, buildID string) error

	// ListSubmissions returns review submissions for the app and platform.
	ListSubmissions(ctx context.Context, appID string, platform domain.Platform) ([]domain.ReviewSubmission, error)

	// CreateSubmission creates a review submission container.
	CreateSubmission(ctx context.Context, appID string, platform domain.Platform) (*domain.ReviewSubmission, error)

	// CreateSubmissionItem attaches a version to a submission.
	CreateSubmissionItem(ctx context.Context, submissionID, versionID string) error
}

// CredentialsSource supplies the API key material the remote adapter
// signs requests with. Implemented by the credentials service so the
// adapter stays decoupled from how secrets are stored.
type CredentialsSource interface {
	Credentials(ctx context.Context) (*domain.Credentials, error)
}
