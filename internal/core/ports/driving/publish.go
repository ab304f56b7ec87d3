package driving

import (
	"context"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
)

// AppResolver maps human-facing app identifiers to catalog apps.
type AppResolver interface {
	// Resolve maps a numeric app ID or bundle identifier to the
	// API-native numeric identifier. Numeric input passes through
	// unchanged without a remote call.
	Resolve(ctx context.Context, idOrBundleID string) (string, error)

	// ListApps returns all apps visible to the stored key.
	ListApps(ctx context.Context) ([]domain.App, error)
}

// VersionService reconciles and queries app-store versions.
type VersionService interface {
	// Reconcile guarantees exactly one version exists for
	// (app, platform, versionString) and returns its identifier,
	// creating, finding, or upgrading as the remote state requires.
	Reconcile(ctx context.Context, appID string, platform domain.Platform, versionString string) (string, error)

	// Find returns the version with the exact string on the platform.
	Find(ctx context.Context, appID string, platform domain.Platform, versionString string) (*domain.AppStoreVersion, error)

	// FindEditable returns the platform's version still in
	// preparation, the one a submission can be created for.
	FindEditable(ctx context.Context, appID string, platform domain.Platform) (*domain.AppStoreVersion, error)

	// List returns all versions of the app.
	List(ctx context.Context, appID string) ([]domain.AppStoreVersion, error)
}

// ReleaseNotesService maintains per-locale release-note text.
type ReleaseNotesService interface {
	// Upsert creates or updates the release-note text for one locale.
	Upsert(ctx context.Context, versionID, locale, text string) error

	// UpsertAll writes the fixed locale set (de-DE, en-US) for a run.
	UpsertAll(ctx context.Context, versionID string, notes domain.ReleaseNotes) error

	// List returns the version's localizations.
	List(ctx context.Context, versionID string) ([]domain.VersionLocalization, error)
}

// BuildService selects uploaded builds and links them to versions.
type BuildService interface {
	// NewestBuild returns the most recently uploaded build for the app
	// and platform, or domain.ErrNoBuilds when none exist.
	NewestBuild(ctx context.Context, appID string, platform domain.Platform) (*domain.Build, error)

	// Assign links the build to the version.
	Assign(ctx context.Context, versionID, buildID string) error
}

// SubmissionService submits versions for review.
type SubmissionService interface {
	// Submit attaches the version to the platform's open review
	// submission, creating the submission first when none is open.
	Submit(ctx context.Context, appID string, platform domain.Platform, versionID string) error
}

// CredentialsService manages the stored App Store Connect key material.
type CredentialsService interface {
	// Save persists credentials to the secret store.
	Save(ctx context.Context, creds domain.Credentials) error

	// Load reads credentials from the secret store. Returns
	// domain.ErrCredentialsMissing when required secrets are absent.
	Load(ctx context.Context) (*domain.Credentials, error)

	// Clear removes all stored secrets and reports which accounts
	// actually held one.
	Clear(ctx context.Context) ([]string, error)
}
