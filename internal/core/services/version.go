package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driving"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

// Ensure VersionService implements the interface.
var _ driving.VersionService = (*VersionService)(nil)

// VersionService reconciles app-store versions against the remote
// catalog. The remote API offers no atomic version upsert and its
// conflict semantics differ depending on whether the app already has a
// version progressing through review; Reconcile normalises both cases
// into "return a version ID localizations and builds can attach to".
type VersionService struct {
	client driven.ConnectClient
}

// NewVersionService creates a new version service.
func NewVersionService(client driven.ConnectClient) *VersionService {
	return &VersionService{client: client}
}

// Reconcile guarantees exactly one version exists for (app, platform,
// versionString) and returns its identifier. Attempted in order:
//
//  1. create the version; done on success
//  2. on a duplicate conflict, find the existing exact match
//  3. on a state conflict, rewrite the active version's string in place
//
// Only these two conflicts are intercepted; every other failure
// propagates unchanged.
func (s *VersionService) Reconcile(
	ctx context.Context,
	appID string,
	platform domain.Platform,
	versionString string,
) (string, error) {
	if versionString == "" {
		return "", fmt.Errorf("%w: empty version string", domain.ErrInvalidInput)
	}

	created, err := s.client.CreateVersion(ctx, appID, platform, versionString)
	switch {
	case err == nil:
		logger.Debug("created version %s (%s %s)", created.ID, platform.DisplayName(), versionString)
		return created.ID, nil
	case errors.Is(err, domain.ErrVersionExists):
		logger.Debug("version %s already exists on %s, reusing it", versionString, platform.DisplayName())
		return s.findExisting(ctx, appID, platform, versionString)
	case errors.Is(err, domain.ErrVersionNotPermitted):
		logger.Debug("app state forbids a new %s version, upgrading the active one", platform.DisplayName())
		return s.upgradeActive(ctx, appID, platform, versionString)
	default:
		return "", fmt.Errorf("create version %s: %w", versionString, err)
	}
}

// findExisting resolves the duplicate conflict: the version with the
// requested string must already be listed. An empty result contradicts
// the conflict signal and is a hard error, never retried.
func (s *VersionService) findExisting(
	ctx context.Context,
	appID string,
	platform domain.Platform,
	versionString string,
) (string, error) {
	versions, err := s.client.ListVersions(ctx, appID, driven.VersionFilter{
		Platform:      platform,
		VersionString: versionString,
	})
	if err != nil {
		return "", fmt.Errorf("list versions: %w", err)
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("%w: %s on %s", domain.ErrVersionVanished, versionString, platform.DisplayName())
	}
	return versions[0].ID, nil
}

// upgradeActive resolves the state conflict: find the version still
// progressing through review and rewrite its string to the requested
// value. The identifier stays the same, so everything already attached
// to the version survives the upgrade.
func (s *VersionService) upgradeActive(
	ctx context.Context,
	appID string,
	platform domain.Platform,
	versionString string,
) (string, error) {
	versions, err := s.client.ListVersions(ctx, appID, driven.VersionFilter{Platform: platform})
	if err != nil {
		return "", fmt.Errorf("list versions: %w", err)
	}

	for _, v := range versions {
		if !v.State.IsActive() {
			continue
		}
		updated, err := s.client.UpdateVersionString(ctx, v.ID, versionString)
		if err != nil {
			return "", fmt.Errorf("upgrade version %s to %s: %w", v.ID, versionString, err)
		}
		logger.Debug("upgraded version %s from %s to %s", v.ID, v.VersionString, updated.VersionString)
		return updated.ID, nil
	}

	return "", fmt.Errorf("%w: %s", domain.ErrNoActiveVersion, platform.DisplayName())
}

// Find returns the version with the exact string on the platform.
func (s *VersionService) Find(
	ctx context.Context,
	appID string,
	platform domain.Platform,
	versionString string,
) (*domain.AppStoreVersion, error) {
	versions, err := s.client.ListVersions(ctx, appID, driven.VersionFilter{
		Platform:      platform,
		VersionString: versionString,
	})
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	if len(versions) == 0 {
		return nil, fmt.Errorf("%w: %s on %s", domain.ErrVersionNotFound, versionString, platform.DisplayName())
	}
	return &versions[0], nil
}

// FindEditable returns the platform's version in preparation, the only
// state a review submission can pick a version up from.
func (s *VersionService) FindEditable(
	ctx context.Context,
	appID string,
	platform domain.Platform,
) (*domain.AppStoreVersion, error) {
	versions, err := s.client.ListVersions(ctx, appID, driven.VersionFilter{Platform: platform})
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	for _, v := range versions {
		if v.State == domain.VersionStatePrepareForSubmission {
			return &v, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrNoSubmittableVersion, platform.DisplayName())
}

// List returns all versions of the app across platforms.
func (s *VersionService) List(ctx context.Context, appID string) ([]domain.AppStoreVersion, error) {
	return s.client.ListVersions(ctx, appID, driven.VersionFilter{})
}
