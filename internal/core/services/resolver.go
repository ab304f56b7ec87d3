package services

import (
	"context"
	"fmt"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driving"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

// Ensure AppResolverService implements the interface.
var _ driving.AppResolver = (*AppResolverService)(nil)

// AppResolverService maps bundle identifiers to numeric app IDs.
type AppResolverService struct {
	client driven.ConnectClient
}

// NewAppResolverService creates a new app resolver.
func NewAppResolverService(client driven.ConnectClient) *AppResolverService {
	return &AppResolverService{client: client}
}

// Resolve maps a bundle identifier to its numeric app ID via a catalog
// lookup. Input without a dot is already a numeric ID and passes
// through without a remote call.
func (s *AppResolverService) Resolve(ctx context.Context, idOrBundleID string) (string, error) {
	if idOrBundleID == "" {
		return "", fmt.Errorf("%w: empty app identifier", domain.ErrInvalidInput)
	}
	if !domain.IsBundleID(idOrBundleID) {
		return idOrBundleID, nil
	}

	apps, err := s.client.ListApps(ctx, driven.AppFilter{BundleID: idOrBundleID})
	if err != nil {
		return "", fmt.Errorf("look up bundle ID %q: %w", idOrBundleID, err)
	}
	if len(apps) == 0 {
		return "", fmt.Errorf("%w: no app with bundle ID %q", domain.ErrAppNotFound, idOrBundleID)
	}

	logger.Debug("resolved bundle ID %s to app %s", idOrBundleID, apps[0].ID)
	return apps[0].ID, nil
}

// ListApps returns all apps visible to the stored key.
func (s *AppResolverService) ListApps(ctx context.Context) ([]domain.App, error) {
	return s.client.ListApps(ctx, driven.AppFilter{})
}
