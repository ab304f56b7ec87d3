package services

import (
	"context"
	"fmt"

	"github.com/loftberg-tools/ascribe-cli/internal/core/domain"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driven"
	"github.com/loftberg-tools/ascribe-cli/internal/core/ports/driving"
	"github.com/loftberg-tools/ascribe-cli/internal/logger"
)

// Ensure BuildService implements the interface.
var _ driving.BuildService = (*BuildService)(nil)

// buildListLimit bounds the listing used to pick the newest build.
// The server sorts newest-first, so one page is plenty.
const buildListLimit = 10

// BuildService selects uploaded builds and links them to versions.
type BuildService struct {
	client driven.ConnectClient
}

// NewBuildService creates a new build service.
func NewBuildService(client driven.ConnectClient) *BuildService {
	return &BuildService{client: client}
}

// NewestBuild returns the most recently uploaded build for the app and
// platform. The adapter requests a server-side newest-first sort;
// timestamps are compared client-side anyway in case the server
// returned the page unsorted.
func (s *BuildService) NewestBuild(ctx context.Context, appID string, platform domain.Platform) (*domain.Build, error) {
	builds, err := s.client.ListBuilds(ctx, appID, platform, buildListLimit)
	if err != nil {
		return nil, fmt.Errorf("list builds: %w", err)
	}

	newest := domain.NewestBuild(builds)
	if newest == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoBuilds, platform.DisplayName())
	}
	logger.Debug("newest %s build is %s (%s)", platform.DisplayName(), newest.ID, newest.Version)
	return newest, nil
}

// Assign links the build to the version. The remote system rejects the
// assignment when the version is past the stage where a build can be
// attached; that rejection propagates.
func (s *BuildService) Assign(ctx context.Context, versionID, buildID string) error {
	if err := s.client.AssignBuild(ctx, versionID, buildID); err != nil {
		return fmt.Errorf("assign build %s to version %s: %w", buildID, versionID, err)
	}
	return nil
}
